// Package parser extracts structured sections from raw terraform plan output.
//
// The extraction is anchored pattern matching, not a grammar: it pulls the
// version string, the "Plan:" summary block and every error block out of
// whatever text it is handed, and degrades to empty results when an anchor
// is missing.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"tfanalyze/internal/models"
)

var (
	versionPattern = regexp.MustCompile(`Terraform\s+v(\d+\.\d+\.\d+)`)
	planPattern    = regexp.MustCompile(`(?s)Plan:.*?(?:\n\n|\z)`)

	// Error anchors, tried in order. Plain "Error: " lines and the
	// box-drawn variants terraform emits with │ and ╷ glyphs.
	errorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)Error: (.*?)(?:\n\n|\z)`),
		regexp.MustCompile(`(?s)│ Error: (.*?)(?:\n\n|\z)`),
		regexp.MustCompile(`(?s)╷\s*│\s*Error: (.*?)(?:\n\n|\z)`),
	}

	addPattern     = regexp.MustCompile(`(\d+) to add`)
	changePattern  = regexp.MustCompile(`(\d+) to change`)
	destroyPattern = regexp.MustCompile(`(\d+) to destroy`)

	blockSplitPattern   = regexp.MustCompile(`\n\s*\n`)
	sourceRefPattern    = regexp.MustCompile(`on\s+([^:]+):(\d+)`)
	resourceDeclPattern = regexp.MustCompile(`resource "([^"]+)" "([^"]+)"`)
	dottedAddrPattern   = regexp.MustCompile(`([a-zA-Z0-9_\-.]+\.[a-zA-Z0-9_\-.]+)(?:\[\d+\])?`)
)

// Sections holds the typed regions split out of a plan's raw text.
type Sections struct {
	// TerraformVersion is the version number following a "Terraform v"
	// token, or empty if none was found.
	TerraformVersion string

	// Plan is the block starting at the first "Plan:" line, up to the
	// next blank line or end of text.
	Plan string

	// Errors is the concatenation of every matched error block,
	// separated by blank lines. Empty when the plan has no errors.
	Errors string
}

// Plan wraps one plan's raw output and its extracted sections.
type Plan struct {
	raw      string
	sections Sections
}

// New splits the given plan output into sections.
func New(planOutput string) *Plan {
	return &Plan{
		raw:      planOutput,
		sections: extractSections(planOutput),
	}
}

// Sections returns the extracted regions.
func (p *Plan) Sections() Sections {
	return p.sections
}

// HasErrors reports whether any error block was found in the output.
func (p *Plan) HasErrors() bool {
	return p.sections.Errors != ""
}

func extractSections(text string) Sections {
	var s Sections

	if m := versionPattern.FindStringSubmatch(text); m != nil {
		s.TerraformVersion = m[1]
	}

	if m := planPattern.FindString(text); m != "" {
		s.Plan = strings.TrimSpace(m)
	}

	var blocks []string
	for _, pattern := range errorPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if b := strings.TrimSpace(m[1]); b != "" {
				blocks = append(blocks, b)
			}
		}
	}
	s.Errors = strings.Join(blocks, "\n\n")

	return s
}

// ResourceCounts extracts the add/change/destroy totals from the plan
// summary section. Returns nil when no "Plan:" section exists; terms absent
// from the summary line default to zero.
func (p *Plan) ResourceCounts() *models.ResourceCounts {
	if p.sections.Plan == "" {
		return nil
	}

	return &models.ResourceCounts{
		Add:     matchCount(addPattern, p.sections.Plan),
		Change:  matchCount(changePattern, p.sections.Plan),
		Destroy: matchCount(destroyPattern, p.sections.Plan),
	}
}

func matchCount(pattern *regexp.Regexp, text string) int {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ErrorContexts splits the error region into per-error contexts. Each block
// carries its trimmed message plus whatever source location and resource
// identity could be recovered. Block order follows the source region.
func (p *Plan) ErrorContexts() []models.ErrorContext {
	if !p.HasErrors() {
		return nil
	}

	var contexts []models.ErrorContext
	for _, block := range blockSplitPattern.Split(p.sections.Errors, -1) {
		message := strings.TrimSpace(block)
		if message == "" {
			continue
		}

		ctx := models.ErrorContext{Message: message}

		if m := sourceRefPattern.FindStringSubmatch(block); m != nil {
			ctx.ResourcePath = m[1]
			ctx.LineNumber = m[2]
		}

		ctx.ResourceType, ctx.ResourceName = extractResourceIdentity(block)
		contexts = append(contexts, ctx)
	}

	return contexts
}

// extractResourceIdentity recovers a resource type and name from an error
// block. An explicit `resource "type" "name"` declaration wins; failing
// that, the last two dot-separated segments of the first address-shaped
// token are used. Either strategy may come up empty.
func extractResourceIdentity(block string) (resourceType, resourceName string) {
	if m := resourceDeclPattern.FindStringSubmatch(block); m != nil {
		return m[1], m[2]
	}

	if m := dottedAddrPattern.FindStringSubmatch(block); m != nil {
		parts := strings.Split(m[1], ".")
		if len(parts) >= 2 {
			return parts[len(parts)-2], parts[len(parts)-1]
		}
	}

	return "", ""
}
