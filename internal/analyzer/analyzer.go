// Package analyzer wires the analysis pipeline together: section and
// context extraction, error classification, recommendation synthesis and
// report assembly.
//
// Analyze is a pure, bounded function of its input (plus the report
// timestamp). Each call is independent, so callers may run analyses of
// different plan texts concurrently without coordination.
package analyzer

import (
	"encoding/json"

	"tfanalyze/internal/detector"
	"tfanalyze/internal/models"
	"tfanalyze/internal/parser"
	"tfanalyze/internal/recommender"
	"tfanalyze/internal/report"
)

// Options configures a single analysis.
type Options struct {
	// PlanID is an optional caller-provided identifier carried through to
	// the report metadata.
	PlanID string
}

// Analyze runs the full pipeline over raw terraform plan output. Input with
// no detectable error region produces a success report carrying whatever
// resource counts could be extracted, even if the text is garbage; so does
// an error region that yields no classifiable contexts. The analyzer never
// fails, it only degrades.
func Analyze(planOutput string, opts Options) models.Report {
	p := parser.New(planOutput)
	counts := p.ResourceCounts()

	reportOpts := report.Options{
		PlanID:           opts.PlanID,
		TerraformVersion: p.Sections().TerraformVersion,
	}

	contexts := p.ErrorContexts()
	if len(contexts) == 0 {
		return report.Build(nil, counts, reportOpts)
	}

	errors := detector.DetectErrors(contexts)
	if len(errors) == 0 {
		return report.Build(nil, counts, reportOpts)
	}

	return report.Build(recommender.Recommend(errors), counts, reportOpts)
}

// ParseReport decodes a serialized report. Malformed input degrades to a
// fixed failed-to-parse structure instead of an error, mirroring the
// analyzer's no-crash contract for downstream consumers.
func ParseReport(data []byte) models.Report {
	var r models.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return models.Report{
			Status:  models.StatusError,
			Summary: "Failed to parse analysis results",
			Errors:  []models.Error{},
		}
	}
	return r
}
