// Package detector classifies plan error contexts into a fixed taxonomy and
// rewrites their messages into user-facing sentences.
package detector

import (
	"fmt"
	"regexp"
	"strings"

	"tfanalyze/internal/models"
)

// classifierRule pairs a pattern with the category it selects.
type classifierRule struct {
	pattern   *regexp.Regexp
	errorType models.ErrorType
}

// classifierTable is scanned top to bottom and the first matching pattern
// wins, regardless of how specific a later pattern might be. The order is
// part of the contract: broad patterns near the bottom (provider, module)
// are deliberately shadowed by everything above them.
var classifierTable = []classifierRule{
	{regexp.MustCompile(`(?i)validation failed`), models.ErrorTypeValidation},
	{regexp.MustCompile(`(?i)expected\s+.*\s+but\s+got`), models.ErrorTypeValidation},
	{regexp.MustCompile(`(?i)required field is not set`), models.ErrorTypeValidation},
	{regexp.MustCompile(`(?i)value must be one of`), models.ErrorTypeValidation},
	{regexp.MustCompile(`(?i)must contain at least`), models.ErrorTypeValidation},
	{regexp.MustCompile(`(?i)invalid value`), models.ErrorTypeValidation},

	{regexp.MustCompile(`(?i)unknown resource`), models.ErrorTypeDependency},
	{regexp.MustCompile(`(?i)depends on resource`), models.ErrorTypeDependency},
	{regexp.MustCompile(`(?i)referenced by`), models.ErrorTypeDependency},
	{regexp.MustCompile(`(?i)cyclic dependency`), models.ErrorTypeDependency},
	{regexp.MustCompile(`(?i)cannot resolve`), models.ErrorTypeDependency},

	{regexp.MustCompile(`(?i)access denied`), models.ErrorTypePermission},
	{regexp.MustCompile(`(?i)not authorized`), models.ErrorTypePermission},
	{regexp.MustCompile(`(?i)permission denied`), models.ErrorTypePermission},
	{regexp.MustCompile(`(?i)credentials`), models.ErrorTypePermission},
	{regexp.MustCompile(`(?i)authentication`), models.ErrorTypePermission},
	{regexp.MustCompile(`(?i)forbidden`), models.ErrorTypePermission},

	{regexp.MustCompile(`(?i)syntax error`), models.ErrorTypeSyntax},
	{regexp.MustCompile(`(?i)expected ["(]`), models.ErrorTypeSyntax},
	{regexp.MustCompile(`(?i)unexpected [")]`), models.ErrorTypeSyntax},
	{regexp.MustCompile(`(?i)invalid block definition`), models.ErrorTypeSyntax},

	{regexp.MustCompile(`(?i)already exists`), models.ErrorTypeResourceConflict},
	{regexp.MustCompile(`(?i)conflicts with`), models.ErrorTypeResourceConflict},
	{regexp.MustCompile(`(?i)duplicate`), models.ErrorTypeResourceConflict},
	{regexp.MustCompile(`(?i)in use`), models.ErrorTypeResourceConflict},

	{regexp.MustCompile(`(?i)state is out of date`), models.ErrorTypeStateMismatch},
	{regexp.MustCompile(`(?i)does not match`), models.ErrorTypeStateMismatch},
	{regexp.MustCompile(`(?i)importing`), models.ErrorTypeStateMismatch},
	{regexp.MustCompile(`(?i)drift detected`), models.ErrorTypeStateMismatch},

	{regexp.MustCompile(`(?i)provider`), models.ErrorTypeProvider},
	{regexp.MustCompile(`(?i)plugin`), models.ErrorTypeProvider},
	{regexp.MustCompile(`(?i)registry\.terraform\.io`), models.ErrorTypeProvider},

	{regexp.MustCompile(`(?i)module`), models.ErrorTypeModule},
	{regexp.MustCompile(`(?i)source`), models.ErrorTypeModule},
	{regexp.MustCompile(`(?i)version constraint`), models.ErrorTypeModule},
}

var (
	errorPrefixPattern = regexp.MustCompile(`Error:\s+`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	validationPattern  = regexp.MustCompile(`(?s)(.*?)(expected|required|must|invalid)(.+)`)
)

// DetectErrors classifies every context into an error with a humanized
// message. Recommendations are left empty; the recommender fills them in
// as a separate stage.
func DetectErrors(contexts []models.ErrorContext) []models.Error {
	var errors []models.Error

	for _, ctx := range contexts {
		errorType := ClassifyErrorType(ctx.Message)

		var affected []models.AffectedResource
		if ctx.ResourceType != "" && ctx.ResourceName != "" {
			affected = append(affected, models.AffectedResource{
				Name:    ctx.ResourceName,
				Type:    ctx.ResourceType,
				Address: ctx.ResourceType + "." + ctx.ResourceName,
			})
		}

		errors = append(errors, models.Error{
			ErrorType:         errorType,
			Message:           HumanizeMessage(ctx.Message, errorType),
			AffectedResources: affected,
		})
	}

	return errors
}

// ClassifyErrorType returns the category of the first table pattern that
// matches the message, or ErrorTypeOther when nothing matches.
func ClassifyErrorType(message string) models.ErrorType {
	for _, rule := range classifierTable {
		if rule.pattern.MatchString(message) {
			return rule.errorType
		}
	}
	return models.ErrorTypeOther
}

// HumanizeMessage strips the raw "Error: " prefix, collapses whitespace and
// applies the category's sentence template. Categories without a template
// keep the cleaned message verbatim.
func HumanizeMessage(message string, errorType models.ErrorType) string {
	cleaned := errorPrefixPattern.ReplaceAllString(message, "")
	cleaned = strings.TrimSpace(whitespacePattern.ReplaceAllString(cleaned, " "))

	switch errorType {
	case models.ErrorTypeValidation:
		if m := validationPattern.FindStringSubmatch(cleaned); m != nil {
			field := strings.TrimSpace(m[1])
			issue := m[2] + " " + strings.TrimSpace(m[3])
			return fmt.Sprintf("The value for '%s' is invalid. %s.", field, issue)
		}
		return cleaned
	case models.ErrorTypePermission:
		return "You don't have sufficient permissions: " + cleaned
	case models.ErrorTypeDependency:
		return "There's a dependency issue: " + cleaned
	case models.ErrorTypeSyntax:
		return "There's a syntax error in your configuration: " + cleaned
	case models.ErrorTypeResourceConflict:
		return "Resource conflict detected: " + cleaned
	case models.ErrorTypeStateMismatch:
		return "The Terraform state doesn't match the actual infrastructure: " + cleaned
	case models.ErrorTypeProvider:
		return "There's an issue with the provider configuration: " + cleaned
	case models.ErrorTypeModule:
		return "There's an issue with a module: " + cleaned
	default:
		return cleaned
	}
}
