// Package report assembles the final analysis report: overall status,
// natural-language summary and metadata.
package report

import (
	"fmt"
	"time"

	"tfanalyze/internal/models"
)

// Options carries the optional metadata inputs for a report.
type Options struct {
	PlanID           string
	TerraformVersion string
}

// Build aggregates classified errors and resource counts into a Report.
// The timestamp is read once, at build time; nothing else is impure.
func Build(errors []models.Error, counts *models.ResourceCounts, opts Options) models.Report {
	status := determineStatus(errors)

	if errors == nil {
		errors = []models.Error{}
	}

	return models.Report{
		Status:  status,
		Summary: generateSummary(status, errors),
		Errors:  errors,
		Metadata: models.Metadata{
			PlanID:           opts.PlanID,
			Timestamp:        time.Now(),
			ResourceCount:    counts,
			TerraformVersion: opts.TerraformVersion,
		},
	}
}

// determineStatus maps the error list to an overall outcome. Errors with no
// high-confidence recommendation anywhere mean we found problems but could
// not pin down a fix, which reports as unknown rather than error.
func determineStatus(errors []models.Error) models.ResponseStatus {
	if len(errors) == 0 {
		return models.StatusSuccess
	}

	for _, err := range errors {
		for _, rec := range err.Recommendations {
			if rec.Confidence == models.ConfidenceHigh {
				return models.StatusError
			}
		}
	}

	return models.StatusUnknown
}

func generateSummary(status models.ResponseStatus, errors []models.Error) string {
	if status == models.StatusSuccess {
		return "Your Terraform plan looks good! No errors were detected."
	}

	count := len(errors)
	if status == models.StatusUnknown {
		return fmt.Sprintf("Found %d issue%s in your Terraform plan, but couldn't determine specific solutions. Check the error details for more information.",
			count, pluralSuffix(count))
	}

	return fmt.Sprintf("Found %d issue%s in your Terraform plan. Most are related to %s problems. Check the recommendations for solutions.",
		count, pluralSuffix(count), mostCommonErrorType(errors))
}

// mostCommonErrorType returns the most frequent category among the errors.
// Ties break toward the category seen first in error order, so the result
// is deterministic for any input.
func mostCommonErrorType(errors []models.Error) models.ErrorType {
	counts := make(map[models.ErrorType]int, len(errors))
	var leader models.ErrorType
	best := 0

	for _, err := range errors {
		counts[err.ErrorType]++
		if counts[err.ErrorType] > best {
			best = counts[err.ErrorType]
			leader = err.ErrorType
		}
	}

	return leader
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
