package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfanalyze/internal/models"
)

func errorWithConfidence(errorType models.ErrorType, levels ...models.ConfidenceLevel) models.Error {
	err := models.Error{ErrorType: errorType, Message: "msg"}
	for _, level := range levels {
		err.Recommendations = append(err.Recommendations, models.Recommendation{
			Description: "rec",
			Confidence:  level,
		})
	}
	return err
}

func TestBuildSuccessWithoutErrors(t *testing.T) {
	r := Build(nil, nil, Options{})

	assert.Equal(t, models.StatusSuccess, r.Status)
	assert.Equal(t, "Your Terraform plan looks good! No errors were detected.", r.Summary)
	require.NotNil(t, r.Errors)
	assert.Empty(t, r.Errors)
	assert.Nil(t, r.Metadata.ResourceCount)
}

func TestBuildStatusErrorRequiresHighConfidence(t *testing.T) {
	r := Build([]models.Error{
		errorWithConfidence(models.ErrorTypeSyntax, models.ConfidenceMedium, models.ConfidenceHigh),
	}, nil, Options{})

	assert.Equal(t, models.StatusError, r.Status)
}

func TestBuildStatusUnknownWithoutHighConfidence(t *testing.T) {
	r := Build([]models.Error{
		errorWithConfidence(models.ErrorTypeOther, models.ConfidenceMedium, models.ConfidenceLow),
		errorWithConfidence(models.ErrorTypeProvider, models.ConfidenceMedium),
	}, nil, Options{})

	assert.Equal(t, models.StatusUnknown, r.Status)
	assert.Contains(t, r.Summary, "Found 2 issues")
	assert.Contains(t, r.Summary, "couldn't determine specific solutions")
}

func TestBuildSummarySingularIssue(t *testing.T) {
	r := Build([]models.Error{
		errorWithConfidence(models.ErrorTypeSyntax, models.ConfidenceHigh),
	}, nil, Options{})

	assert.Contains(t, r.Summary, "Found 1 issue in")
	assert.Contains(t, r.Summary, "syntax problems")
}

func TestBuildSummaryNamesMostCommonErrorType(t *testing.T) {
	r := Build([]models.Error{
		errorWithConfidence(models.ErrorTypeSyntax, models.ConfidenceHigh),
		errorWithConfidence(models.ErrorTypePermission, models.ConfidenceHigh),
		errorWithConfidence(models.ErrorTypePermission, models.ConfidenceHigh),
	}, nil, Options{})

	assert.Contains(t, r.Summary, "Found 3 issues")
	assert.Contains(t, r.Summary, "permission problems")
}

// On a frequency tie the first-seen category wins, regardless of how the
// later categories interleave.
func TestBuildSummaryTieBreaksToFirstSeen(t *testing.T) {
	r := Build([]models.Error{
		errorWithConfidence(models.ErrorTypeValidation, models.ConfidenceHigh),
		errorWithConfidence(models.ErrorTypeProvider, models.ConfidenceHigh),
		errorWithConfidence(models.ErrorTypeValidation, models.ConfidenceHigh),
		errorWithConfidence(models.ErrorTypeProvider, models.ConfidenceHigh),
	}, nil, Options{})

	assert.Contains(t, r.Summary, "validation problems")
}

func TestBuildMetadata(t *testing.T) {
	counts := &models.ResourceCounts{Add: 2, Change: 1}
	before := time.Now()
	r := Build(nil, counts, Options{PlanID: "plan-42", TerraformVersion: "1.5.4"})
	after := time.Now()

	assert.Equal(t, counts, r.Metadata.ResourceCount)
	assert.Equal(t, "plan-42", r.Metadata.PlanID)
	assert.Equal(t, "1.5.4", r.Metadata.TerraformVersion)
	assert.False(t, r.Metadata.Timestamp.Before(before))
	assert.False(t, r.Metadata.Timestamp.After(after))
}
