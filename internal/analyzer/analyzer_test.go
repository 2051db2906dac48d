package analyzer

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfanalyze/internal/models"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/plan_with_errors.txt")
	require.NoError(t, err)
	return string(data)
}

func TestAnalyzePlanWithErrors(t *testing.T) {
	r := Analyze(loadFixture(t), Options{})

	assert.Equal(t, models.StatusError, r.Status)
	require.Len(t, r.Errors, 3)

	assert.Equal(t, models.ErrorTypeResourceConflict, r.Errors[0].ErrorType)
	assert.Equal(t, models.ErrorTypePermission, r.Errors[1].ErrorType)
	assert.Equal(t, models.ErrorTypeDependency, r.Errors[2].ErrorType)

	for _, err := range r.Errors {
		assert.NotEmpty(t, err.Recommendations)
	}

	require.NotNil(t, r.Metadata.ResourceCount)
	assert.Equal(t, &models.ResourceCounts{Add: 2, Change: 1, Destroy: 0}, r.Metadata.ResourceCount)
	assert.Equal(t, "1.5.4", r.Metadata.TerraformVersion)

	// Three categories tie at one occurrence each; the first seen names
	// the summary.
	assert.Contains(t, r.Summary, "Found 3 issues")
	assert.Contains(t, r.Summary, "resource_conflict problems")
}

func TestAnalyzeConflictScenario(t *testing.T) {
	text := "Error: Instance already exists\n" +
		"  on main.tf:5\n" +
		"  resource \"aws_instance\" \"web\" duplicates an existing instance\n"

	r := Analyze(text, Options{})

	require.Len(t, r.Errors, 1)
	err := r.Errors[0]
	assert.Equal(t, models.ErrorTypeResourceConflict, err.ErrorType)

	require.Len(t, err.AffectedResources, 1)
	assert.Equal(t, models.AffectedResource{
		Name:    "web",
		Type:    "aws_instance",
		Address: "aws_instance.web",
	}, err.AffectedResources[0])

	var importRec *models.Recommendation
	for i := range err.Recommendations {
		if err.Recommendations[i].Confidence == models.ConfidenceHigh {
			importRec = &err.Recommendations[i]
			break
		}
	}
	require.NotNil(t, importRec)
	assert.Contains(t, importRec.Code, "terraform import aws_instance.web")
}

func TestAnalyzePermissionScenario(t *testing.T) {
	r := Analyze("Error: access denied performing iam:CreateRole\n", Options{})

	require.Len(t, r.Errors, 1)
	err := r.Errors[0]
	assert.Equal(t, models.ErrorTypePermission, err.ErrorType)
	assert.True(t, strings.HasPrefix(err.Message, "You don't have sufficient permissions:"))

	hasHigh := false
	for _, rec := range err.Recommendations {
		if rec.Confidence == models.ConfidenceHigh {
			hasHigh = true
		}
		// Lowercase "iam" is not a verbatim vendor keyword, so no
		// vendor-specific snippet may appear.
		assert.Empty(t, rec.Code)
	}
	assert.True(t, hasHigh)
	assert.Equal(t, models.StatusError, r.Status)
}

func TestAnalyzeNoChanges(t *testing.T) {
	r := Analyze("No changes. Your infrastructure matches the configuration.\n", Options{})

	assert.Equal(t, models.StatusSuccess, r.Status)
	assert.Empty(t, r.Errors)
	assert.Nil(t, r.Metadata.ResourceCount)
	assert.Equal(t, "Your Terraform plan looks good! No errors were detected.", r.Summary)
}

func TestAnalyzeGarbageInputIsSuccess(t *testing.T) {
	r := Analyze("### not a plan at all ###", Options{})

	assert.Equal(t, models.StatusSuccess, r.Status)
	assert.Empty(t, r.Errors)
}

func TestAnalyzeSuccessKeepsResourceCounts(t *testing.T) {
	r := Analyze("Plan: 5 to add, 0 to change, 1 to destroy.\n", Options{})

	assert.Equal(t, models.StatusSuccess, r.Status)
	require.NotNil(t, r.Metadata.ResourceCount)
	assert.Equal(t, 5, r.Metadata.ResourceCount.Add)
	assert.Equal(t, 1, r.Metadata.ResourceCount.Destroy)
}

func TestAnalyzeUnknownWhenNoHighConfidenceFix(t *testing.T) {
	r := Analyze("Error: cyclic dependency detected\n", Options{})

	require.Len(t, r.Errors, 1)
	assert.Equal(t, models.StatusUnknown, r.Status)
	assert.Contains(t, r.Summary, "couldn't determine specific solutions")
}

func TestAnalyzePlanID(t *testing.T) {
	r := Analyze("Plan: 1 to add, 0 to change, 0 to destroy.\n", Options{PlanID: "release-7"})
	assert.Equal(t, "release-7", r.Metadata.PlanID)
}

func TestReportRoundTrip(t *testing.T) {
	r := Analyze(loadFixture(t), Options{PlanID: "fixture"})

	data, err := json.Marshal(r)
	require.NoError(t, err)

	parsed := ParseReport(data)
	diff := cmp.Diff(r, parsed, cmpopts.EquateApproxTime(time.Second))
	assert.Empty(t, diff)
}

func TestReportFieldNames(t *testing.T) {
	r := Analyze(loadFixture(t), Options{})

	data, err := json.Marshal(r)
	require.NoError(t, err)
	out := string(data)

	for _, field := range []string{
		`"status"`, `"summary"`, `"errors"`, `"errorType"`, `"message"`,
		`"affectedResources"`, `"recommendations"`, `"description"`,
		`"confidence"`, `"metadata"`, `"timestamp"`, `"resourceCount"`,
		`"add"`, `"change"`, `"destroy"`,
	} {
		assert.Contains(t, out, field)
	}

	// planId was not set, so it must be omitted entirely.
	assert.NotContains(t, out, `"planId"`)
}

func TestParseReportMalformedInput(t *testing.T) {
	r := ParseReport([]byte("{not json"))

	assert.Equal(t, models.StatusError, r.Status)
	assert.Equal(t, "Failed to parse analysis results", r.Summary)
	require.NotNil(t, r.Errors)
	assert.Empty(t, r.Errors)
}
