// Package models contains the domain models for the application.
package models

import "time"

// ErrorType classifies an error found in a Terraform plan.
type ErrorType string

// The closed set of error categories.
const (
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeDependency       ErrorType = "dependency"
	ErrorTypePermission       ErrorType = "permission"
	ErrorTypeSyntax           ErrorType = "syntax"
	ErrorTypeResourceConflict ErrorType = "resource_conflict"
	ErrorTypeStateMismatch    ErrorType = "state_mismatch"
	ErrorTypeProvider         ErrorType = "provider"
	ErrorTypeModule           ErrorType = "module"
	ErrorTypeOther            ErrorType = "other"
)

// ConfidenceLevel indicates how certain a recommendation is to apply.
type ConfidenceLevel string

// Confidence levels for recommendations.
const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ResponseStatus is the overall outcome of an analysis.
type ResponseStatus string

// Analysis outcomes.
const (
	StatusSuccess ResponseStatus = "success"
	StatusError   ResponseStatus = "error"
	StatusUnknown ResponseStatus = "unknown"
)

// AffectedResource identifies a resource implicated by an error.
// Address is always Type + "." + Name.
type AffectedResource struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
}

// Recommendation is a suggested fix for an error, optionally carrying an
// example code or command snippet.
type Recommendation struct {
	Description string          `json:"description"`
	Code        string          `json:"code,omitempty"`
	Confidence  ConfidenceLevel `json:"confidence"`
}

// Error is a classified error found in the plan. Message holds the
// humanized form, never the raw plan text. Recommendations is populated
// once after classification and is never empty for a classified error.
type Error struct {
	ErrorType         ErrorType          `json:"errorType"`
	Message           string             `json:"message"`
	AffectedResources []AffectedResource `json:"affectedResources"`
	Recommendations   []Recommendation   `json:"recommendations"`
}

// ResourceCounts holds the add/change/destroy totals from the plan summary
// line. A nil *ResourceCounts means no summary line was found, which is
// distinct from an all-zero count.
type ResourceCounts struct {
	Add     int `json:"add"`
	Change  int `json:"change"`
	Destroy int `json:"destroy"`
}

// Metadata carries information about the analysis itself.
type Metadata struct {
	PlanID           string          `json:"planId,omitempty"`
	Timestamp        time.Time       `json:"timestamp"`
	ResourceCount    *ResourceCounts `json:"resourceCount,omitempty"`
	TerraformVersion string          `json:"terraformVersion,omitempty"`
}

// Report is the full analysis result returned to callers.
type Report struct {
	Status   ResponseStatus `json:"status"`
	Summary  string         `json:"summary"`
	Errors   []Error        `json:"errors"`
	Metadata Metadata       `json:"metadata"`
}

// ErrorContext is the transient record produced per raw error block before
// classification. Optional fields are empty strings when extraction found
// nothing.
type ErrorContext struct {
	Message      string
	ResourcePath string
	LineNumber   string
	ResourceType string
	ResourceName string
}
