// Package recommender synthesizes remediation suggestions for classified
// plan errors.
//
// Dispatch is purely on the error's category, and every category has its own
// handler. The secondary pattern probes run against the humanized message
// produced by the detector, never against raw plan text, so the two stages
// stay independently testable.
package recommender

import (
	"fmt"
	"regexp"

	"tfanalyze/internal/models"
)

var (
	fieldPattern    = regexp.MustCompile(`value for '([^']+)'`)
	expectedPattern = regexp.MustCompile(`expected (.+)`)
	requiredPattern = regexp.MustCompile(`required field`)

	unknownResourcePattern = regexp.MustCompile(`unknown resource '([^']+)'`)
	cyclicPattern          = regexp.MustCompile(`cyclic dependency`)

	// Vendor probes are case-sensitive on purpose: "iam" in an API action
	// name must not trigger the AWS-specific advice.
	awsPattern   = regexp.MustCompile(`AWS|IAM|arn:aws`)
	azurePattern = regexp.MustCompile(`Azure|Microsoft`)

	quotesPattern   = regexp.MustCompile(`(expected|missing) (quote|")`)
	bracketsPattern = regexp.MustCompile(`(expected|missing) (bracket|\{|\}|\(|\))`)

	existsPattern = regexp.MustCompile(`already exists`)
	inUsePattern  = regexp.MustCompile(`in use`)

	versionPattern = regexp.MustCompile(`version`)
	pluginPattern  = regexp.MustCompile(`plugin|binary`)
	sourcePattern  = regexp.MustCompile(`source`)
)

// Recommend populates every error's recommendation list in place and
// returns the slice. Each classified error ends up with at least one
// recommendation; the fallback category guarantees it.
func Recommend(errors []models.Error) []models.Error {
	for i := range errors {
		errors[i].Recommendations = forError(errors[i])
	}
	return errors
}

func forError(err models.Error) []models.Recommendation {
	switch err.ErrorType {
	case models.ErrorTypeValidation:
		return forValidation(err)
	case models.ErrorTypeDependency:
		return forDependency(err)
	case models.ErrorTypePermission:
		return forPermission(err)
	case models.ErrorTypeSyntax:
		return forSyntax(err)
	case models.ErrorTypeResourceConflict:
		return forConflict(err)
	case models.ErrorTypeStateMismatch:
		return forStateMismatch(err)
	case models.ErrorTypeProvider:
		return forProvider(err)
	case models.ErrorTypeModule:
		return forModule(err)
	default:
		return forOther(err)
	}
}

// affectedOrPlaceholder returns the first affected resource's type and
// name, or generic placeholders when none was extracted.
func affectedOrPlaceholder(err models.Error) (resourceType, resourceName string) {
	if len(err.AffectedResources) > 0 {
		return err.AffectedResources[0].Type, err.AffectedResources[0].Name
	}
	return "resource", "name"
}

func forValidation(err models.Error) []models.Recommendation {
	field := "the field"
	if m := fieldPattern.FindStringSubmatch(err.Message); m != nil {
		field = m[1]
	}

	if m := expectedPattern.FindStringSubmatch(err.Message); m != nil {
		return []models.Recommendation{{
			Description: fmt.Sprintf("Update %s to match the expected format: %s", field, m[1]),
			Confidence:  models.ConfidenceHigh,
		}}
	}

	if requiredPattern.MatchString(err.Message) {
		resourceType, _ := affectedOrPlaceholder(err)
		return []models.Recommendation{{
			Description: fmt.Sprintf("Add the required '%s' field to your %s configuration", field, resourceType),
			Code: fmt.Sprintf("resource %q \"name\" {\n  # Add this required field\n  %s = \"value\"\n  # ... other configuration ...\n}",
				resourceType, field),
			Confidence: models.ConfidenceHigh,
		}}
	}

	return []models.Recommendation{{
		Description: fmt.Sprintf("Check the documentation for valid values of '%s' and update your configuration accordingly", field),
		Confidence:  models.ConfidenceMedium,
	}}
}

func forDependency(err models.Error) []models.Recommendation {
	if m := unknownResourcePattern.FindStringSubmatch(err.Message); m != nil {
		ref := m[1]
		return []models.Recommendation{
			{
				Description: fmt.Sprintf("Define the missing resource '%s' or correct the reference if it's misspelled", ref),
				Confidence:  models.ConfidenceHigh,
			},
			{
				Description: fmt.Sprintf("Ensure that the resource '%s' is in the correct module scope", ref),
				Confidence:  models.ConfidenceMedium,
			},
		}
	}

	if cyclicPattern.MatchString(err.Message) {
		return []models.Recommendation{
			{
				Description: "Break the circular dependency between resources by restructuring your configuration",
				Confidence:  models.ConfidenceMedium,
			},
			{
				Description: "Consider using a local value or variable to break the dependency cycle",
				Code:        "locals {\n  intermediate_value = \"something\"\n}\n\nresource \"type\" \"name\" {\n  property = local.intermediate_value\n}",
				Confidence:  models.ConfidenceMedium,
			},
		}
	}

	return []models.Recommendation{
		{
			Description: "Check that all referenced resources exist and are correctly spelled",
			Confidence:  models.ConfidenceMedium,
		},
		{
			Description: "Make sure your resource dependencies are correctly defined using depends_on if needed",
			Code:        "resource \"type\" \"name\" {\n  # ...\n  depends_on = [\n    resource.dependency\n  ]\n}",
			Confidence:  models.ConfidenceMedium,
		},
	}
}

func forPermission(err models.Error) []models.Recommendation {
	recs := []models.Recommendation{{
		Description: "Check that your credentials have sufficient permissions for this operation",
		Confidence:  models.ConfidenceHigh,
	}}

	if awsPattern.MatchString(err.Message) {
		recs = append(recs, models.Recommendation{
			Description: "Ensure your AWS IAM user or role has the necessary permissions to manage these resources",
			Code:        "{\n  \"Version\": \"2012-10-17\",\n  \"Statement\": [\n    {\n      \"Effect\": \"Allow\",\n      \"Action\": [\n        \"service:Action\"\n      ],\n      \"Resource\": \"*\"\n    }\n  ]\n}",
			Confidence:  models.ConfidenceMedium,
		})
	} else if azurePattern.MatchString(err.Message) {
		recs = append(recs, models.Recommendation{
			Description: "Check that your Azure service principal has the required role assignments",
			Code:        "az role assignment create --assignee \"$CLIENT_ID\" --role \"Contributor\" --scope \"/subscriptions/$SUBSCRIPTION_ID\"",
			Confidence:  models.ConfidenceMedium,
		})
	}

	return append(recs, models.Recommendation{
		Description: "Verify that your authentication credentials are correct and not expired",
		Confidence:  models.ConfidenceMedium,
	})
}

func forSyntax(err models.Error) []models.Recommendation {
	var recs []models.Recommendation

	if quotesPattern.MatchString(err.Message) {
		recs = append(recs, models.Recommendation{
			Description: "Check for missing or unbalanced quotes in your configuration",
			Confidence:  models.ConfidenceHigh,
		})
	} else if bracketsPattern.MatchString(err.Message) {
		recs = append(recs, models.Recommendation{
			Description: "Fix unbalanced brackets or braces in your configuration",
			Confidence:  models.ConfidenceHigh,
		})
	}

	return append(recs,
		models.Recommendation{
			Description: "Run 'terraform fmt' to automatically fix minor syntax issues",
			Code:        "terraform fmt",
			Confidence:  models.ConfidenceHigh,
		},
		models.Recommendation{
			Description: "Check the HCL syntax documentation for proper formatting",
			Confidence:  models.ConfidenceMedium,
		},
	)
}

func forConflict(err models.Error) []models.Recommendation {
	resourceType, resourceName := affectedOrPlaceholder(err)
	var recs []models.Recommendation

	if existsPattern.MatchString(err.Message) {
		recs = append(recs,
			models.Recommendation{
				Description: "Import the existing resource into your Terraform state instead of creating a new one",
				Code:        fmt.Sprintf("terraform import %s.%s <resource_id>", resourceType, resourceName),
				Confidence:  models.ConfidenceHigh,
			},
			models.Recommendation{
				Description: fmt.Sprintf("Use a different name for your %s to avoid the conflict", resourceType),
				Confidence:  models.ConfidenceMedium,
			},
		)
	} else if inUsePattern.MatchString(err.Message) {
		recs = append(recs, models.Recommendation{
			Description: "Identify and remove the dependency on this resource before making changes",
			Confidence:  models.ConfidenceMedium,
		})
	}

	return append(recs, models.Recommendation{
		Description: "Check if you can use 'terraform state rm' to remove the conflicting resource from state if it no longer exists",
		Code:        fmt.Sprintf("terraform state rm %s.%s", resourceType, resourceName),
		Confidence:  models.ConfidenceLow,
	})
}

func forStateMismatch(err models.Error) []models.Recommendation {
	resourceType, resourceName := affectedOrPlaceholder(err)

	return []models.Recommendation{
		{
			Description: "Refresh the Terraform state to match the current real infrastructure",
			Code:        "terraform refresh",
			Confidence:  models.ConfidenceHigh,
		},
		{
			Description: "Import the existing resource into your Terraform state",
			Code:        fmt.Sprintf("terraform import %s.%s <resource_id>", resourceType, resourceName),
			Confidence:  models.ConfidenceMedium,
		},
		{
			Description: "If the resource has been manually modified, update your configuration to match the current state",
			Confidence:  models.ConfidenceMedium,
		},
	}
}

func forProvider(err models.Error) []models.Recommendation {
	var recs []models.Recommendation

	if versionPattern.MatchString(err.Message) {
		recs = append(recs, models.Recommendation{
			Description: "Update your provider version constraint in the required_providers block",
			Code:        "terraform {\n  required_providers {\n    aws = {\n      source  = \"hashicorp/aws\"\n      version = \"~> 4.0\"\n    }\n  }\n}",
			Confidence:  models.ConfidenceHigh,
		})
	} else if pluginPattern.MatchString(err.Message) {
		recs = append(recs, models.Recommendation{
			Description: "Reinstall the provider plugin by running terraform init",
			Code:        "terraform init -upgrade",
			Confidence:  models.ConfidenceHigh,
		})
	}

	return append(recs, models.Recommendation{
		Description: "Check your provider configuration for any missing required attributes",
		Confidence:  models.ConfidenceMedium,
	})
}

func forModule(err models.Error) []models.Recommendation {
	var recs []models.Recommendation

	if sourcePattern.MatchString(err.Message) {
		recs = append(recs, models.Recommendation{
			Description: "Check that the module source URL is correct and accessible",
			Code:        "module \"example\" {\n  source = \"hashicorp/consul/aws\"\n  version = \"0.1.0\"\n}",
			Confidence:  models.ConfidenceHigh,
		})
	} else if versionPattern.MatchString(err.Message) {
		recs = append(recs, models.Recommendation{
			Description: "Update the module version to a compatible version",
			Code:        "module \"example\" {\n  source  = \"hashicorp/consul/aws\"\n  version = \"~> 0.1.0\"\n}",
			Confidence:  models.ConfidenceHigh,
		})
	}

	return append(recs, models.Recommendation{
		Description: "Run terraform init to download any missing modules",
		Code:        "terraform init",
		Confidence:  models.ConfidenceMedium,
	})
}

func forOther(_ models.Error) []models.Recommendation {
	return []models.Recommendation{
		{
			Description: "Check the Terraform documentation for this specific error message",
			Confidence:  models.ConfidenceMedium,
		},
		{
			Description: "Try running 'terraform validate' for more detailed error information",
			Code:        "terraform validate",
			Confidence:  models.ConfidenceMedium,
		},
		{
			Description: "Make sure you're using a compatible Terraform version for your configuration",
			Confidence:  models.ConfidenceLow,
		},
	}
}
