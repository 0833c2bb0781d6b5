package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown on the signup form
var FieldLabels = map[string]string{
	"BusinessName":      "Business Name",
	"BusinessType":      "Business Type",
	"Email":             "Business Email",
	"Website":           "Website",
	"TargetAudience":    "Ideal Customer",
	"MainGoals":         "Business Goals",
	"SocialPlatforms":   "Social Media Platforms",
	"CurrentChallenges": "Current Challenges",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s: This field is required", label)

	case "email":
		return fmt.Sprintf("%s: Please enter a valid email address", label)

	case "url":
		return fmt.Sprintf("%s: Please enter a valid URL", label)

	case "unique":
		return fmt.Sprintf("%s: Each option can only be selected once", label)

	case "business_type":
		return fmt.Sprintf("%s: Please choose one of the listed business types", label)

	case "goal", "platform":
		return fmt.Sprintf("%s: %q is not one of the listed options", label, fmt.Sprint(e.Value()))

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field.
// Dive errors carry an index suffix, e.g. "MainGoals[2]".
func getFieldLabel(fieldName string) string {
	if i := strings.IndexByte(fieldName, '['); i >= 0 {
		fieldName = fieldName[:i]
	}
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
