package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown in error messages.
var FieldLabels = map[string]string{
	"Email":            "Email",
	"Phone":            "Phone number",
	"RedditUsername":   "Reddit username",
	"TwitterUsername":  "Twitter username",
	"YoutubeUsername":  "YouTube username",
	"FacebookUsername": "Facebook username",
	"CompanySlug":      "Company slug",
	"CompanyName":      "Company name",
}

// FormatFirstError converts a validation failure into the single
// human-readable message surfaced verbatim in the error response. Only the
// first violated field is reported.
func FormatFirstError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}
	return formatSingleError(validationErrors[0])
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
