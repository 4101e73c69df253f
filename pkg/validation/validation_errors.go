package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Auth
	"Email":       "Email",
	"Password":    "Password",
	"NewPassword": "New password",
	"OTP":         "OTP",
	"Role":        "Role",

	// Profiles
	"FullName":           "Full name",
	"Phone":              "Phone number",
	"Bio":                "Bio",
	"CompanyName":        "Company name",
	"ContactPerson":      "Contact person",
	"CompanyDescription": "Company description",
	"Website":            "Website",
	"Industry":           "Industry",
	"CompanySize":        "Company size",
	"EstablishedYear":    "Established year",
	"GraduationYear":     "Graduation year",

	// Jobs
	"Title":               "Job title",
	"Description":         "Job description",
	"Category":            "Category",
	"JobType":             "Job type",
	"WorkingHours":        "Working hours",
	"City":                "City",
	"Min":                 "Minimum salary",
	"Max":                 "Maximum salary",
	"Period":              "Salary period",
	"Vacancies":           "Vacancies",
	"ApplicationDeadline": "Application deadline",

	// Applications
	"CoverLetter": "Cover letter",
	"Status":      "Status",
	"Notes":       "Employer notes",
}

var enumOptions = map[string]string{}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins every formatted validation error into a single sentence list.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), ", ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s cannot exceed %s characters", label, param)
		}
		return fmt.Sprintf("%s cannot exceed %s", label, param)
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label, param)
	case "lte":
		return fmt.Sprintf("%s must be %s or less", label, param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	case "email":
		return "Please enter a valid email"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "numeric":
		return fmt.Sprintf("%s must contain digits only", label)
	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and common punctuation", label)
	case "phone10":
		return "Please enter a valid 10-digit phone number"
	case "no_emoji":
		return fmt.Sprintf("%s cannot contain emoji or symbols", label)
	case "max_current_year":
		return fmt.Sprintf("%s cannot be in the future", label)
	case "gtefield":
		return fmt.Sprintf("%s must be greater than or equal to %s", label, getFieldLabel(param))
	}

	if options, ok := enumOptions[e.Tag()]; ok {
		return fmt.Sprintf("%s must be one of: %s", label, options)
	}
	return fmt.Sprintf("%s is invalid", label)
}

func getFieldLabel(fieldName string) string {
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
