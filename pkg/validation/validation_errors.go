package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldMessages maps JSON field names to the user-facing message shown when
// the field fails validation. The copy mirrors the application form.
var FieldMessages = map[string]string{
	"email":             "Please enter a valid email address.",
	"fullName":          "Please enter your full name.",
	"gender":            "Please select your gender.",
	"qualification":     "Please select your qualification.",
	"currentYear":       "Please select your current year.",
	"college":           "Please enter your college/university name.",
	"internshipProgram": "Please select an internship program.",
	"duration":          "Please select a duration.",
	"country":           "Please select your country.",
	"skillLevel":        "Please select your skill level.",
	"contactNumber":     "Please enter a valid contact number.",
	"source":            "Please select where you learned about us.",
}

// FieldErrors converts validator.ValidationErrors into a map of JSON field
// name to user-facing message. Fields without dedicated copy get a generic
// message derived from the failing rule.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error; report it unattributed
		fields[""] = err.Error()
		return fields
	}

	for _, e := range validationErrors {
		name := e.Field()
		if msg, ok := FieldMessages[name]; ok {
			fields[name] = msg
			continue
		}
		fields[name] = genericMessage(e)
	}

	return fields
}

func genericMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", e.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", e.Param())
	case "email":
		return "Please enter a valid email address."
	case "url":
		return "Please enter a valid URL."
	case "oneof", "internship_program", "internship_duration":
		return "Please choose one of the listed options."
	default:
		return fmt.Sprintf("Validation failed (%s).", e.Tag())
	}
}
