package reservation

import (
	"regexp"
	"strings"
)

var (
	// Guest name: alphabets and whitespace only.
	namePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
	// Indian mobile numbers as collected by the booking form,
	// e.g. "+91 98765 43210".
	phonePattern = regexp.MustCompile(`^\+91\s[0-9]{5}\s[0-9]{5}$`)
	// Permissive on purpose: local part @ domain, no whitespace. A dotless
	// domain like "asha@example" is accepted, as the deployed form did.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed field so the caller can surface
// the whole form state at once instead of the first offender.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// validateFields checks every required field before any store access.
// Persons is deliberately unchecked, matching the deployed behavior.
func validateFields(name, phone, email, date, timeOfDay string) error {
	var fields []FieldError

	switch {
	case name == "":
		fields = append(fields, FieldError{Field: "name", Message: "Name cannot be empty"})
	case !namePattern.MatchString(name):
		fields = append(fields, FieldError{Field: "name", Message: "Name should contain only alphabets"})
	}

	switch {
	case phone == "":
		fields = append(fields, FieldError{Field: "phone", Message: "Phone number is required"})
	case !phonePattern.MatchString(phone):
		fields = append(fields, FieldError{Field: "phone", Message: "Phone number must be in the format '+91 XXXXX XXXXX'"})
	}

	switch {
	case email == "":
		fields = append(fields, FieldError{Field: "email", Message: "Email is required"})
	case !emailPattern.MatchString(email):
		fields = append(fields, FieldError{Field: "email", Message: "Invalid email format"})
	}

	if date == "" {
		fields = append(fields, FieldError{Field: "date", Message: "Date is required"})
	}
	if timeOfDay == "" {
		fields = append(fields, FieldError{Field: "time", Message: "Time is required"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
