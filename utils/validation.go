package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors flattens a binding error into a field -> message map for
// the 422 response envelope.
func ValidationErrors(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = "Invalid request body"
		return fields
	}

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = name + " is required"
		case "min":
			fields[name] = name + " must be at least " + fe.Param()
		case "max":
			fields[name] = name + " must be at most " + fe.Param()
		default:
			fields[name] = name + " is not valid"
		}
	}
	return fields
}
