package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names in validation details, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks a request struct against its declared schema and
// flattens every failure into per-field details. A nil result means the
// value passed.
func validateRequest(req any) []fieldDetail {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldDetail{{Message: err.Error()}}
	}

	details := make([]fieldDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldDetail{Field: fe.Field(), Message: messageFor(fe)})
	}
	return details
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "invalid email address"
	case "min":
		return fe.Field() + " must not be empty"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
