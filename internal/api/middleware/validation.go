package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lecturescribe/internal/api/errors"
)

// Validator lets request DTOs add domain rules beyond struct tags.
type Validator interface {
	Validate() error
}

// ValidateRequest binds and validates a JSON body.
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		fields := make(map[string]string)

		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrs {
				field := strings.ToLower(fieldError.Field())
				switch fieldError.Tag() {
				case "required":
					fields[field] = "is required"
				case "min":
					fields[field] = "is too short"
				case "max":
					fields[field] = "is too long"
				case "url":
					fields[field] = "must be a valid URL"
				case "oneof":
					fields[field] = "must be one of the allowed values"
				default:
					fields[field] = "is invalid"
				}
			}
		} else {
			fields["request"] = "invalid JSON format"
		}

		return errors.NewValidationError("validation failed", fields)
	}

	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}

// ValidateQuery binds and validates query parameters.
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return errors.NewBadRequestError("invalid query parameters")
	}
	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}
