package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement
// Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ContactRequest is the DTO for a contact submission, shared by the JSON
// API and the form-encoded path. The serviceType values mirror the
// categories offered on the services page.
type ContactRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=200"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	ServiceType string `json:"serviceType" form:"serviceType" validate:"required,oneof=construction gis ai-data m-and-e sustainability consultancy other"`
	Message     string `json:"message" form:"message" validate:"required,max=5000"`
}

// fieldMessages maps a validation error to readable per-field messages
// keyed by the form field name.
func fieldMessages(err error) map[string]string {
	out := make(map[string]string)

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = "Invalid submission."
		return out
	}

	for _, fe := range verrs {
		field := fieldName(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required."
		case "email":
			out[field] = "Enter a valid email address."
		case "oneof":
			out[field] = "Choose one of the listed services."
		case "max":
			out[field] = "This field is too long."
		default:
			out[field] = "This value is invalid."
		}
	}
	return out
}

// fieldName lowers the struct field name to the form field name
// (Name → name, ServiceType → serviceType).
func fieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
