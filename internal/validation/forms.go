// Package validation provides syntactic validation of form input before
// handlers run. Handlers treat validated form structs as trusted strings.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"inkwell/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterForm collects the registration fields.
type RegisterForm struct {
	Email    string `validate:"required,email,max=254"`
	Name     string `validate:"required,min=2,max=100"`
	Password string `validate:"required,min=8,max=128"`
}

// LoginForm collects the login fields.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// PostForm collects the create/edit post fields.
type PostForm struct {
	Title    string `validate:"required,max=250"`
	Subtitle string `validate:"required,max=250"`
	ImageURL string `validate:"required,url,max=250"`
	Body     string `validate:"required"`
}

// CommentForm collects the comment field.
type CommentForm struct {
	Text string `validate:"required,max=10000"`
}

// Check validates a form struct and converts the first violation into a
// user-facing VALIDATION_ERROR.
func Check(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return models.NewValidationError(fieldMessage(verrs[0]))
	}
	return models.NewValidationError("invalid form input")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "a valid email address is required"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
