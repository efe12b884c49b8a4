package validation

import (
	"github.com/deppfellow/user-api/internal/errs"
	"github.com/deppfellow/user-api/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Messages reported for user payloads, in rule order.
const (
	MsgNameRequired  = "Name is required and must be a non-empty string"
	MsgNameEmpty     = "Name cannot be empty"
	MsgEmailRequired = "Email is required and must be a non-empty string"
	MsgEmailInvalid  = "Invalid email format"
)

// ValidateUserBody checks a parsed create/update body and returns the
// trimmed input.
//
// Rules run in order and the first failure wins:
//  1. name present, a string, not ""
//  2. trimmed name not empty
//  3. email present, a string, not ""
//  4. trimmed email has the basic local@domain.tld shape
func ValidateUserBody(body map[string]any) (*model.UserInput, error) {
	input := &model.UserInput{}

	name, ok := body["name"].(string)
	if !ok || name == "" {
		return nil, errs.NewValidationError(MsgNameRequired)
	}
	input.Name = Trim(name)
	if err := validate.StructPartial(input, "Name"); err != nil {
		return nil, userFieldError(err)
	}

	email, ok := body["email"].(string)
	if !ok || email == "" {
		return nil, errs.NewValidationError(MsgEmailRequired)
	}
	input.Email = Trim(email)
	if err := validate.StructPartial(input, "Email"); err != nil {
		return nil, userFieldError(err)
	}

	return input, nil
}

// userFieldError maps a tag failure on model.UserInput to its message.
func userFieldError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errs.NewInternalServerError(err)
	}

	switch validationErrors[0].Field() {
	case "Name":
		return errs.NewValidationError(MsgNameEmpty)
	case "Email":
		return errs.NewValidationError(MsgEmailInvalid)
	default:
		return errs.NewValidationError(validationErrors[0].Error())
	}
}
