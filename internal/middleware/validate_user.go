package middleware

import (
	"github.com/deppfellow/user-api/internal/model"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/deppfellow/user-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// UserInputKey stores the validated *model.UserInput in Echo context.
const UserInputKey = "user_input"

// UserValidator guards the create and update routes.
type UserValidator struct {
	server *server.Server
}

// NewUserValidator constructs a UserValidator.
func NewUserValidator(s *server.Server) *UserValidator {
	return &UserValidator{server: s}
}

// ValidateUser is a route middleware that checks the parsed body's name
// and email (see validation.ValidateUserBody).
//
// On failure it short-circuits with the validation error. On success it
// writes the trimmed values back into the body and publishes the typed
// input for the handler.
func (uv *UserValidator) ValidateUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body := GetBody(c)

		input, err := validation.ValidateUserBody(body)
		if err != nil {
			GetLogger(c).Debug().
				Str("reason", err.Error()).
				Msg("user payload rejected")
			return err
		}

		body["name"] = input.Name
		body["email"] = input.Email
		c.Set(BodyKey, body)
		c.Set(UserInputKey, input)

		return next(c)
	}
}

// GetUserInput returns the input published by ValidateUser.
func GetUserInput(c echo.Context) (*model.UserInput, bool) {
	input, ok := c.Get(UserInputKey).(*model.UserInput)
	return input, ok && input != nil
}
