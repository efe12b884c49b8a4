package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/deppfellow/user-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with `param:"..."` binding tags
//   - Implement Validate() error, returning an *errs.HTTPError or
//     validator.ValidationErrors
type Validatable interface {
	Validate() error
}

// notSpace matches one character that is neither '@' nor whitespace, using
// the broad whitespace set (\v, Unicode space separators, line/paragraph
// separators and the BOM included).
const notSpace = `[^@\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

// emailRegex is the basic local@domain.tld shape.
var emailRegex = regexp.MustCompile(`^` + notSpace + `+@` + notSpace + `+\.` + notSpace + `+$`)

// validate is shared by every payload; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	return v
}

// IsValidEmail reports whether s has the basic local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// isSpace mirrors the whitespace set stripped by Trim: Unicode White_Space
// without NEL (U+0085), plus the BOM.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Trim removes surrounding whitespace, the BOM included.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// ParseID parses a path id token as a base-10 integer.
//
// Leading whitespace and an optional sign are accepted, then the longest
// run of decimal digits is used and anything after it is ignored, so
// "12abc" is 12. A token without leading digits, or whose digits overflow
// int, is rejected with an InvalidID error.
func ParseID(raw string) (int, error) {
	s := strings.TrimLeftFunc(raw, isSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, errs.NewInvalidIDError()
	}

	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, errs.NewInvalidIDError()
	}
	if negative {
		id = -id
	}
	return id, nil
}

// BindAndValidate binds path parameters into payload and validates it.
//
// Flow:
//  1. Bind `param:"..."` fields from the matched route.
//  2. payload.Validate() applies the payload's rules.
//  3. Failures are returned as *errs.HTTPError.
//
// Only path parameters are bound: request bodies are parsed once by the
// body middleware and never read again.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := (&echo.DefaultBinder{}).BindPathParams(c, payload); err != nil {
		return errs.NewInternalServerError(errors.Wrap(err, "bind path params"))
	}

	if err := payload.Validate(); err != nil {
		return toHTTPError(err)
	}

	return nil
}

// toHTTPError converts a Validate() failure into an *errs.HTTPError.
func toHTTPError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return errs.NewValidationError(fe.Field() + ": " + fe.Tag())
	}

	return errs.NewValidationError(err.Error())
}
