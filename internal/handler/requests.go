package handler

import (
	"net/url"

	"github.com/deppfellow/user-api/internal/errs"
	"github.com/deppfellow/user-api/internal/validation"
)

// EmptyRequest is used by routes without path parameters.
type EmptyRequest struct{}

func newEmptyRequest() *EmptyRequest {
	return &EmptyRequest{}
}

// Validate implements validation.Validatable.
func (r *EmptyRequest) Validate() error {
	return nil
}

// UserIDRequest carries the :id path segment of /users/:id.
type UserIDRequest struct {
	RawID string `param:"id"`

	// ID is set by Validate.
	ID int
}

func newUserIDRequest() *UserIDRequest {
	return &UserIDRequest{}
}

// Validate decodes and parses RawID, failing with InvalidID when it is
// not a number. Echo hands over the segment still percent-encoded when
// the request path carries escapes.
func (r *UserIDRequest) Validate() error {
	raw, err := url.PathUnescape(r.RawID)
	if err != nil {
		return errs.NewInvalidIDError()
	}

	id, err := validation.ParseID(raw)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}
