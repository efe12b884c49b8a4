package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/user-api/internal/config"
	"github.com/deppfellow/user-api/internal/errs"
	"github.com/deppfellow/user-api/internal/logger"
	"github.com/deppfellow/user-api/internal/model"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/deppfellow/user-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	s, err := server.New(config.DefaultConfig(), logger.Nop())
	require.NoError(t, err)
	return s
}

func newContext(method, target, contentType, body string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}

	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        map[string]any
	}{
		{name: "object", contentType: echo.MIMEApplicationJSON, body: `{"name":"Bob"}`, want: map[string]any{"name": "Bob"}},
		{name: "charset parameter", contentType: echo.MIMEApplicationJSONCharsetUTF8, body: `{"a":1}`, want: map[string]any{"a": float64(1)}},
		{name: "array", contentType: echo.MIMEApplicationJSON, body: `[1,2]`, want: map[string]any{}},
		{name: "string", contentType: echo.MIMEApplicationJSON, body: `"hi"`, want: map[string]any{}},
		{name: "empty", contentType: echo.MIMEApplicationJSON, body: "", want: map[string]any{}},
		{name: "not json", contentType: echo.MIMETextPlain, body: `{"name":"Bob"}`, want: map[string]any{}},
		{name: "no content type", body: `{"name":"Bob"}`, want: map[string]any{}},
	}

	bp := NewBodyParser(newTestServer(t))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, "/users", tt.contentType, tt.body)

			var got map[string]any
			err := bp.ParseJSON()(func(c echo.Context) error {
				got = GetBody(c)
				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJSON_RestoresBody(t *testing.T) {
	bp := NewBodyParser(newTestServer(t))
	c, _ := newContext(http.MethodPost, "/users", echo.MIMEApplicationJSON, `{"name":"Bob"}`)

	err := bp.ParseJSON()(func(c echo.Context) error {
		raw, err := io.ReadAll(c.Request().Body)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Bob"}`, string(raw))
		return nil
	})(c)
	require.NoError(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	bp := NewBodyParser(newTestServer(t))
	c, _ := newContext(http.MethodPost, "/users", echo.MIMEApplicationJSON, `{"name":`)

	called := false
	err := bp.ParseJSON()(func(c echo.Context) error {
		called = true
		return nil
	})(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.True(t, errs.IsKind(err, errs.KindMalformedBody))
}

func TestParseJSON_TooLarge(t *testing.T) {
	bp := NewBodyParser(newTestServer(t))
	body := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	c, _ := newContext(http.MethodPost, "/users", echo.MIMEApplicationJSON, body)

	err := bp.ParseJSON()(func(c echo.Context) error { return nil })(c)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Status)
}

func TestValidateUser(t *testing.T) {
	uv := NewUserValidator(newTestServer(t))

	t.Run("publishes trimmed input", func(t *testing.T) {
		c, _ := newContext(http.MethodPost, "/users", "", "")
		c.Set(BodyKey, map[string]any{"name": " Bob ", "email": " bob@example.com "})

		var got *model.UserInput
		err := uv.ValidateUser(func(c echo.Context) error {
			var ok bool
			got, ok = GetUserInput(c)
			require.True(t, ok)
			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, &model.UserInput{Name: "Bob", Email: "bob@example.com"}, got)
		assert.Equal(t, "Bob", GetBody(c)["name"])
		assert.Equal(t, "bob@example.com", GetBody(c)["email"])
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		c, _ := newContext(http.MethodPost, "/users", "", "")
		c.Set(BodyKey, map[string]any{"name": "Bob", "email": "nope"})

		err := uv.ValidateUser(func(c echo.Context) error {
			t.Fatal("next must not run")
			return nil
		})(c)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, errs.KindValidationFailed, httpErr.Kind)
		assert.Equal(t, validation.MsgEmailInvalid, httpErr.Message)

		_, ok := GetUserInput(c)
		assert.False(t, ok)
	})

	t.Run("missing body counts as empty", func(t *testing.T) {
		c, _ := newContext(http.MethodPost, "/users", "", "")

		err := uv.ValidateUser(func(c echo.Context) error { return nil })(c)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, validation.MsgNameRequired, httpErr.Message)
	})
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer(t))

	tests := []struct {
		name   string
		method string
		target string
		err    error
		status int
		body   string
	}{
		{
			name:   "api error",
			method: http.MethodGet,
			target: "/users/7",
			err:    errs.NewUserNotFoundError(7),
			status: http.StatusNotFound,
			body:   `{"error":"Not found","message":"User with ID 7 not found"}`,
		},
		{
			name:   "wrapped api error",
			method: http.MethodGet,
			target: "/users/abc",
			err:    errors.Wrap(errs.NewInvalidIDError(), "get user"),
			status: http.StatusBadRequest,
			body:   `{"error":"Invalid ID","message":"User ID must be a valid number"}`,
		},
		{
			name:   "unmatched route",
			method: http.MethodGet,
			target: "/nope?x=1",
			err:    echo.ErrNotFound,
			status: http.StatusNotFound,
			body:   `{"error":"Not found","message":"Cannot GET /nope?x=1"}`,
		},
		{
			name:   "method not allowed",
			method: http.MethodPatch,
			target: "/users",
			err:    echo.ErrMethodNotAllowed,
			status: http.StatusNotFound,
			body:   `{"error":"Not found","message":"Cannot PATCH /users"}`,
		},
		{
			name:   "plain error",
			method: http.MethodGet,
			target: "/users",
			err:    errors.New("store exploded"),
			status: http.StatusInternalServerError,
			body:   `{"error":"Internal server error","message":"store exploded"}`,
		},
		{
			name:   "other echo error",
			method: http.MethodPost,
			target: "/users",
			err:    echo.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported"),
			status: http.StatusUnsupportedMediaType,
			body:   `{"error":"Unsupported Media Type","message":"unsupported"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(tt.method, tt.target, "", "")

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestGlobalErrorHandler_Head(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer(t))
	c, rec := newContext(http.MethodHead, "/users/9", "", "")

	global.GlobalErrorHandler(errs.NewUserNotFoundError(9), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGlobalErrorHandler_Committed(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer(t))
	c, rec := newContext(http.MethodGet, "/users", "", "")
	require.NoError(t, c.String(http.StatusOK, "partial"))

	global.GlobalErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestLogRequest(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultObservabilityConfig()
	s, err := server.New(config.DefaultConfig(), logger.NewWithWriter(cfg, &buf))
	require.NoError(t, err)

	c, _ := newContext(http.MethodDelete, "/users/3?force=1", "", "")
	h := NewContextEnhancer(s).EnhanceContext()(LogRequest()(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}))

	require.NoError(t, h(c))
	assert.Contains(t, buf.String(), `"message":"DELETE /users/3?force=1"`)
	assert.Contains(t, buf.String(), `"url":"/users/3?force=1"`)
}

func TestRequestID(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/", "", "")

	err := RequestID()(func(c echo.Context) error {
		assert.NotEmpty(t, GetRequestID(c))
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, GetRequestID(c), rec.Header().Get(RequestIDHeader))
}

func TestRateLimitDisabled(t *testing.T) {
	rl := NewRateLimitMiddleware(newTestServer(t))
	h := rl.Limit()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for i := 0; i < 100; i++ {
		c, rec := newContext(http.MethodGet, "/", "", "")
		require.NoError(t, h(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
