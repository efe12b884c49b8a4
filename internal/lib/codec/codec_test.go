package codec

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/user-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{"object", `{"name":"Bob","age":3}`, map[string]any{"name": "Bob", "age": float64(3)}},
		{"empty", "", map[string]any{}},
		{"whitespace", " \n\t", map[string]any{}},
		{"array", `[{"name":"Bob"}]`, map[string]any{}},
		{"null", `null`, map[string]any{}},
		{"number", `42`, map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeObject([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeObject_Malformed(t *testing.T) {
	for _, raw := range []string{`{"name":`, `{name:"Bob"}`, `{"a":}`} {
		_, err := DecodeObject([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestSerializer(t *testing.T) {
	e := echo.New()

	t.Run("serialize", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, Serializer{}.Serialize(c, map[string]any{"id": 1, "name": "Bob"}, ""))
		assert.JSONEq(t, `{"id":1,"name":"Bob"}`, rec.Body.String())
	})

	t.Run("deserialize", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Bob"}`))
		c := e.NewContext(req, httptest.NewRecorder())

		var out struct {
			Name string `json:"name"`
		}
		require.NoError(t, Serializer{}.Deserialize(c, &out))
		assert.Equal(t, "Bob", out.Name)
	})

	t.Run("deserialize malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		c := e.NewContext(req, httptest.NewRecorder())

		var out map[string]any
		err := Serializer{}.Deserialize(c, &out)
		assert.True(t, errs.IsKind(err, errs.KindMalformedBody))
	})
}
