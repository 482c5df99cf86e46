package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToInternal(t *testing.T) {
	p := New()
	assert.Equal(t, http.StatusInternalServerError, p.Status)
	assert.Equal(t, "Internal Server Error", p.Title)
	require.NotNil(t, p.Type)
	assert.Equal(t, "about:blank", *p.Type)
}

func TestWithStatusSetsTitle(t *testing.T) {
	p := New(WithStatus(http.StatusNotFound), WithDetail("missing"), WithInstance("/api/submissions/7"))
	assert.Equal(t, http.StatusNotFound, p.Status)
	assert.Equal(t, "Not Found", p.Title)
	assert.Equal(t, "missing", *p.Detail)
	require.NotNil(t, p.Instance)
	assert.Equal(t, "/api/submissions/7", *p.Instance)
}

func TestMarshalMergesExtensions(t *testing.T) {
	p := New(WithStatus(http.StatusBadRequest), WithDetail("bad"),
		WithExtension("success", false),
		WithExtension("error", "bad"),
		WithExtension("status", "ignored"),
	)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "bad", got["error"])
	assert.Equal(t, float64(http.StatusBadRequest), got["status"])
	assert.Equal(t, "Bad Request", got["title"])
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"detail":"server error"`)
}
