package serde

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtrDeref(t *testing.T) {
	p := Ptr("hello")
	require.NotNil(t, p)
	assert.Equal(t, "hello", *p)
	assert.Equal(t, "hello", Deref(p))

	var nilStr *string
	assert.Equal(t, "", Deref(nilStr))
	var nilInt *int
	assert.Equal(t, 0, Deref(nilInt))
}

func TestLimitBody(t *testing.T) {
	var readErr error
	var read int
	h := LimitBody(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		read, readErr = len(b), err
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("12345678")))
	assert.NoError(t, readErr)
	assert.Equal(t, 8, read)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123456789")))
	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
