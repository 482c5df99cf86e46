package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryCallsHandler(t *testing.T) {
	var got any
	h := Recovery(func(w http.ResponseWriter, r *http.Request, recovered any) {
		got = recovered
		w.WriteHeader(http.StatusInternalServerError)
	})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", got)
}

func TestRecoveryRethrowsAbort(t *testing.T) {
	h := Recovery(func(http.ResponseWriter, *http.Request, any) {
		t.Fatal("handler must not run for ErrAbortHandler")
	})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestTelemetryWithoutMetricsPassesThrough(t *testing.T) {
	h := Telemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseRecorderCapturesStatusAndSize(t *testing.T) {
	rr := newResponseRecorder(httptest.NewRecorder())
	_, _ = rr.Write([]byte("hello"))
	rr.WriteHeader(http.StatusNotFound)

	assert.Equal(t, http.StatusOK, rr.statusCode)
	assert.EqualValues(t, 5, rr.bytesWritten)
}
