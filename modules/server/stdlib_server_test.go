package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	trace *[]string
}

func (s stubService) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		*s.trace = append(*s.trace, "handler")
		_, _ = w.Write([]byte("pong"))
	})
}

func (s stubService) Middlewares() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{tracing(s.trace, "service")}
}

func tracing(trace *[]string, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestNewRejectsBadPort(t *testing.T) {
	_, err := New("127.0.0.1", 0)
	assert.Error(t, err)

	_, err = New("127.0.0.1", 70000)
	assert.Error(t, err)
}

func TestMiddlewareOrder(t *testing.T) {
	var trace []string
	s, err := New("127.0.0.1", 3000,
		WithServices(stubService{trace: &trace}),
		WithGlobalMiddlewares(tracing(&trace, "global")),
	)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3000", s.Addr())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "pong", rec.Body.String())
	assert.Equal(t, []string{"global", "service", "handler"}, trace)
}

func TestRunStopsOnCancel(t *testing.T) {
	s, err := New("127.0.0.1", 38123, WithShutdownTimeout(time.Second))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
