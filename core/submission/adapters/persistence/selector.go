package persistence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"contactform/core/submission/domain"
	"contactform/modules/clock"
)

var _ domain.StoreSelector = (*Selector)(nil)

const (
	defaultPingInterval = 2 * time.Second
	defaultPingTimeout  = 1 * time.Second
)

// Selector routes each request to the durable store while it answers pings
// and to the fallback otherwise. Nothing is copied between the two when
// connectivity changes.
type Selector struct {
	durable  domain.Store
	fallback domain.Store
	clock    clock.Clock

	interval time.Duration
	timeout  time.Duration

	mu        sync.Mutex
	checkedAt time.Time
	connected bool
	// closed when the ping in flight finishes, nil while none runs
	pinging chan struct{}
}

type SelectorOption func(*Selector)

// WithPingInterval caches the outcome of a durable ping for d. Zero pings
// on every request.
func WithPingInterval(d time.Duration) SelectorOption {
	return func(s *Selector) {
		if d >= 0 {
			s.interval = d
		}
	}
}

func WithPingTimeout(d time.Duration) SelectorOption {
	return func(s *Selector) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithClock(c clock.Clock) SelectorOption {
	return func(s *Selector) {
		if c != nil {
			s.clock = c
		}
	}
}

// NewSelector builds a selector. durable may be nil when no durable backend
// is configured.
func NewSelector(durable, fallback domain.Store, opts ...SelectorOption) *Selector {
	s := &Selector{
		durable:  durable,
		fallback: fallback,
		clock:    clock.RealClockProvider(),
		interval: defaultPingInterval,
		timeout:  defaultPingTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Selector) Select(ctx context.Context) domain.Store {
	if s.DurableConnected(ctx) {
		return s.durable
	}
	return s.fallback
}

func (s *Selector) DurableConnected(ctx context.Context) bool {
	if s.durable == nil {
		return false
	}

	s.mu.Lock()
	now := s.clock.Now()
	known := !s.checkedAt.IsZero()
	if known && now.Sub(s.checkedAt) < s.interval {
		connected := s.connected
		s.mu.Unlock()
		return connected
	}
	if wait := s.pinging; wait != nil {
		// another request is pinging: serve the last outcome, or wait for
		// the first one
		connected := s.connected
		s.mu.Unlock()
		if known {
			return connected
		}
		select {
		case <-wait:
		case <-ctx.Done():
			return false
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.connected
	}
	done := make(chan struct{})
	s.pinging = done
	previous := s.connected
	s.mu.Unlock()

	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	err := s.durable.Ping(pingCtx)
	cancel()
	connected := err == nil

	s.mu.Lock()
	s.connected = connected
	s.checkedAt = now
	s.pinging = nil
	s.mu.Unlock()
	close(done)

	if connected != previous || !known {
		if connected {
			slog.InfoContext(ctx, "durable storage reachable", slog.String("source", s.durable.Source()))
		} else {
			slog.WarnContext(ctx, "durable storage unreachable, using fallback",
				slog.String("source", s.durable.Source()),
				slog.String("fallback", s.fallback.Source()),
				slog.Any("error", err),
			)
		}
	}
	return connected
}
