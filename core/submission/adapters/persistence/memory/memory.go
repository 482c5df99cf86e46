package memory

import (
	"context"
	"strconv"
	"sync"

	"contactform/core/submission/domain"
	"contactform/modules/clock"
)

var _ domain.Store = (*Store)(nil)

// Store keeps submissions for the lifetime of the process. Identifiers are
// sequential integers and are never handed out twice, even after a delete.
type Store struct {
	mu     sync.RWMutex
	items  []domain.Submission
	lastID int64
	clock  clock.Clock
}

func New(clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.RealClockProvider()
	}
	return &Store{clock: clk}
}

func (m *Store) Source() string { return "Memory" }

func (m *Store) Ping(context.Context) error { return nil }

func (m *Store) Create(_ context.Context, s domain.Submission) (*domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	s.ID = strconv.FormatInt(m.lastID, 10)
	m.items = append(m.items, s)
	return &s, nil
}

// List returns a copy, newest first. Items are appended in creation order,
// so walking backwards is enough.
func (m *Store) List(context.Context) ([]domain.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Submission, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}

func (m *Store) Get(_ context.Context, id string) (*domain.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, domain.ErrSubmissionNotFound
	}
	s := m.items[i]
	return &s, nil
}

func (m *Store) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, domain.ErrSubmissionNotFound
	}
	if m.items[i].Status != status {
		m.items[i].Status = status
		m.items[i].UpdatedAt = m.clock.Now()
	}
	s := m.items[i]
	return &s, nil
}

func (m *Store) Delete(_ context.Context, id string) (*domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, domain.ErrSubmissionNotFound
	}
	s := m.items[i]
	m.items = append(m.items[:i], m.items[i+1:]...)
	return &s, nil
}

// indexOf expects the caller to hold the lock. Ids that are not base-10
// integers can never match.
func (m *Store) indexOf(id string) int {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return -1
	}
	want := strconv.FormatInt(n, 10)
	for i := range m.items {
		if m.items[i].ID == want {
			return i
		}
	}
	return -1
}
