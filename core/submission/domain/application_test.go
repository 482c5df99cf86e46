package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactform/core/submission/adapters/persistence/memory"
	"contactform/core/submission/domain"
	"contactform/modules/clock"
)

type fixedSelector struct {
	store     domain.Store
	connected bool
}

func (f fixedSelector) Select(context.Context) domain.Store   { return f.store }
func (f fixedSelector) DurableConnected(context.Context) bool { return f.connected }

type recordingNotifier struct {
	enabled bool
	got     []domain.Submission
}

func (n *recordingNotifier) Notify(_ context.Context, s domain.Submission) { n.got = append(n.got, s) }
func (n *recordingNotifier) Enabled() bool                                 { return n.enabled }

type brokenStore struct{ *memory.Store }

var errBroken = errors.New("connection reset")

func (brokenStore) Source() string { return "Broken" }
func (brokenStore) Create(context.Context, domain.Submission) (*domain.Submission, error) {
	return nil, errBroken
}
func (brokenStore) List(context.Context) ([]domain.Submission, error) { return nil, errBroken }

var now = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newApp(t *testing.T) (*domain.Application, *recordingNotifier) {
	t.Helper()
	clk := clock.Func(func() time.Time { return now })
	n := &recordingNotifier{enabled: true}
	return domain.NewApp(fixedSelector{store: memory.New(clk), connected: true}, n, clk), n
}

func TestCreateSubmission(t *testing.T) {
	app, n := newApp(t)
	ctx := context.Background()

	created, err := app.CreateSubmission(ctx, domain.SubmissionInput{
		Name:    "  Ada ",
		Email:   "ada@example.com",
		Subject: "Catering",
		Message: "Do you cater weddings?",
	})
	require.NoError(t, err)

	want := domain.Submission{
		ID:        "1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Subject:   "Catering",
		Message:   "Do you cater weddings?",
		Status:    domain.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if diff := cmp.Diff(want, *created); diff != "" {
		t.Fatalf("created mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, n.got, 1)
	assert.Equal(t, want, n.got[0])

	got, err := app.GetSubmission(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestCreateSubmissionInvalidSkipsNotify(t *testing.T) {
	app, n := newApp(t)

	_, err := app.CreateSubmission(context.Background(), domain.SubmissionInput{Name: "Ada"})
	assert.ErrorIs(t, err, domain.ErrInvalidData)
	assert.Empty(t, n.got)

	_, list, err := app.ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateSubmissionStoreFailure(t *testing.T) {
	n := &recordingNotifier{}
	app := domain.NewApp(fixedSelector{store: brokenStore{memory.New(nil)}}, n, nil)

	_, err := app.CreateSubmission(context.Background(), domain.SubmissionInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Catering",
		Message: "Do you cater weddings?",
	})
	assert.ErrorIs(t, err, domain.ErrUnhandled)
	assert.NotErrorIs(t, err, errBroken)
	assert.Empty(t, n.got)

	source, _, err := app.ListSubmissions(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnhandled)
	assert.Equal(t, "Broken", source)
}

func TestUpdateAndDeleteSubmission(t *testing.T) {
	app, _ := newApp(t)
	ctx := context.Background()

	created, err := app.CreateSubmission(ctx, domain.SubmissionInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Catering",
		Message: "Do you cater weddings?",
	})
	require.NoError(t, err)

	_, err = app.UpdateSubmissionStatus(ctx, created.ID, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidData)

	_, err = app.UpdateSubmissionStatus(ctx, "999", "read")
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)

	updated, err := app.UpdateSubmissionStatus(ctx, created.ID, "read")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRead, updated.Status)

	again, err := app.UpdateSubmissionStatus(ctx, created.ID, "read")
	require.NoError(t, err)
	assert.Equal(t, *updated, *again)

	deleted, err := app.DeleteSubmission(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRead, deleted.Status)

	_, err = app.GetSubmission(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
	_, err = app.DeleteSubmission(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
}

func TestHealth(t *testing.T) {
	app, _ := newApp(t)

	h := app.Health(context.Background())
	assert.Equal(t, now, h.Timestamp)
	assert.True(t, h.DurableConnected)
	assert.Equal(t, "Memory", h.Source)
	assert.True(t, h.EmailNotifications)

	noNotifier := domain.NewApp(fixedSelector{store: memory.New(nil)}, nil, nil)
	assert.False(t, noNotifier.Health(context.Background()).EmailNotifications)
}

func TestSubmissionVersionTracksUpdatedAt(t *testing.T) {
	a := domain.Submission{UpdatedAt: now}
	b := domain.Submission{UpdatedAt: now.Add(time.Nanosecond)}
	assert.NotEqual(t, a.V(), b.V())
	assert.Equal(t, a.V(), (&domain.Submission{UpdatedAt: now}).V())
}
