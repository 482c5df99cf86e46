package domain

import "context"

// Store persists submissions. Implementations assign identifiers, which are
// opaque to callers and unique for the lifetime of the backend.
type Store interface {
	// Source names the backend, reported to clients listing submissions.
	Source() string

	// Ping reports whether the backend can serve requests right now.
	Ping(ctx context.Context) error

	// Create stores s and returns it with its assigned ID.
	Create(ctx context.Context, s Submission) (*Submission, error)

	// List returns every submission, newest first.
	List(ctx context.Context) ([]Submission, error)

	// Get returns ErrSubmissionNotFound for unknown or malformed ids.
	Get(ctx context.Context, id string) (*Submission, error)

	// UpdateStatus returns ErrSubmissionNotFound for unknown or malformed ids.
	UpdateStatus(ctx context.Context, id string, status Status) (*Submission, error)

	// Delete removes the submission and returns it as it was stored.
	Delete(ctx context.Context, id string) (*Submission, error)
}

// StoreSelector decides, per request, which Store serves it.
type StoreSelector interface {
	Select(ctx context.Context) Store

	// DurableConnected reports whether the durable backend is configured and
	// reachable.
	DurableConnected(ctx context.Context) bool
}

// Notifier delivers best-effort notifications for new submissions. Notify
// must not block on delivery and never reports failures to the caller.
type Notifier interface {
	Notify(ctx context.Context, s Submission)
	Enabled() bool
}
