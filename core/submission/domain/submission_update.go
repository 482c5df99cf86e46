package domain

import (
	"context"
	"errors"
	"log/slog"
)

// UpdateSubmissionStatus sets the status of a submission. Any of the known
// statuses may follow any other, and repeating the current one is a no-op
// that still succeeds.
func (app *Application) UpdateSubmissionStatus(ctx context.Context, id string, rawStatus string) (*Submission, error) {
	status, err := ValidateStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	store := app.stores.Select(ctx)
	updated, err := store.UpdateStatus(ctx, id, status)
	if err == nil {
		return updated, nil
	}
	if errors.Is(err, ErrSubmissionNotFound) {
		return nil, ErrSubmissionNotFound
	}
	if errors.Is(err, ErrInvalidData) {
		return nil, err
	}
	slog.ErrorContext(ctx, "unexpected error", slog.String("source", store.Source()), slog.Any("error", err))
	return nil, ErrUnhandled
}
