package domain

import (
	"context"
	"errors"
	"log/slog"
)

func (app *Application) GetSubmission(ctx context.Context, id string) (*Submission, error) {
	store := app.stores.Select(ctx)
	s, err := store.Get(ctx, id)
	if err == nil {
		return s, nil
	}
	if errors.Is(err, ErrSubmissionNotFound) {
		return nil, ErrSubmissionNotFound
	}
	slog.ErrorContext(ctx, "unexpected error", slog.String("source", store.Source()), slog.Any("error", err))
	return nil, ErrUnhandled
}

// ListSubmissions returns every submission, newest first, together with the
// name of the backend that served them.
func (app *Application) ListSubmissions(ctx context.Context) (string, []Submission, error) {
	store := app.stores.Select(ctx)
	list, err := store.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "unexpected error", slog.String("source", store.Source()), slog.Any("error", err))
		return store.Source(), nil, ErrUnhandled
	}
	return store.Source(), list, nil
}
