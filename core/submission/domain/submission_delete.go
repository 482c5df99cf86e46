package domain

import (
	"context"
	"errors"
	"log/slog"
)

func (app *Application) DeleteSubmission(ctx context.Context, id string) (*Submission, error) {
	store := app.stores.Select(ctx)
	deleted, err := store.Delete(ctx, id)
	if err == nil {
		slog.InfoContext(ctx, "submission deleted", slog.String("source", store.Source()), slog.String("id", id))
		return deleted, nil
	}
	if errors.Is(err, ErrSubmissionNotFound) {
		return nil, ErrSubmissionNotFound
	}
	slog.ErrorContext(ctx, "unexpected error", slog.String("source", store.Source()), slog.Any("error", err))
	return nil, ErrUnhandled
}
