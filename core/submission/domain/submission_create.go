package domain

import (
	"context"
	"errors"
	"log/slog"
)

// CreateSubmission validates and stores a form entry, then hands it to the
// notifier. Notification outcome never affects the result.
func (app *Application) CreateSubmission(ctx context.Context, in SubmissionInput) (*Submission, error) {
	clean, err := ValidateSubmission(in)
	if err != nil {
		slog.DebugContext(ctx, "invalid submission", slog.Any("error", err))
		return nil, err
	}

	now := app.clock.Now()
	store := app.stores.Select(ctx)
	created, err := store.Create(ctx, Submission{
		Name:      clean.Name,
		Email:     clean.Email,
		Subject:   clean.Subject,
		Message:   clean.Message,
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidData) {
			return nil, err
		}
		slog.ErrorContext(ctx, "unexpected error", slog.String("source", store.Source()), slog.Any("error", err))
		return nil, ErrUnhandled
	}
	slog.InfoContext(ctx, "submission saved",
		slog.String("source", store.Source()),
		slog.String("id", created.ID),
	)

	if app.notifier != nil {
		app.notifier.Notify(ctx, *created)
	}
	return created, nil
}
