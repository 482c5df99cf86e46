package domain

import (
	"context"
	"time"
)

type Health struct {
	Timestamp          time.Time
	DurableConnected   bool
	Source             string
	EmailNotifications bool
}

func (app *Application) Health(ctx context.Context) Health {
	return Health{
		Timestamp:          app.clock.Now(),
		DurableConnected:   app.stores.DurableConnected(ctx),
		Source:             app.stores.Select(ctx).Source(),
		EmailNotifications: app.notifier != nil && app.notifier.Enabled(),
	}
}
