package rest

import (
	"context"

	api "contactform/modules/api/contactapi/stdlib"
)

// Health always answers 200. A disconnected database is reported, not
// treated as a failure, because submissions fall back to memory.
func (a *SubmissionAPI) Health(ctx context.Context, _ api.HealthRequestObject) (api.HealthResponseObject, error) {
	h := a.app.Health(ctx)

	resp := api.Health{
		Status:             "Server is running",
		Timestamp:          h.Timestamp,
		Database:           "Disconnected",
		Storage:            h.Source,
		EmailNotifications: "Disabled",
	}
	if h.DurableConnected {
		resp.Database = "Connected"
	}
	if h.EmailNotifications {
		resp.EmailNotifications = "Enabled"
	}
	return api.Health200JSONResponse(resp), nil
}
