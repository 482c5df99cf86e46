package domain

import (
	"strconv"
	"time"

	"contactform/modules/clock"
)

type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusReplied  Status = "replied"
	StatusArchived Status = "archived"
)

// Statuses lists every accepted status in display order.
var Statuses = []Status{StatusNew, StatusRead, StatusReplied, StatusArchived}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type (
	Application struct {
		stores   StoreSelector
		notifier Notifier
		clock    clock.Clock
	}

	// Submission is one stored contact form entry.
	Submission struct {
		ID        string
		Name      string
		Email     string
		Subject   string
		Message   string
		Status    Status
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// SubmissionInput is the raw, untrimmed form payload.
	SubmissionInput struct {
		Name    string
		Email   string
		Subject string
		Message string
	}
)

// V is the entity version used for ETags. Submissions carry no version
// column, so the last modification time stands in for it.
func (s *Submission) V() string {
	return strconv.FormatInt(s.UpdatedAt.UnixNano(), 36)
}
