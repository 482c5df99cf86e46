package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"contactform/core/submission/domain"
	"contactform/modules/mail"
	"contactform/worker"
)

var _ domain.Notifier = (*EmailNotifier)(nil)

type kind string

const (
	kindAdmin kind = "admin_notification"
	kindUser  kind = "user_confirmation"
)

type job struct {
	kind kind
	msg  mail.Message
}

// EmailNotifier sends the admin notification and the submitter confirmation
// in the background. Failures are logged and dropped.
type EmailNotifier struct {
	cfg    mail.Config
	sender mail.Sender

	wg sync.WaitGroup
}

func NewEmailNotifier(cfg mail.Config, sender mail.Sender) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, sender: sender}
}

func (n *EmailNotifier) Enabled() bool {
	return n.cfg.Enabled
}

// Notify returns immediately. Delivery runs detached from ctx cancellation,
// so a client hanging up does not abort it.
func (n *EmailNotifier) Notify(ctx context.Context, s domain.Submission) {
	if !n.cfg.Enabled {
		slog.DebugContext(ctx, "email notifications disabled")
		return
	}
	if !n.cfg.HasCredentials() {
		slog.ErrorContext(ctx, "email credentials not configured")
		return
	}

	jobs := n.buildJobs(ctx, s)
	if len(jobs) == 0 {
		return
	}

	queue := make(chan job, len(jobs))
	for _, j := range jobs {
		queue <- j
	}
	close(queue)

	detached := context.WithoutCancel(ctx)
	n.wg.Go(func() {
		timeout := n.cfg.SendTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		sendCtx, cancel := context.WithTimeout(detached, timeout)
		defer cancel()

		worker.BlockingPool(sendCtx, len(jobs), queue, n.send)
	})
}

func (n *EmailNotifier) buildJobs(ctx context.Context, s domain.Submission) []job {
	var jobs []job

	adminHTML, err := renderAdmin(s)
	if err != nil {
		slog.ErrorContext(ctx, "render admin email", slog.Any("error", err))
	} else {
		jobs = append(jobs, job{kind: kindAdmin, msg: mail.Message{
			From:    n.cfg.User,
			To:      n.cfg.AdminRecipient(),
			Subject: "New Contact Form Submission: " + s.Subject,
			HTML:    adminHTML,
		}})
	}

	userHTML, err := renderUser(s, n.cfg.Brand)
	if err != nil {
		slog.ErrorContext(ctx, "render user email", slog.Any("error", err))
	} else {
		jobs = append(jobs, job{kind: kindUser, msg: mail.Message{
			From:    n.cfg.User,
			To:      s.Email,
			Subject: "We received your message - " + n.cfg.Brand,
			HTML:    userHTML,
		}})
	}
	return jobs
}

func (n *EmailNotifier) send(ctx context.Context, j job) {
	if err := n.sender.Send(ctx, j.msg); err != nil {
		slog.ErrorContext(ctx, "error sending email",
			slog.String("kind", string(j.kind)),
			slog.String("to", j.msg.To),
			slog.Any("error", err),
		)
		return
	}
	slog.InfoContext(ctx, "email sent", slog.String("kind", string(j.kind)), slog.String("to", j.msg.To))
}

// Wait blocks until in-flight deliveries finish or ctx is done.
func (n *EmailNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
