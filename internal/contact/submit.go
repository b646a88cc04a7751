package contact

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Sender delivers a contact form.
type Sender interface {
	Send(ctx context.Context, f Form) error
}

// ToastKind selects the notification style.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

const (
	successMessage = "Message sent successfully! I'll get back to you soon."
	failureMessage = "Failed to send message. Please try again later."
	invalidMessage = "Please fill in every field with a valid email address."
)

// Toast is a transient notification shown after a submission.
type Toast struct {
	Kind    ToastKind
	Message string
}

// Result is the form state to render after a submission.
type Result struct {
	Form  Form
	Toast Toast
}

// Submit sends f and decides what the visitor sees next: a cleared form on
// success, the untouched form on any failure. Errors are logged here and
// never returned.
func Submit(ctx context.Context, s Sender, f Form, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := s.Send(ctx, f); err != nil {
		var remote *RemoteError
		switch {
		case errors.Is(err, ErrNotConfigured):
			logger.Error("contact form relay misconfigured", zap.Error(err))
		case errors.As(err, &remote):
			logger.Warn("contact form relay rejected message", zap.Int("status", remote.StatusCode), zap.Error(err))
		default:
			logger.Warn("contact form relay unreachable", zap.Error(err))
		}
		return Failed(f, failureMessage)
	}
	f.Reset()
	return Result{Form: f, Toast: Toast{Kind: ToastSuccess, Message: successMessage}}
}

// Invalid is the result for a submission that failed validation.
func Invalid(f Form) Result {
	return Failed(f, invalidMessage)
}

// Failed keeps f for resubmission and shows msg.
func Failed(f Form, msg string) Result {
	return Result{Form: f, Toast: Toast{Kind: ToastError, Message: msg}}
}
