// Package contact forwards contact form submissions to the email relay.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned before any request is made when a relay
// credential is missing.
var ErrNotConfigured = errors.New("email relay is not configured")

// RemoteError is a non-2xx answer from the relay.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("email relay returned %d", e.StatusCode)
	}
	return fmt.Sprintf("email relay returned %d: %s", e.StatusCode, e.Body)
}

// RelayConfig identifies the relay account and recipient.
type RelayConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	ToEmail    string
}

// Configured reports whether every credential is present.
func (c RelayConfig) Configured() bool {
	for _, v := range []string{c.Endpoint, c.ServiceID, c.TemplateID, c.PublicKey, c.ToEmail} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Form is the contact form. Fields bind from POSTed form values.
type Form struct {
	Name    string `form:"name"    json:"name"    binding:"required,max=200"`
	Email   string `form:"email"   json:"email"   binding:"required,email"`
	Subject string `form:"subject" json:"subject" binding:"required,max=200"`
	Message string `form:"message" json:"message" binding:"required,max=5000"`
}

// Reset clears every field.
func (f *Form) Reset() { *f = Form{} }

type templateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	ToEmail   string `json:"to_email"`
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

// Client posts submissions to the relay. Failed sends are not retried.
type Client struct {
	cfg    RelayConfig
	http   *http.Client
	logger *zap.Logger
}

// NewClient returns a relay client. A zero timeout means no client timeout.
func NewClient(cfg RelayConfig, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger.Named("contact"),
	}
}

// Send delivers the form through the relay.
func (c *Client) Send(ctx context.Context, f Form) error {
	if !c.cfg.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.PublicKey,
		TemplateParams: templateParams{
			FromName:  f.Name,
			FromEmail: f.Email,
			Subject:   f.Subject,
			Message:   f.Message,
			ToEmail:   c.cfg.ToEmail,
		},
	})
	if err != nil {
		return fmt.Errorf("encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RemoteError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Info("contact message relayed", zap.String("from", f.Email))
	return nil
}
