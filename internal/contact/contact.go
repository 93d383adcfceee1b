// Package contact submits the portfolio contact form through an
// EmailJS-compatible relay.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/logging"
)

// Banner texts shown to the user.
const (
	MsgSent          = "Message sent successfully!"
	MsgFailed        = "Something went wrong. Please try again."
	MsgNotConfigured = "Failed to send message. Please check Your Connection And Try Again."
)

var (
	// ErrNotConfigured means a relay secret is missing. No request is made.
	ErrNotConfigured = errors.New("contact: relay not configured")

	// ErrInvalidForm wraps form validation failures.
	ErrInvalidForm = errors.New("contact: invalid form")

	// ErrRejected means the relay answered with a non-200 status.
	ErrRejected = errors.New("contact: relay rejected message")
)

// Form holds the contact fields. Company is optional.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// Validate checks the required fields and the email address.
func (f Form) Validate() error {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidForm)
	case strings.TrimSpace(f.Email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidForm)
	case strings.TrimSpace(f.Message) == "":
		return fmt.Errorf("%w: message is required", ErrInvalidForm)
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return fmt.Errorf("%w: email: %v", ErrInvalidForm, err)
	}
	return nil
}

// Banner maps a Submit result to the text shown to the user.
func Banner(err error) string {
	switch {
	case err == nil:
		return MsgSent
	case errors.Is(err, ErrNotConfigured):
		return MsgNotConfigured
	default:
		return MsgFailed
	}
}

// Client sends forms to the relay.
type Client struct {
	cfg    config.ContactConfig
	http   *http.Client
	logger *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the client's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the given relay config.
func New(cfg config.ContactConfig, opts ...Option) *Client {
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	return c
}

// Configured reports whether all three relay secrets are present.
func (c *Client) Configured() bool {
	return c.cfg.ServiceID != "" && c.cfg.TemplateID != "" && c.cfg.PublicKey != ""
}

type sendRequest struct {
	ServiceID      string `json:"service_id"`
	TemplateID     string `json:"template_id"`
	UserID         string `json:"user_id"`
	TemplateParams Form   `json:"template_params"`
}

// Submit validates and sends the form. A missing secret fails with
// ErrNotConfigured before any network call. There is no retry.
func (c *Client) Submit(ctx context.Context, f Form) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if err := f.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: f,
	})
	if err != nil {
		return fmt.Errorf("contact: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contact: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("contact relay unreachable", "error", err)
		return fmt.Errorf("contact: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("contact relay rejected message", "status", resp.StatusCode, "body", string(detail))
		return fmt.Errorf("%w: %s", ErrRejected, resp.Status)
	}

	c.logger.Info("contact message sent", "from", f.Email)
	return nil
}
