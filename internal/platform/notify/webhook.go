package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

type WebhookSinkConfig struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
	Service  string
	Env      string
}

// WebhookSink posts alerts to an ops webhook as JSON.
type WebhookSink struct {
	client   *http.Client
	endpoint string
	token    string
	service  string
	env      string
}

func NewWebhookSink(cfg WebhookSinkConfig) (*WebhookSink, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, crerr.New("webhook endpoint cannot be empty")
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &WebhookSink{
		client: &http.Client{
			Timeout: timeout,
		},
		endpoint: endpoint,
		token:    strings.TrimSpace(cfg.Token),
		service:  strings.TrimSpace(cfg.Service),
		env:      strings.TrimSpace(cfg.Env),
	}, nil
}

type webhookPayload struct {
	Message string `json:"message"`
	Service string `json:"service,omitempty"`
	Env     string `json:"env,omitempty"`
	SentAt  string `json:"sentAt"`
}

func (s *WebhookSink) Deliver(ctx context.Context, message string) error {
	body, err := sonic.Marshal(webhookPayload{
		Message: message,
		Service: s.service,
		Env:     s.env,
		SentAt:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return crerr.Wrap(err, "marshal alert payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post alert webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("post alert webhook status=%d", resp.StatusCode)
	}
	return nil
}
