// Package sms implements the outbound SMS gateway used for phone
// verification codes.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tesotunes/config"
	"tesotunes/internal/domain/service"
	"tesotunes/internal/errors"

	"go.uber.org/fx"
)

const defaultGatewayTimeout = 10 * time.Second

// gatewayClient implements the service.SMSService interface against an
// HTTP SMS gateway of the kind Ugandan aggregators expose: a JSON POST
// with an API key header.
type gatewayClient struct {
	httpClient *http.Client
	gatewayURL string
	apiKey     string
	senderID   string
	logger     *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGatewayClient is the constructor for gatewayClient. When no
// gateway URL is configured it falls back to a log-only sender, which
// keeps local development working without an aggregator account.
func NewGatewayClient(params Params) service.SMSService {
	cfg := params.Config.SMS
	if cfg == nil || cfg.GatewayURL == "" {
		return NewLogSender(params.Logger)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}

	return &gatewayClient{
		httpClient: &http.Client{Timeout: timeout},
		gatewayURL: cfg.GatewayURL,
		apiKey:     cfg.APIKey,
		senderID:   cfg.SenderID,
		logger:     params.Logger,
	}
}

type sendRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id,omitempty"`
}

// SendVerificationCode dispatches the code to the phone number.
func (c *gatewayClient) SendVerificationCode(ctx context.Context, phone, code string) error {
	payload, err := json.Marshal(sendRequest{
		To:       phone,
		Message:  fmt.Sprintf("Your TesoTunes verification code is %s", code),
		SenderID: c.senderID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode sms request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build sms request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call sms gateway")
	}
	defer func() {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	return nil
}
