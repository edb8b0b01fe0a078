package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/srshearer/slack-announce/pkg/domain"
	"github.com/srshearer/slack-announce/pkg/domain/interfaces"
	"github.com/srshearer/slack-announce/pkg/domain/model"
)

// maxResponseBody bounds how much of a webhook response is kept for reporting
const maxResponseBody = 64 * 1024

type slackSender struct {
	httpClient *http.Client
	display    interfaces.Display
}

type SlackSenderOption func(*slackSender)

// WithHTTPClient replaces the default client, mainly for tests
func WithHTTPClient(client *http.Client) SlackSenderOption {
	return func(s *slackSender) {
		s.httpClient = client
	}
}

// WithTimeout bounds the whole webhook request
func WithTimeout(timeout time.Duration) SlackSenderOption {
	return func(s *slackSender) {
		if timeout > 0 {
			s.httpClient.Timeout = timeout
		}
	}
}

// NewSlackSender creates a sender posting to Slack incoming webhooks. display
// may be nil.
func NewSlackSender(display interfaces.Display, opts ...SlackSenderOption) interfaces.SlackSender {
	s := &slackSender{
		httpClient: &http.Client{
			Timeout: model.DefaultTimeout,
		},
		display: display,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send posts the request once. There is no retry: a failed attempt is final.
func (s *slackSender) Send(ctx context.Context, req *model.SendRequest) (*model.DeliveryResult, error) {
	logger := ctxlog.From(ctx)

	if req == nil {
		return nil, goerr.Wrap(domain.ErrInvalidInput, "send request is nil")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload := req.NewPayload()
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal slack payload")
	}

	if req.Target.Debug {
		logger.Debug("slack payload",
			slog.String("webhook_url", maskWebhookURL(req.Target.WebhookURL)),
			slog.String("payload", string(jsonData)),
		)
		if s.display != nil {
			s.display.ShowPayload(payload)
		}
	}

	if req.Target.DryRun {
		if s.display != nil {
			s.display.ShowDryRun()
		}
		return &model.DeliveryResult{
			State:   model.DeliveryDryRunSkipped,
			Payload: payload,
		}, nil
	}

	if s.display != nil {
		s.display.StartSending(req.Target)
	}

	result, err := s.sendToSlack(ctx, req.Target.WebhookURL, jsonData)
	result.Payload = payload
	if s.display != nil {
		s.display.ShowResult(result)
	}
	if err != nil {
		logger.Error("failed to send slack notification",
			slog.String("webhook_url", maskWebhookURL(req.Target.WebhookURL)),
			slog.Int("status", result.StatusCode),
			slog.String("error", err.Error()),
		)
		return result, err
	}

	logger.Debug("slack notification sent",
		slog.Int("status", result.StatusCode),
		slog.String("body", result.Body),
	)
	return result, nil
}

// sendToSlack sends the payload to Slack webhook. The returned result is never
// nil, even on error.
func (s *slackSender) sendToSlack(ctx context.Context, webhookURL string, jsonData []byte) (*model.DeliveryResult, error) {
	result := &model.DeliveryResult{State: model.DeliveryFailed}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return result, goerr.Wrap(domain.ErrSlackDelivery, "failed to create request: "+err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq) // #nosec G107 - webhook URL comes from operator configuration
	if err != nil {
		return result, goerr.Wrap(domain.ErrSlackDelivery, "failed to send request: "+err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	result.StatusCode = resp.StatusCode
	result.Body = strings.TrimSpace(string(body))
	if err != nil {
		return result, goerr.Wrap(domain.ErrSlackDelivery, "failed to read response: "+err.Error(),
			goerr.V("status", resp.StatusCode))
	}

	if resp.StatusCode != http.StatusOK {
		return result, goerr.Wrap(domain.ErrSlackDelivery,
			fmt.Sprintf("slack webhook returned status %d: %s", resp.StatusCode, result.Body),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", result.Body),
		)
	}

	result.State = model.DeliverySent
	return result, nil
}

// maskWebhookURL masks the webhook URL for logging
func maskWebhookURL(url string) string {
	if url == "" {
		return ""
	}
	if strings.Contains(url, "hooks.slack.com") {
		parts := strings.Split(url, "/")
		if len(parts) > 3 {
			for i := len(parts) - 3; i < len(parts); i++ {
				if len(parts[i]) > 4 {
					parts[i] = parts[i][:2] + "***"
				}
			}
			return strings.Join(parts, "/")
		}
	}
	if len(url) > 20 {
		return url[:20] + "***"
	}
	return "***"
}
