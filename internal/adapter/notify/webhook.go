package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"eastask/internal/core/domain"
	"eastask/internal/core/ports"
)

// WebhookNotifier posts notice payloads to the notification service. An
// empty endpoint degrades to log-only, which keeps local setups working
// without the downstream service.
type WebhookNotifier struct {
	endpoint string
	client   *http.Client
}

var _ ports.Notifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(endpoint string) *WebhookNotifier {
	return &WebhookNotifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *WebhookNotifier) NotifyAssignment(ctx context.Context, notice domain.AssignmentNotice) error {
	return n.post(ctx, "task.assigned", notice)
}

func (n *WebhookNotifier) NotifyStatusChange(ctx context.Context, notice domain.StatusChangeNotice) error {
	return n.post(ctx, "task.status_changed", notice)
}

func (n *WebhookNotifier) post(ctx context.Context, event string, payload any) error {
	if n.endpoint == "" {
		zap.L().Info("notification", zap.String("event", event), zap.Any("payload", payload))
		return nil
	}

	body, err := json.Marshal(map[string]any{"event": event, "payload": payload})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	return nil
}
