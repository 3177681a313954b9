package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-care/internal/events"
)

// Notifier delivers a leave notification to the outside world.
type Notifier interface {
	NotifyLeave(ctx context.Context, event events.LeaveNotificationEvent) error
}

// FunctionClient posts notifications to the hosted notification function.
type FunctionClient struct {
	url    string
	key    string
	client *http.Client
}

func NewFunctionClient(url, key string, timeout time.Duration) *FunctionClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FunctionClient{
		url:    url,
		key:    key,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *FunctionClient) NotifyLeave(ctx context.Context, event events.LeaveNotificationEvent) error {
	if c.url == "" {
		return fmt.Errorf("notification function url is not configured")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}
	if event.RequestID != "" {
		req.Header.Set("X-Request-ID", event.RequestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notification function returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	return nil
}
