package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"placebook/internal/domain/constants"
	"placebook/internal/domain/entity"
	"placebook/internal/domain/service"
	"placebook/internal/errors"
)

const localSubscription = "projects/local/subscriptions/sync-sub"

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// NewPushMessage wraps a sync event in a push envelope.
func NewPushMessage(event *entity.SyncEvent, publishedAt time.Time) (*PushMessage, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pushMsg := &PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.EventID
	pushMsg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	return pushMsg, nil
}

// PublishSyncEvent delivers the event synchronously to the worker's push endpoint
func (p *localHTTPPublisher) PublishSyncEvent(ctx context.Context, event *entity.SyncEvent) error {
	pushMsg, err := NewPushMessage(event, time.Now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if event.RequestID != "" {
		req.Header.Set(constants.HeaderRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Sync event delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
		slog.String("entity_id", event.EntityID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

// eventAttributes are the message attributes used for filtering and tracing.
func eventAttributes(event *entity.SyncEvent) map[string]string {
	attributes := map[string]string{
		"event_id":    event.EventID,
		"entity_type": string(event.EntityType),
		"entity_id":   event.EntityID,
		"status":      string(event.Status),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
