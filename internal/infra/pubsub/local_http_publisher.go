package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription  = "projects/local/subscriptions/customer-merge-sub"
	localPublishTimeout = 5 * time.Second
)

// localHTTPPublisher pushes merge events to a local HTTP endpoint in the
// Pub/Sub push format, so subscribers can be developed without GCP.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// PushMessage is the body Pub/Sub sends to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

// PublishMergeEvent posts the event and treats any non-2xx answer as a failure.
func (p *localHTTPPublisher) PublishMergeEvent(ctx context.Context, event *service.MergeEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = attributes
	push.Message.MessageID = event.MergeID + ":" + string(event.Type)
	push.Message.OrderingKey = orderingKey(event)
	push.Message.PublishTime = p.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.Wrap(err, "failed to encode push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push %s", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("subscriber returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("Merge event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("type", string(event.Type)),
		slog.String("merge_id", event.MergeID),
	)

	return nil
}

// Close is a no-op; the HTTP client holds no resources that need releasing.
func (p *localHTTPPublisher) Close() error {
	return nil
}
