// Package pubsub publishes customer merge events after the database commit.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"crm/config"
	"crm/internal/domain/constants"
	"crm/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishMergeEvent(_ context.Context, event *service.MergeEvent) error {
	p.logger.Debug("Merge event dropped, pubsub disabled",
		slog.String("type", string(event.Type)),
		slog.String("merge_id", event.MergeID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for the configured provider and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, merge events are not published")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := newPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Merge event publisher ready",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

// encodeEvent serializes the event and builds the attributes subscribers filter on.
func encodeEvent(event *service.MergeEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode merge event")
	}

	attributes := map[string]string{
		"type":      string(event.Type),
		"tenant_id": event.TenantID,
		"merge_id":  event.MergeID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}

// orderingKey keeps every event about one absorbed customer in publish order.
func orderingKey(event *service.MergeEvent) string {
	return event.TenantID + "/" + event.SecondaryID
}
