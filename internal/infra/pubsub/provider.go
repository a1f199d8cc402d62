package pubsub

import (
	"context"
	"log/slog"

	"identity/config"
	"identity/internal/domain/service"
	"identity/internal/errors"

	"go.uber.org/fx"
)

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(_ context.Context, event *service.IdentityEvent) error {
	p.logger.Debug("Event publishing disabled, skipping", slog.String("event_type", string(event.Type)))

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

// NewEventPublisher selects the publisher named by pubsub.provider. Without a
// provider events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, identity events are not published")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	switch cfg.Provider {
	case config.PubSubProviderLocal:
		logger.Info("Publishing identity events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.Timeout, logger)

	case config.PubSubProviderGoogle:
		logger.Info("Publishing identity events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)
		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, cfg.Timeout, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
