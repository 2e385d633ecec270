package eventbus

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/frolf-scorecard/config"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
)

// EventBus pairs the publisher and subscriber the archive events travel over.
type EventBus struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
	Driver     string
	closers    []func() error
}

// NewEventBus builds the bus selected by cfg.Events.Driver: an in-process
// go channel, or core NATS through watermill-nats.
func NewEventBus(cfg *config.Config, logger *slog.Logger) (*EventBus, error) {
	watermillLogger := watermill.NewSlogLogger(logger)

	switch cfg.Events.Driver {
	case config.EventsNATS:
		return newNATSEventBus(cfg.NATS.URL, watermillLogger, logger)
	case config.EventsGoChannel, "":
		pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermillLogger)
		return &EventBus{
			Publisher:  pubSub,
			Subscriber: pubSub,
			Driver:     config.EventsGoChannel,
			closers:    []func() error{pubSub.Close},
		}, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}

func newNATSEventBus(natsURL string, watermillLogger watermill.LoggerAdapter, logger *slog.Logger) (*EventBus, error) {
	marshaler := &nats.NATSMarshaler{}
	jsConfig := nats.JetStreamConfig{Disabled: true}
	natsOptions := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(10 * time.Second),
		nc.ReconnectWait(time.Second),
	}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         natsURL,
			NatsOptions: natsOptions,
			Marshaler:   marshaler,
			JetStream:   jsConfig,
		},
		watermillLogger,
	)
	if err != nil {
		logger.Error("Failed to create Watermill publisher", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create Watermill publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:              natsURL,
			QueueGroupPrefix: "scorecard-audit",
			SubscribersCount: 1,
			CloseTimeout:     30 * time.Second,
			AckWaitTimeout:   30 * time.Second,
			NatsOptions:      natsOptions,
			Unmarshaler:      marshaler,
			JetStream:        jsConfig,
		},
		watermillLogger,
	)
	if err != nil {
		publisher.Close()
		logger.Error("Failed to create Watermill subscriber", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create Watermill subscriber: %w", err)
	}

	return &EventBus{
		Publisher:  publisher,
		Subscriber: subscriber,
		Driver:     config.EventsNATS,
		closers:    []func() error{subscriber.Close, publisher.Close},
	}, nil
}

// Close shuts down the subscriber and publisher.
func (eb *EventBus) Close() error {
	var errs []error
	for _, c := range eb.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	eb.closers = nil
	return errors.Join(errs...)
}
