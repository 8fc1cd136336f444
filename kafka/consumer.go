package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"feedback-analyzer/events"
	"feedback-analyzer/logger"
)

// EventHandler processes a deserialized event.
type EventHandler func(ctx context.Context, event interface{}) error

// Consumer reads domain events and dispatches them to registered
// handlers.
type Consumer interface {
	Subscribe(topics []string) error
	RegisterHandler(eventType events.EventType, handler EventHandler)
	Start(ctx context.Context) error
	Close() error
}

// KafkaConsumer is the confluent-kafka-go backed Consumer.
type KafkaConsumer struct {
	consumer *kafka.Consumer
	handlers map[events.EventType]EventHandler
}

// NewConsumer creates a consumer from the given config.
func NewConsumer(kafkaConfig *Config) (*KafkaConsumer, error) {
	if kafkaConfig == nil {
		return nil, fmt.Errorf("kafka config is required")
	}

	consumerConfig := kafkaConfig.ConsumerConfig()

	consumer, err := kafka.NewConsumer(&consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	return &KafkaConsumer{
		consumer: consumer,
		handlers: make(map[events.EventType]EventHandler),
	}, nil
}

// Subscribe subscribes the consumer to the given topics.
func (c *KafkaConsumer) Subscribe(topics []string) error {
	if err := c.consumer.SubscribeTopics(topics, nil); err != nil {
		return fmt.Errorf("failed to subscribe to topics: %w", err)
	}

	logger.Log.Infof("subscribed to topics: %v", topics)
	return nil
}

// RegisterHandler registers a handler for one event type.
func (c *KafkaConsumer) RegisterHandler(eventType events.EventType, handler EventHandler) {
	c.handlers[eventType] = handler
	logger.Log.Infof("registered handler for event type: %s", eventType)
}

// Start polls for messages until the context is cancelled.
func (c *KafkaConsumer) Start(ctx context.Context) error {
	logger.Log.Info("starting kafka consumer...")

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("kafka consumer context cancelled")
			return ctx.Err()
		default:
			msg, err := c.consumer.ReadMessage(100 * time.Millisecond)
			if err != nil {
				if err.(kafka.Error).Code() == kafka.ErrTimedOut {
					continue
				}
				logger.Log.Errorf("consumer error: %v", err)
				continue
			}

			if err := c.processMessage(ctx, msg); err != nil {
				logger.Log.Errorf("failed to process message: %v", err)
			}
		}
	}
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg *kafka.Message) error {
	var eventType events.EventType
	for _, header := range msg.Headers {
		if header.Key == "event-type" {
			eventType = events.EventType(header.Value)
			break
		}
	}

	if eventType == "" {
		return fmt.Errorf("event-type header not found")
	}

	handler, exists := c.handlers[eventType]
	if !exists {
		logger.Log.Warnf("no handler registered for event type: %s", eventType)
		return nil
	}

	event, err := events.DeserializeEvent(eventType, msg.Value)
	if err != nil {
		return fmt.Errorf("failed to deserialize event: %w", err)
	}

	if err := handler(ctx, event); err != nil {
		return fmt.Errorf("handler failed for event type %s: %w", eventType, err)
	}

	logger.Log.Debugf("successfully processed event: %s", eventType)
	return nil
}

// Close shuts the consumer down.
func (c *KafkaConsumer) Close() error {
	if err := c.consumer.Close(); err != nil {
		return fmt.Errorf("failed to close consumer: %w", err)
	}
	logger.Log.Info("kafka consumer closed")
	return nil
}
