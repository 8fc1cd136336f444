package kafka

import (
	"context"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"feedback-analyzer/events"
	"feedback-analyzer/logger"
)

// Producer publishes domain events to a topic.
type Producer interface {
	PublishEvent(ctx context.Context, topic string, event interface{}) error
	Close() error
}

// KafkaProducer is the confluent-kafka-go backed Producer.
type KafkaProducer struct {
	producer *kafka.Producer
}

// NewProducer creates a producer and starts draining its delivery
// report channel.
func NewProducer(kafkaConfig *Config) (*KafkaProducer, error) {
	if kafkaConfig == nil {
		return nil, fmt.Errorf("kafka config is required")
	}

	producerConfig := kafkaConfig.ProducerConfig()

	producer, err := kafka.NewProducer(&producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	go func() {
		for e := range producer.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Log.Errorf("message delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				logger.Log.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &KafkaProducer{producer: producer}, nil
}

// PublishEvent serializes the event, stamps its type into the message
// headers and waits for the delivery report.
func (p *KafkaProducer) PublishEvent(ctx context.Context, topic string, event interface{}) error {
	data, eventType, err := events.SerializeEvent(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	defer close(deliveryChan)

	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	select {
	case ev := <-deliveryChan:
		m := ev.(*kafka.Message)
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("message delivery failed: %w", m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	logger.Log.Debugf("published event %s to topic %s", eventType, topic)
	return nil
}

// Close flushes outstanding messages and shuts the producer down.
func (p *KafkaProducer) Close() error {
	if p.producer != nil {
		if remaining := p.producer.Flush(5000); remaining > 0 {
			logger.Log.Warnf("%d messages still pending after flush", remaining)
		}
		p.producer.Close()
		logger.Log.Info("kafka producer closed")
	}
	return nil
}
