package kafka

import (
	"os"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Config holds the broker connection settings shared by producers and
// consumers.
type Config struct {
	BootstrapServers string
	GroupID          string
	AutoOffsetReset  string
}

const (
	DefaultAutoOffsetReset = "earliest"

	// Producer defaults
	DefaultProducerAcks      = "all"
	DefaultProducerRetries   = 3
	DefaultProducerBatchSize = 16384
	DefaultProducerLingerMs  = 10

	// Consumer defaults
	DefaultConsumerEnableAutoCommit = true
	DefaultConsumerSessionTimeoutMs = 6000
)

// NewConfig builds a Config from environment variables.
func NewConfig() *Config {
	bootstrapServers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	if bootstrapServers == "" {
		panic("KAFKA_BOOTSTRAP_SERVERS environment variable is required")
	}

	groupID := os.Getenv("KAFKA_GROUP_ID")
	if groupID == "" {
		panic("KAFKA_GROUP_ID environment variable is required")
	}

	return &Config{
		BootstrapServers: bootstrapServers,
		GroupID:          groupID,
		AutoOffsetReset:  getEnv("KAFKA_AUTO_OFFSET_RESET", DefaultAutoOffsetReset),
	}
}

// ProducerConfig returns the librdkafka config map for producers.
func (c *Config) ProducerConfig() kafka.ConfigMap {
	return kafka.ConfigMap{
		"bootstrap.servers": c.BootstrapServers,
		"acks":              DefaultProducerAcks,
		"retries":           DefaultProducerRetries,
		"batch.size":        DefaultProducerBatchSize,
		"linger.ms":         DefaultProducerLingerMs,
	}
}

// ConsumerConfig returns the librdkafka config map for consumers.
func (c *Config) ConsumerConfig() kafka.ConfigMap {
	return kafka.ConfigMap{
		"bootstrap.servers":  c.BootstrapServers,
		"group.id":           c.GroupID,
		"auto.offset.reset":  c.AutoOffsetReset,
		"enable.auto.commit": DefaultConsumerEnableAutoCommit,
		"session.timeout.ms": DefaultConsumerSessionTimeoutMs,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
