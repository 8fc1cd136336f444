package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"feedback-analyzer/config"
	"feedback-analyzer/db"
	"feedback-analyzer/events"
	"feedback-analyzer/kafka"
	"feedback-analyzer/logger"
	"feedback-analyzer/repositories"
	"feedback-analyzer/services"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	kafkaConfig := kafka.NewConfig()
	if err := kafka.CreateTopicsIfNotExists(kafkaConfig); err != nil {
		logger.Log.Errorf("failed to ensure kafka topics: %v", err)
	}

	consumer, err := kafka.NewConsumer(kafkaConfig)
	if err != nil {
		logger.Log.Errorf("failed to create kafka consumer: %v", err)
		os.Exit(1)
	}
	defer consumer.Close()

	producer, err := kafka.NewProducer(kafkaConfig)
	if err != nil {
		logger.Log.Errorf("failed to create kafka producer: %v", err)
		os.Exit(1)
	}
	defer producer.Close()

	ingest := services.NewIngestService(
		repositories.NewFeedbackRepository(db.Database()),
		producer,
		kafka.TopicFeedbackEvents,
	)
	consumer.RegisterHandler(events.FeedbackCreated, ingest.HandleFeedbackCreated)

	if err := consumer.Subscribe([]string{kafka.TopicFeedbackEvents}); err != nil {
		logger.Log.Errorf("failed to subscribe: %v", err)
		os.Exit(1)
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Log.Infof("received signal %v, shutting down...", sig)
		cancel()
	}()

	logger.Log.Info("starting feedback ingester...")
	if err := consumer.Start(ctx); err != nil && err != context.Canceled {
		logger.Log.Errorf("consumer stopped: %v", err)
		os.Exit(1)
	}
}
