package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"

	"feedback-analyzer/api/router"
	"feedback-analyzer/config"
	"feedback-analyzer/db"
	"feedback-analyzer/kafka"
	"feedback-analyzer/logger"
	"feedback-analyzer/repositories"
	"feedback-analyzer/sentiment"
	"feedback-analyzer/services"
	"feedback-analyzer/similarity"
)

// @title           Feedback Analyzer API
// @version         1.0
// @description     Survey feedback analysis: sentiment, ratings, trends and trending remarks
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	kafkaConfig := kafka.NewConfig()
	if err := kafka.CreateTopicsIfNotExists(kafkaConfig); err != nil {
		logger.Log.Errorf("failed to ensure kafka topics: %v", err)
	}

	producer, err := kafka.NewProducer(kafkaConfig)
	if err != nil {
		logger.Log.Errorf("failed to create kafka producer: %v", err)
		os.Exit(1)
	}
	defer producer.Close()

	scorer := sentiment.NewGenaiScorer(cfg.SentimentModel, cfg.Analysis.EffectiveScorerTimeout())
	embedder := similarity.NewGenaiEmbedder(cfg.EmbeddingModel, cfg.Analysis.EffectiveScorerTimeout())

	svc := services.NewFeedbackService(
		repositories.NewSurveyRepository(db.Database()),
		repositories.NewFeedbackRepository(db.Database()),
		scorer,
		embedder,
		cfg.Analysis.EffectiveBatchLimit(),
	)

	r := router.New(svc, producer)
	handler := cors.Default().Handler(r)

	logger.Log.Info("starting api server on :8080")
	if err := http.ListenAndServe(":8080", handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
