package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"feedback-analyzer/api/handlers"
	"feedback-analyzer/db"
	_ "feedback-analyzer/docs"
	"feedback-analyzer/kafka"
	"feedback-analyzer/services"
)

func New(svc *services.FeedbackService, producer kafka.Producer) *gin.Engine {
	r := gin.Default()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/surveys/:surveyId/summary", handlers.GetSummaryHandler(svc))
		api.GET("/surveys/:surveyId/trending", handlers.GetTrendingRemarksHandler(svc))
		api.POST("/surveys/:surveyId/feedbacks", handlers.SubmitFeedbackHandler(producer))
	}

	return r
}
