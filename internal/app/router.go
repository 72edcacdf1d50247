package app

import (
	"exam_backend/docs"
	"exam_backend/internal/config"
	"exam_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.POST("/answers", c.answer.RecordAnswers)
		api.POST("/comments", c.comment.Handle)
		api.POST("/results", c.result.Summarize)

		api.POST("/exams/generate", c.exam.Generate)
		api.POST("/v2/exams/generate", c.exam.GenerateV2)

		// Any method reaches the handler so that it can answer 405 itself.
		api.Any("/documents/exam", c.document.Generate)
	}

	if isLocalStorage(cfg) {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}
}
