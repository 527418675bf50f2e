package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/api/v1/handlers"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	ReportService services.ReportService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	reportHandler := handlers.NewReportHandler(container.ReportService)
	reports := router.Group("/reports")
	{
		reports.POST("/generate", reportHandler.Generate)
		reports.POST("/revise", reportHandler.Revise)
		reports.POST("/save", reportHandler.Save)
		reports.GET("", reportHandler.List)
	}
}
