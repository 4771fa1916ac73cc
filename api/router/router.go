package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Ranjith1717-CPU/Civicscoop/analyzer"
	"github.com/Ranjith1717-CPU/Civicscoop/api/handlers"
	"github.com/Ranjith1717-CPU/Civicscoop/db"
	_ "github.com/Ranjith1717-CPU/Civicscoop/docs"
	"github.com/Ranjith1717-CPU/Civicscoop/repositories"
	"github.com/Ranjith1717-CPU/Civicscoop/services"
)

// New builds the HTTP router. evts may be nil when Kafka is not configured;
// the sync analyze path then skips event publishing.
func New(evts *services.EventService) *gin.Engine {
	r := gin.Default()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
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
		meetingRepo := repositories.NewMeetingRepository(db.Database())
		reportRepo := repositories.NewReportRepository(db.Database())

		meetingSvc := services.NewMeetingService(meetingRepo, analyzer.New())
		analyticsSvc := services.NewAnalyticsService(meetingRepo)
		reportSvc := services.NewReportService(reportRepo)

		api.POST("/meetings/analyze", handlers.AnalyzeMeetingHandler(meetingSvc, evts))
		api.GET("/meetings", handlers.ListMeetingsHandler(meetingSvc))
		api.GET("/meetings/:id", handlers.GetMeetingHandler(meetingSvc))
		api.DELETE("/meetings/:id", handlers.DeleteMeetingHandler(meetingSvc))

		api.GET("/analytics", handlers.GetAnalyticsHandler(analyticsSvc))

		api.GET("/reports", handlers.ListReportsHandler(reportSvc))
		api.POST("/reports", handlers.CreateReportHandler(reportSvc))
	}

	return r
}
