package leave

import (
	"github.com/omsaini-1441/HRMS-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("", handler.List)
		leaves.POST("", handler.Create)
		leaves.GET("/calendar", handler.Calendar)
		leaves.GET("/stats", handler.Stats)
		leaves.GET("/date/:date", handler.GetByDate)
		leaves.GET("/:id/document", handler.DownloadDocument)
		leaves.PUT("/:id/status", handler.UpdateStatus)
		leaves.DELETE("/:id", handler.Delete)
	}
}
