package candidate

import (
	"github.com/omsaini-1441/HRMS-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	candidates := r.Group("/candidates")
	candidates.Use(middleware.AuthMiddleware())
	candidates.Use(middleware.ContextLogger(logger))
	{
		candidates.GET("", handler.GetAll)
		candidates.POST("", handler.Create)
		candidates.PATCH("/:id", handler.UpdateStatus)
		candidates.DELETE("/:id", handler.Delete)
		candidates.GET("/:id/resume", handler.DownloadResume)
	}
}
