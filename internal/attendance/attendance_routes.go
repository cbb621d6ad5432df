package attendance

import (
	"github.com/omsaini-1441/HRMS-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.GET("", handler.List)
		attendance.GET("/stats", handler.Stats)
		attendance.GET("/date/:date", handler.GetByDate)
		attendance.POST("", handler.Upsert)
		attendance.PUT("/:id", handler.Update)
		attendance.DELETE("/:id", handler.Delete)
	}
}
