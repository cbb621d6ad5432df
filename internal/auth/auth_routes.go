package auth

import (
	"github.com/omsaini-1441/HRMS-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.GET("/profile", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Profile)
	}
}
