package app

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/omsaini-1441/HRMS-backend/internal/attendance"
	"github.com/omsaini-1441/HRMS-backend/internal/auth"
	"github.com/omsaini-1441/HRMS-backend/internal/candidate"
	"github.com/omsaini-1441/HRMS-backend/internal/employee"
	"github.com/omsaini-1441/HRMS-backend/internal/leave"
	"github.com/omsaini-1441/HRMS-backend/internal/messaging/kafka"
	"github.com/omsaini-1441/HRMS-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	candidateRepo := candidate.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	candidateService := candidate.NewService(candidateRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, employeeRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	candidateHandler := candidate.NewHandler(candidateService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)

	allowedOrigin := os.Getenv("CORS_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	router.Use(middleware.CORS(allowedOrigin))

	router.GET("/healthz", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, logger)
		candidate.RegisterRoutes(api, candidateHandler, logger)
		attendance.RegisterRoutes(api, attendanceHandler, logger)
		leave.RegisterRoutes(api, leaveHandler, logger)
	}

	return nil
}
