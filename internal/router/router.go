package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gradehub/resultportal-backend/internal/config"
	"github.com/gradehub/resultportal-backend/internal/handler"
	"github.com/gradehub/resultportal-backend/internal/middleware"
	"github.com/gradehub/resultportal-backend/internal/response"
	"github.com/gradehub/resultportal-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Admin   *handler.AdminHandler
	Student *handler.StudentHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally.
	router.Use(response.RequestIDMiddleware())

	// Rate limiter for the login steps (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			response.Message(c, http.StatusOK, "College Result Portal API")
		})
		api.GET("/health", func(c *gin.Context) {
			response.Success(c, http.StatusOK, gin.H{"status": "healthy"})
		})

		// ─── Auth (Public, Rate Limited) ───────────────────────────────
		api.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		api.POST("/verify-otp", authLimiter.Middleware(), handlers.Auth.VerifyOTP)
		api.GET("/verify-token", handlers.Auth.VerifyToken)

		// ─── Admin (JWT) ───────────────────────────────────────────────
		adminAPI := api.Group("/admin")
		adminAPI.Use(middleware.RequireAdminJWT(authService))
		{
			adminAPI.POST("/save", handlers.Admin.SaveResult)
			adminAPI.POST("/upload", handlers.Admin.UploadWorkbook)
		}

		// ─── Student (Public) ──────────────────────────────────────────
		api.GET("/student/result", handlers.Student.GetResult)
	}

	return router
}
