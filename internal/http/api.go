package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/config"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	learning service.LearningResourceService
	tools    service.ToolResourceService
	interns  service.InternService
	projects service.ProjectService
	tokens   *service.TokenService
	storage  storage.Service

	bucket       string
	keyPrefix    string
	maxFileSize  int64
	defaultLimit int
	maxLimit     int

	cors    gin.HandlerFunc
	limiter *ipRateLimiter
}

func NewHandler(
	cfg config.Config,
	users service.UserService,
	learning service.LearningResourceService,
	tools service.ToolResourceService,
	interns service.InternService,
	projects service.ProjectService,
	tokens *service.TokenService,
	store storage.Service,
) *Handler {
	return &Handler{
		users:        users,
		learning:     learning,
		tools:        tools,
		interns:      interns,
		projects:     projects,
		tokens:       tokens,
		storage:      store,
		bucket:       cfg.Storage.Bucket,
		keyPrefix:    cfg.Storage.KeyPrefix,
		maxFileSize:  cfg.Upload.MaxFileSize,
		defaultLimit: cfg.Pagination.DefaultLimit,
		maxLimit:     cfg.Pagination.MaxLimit,
		cors:         corsMiddleware(cfg.CORS.AllowedOrigins),
		limiter:      newIPRateLimiter(time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute, cfg.RateLimit.MaxRequests),
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.cors)

	api := router.Group("/api")
	api.Use(h.limiter.middleware())

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	api.GET("/docs", h.docsPage)
	api.GET("/docs/openapi.json", h.openAPIDocument)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/profile", h.authenticate(), h.getProfile)
		auth.PUT("/profile", h.authenticate(), h.updateProfile)
		auth.PUT("/change-password", h.authenticate(), h.changePassword)
	}

	users := api.Group("/users", h.authenticate())
	{
		users.GET("", requireAdmin(), h.listUsers)
		users.POST("", requireAdmin(), h.createUser)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", requireAdmin(), h.deleteUser)
		users.POST("/:id/reset-password", requireAdmin(), h.resetUserPassword)
		users.PUT("/:id/settings", h.updateUserSettings)
	}

	learning := api.Group("/learning-resources")
	{
		learning.GET("", h.listLearningResources)
		learning.GET("/:id", h.getLearningResource)
		learning.POST("", h.authenticate(), h.createLearningResource)
		learning.PUT("/:id", h.authenticate(), requireOwnerOrAdmin(h.learning.OwnerID, "Resource not found"), h.updateLearningResource)
		learning.DELETE("/:id", h.authenticate(), requireOwnerOrAdmin(h.learning.OwnerID, "Resource not found"), h.deleteLearningResource)
		learning.POST("/:id/like", h.authenticate(), h.likeLearningResource)
	}

	tools := api.Group("/tools")
	{
		tools.GET("", h.listTools)
		tools.GET("/:id", h.getTool)
		tools.POST("", h.authenticate(), h.createTool)
		tools.PUT("/:id", h.authenticate(), requireOwnerOrAdmin(h.tools.OwnerID, "Tool not found"), h.updateTool)
		tools.DELETE("/:id", h.authenticate(), requireOwnerOrAdmin(h.tools.OwnerID, "Tool not found"), h.deleteTool)
	}

	interns := api.Group("/interns", h.authenticate())
	{
		interns.GET("", h.listInterns)
		interns.GET("/:id", h.getIntern)
		interns.POST("", requireAdmin(), h.createIntern)
		interns.PUT("/:id", requireAdmin(), h.updateIntern)
		interns.DELETE("/:id", requireAdmin(), h.deleteIntern)
		interns.POST("/:id/comments", h.addInternComment)
		interns.POST("/:id/meeting-notes", h.addInternMeetingNote)
		interns.POST("/:id/projects", requireAdmin(), h.addInternProject)
	}

	projects := api.Group("/projects", h.authenticate())
	{
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.POST("", requireAdmin(), h.createProject)
		projects.PUT("/:id", requireAdmin(), h.updateProject)
		projects.DELETE("/:id", requireAdmin(), h.deleteProject)
	}

	api.POST("/uploads", h.authenticate(), h.uploadFile)
	api.GET("/uploads", h.authenticate(), requireAdmin(), h.listUploads)
	api.GET("/uploads/*key", h.authenticate(), h.getUploadURL)
	api.DELETE("/uploads/*key", h.authenticate(), requireAdmin(), h.deleteUpload)
}
