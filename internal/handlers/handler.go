package handlers

import (
	"net/http"
	"slices"
	"time"

	_ "serverless_blog/docs"
	"serverless_blog/internal/logger"
	"serverless_blog/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// Options holds transport-level settings.
type Options struct {
	// AllowedOrigins for CORS; empty or containing "*" allows any origin.
	AllowedOrigins []string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.metricsMiddleware, h.accessLog, cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h.registerUserRoutes(router)
	h.registerPostRoutes(router)

	// Live post list over WebSocket (HTTP upgrade), same port
	router.GET("/ws/posts", h.wsPosts)

	return router
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	user := r.Group("/user")
	{
		user.POST("/signup", h.signUp)
		user.POST("/signin", h.signIn)
	}
}

func (h *Handler) registerPostRoutes(r *gin.Engine) {
	post := r.Group("/post")
	{
		post.GET("", h.listPosts)
		post.GET("/:id", h.getPost)
		// mutations require a bearer token
		post.POST("", h.userIdMiddleware, h.createPost)
		post.PUT("", h.userIdMiddleware, h.editPost)
	}
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}
	origins := h.opts.AllowedOrigins
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
