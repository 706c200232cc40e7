package handlers

import (
	"blogserver/internal/logger"
	"blogserver/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	feed     *feedHub
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log, feed: newFeedHub()}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Account endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.PUT("/users/:id", h.userIdMiddleware, h.updateUser)

	// Blog post endpoints; reads are public, mutations require a bearer token
	h.registerBlogRoutes(router)

	// Live feed of post/comment mutations over WebSocket — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerBlogRoutes(r *gin.Engine) {
	posts := r.Group("/blogposts")
	{
		posts.GET("", h.listPosts)
		posts.GET("/:id", h.getPost)
		posts.POST("", h.userIdMiddleware, h.createPost)
		posts.PUT("/:id", h.userIdMiddleware, h.updatePost)
		posts.DELETE("/:id", h.userIdMiddleware, h.deletePost)
		posts.POST("/:id/comments", h.userIdMiddleware, h.addComment)
	}
}
