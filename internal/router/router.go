package router

import (
	"petslife-service/internal/handler"
	"petslife-service/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// New assembles the gin engine: middleware, swagger, health check and the
// per-handler route groups.
func New(
	jwtSecret string,
	userHandler *handler.UserHandler,
	friendHandler *handler.FriendHandler,
	cardHandler *handler.CardHandler,
	uploadHandler *handler.UploadHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.LogAPI())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	auth := middleware.Auth(jwtSecret)

	api := router.Group("/api")
	{
		userHandler.RegisterRoutes(api, auth)
		friendHandler.RegisterRoutes(api, auth)
		cardHandler.RegisterRoutes(api, auth)
		uploadHandler.RegisterRoutes(api, auth)
	}

	return router
}
