package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/logo-gilding/internal/http/handlers"
	"github.com/phambaophuc/logo-gilding/internal/http/middleware"
	"go.uber.org/zap"
)

type Router struct {
	logoHandler *handlers.LogoHandler
	logger      *zap.Logger
}

func NewRouter(
	logoHandler *handlers.LogoHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		logoHandler: logoHandler,
		logger:      logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.logoHandler.HealthCheck)

		logos := v1.Group("/logos", middleware.ValidateContentType())
		{
			logos.POST("/recolor", r.logoHandler.RecolorLogo)
			logos.POST("/crop", r.logoHandler.CropLogo)
		}
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Logo gilding is running",
		})
	})

	return router
}
