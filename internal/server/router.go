package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "vinr.eu/launchpad/api/launchpad/v1"
	"vinr.eu/launchpad/internal/logger"
	"vinr.eu/launchpad/internal/validation"
)

var (
	corsMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsHeaders = []string{
		"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding",
		"Accept-Language", "Authorization", "Cache-Control", "X-Requested-With",
		logger.RequestIDHeader,
	}
)

// NewRouter wires the API and its middleware onto a fresh gin engine.
func NewRouter(si v1.ServerInterface, allowedOrigins []string) *gin.Engine {
	validation.UseJSONNames()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(logger.Middleware(), logger.AccessLog(), logger.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     corsMethods,
		AllowHeaders:     corsHeaders,
		ExposeHeaders:    []string{"Content-Length", logger.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Code: http.StatusNotFound, Message: "not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, v1.ErrorResponse{Code: http.StatusMethodNotAllowed, Message: "method not allowed"})
	})

	v1.RegisterHandlersWithOptions(router, si, v1.GinServerOptions{
		ErrorHandler: paramErrorHandler,
	})
	return router
}

func paramErrorHandler(c *gin.Context, err error, statusCode int) {
	logger.Warn(c, "path parameter rejected", "error", err)
	c.JSON(statusCode, v1.ErrorResponse{
		Code:    statusCode,
		Message: "request validation failed",
		Details: validation.FromParamError(err),
	})
}
