package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"health-responder/internal/middleware"
)

// SetupRoutes attaches middleware and sends every request, whatever its
// method or path, to the health handler.
func SetupRoutes(router *gin.Engine, healthHandler *HealthHandler, logger *logrus.Logger) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))

	router.NoRoute(healthHandler.Handle)
}
