// Package router wires the admin HTTP endpoints.
package router

import (
	"github.com/gin-gonic/gin"

	"docflow/internal/handler"
)

// Setup configures the Gin engine with the admin routes.
func Setup(healthH *handler.HealthHandler, documentH *handler.DocumentHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", healthH.Liveness)
	r.GET("/documents/:id", documentH.GetByID)
	r.GET("/documents/by-key/*key", documentH.GetByKey)

	return r
}
