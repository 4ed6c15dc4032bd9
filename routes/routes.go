package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up all route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Fashion Store API!"})
	})

	SetupAuthRoutes(api, db, logger)
	SetupUserRoutes(api, db, logger)
	SetupProductRoutes(api, db, logger)
	SetupCartRoutes(api, db, logger)
	SetupOrderRoutes(api, db, logger)
}
