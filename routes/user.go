package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	userControllers "github.com/Faruqt/fashion-store/controllers/user"
	"github.com/Faruqt/fashion-store/middleware"
)

// SetupUserRoutes registers the /api/users/* endpoints. All JWT-protected;
// ownership checks live in the handlers.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, logger *zap.Logger) {
	userGroup := api.Group("/users")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", middleware.AdminOnly, userControllers.GetAllUsers(db, logger))
		userGroup.GET("/:user_id", userControllers.GetUser(db, logger))
		userGroup.PUT("/:user_id", userControllers.UpdateUser(db, logger))
		userGroup.DELETE("/:user_id", userControllers.DeleteUser(db, logger))
	}
}
