package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authControllers "github.com/Faruqt/fashion-store/controllers/auth"
	"github.com/Faruqt/fashion-store/middleware"
)

// SetupAuthRoutes registers the /api/auth/* endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, logger *zap.Logger) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/create-user", authControllers.Register(db, logger))
		authGroup.POST("/login", authControllers.Login(db, logger))
		authGroup.POST("/change-password", authControllers.ChangePassword(db, logger))
		authGroup.POST("/refresh-token", authControllers.RefreshToken(db, logger))

		authGroup.POST("/create-admin",
			middleware.ValidateToken, middleware.SuperUserOnly,
			authControllers.CreateAdmin(db, logger))
		authGroup.POST("/logout",
			middleware.ValidateToken,
			authControllers.Logout(db, logger))
	}
}
