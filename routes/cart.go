package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	cartControllers "github.com/Faruqt/fashion-store/controllers/cart"
	"github.com/Faruqt/fashion-store/middleware"
)

// SetupCartRoutes registers the /api/cart/* endpoints.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, logger *zap.Logger) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", cartControllers.GetCart(db, logger))
		cartGroup.GET("/:cart_item_id", cartControllers.GetCartItem(db, logger))
		cartGroup.POST("/add/:product_id", cartControllers.AddToCart(db, logger))
		cartGroup.DELETE("/remove/:product_id", cartControllers.RemoveFromCart(db, logger))
	}
}
