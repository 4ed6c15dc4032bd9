package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	orderControllers "github.com/Faruqt/fashion-store/controllers/order"
	"github.com/Faruqt/fashion-store/middleware"
)

// SetupOrderRoutes registers the /api/orders/* endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, logger *zap.Logger) {
	orderGroup := api.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("/new", orderControllers.CreateOrder(db, logger))
		orderGroup.GET("/all", middleware.AdminOnly, orderControllers.GetAllOrders(db, logger))
		orderGroup.GET("/all/:user_id", orderControllers.GetUserOrders(db, logger))
		orderGroup.GET("/item/:order_item_id", orderControllers.GetOrderItem(db, logger))
		orderGroup.GET("/:order_id", orderControllers.GetOrder(db, logger))
	}
}
