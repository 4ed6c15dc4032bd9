package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	productcontroller "github.com/Faruqt/fashion-store/controllers/product"
	"github.com/Faruqt/fashion-store/middleware"
)

// SetupProductRoutes registers the /api/products/* endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, logger *zap.Logger) {
	productGroup := api.Group("/products")
	productGroup.Use(middleware.ValidateToken)
	{
		productGroup.GET("/", middleware.AdminOnly, productcontroller.GetAllProducts(db, logger))
		productGroup.GET("/active", productcontroller.GetPublishedProducts(db, logger))
		productGroup.GET("/export", middleware.AdminOnly, productcontroller.ExportProductsToExcel(db, logger))
		productGroup.GET("/:product_id", productcontroller.GetProductByID(db, logger))

		productGroup.POST("/new", middleware.AdminOnly, productcontroller.CreateProduct(db, logger))
		productGroup.PATCH("/status-toggle/:product_id", middleware.AdminOnly, productcontroller.ToggleProductStatus(db, logger))
		productGroup.PUT("/update/:product_id", middleware.AdminOnly, productcontroller.UpdateProduct(db, logger))
		productGroup.DELETE("/delete/:product_id", middleware.AdminOnly, productcontroller.DeleteProductHandler(db, logger))
	}
}
