package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Faruqt/fashion-store/models"
)

// GET /api/products: admin view of the whole catalog, newest first.
func GetAllProducts(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			logger.Error("failed to list products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/active: published products only.
func GetPublishedProducts(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("is_published = ?", true).Order("created_at DESC").Find(&products).Error; err != nil {
			logger.Error("failed to list published products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:product_id
func GetProductByID(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := uuid.Parse(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			logger.Error("failed to load product", zap.String("product_id", productID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
