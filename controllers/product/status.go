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

// PATCH /api/products/status-toggle/:product_id: admin only. Flips the
// published flag. Unpublishing blocks new add-to-cart calls but leaves
// existing cart lines alone.
func ToggleProductStatus(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product status"})
			return
		}

		product.IsPublished = !product.IsPublished
		if err := db.Save(&product).Error; err != nil {
			logger.Error("failed to toggle product status", zap.String("product_id", productID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product status"})
			return
		}

		logger.Info("product status toggled",
			zap.String("product_id", product.ID.String()),
			zap.Bool("is_published", product.IsPublished))
		c.JSON(http.StatusAccepted, product)
	}
}
