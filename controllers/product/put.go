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

// PUT /api/products/update/:product_id: admin only, full update.
// Price changes do not touch existing cart or order lines; their prices stay
// locked in from creation time.
func UpdateProduct(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg, ok := input.validate(); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price.Round(2)
		product.Stock = input.Stock
		product.IsPublished = input.IsPublished

		if err := db.Save(&product).Error; err != nil {
			logger.Error("failed to update product", zap.String("product_id", productID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		logger.Info("product updated", zap.String("product_id", product.ID.String()))
		c.JSON(http.StatusOK, product)
	}
}
