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

// DeleteProduct removes a product unless an order line or a cart line still
// references it. The guard and the delete run in one transaction so a
// concurrent add-to-cart cannot slip a reference in between the check and the
// delete.
func DeleteProduct(db *gorm.DB, productID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrProductNotFound
			}
			return err
		}

		var refs int64
		if err := tx.Model(&models.OrderItem{}).Where("product_id = ?", productID).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return models.ErrProductReferenced
		}
		if err := tx.Model(&models.CartItem{}).Where("product_id = ?", productID).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return models.ErrProductReferenced
		}

		return tx.Delete(&product).Error
	})
}

// DELETE /api/products/delete/:product_id: admin only.
func DeleteProductHandler(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := uuid.Parse(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := DeleteProduct(db, productID); err != nil {
			switch {
			case errors.Is(err, models.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, models.ErrProductReferenced):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("failed to delete product", zap.String("product_id", productID.String()), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			}
			return
		}

		logger.Info("product deleted", zap.String("product_id", productID.String()))
		c.JSON(http.StatusNoContent, nil)
	}
}
