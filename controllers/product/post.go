package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Faruqt/fashion-store/models"
)

type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsPublished bool            `json:"is_published"`
}

func (in *ProductInput) validate() (string, bool) {
	if in.Price.IsNegative() {
		return "Price must not be negative", false
	}
	if in.Stock < 0 {
		return "Stock must not be negative", false
	}
	return "", true
}

// POST /api/products/new: admin only.
func CreateProduct(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg, ok := input.validate(); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price.Round(2),
			Stock:       input.Stock,
			IsPublished: input.IsPublished,
		}
		if err := db.Create(&product).Error; err != nil {
			logger.Error("failed to create product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		logger.Info("product created", zap.String("product_id", product.ID.String()))
		c.JSON(http.StatusCreated, product)
	}
}
