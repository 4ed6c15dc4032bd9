// Package cartControllers implements the cart read paths and the transactional
// add/remove operations. Stock is reserved when a line is added and returned
// when it is removed; placing an order does not touch stock again. Reserved
// units in abandoned carts are never reclaimed (known limitation, there is no
// expiry job).
package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Faruqt/fashion-store/inventory"
	"github.com/Faruqt/fashion-store/middleware"
	"github.com/Faruqt/fashion-store/models"
)

type addToCartInput struct {
	Quantity *int `json:"quantity"`
}

// getOrCreateCart returns the user's cart, creating an empty one on first access.
func getOrCreateCart(db *gorm.DB, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).
		Attrs(models.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddProductToCart reserves stock and merges the product into the user's cart.
// The line lookup is keyed on (cart, product, current price), so re-adding at
// an unchanged price increments the existing line while a price change opens a
// new one with the new price locked in. Line creation, quantity increment and
// the stock decrement commit together or not at all.
func AddProductToCart(db *gorm.DB, userID, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return models.ErrInvalidQuantity
	}

	// Publication is an add-to-cart policy only; order placement never re-checks it.
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrProductNotFound
		}
		return err
	}
	if !product.IsPublished {
		return models.ErrProductUnavailable
	}

	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		locked, err := inventory.Reserve(tx, productID, quantity)
		if err != nil {
			return err
		}

		item := models.CartItem{CartID: cart.ID, ProductID: productID, Price: locked.Price}
		if err := tx.Where("cart_id = ? AND product_id = ? AND price = ?", cart.ID, productID, locked.Price).
			FirstOrCreate(&item).Error; err != nil {
			return err
		}

		item.Quantity += quantity
		return tx.Save(&item).Error
	})
}

// RemoveProductFromCart deletes the product's line from the user's cart and
// returns the reserved units to stock, both in one transaction.
func RemoveProductFromCart(db *gorm.DB, userID, productID uuid.UUID) error {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrProductNotFound
		}
		return err
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrCartNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCartItemNotFound
			}
			return err
		}

		if _, err := inventory.Release(tx, productID, item.Quantity); err != nil {
			return err
		}

		return tx.Delete(&item).Error
	})
}

// GET /api/cart
func GetCart(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.Principal(c)

		cart, err := getOrCreateCart(db, userID)
		if err != nil {
			logger.Error("failed to load cart", zap.String("user_id", userID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		if err := db.Preload("Items").First(cart, "id = ?", cart.ID).Error; err != nil {
			logger.Error("failed to load cart items", zap.String("cart_id", cart.ID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total()})
	}
}

// GET /api/cart/:cart_item_id
func GetCartItem(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := uuid.Parse(c.Param("cart_item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var item models.CartItem
		if err := db.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			logger.Error("failed to load cart item", zap.String("cart_item_id", itemID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart item"})
			return
		}

		var cart models.Cart
		if err := db.First(&cart, "id = ?", item.CartID).Error; err != nil {
			logger.Error("failed to load cart for item", zap.String("cart_item_id", itemID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart item"})
			return
		}

		if !middleware.CanAccess(c, cart.UserID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view this cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// POST /api/cart/add/:product_id
func AddToCart(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.Principal(c)

		productID, err := uuid.Parse(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input addToCartInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidQuantity.Error()})
			return
		}

		if err := AddProductToCart(db, userID, productID, *input.Quantity); err != nil {
			switch {
			case errors.Is(err, models.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, models.ErrInvalidQuantity),
				errors.Is(err, models.ErrProductUnavailable),
				errors.Is(err, models.ErrInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("failed to add product to cart",
					zap.String("user_id", userID.String()),
					zap.String("product_id", productID.String()),
					zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart"})
			}
			return
		}

		logger.Info("product added to cart",
			zap.String("user_id", userID.String()),
			zap.String("product_id", productID.String()))
		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart successfully"})
	}
}

// DELETE /api/cart/remove/:product_id
func RemoveFromCart(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.Principal(c)

		productID, err := uuid.Parse(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := RemoveProductFromCart(db, userID, productID); err != nil {
			switch {
			case errors.Is(err, models.ErrProductNotFound),
				errors.Is(err, models.ErrCartNotFound),
				errors.Is(err, models.ErrCartItemNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				logger.Error("failed to remove product from cart",
					zap.String("user_id", userID.String()),
					zap.String("product_id", productID.String()),
					zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove product from cart"})
			}
			return
		}

		logger.Info("product removed from cart",
			zap.String("user_id", userID.String()),
			zap.String("product_id", productID.String()))
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart successfully"})
	}
}
