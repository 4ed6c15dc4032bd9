// Package orderControllers converts carts into immutable order snapshots and
// serves the order read paths.
package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Faruqt/fashion-store/middleware"
	"github.com/Faruqt/fashion-store/models"
	"github.com/Faruqt/fashion-store/pagination"
)

// PlaceOrder turns the user's cart into an order in a single transaction: the
// order row, its item snapshots and the cart-line deletion commit together or
// roll back together. Stock is not touched here; units were already reserved
// when the lines were added to the cart. The cart row itself survives, empty,
// for reuse.
func PlaceOrder(db *gorm.DB, userID uuid.UUID) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCartNotFound
			}
			return err
		}

		if len(cart.Items) == 0 {
			return models.ErrEmptyCart
		}

		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price, // locked-in line price, not current product price
			})
		}

		order = models.Order{
			UserID: userID,
			Total:  cart.Total(),
			Items:  items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /api/orders/new
func CreateOrder(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.Principal(c)

		order, err := PlaceOrder(db, userID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrCartNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, models.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("failed to create order", zap.String("user_id", userID.String()), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			}
			return
		}

		logger.Info("order created",
			zap.String("user_id", userID.String()),
			zap.String("order_id", order.ID.String()),
			zap.String("total", order.Total.String()))
		c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
	}
}

// GET /api/orders/:order_id
func GetOrder(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			logger.Error("failed to load order", zap.String("order_id", orderID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}

		if !middleware.CanAccess(c, order.UserID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view this order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders/item/:order_item_id
func GetOrderItem(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := uuid.Parse(c.Param("order_item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order item ID"})
			return
		}

		var item models.OrderItem
		if err := db.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
				return
			}
			logger.Error("failed to load order item", zap.String("order_item_id", itemID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order item"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", item.OrderID).Error; err != nil {
			logger.Error("failed to load order for item", zap.String("order_item_id", itemID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order item"})
			return
		}

		if !middleware.CanAccess(c, order.UserID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view this order item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// GET /api/orders/all: admin only, newest first, paginated.
func GetAllOrders(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		query := db.Model(&models.Order{}).Preload("Items").Order("created_at DESC")

		page, err := pagination.Paginate(c, query, &orders)
		if err != nil {
			logger.Error("failed to list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// GET /api/orders/all/:user_id: owner or admin, paginated.
func GetUserOrders(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		if !middleware.CanAccess(c, userID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view these orders"})
			return
		}

		var orders []models.Order
		query := db.Model(&models.Order{}).Preload("Items").
			Where("user_id = ?", userID).Order("created_at DESC")

		page, err := pagination.Paginate(c, query, &orders)
		if err != nil {
			logger.Error("failed to list user orders", zap.String("user_id", userID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
			return
		}

		c.JSON(http.StatusOK, page)
	}
}
