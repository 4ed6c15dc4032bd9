// Package inventory owns the per-product stock count. Reserve and Release run
// inside the caller's transaction and take a row lock on the product, so two
// requests racing over the same product serialize at the storage layer.
package inventory

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Faruqt/fashion-store/models"
)

// lockForUpdate takes a FOR UPDATE lock where the dialect supports it.
// SQLite has no row locks; its writes serialize on the database lock instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Reserve decrements the product's stock by quantity. It fails with
// ErrInsufficientStock when the locked row holds fewer units than requested.
func Reserve(tx *gorm.DB, productID uuid.UUID, quantity int) (*models.Product, error) {
	var product models.Product
	if err := lockForUpdate(tx).
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}

	if product.Stock < quantity {
		return nil, models.ErrInsufficientStock
	}

	product.Stock -= quantity
	if err := tx.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Release returns quantity units to the product's stock unconditionally.
// Used when a cart line is removed.
func Release(tx *gorm.DB, productID uuid.UUID, quantity int) (*models.Product, error) {
	var product models.Product
	if err := lockForUpdate(tx).
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}

	product.Stock += quantity
	if err := tx.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
