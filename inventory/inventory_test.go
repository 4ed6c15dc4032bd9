package inventory_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Faruqt/fashion-store/inventory"
	"github.com/Faruqt/fashion-store/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, stock int) *models.Product {
	t.Helper()
	product := models.Product{
		Name:        "Linen Shirt",
		Price:       decimal.RequireFromString("45.50"),
		Stock:       stock,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func TestReserve(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, 10)

	updated, err := inventory.Reserve(db, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Stock)

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 7, stored.Stock)
}

func TestReserveInsufficientStock(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, 2)

	_, err := inventory.Reserve(db, product.ID, 3)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	// Stock untouched on failure
	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 2, stored.Stock)
}

func TestReserveExactStock(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, 5)

	updated, err := inventory.Reserve(db, product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)
}

func TestReserveUnknownProduct(t *testing.T) {
	db := testDB(t)

	_, err := inventory.Reserve(db, uuid.New(), 1)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestRelease(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, 3)

	updated, err := inventory.Release(db, product.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Stock)
}

func TestReleaseUnknownProduct(t *testing.T) {
	db := testDB(t)

	_, err := inventory.Release(db, uuid.New(), 1)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}
