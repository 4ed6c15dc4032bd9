package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Quantity: 2, Price: decimal.RequireFromString("100.00")},
		{Quantity: 3, Price: decimal.RequireFromString("200.00")},
	}}

	assert.Equal(t, "800.00", cart.Total().StringFixed(2))
}

func TestCartTotalEmpty(t *testing.T) {
	cart := Cart{}
	assert.Equal(t, "0.00", cart.Total().StringFixed(2))
}

func TestCartTotalRoundsAfterSummation(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Quantity: 3, Price: decimal.RequireFromString("3.33")},
		{Quantity: 1, Price: decimal.RequireFromString("0.01")},
	}}

	assert.Equal(t, "10.00", cart.Total().StringFixed(2))
}
