package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_IsLowStock(t *testing.T) {
	product := &Product{Stock: 5, MinStock: 3}

	assert.False(t, product.IsLowStock(0))
	assert.False(t, product.IsLowStock(1))
	assert.True(t, product.IsLowStock(2))
	assert.True(t, product.IsLowStock(10))

	empty := &Product{Stock: 0, MinStock: 0}
	assert.True(t, empty.IsLowStock(0))
}
