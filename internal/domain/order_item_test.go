package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem_NilArguments(t *testing.T) {
	order := mustOrder(t, day(2024, 3, 1))
	book := mustBook(t, "Dune", 20)

	_, err := NewOrderItem(order, nil, 1)
	assert.ErrorIs(t, err, ErrNullProduct)

	_, err = NewOrderItem(nil, book, 1)
	assert.ErrorIs(t, err, ErrNullOrder)

	_, err = NewOrderItem(nil, nil, 1)
	assert.ErrorIs(t, err, ErrNullProduct)
}

func TestOrderItem_QuantityClamp(t *testing.T) {
	order := mustOrder(t, day(2024, 3, 1))
	item, err := NewOrderItem(order, mustBook(t, "Dune", 20), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity())

	item.SetQuantity(-7)
	assert.Equal(t, 1, item.Quantity())

	item.SetQuantity(4)
	assert.Equal(t, 4, item.Quantity())
	assert.Same(t, order, item.Order())
}

func TestOrderItem_Bill(t *testing.T) {
	order := mustOrder(t, day(2024, 3, 1))
	item, err := NewOrderItem(order, mustBook(t, "Dune", 20), 2)
	require.NoError(t, err)

	assert.Equal(t, 40.0, item.TotalPrice())
	assert.Equal(t, "Product: Dune | Quantity: 2 | Price: 40.0 | Tax: 6.94", item.Bill())
}

func TestOrderItem_Equal(t *testing.T) {
	o1 := mustOrder(t, day(2024, 3, 1))
	o2 := mustOrder(t, day(2024, 3, 1))
	dune := mustBook(t, "Dune", 20)
	duneAgain := mustBook(t, "Dune", 25)

	a, _ := NewOrderItem(o1, dune, 1)
	b, _ := NewOrderItem(o1, duneAgain, 9)
	c, _ := NewOrderItem(o2, dune, 1)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
