package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrintedBook_Validation(t *testing.T) {
	_, err := NewPrintedBook("", 10, 1)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewPrintedBook("Dune", 0, 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewPrintedBook("Dune", -3.5, 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	book, err := NewPrintedBook("Dune", 20, 5)
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Name())
	assert.Equal(t, 20.0, book.Price())
	assert.Equal(t, 5.0, book.PrintingCost())
	assert.Equal(t, 0, book.SoldUnits())
	assert.Equal(t, KindPrintedBook, book.Kind())
}

func TestNewMerchandising_Validation(t *testing.T) {
	_, err := NewMerchandising("", 10, 1, 1)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewMerchandising("Mug", 0, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	mug, err := NewMerchandising("Mug", 20, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, mug.FabricationCost())
	assert.Equal(t, 2.0, mug.PackagingCost())
	assert.Equal(t, KindMerchandising, mug.Kind())
}

func TestProduct_Setters(t *testing.T) {
	book, err := NewPrintedBook("Dune", 20, 5)
	require.NoError(t, err)

	assert.ErrorIs(t, book.SetName(""), ErrEmptyName)
	assert.Equal(t, "Dune", book.Name())
	assert.ErrorIs(t, book.SetPrice(0), ErrInvalidPrice)
	assert.Equal(t, 20.0, book.Price())

	require.NoError(t, book.SetName("Dune Messiah"))
	require.NoError(t, book.SetPrice(22.5))
	assert.Equal(t, "Dune Messiah", book.Name())
	assert.Equal(t, 22.5, book.Price())
}

func TestAddSoldUnits(t *testing.T) {
	mug, err := NewMerchandising("Mug", 20, 3, 2)
	require.NoError(t, err)

	mug.AddSoldUnits(4)
	mug.AddSoldUnits(6)
	assert.Equal(t, 10, mug.SoldUnits())

	mug.AddSoldUnits(-3)
	assert.Equal(t, 7, mug.SoldUnits())
}

func TestAuditBenefits(t *testing.T) {
	book, err := NewPrintedBook("Dune", 20, 5)
	require.NoError(t, err)
	book.AddSoldUnits(10)
	assert.InDelta(t, 135.0, book.AuditBenefits(), 1e-9)

	mug, err := NewMerchandising("Mug", 20, 3, 2)
	require.NoError(t, err)
	mug.AddSoldUnits(10)
	assert.InDelta(t, 150.0, mug.AuditBenefits(), 1e-9)

	book.SetPrintingCost(10)
	assert.InDelta(t, 90.0, book.AuditBenefits(), 1e-9)
	mug.SetFabricationCost(5)
	mug.SetPackagingCost(5)
	assert.InDelta(t, 100.0, mug.AuditBenefits(), 1e-9)
}

func TestDescribeProduct(t *testing.T) {
	book, _ := NewPrintedBook("Dune", 20, 5)
	mug, _ := NewMerchandising("Mug", 20, 3, 2)

	assert.Equal(t, "PrintedBook (MANUFACTURED): A book printed by an editorial", book.DescribeProduct())
	assert.Equal(t, "Merchandising (MANUFACTURED): A merchandising item", mug.DescribeProduct())
}

func TestSameProduct(t *testing.T) {
	a, _ := NewPrintedBook("Dune", 20, 5)
	b, _ := NewPrintedBook("Dune", 99, 1)
	c, _ := NewPrintedBook("Emma", 20, 5)

	assert.True(t, SameProduct(a, b))
	assert.False(t, SameProduct(a, c))
	assert.False(t, SameProduct(a, nil))
	assert.False(t, SameProduct(nil, nil))
}
