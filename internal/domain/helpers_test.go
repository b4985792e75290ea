package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testUser() *User {
	return &User{
		Name:  "Ada",
		Email: "ada@example.com",
		Address: &Address{
			Street:  "Carrer Major",
			Number:  12,
			ZipCode: "08001",
			City:    "Barcelona",
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustBook(t *testing.T, name string, price float64) *PrintedBook {
	t.Helper()
	b, err := NewPrintedBook(name, price, 1)
	require.NoError(t, err)
	return b
}

func mustMerch(t *testing.T, name string, price float64) *Merchandising {
	t.Helper()
	m, err := NewMerchandising(name, price, 1, 1)
	require.NoError(t, err)
	return m
}

func mustOrder(t *testing.T, date time.Time) *Order {
	t.Helper()
	o, err := NewOrder(testUser(), date)
	require.NoError(t, err)
	return o
}

func mustAdd(t *testing.T, o *Order, p Product, qty int) {
	t.Helper()
	ok, err := o.AddOrderItem(p, qty)
	require.NoError(t, err)
	require.True(t, ok)
}

func ptr[T any](v T) *T {
	return &v
}
