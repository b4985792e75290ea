package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBatch_AddAndRemove(t *testing.T) {
	b := NewOrderBatch("spring", "spring campaign")
	o := mustOrder(t, day(2024, 3, 1))

	assert.True(t, b.IsEmpty())
	assert.Equal(t, MaxBatchSize, b.MaxSize())

	ok, err := b.AddOrder(o)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.AddOrder(o)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, b.Len())
	assert.True(t, b.Exists(o))

	_, err = b.AddOrder(nil)
	assert.ErrorIs(t, err, ErrNullOrderArgument)
	_, err = b.Remove(nil)
	assert.ErrorIs(t, err, ErrNullOrderArgument)

	ok, err = b.Remove(mustOrder(t, day(2024, 3, 1)))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = b.Remove(o)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, b.Exists(o))
	assert.True(t, b.IsEmpty())
}

func TestOrderBatch_Capacity(t *testing.T) {
	b := NewOrderBatch("bulk", "")
	for i := 0; i < MaxBatchSize; i++ {
		ok, err := b.AddOrder(mustOrder(t, day(2024, 1, 1)))
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.True(t, b.IsFull())

	extra := mustOrder(t, day(2024, 1, 1))
	ok, err := b.AddOrder(extra)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, b.Exists(extra))
	assert.Equal(t, MaxBatchSize, b.Len())

	b.Clear()
	assert.True(t, b.IsEmpty())
}

func TestOrderBatch_NameAndDescription(t *testing.T) {
	b := NewOrderBatch("a", "b")
	b.SetName("summer")
	b.SetDescription("summer campaign")
	assert.Equal(t, "summer", b.Name())
	assert.Equal(t, "summer campaign", b.Description())
}

func TestOrderBatch_ItemRoundTripKeepsMembership(t *testing.T) {
	b := NewOrderBatch("spring", "")
	o := mustOrder(t, day(2024, 3, 1))
	_, err := b.AddOrder(o)
	require.NoError(t, err)

	mug := mustMerch(t, "Mug", 10)
	mustAdd(t, o, mug, 2)
	require.True(t, o.RemoveOrderItem(mug, 2))

	assert.Equal(t, 0, o.ItemCount())
	assert.True(t, b.Exists(o))
	assert.Equal(t, 1, b.Len())
}

func TestDeliverOrdersAfterDate(t *testing.T) {
	today := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	b := NewOrderBatch("spring", "", WithClock(func() time.Time { return today }))

	early := mustOrder(t, day(2024, 3, 1))
	onCutoff := mustOrder(t, day(2024, 3, 4))
	late := mustOrder(t, day(2024, 3, 5))
	latest := mustOrder(t, day(2024, 3, 8))
	for _, o := range []*Order{early, onCutoff, late, latest} {
		_, err := b.AddOrder(o)
		require.NoError(t, err)
	}

	delivered, err := b.DeliverOrdersAfterDate(day(2024, 3, 4))
	require.NoError(t, err)
	assert.ElementsMatch(t, []*Order{late, latest}, delivered)

	assert.Nil(t, early.DeliveryDate())
	assert.Nil(t, onCutoff.DeliveryDate())
	require.NotNil(t, late.DeliveryDate())
	assert.Equal(t, day(2024, 3, 10), *late.DeliveryDate())
	assert.Equal(t, day(2024, 3, 10), *latest.DeliveryDate())
}

func TestDeliverOrdersAfterDate_FutureOrderFails(t *testing.T) {
	today := day(2024, 3, 10)
	b := NewOrderBatch("spring", "", WithClock(func() time.Time { return today }))
	future := mustOrder(t, day(2024, 3, 20))
	_, err := b.AddOrder(future)
	require.NoError(t, err)

	_, err = b.DeliverOrdersAfterDate(day(2024, 3, 1))
	assert.ErrorIs(t, err, ErrInvalidDeliveryDate)
	assert.Nil(t, future.DeliveryDate())
}

func TestLargestOrders(t *testing.T) {
	b := NewOrderBatch("spring", "")
	assert.Empty(t, b.LargestOrders())

	a := mustOrder(t, day(2024, 3, 1))
	mustAdd(t, a, mustBook(t, "A", 50.0), 1)
	c := mustOrder(t, day(2024, 3, 1))
	mustAdd(t, c, mustBook(t, "C", 50.0005), 1)
	small := mustOrder(t, day(2024, 3, 1))
	mustAdd(t, small, mustBook(t, "S", 49.0), 1)
	for _, o := range []*Order{a, c, small} {
		_, err := b.AddOrder(o)
		require.NoError(t, err)
	}

	assert.Equal(t, []*Order{c, a}, b.LargestOrders())

	// a more recent order with the same total sorts first
	a.SetOrderDate(day(2024, 3, 2))
	assert.Equal(t, []*Order{a, c}, b.LargestOrders())
}

func TestAuditIncomeByProduct(t *testing.T) {
	b := NewOrderBatch("spring", "")
	dune := mustBook(t, "Dune", 20)
	mug := mustMerch(t, "Mug", 10)

	o1 := mustOrder(t, day(2024, 3, 1))
	mustAdd(t, o1, dune, 2)
	mustAdd(t, o1, mug, 1)
	o2 := mustOrder(t, day(2024, 3, 2))
	mustAdd(t, o2, dune, 3)
	for _, o := range []*Order{o1, o2} {
		_, err := b.AddOrder(o)
		require.NoError(t, err)
	}

	assert.InDelta(t, 100.0, b.AuditIncomeByProduct(dune), 1e-9)
	assert.InDelta(t, 100.0, b.AuditIncomeByProduct(mustBook(t, "Dune", 1)), 1e-9)
	assert.InDelta(t, 10.0, b.AuditIncomeByProduct(mug), 1e-9)
	assert.Zero(t, b.AuditIncomeByProduct(mustBook(t, "Emma", 5)))
	assert.Zero(t, b.AuditIncomeByProduct(nil))
}

func TestOrderBatch_String(t *testing.T) {
	b := NewOrderBatch("spring", "")
	newer := mustOrder(t, day(2024, 3, 2))
	mustAdd(t, newer, mustBook(t, "Dune", 20), 2)
	older := mustOrder(t, day(2024, 3, 1))
	mustAdd(t, older, mustMerch(t, "Pin", 12.1), 1)
	for _, o := range []*Order{newer, older} {
		_, err := b.AddOrder(o)
		require.NoError(t, err)
	}

	assert.Contains(t, older.Bill(), "Tax: 2.10")

	want := "###\n" +
		"#1: Product: Pin | Quantity: 1 | Price: 12.1 | Tax: 2.1\n" +
		"TOTAL = 12.1 | Tax: 2.1\n" +
		"###\n" +
		"#1: Product: Dune | Quantity: 2 | Price: 40.0 | Tax: 6.94\n" +
		"TOTAL = 40.0 | Tax: 6.9\n" +
		"###"
	assert.Equal(t, want, b.String())
	assert.Equal(t, want, fmt.Sprint(b))

	// natural order runs the other way
	natural := b.Orders()
	SortOrders(natural)
	assert.Equal(t, []*Order{newer, older}, natural)
}

func TestOrderBatch_StringEmpty(t *testing.T) {
	assert.Equal(t, "###", NewOrderBatch("x", "").String())
}
