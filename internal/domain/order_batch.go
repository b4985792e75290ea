package domain

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"time"
)

// MaxBatchSize is the number of orders a batch can hold.
const MaxBatchSize = 1000

// largestOrderTolerance absorbs floating point drift between order totals.
const largestOrderTolerance = 0.001

const reportSeparator = "###"

// trailingTaxZero matches two-decimal tax figures ending in zero.
var trailingTaxZero = regexp.MustCompile(`(Tax: \d+\.\d)0\b`)

// OrderBatch is a bounded set of orders. Membership is keyed by order id,
// which is unique per Order value, so two orders are the same member only if
// they are the same instance.
type OrderBatch struct {
	name        string
	description string
	maxSize     int
	orders      []*Order
	ids         map[string]struct{}
	now         func() time.Time
}

// BatchOption configures an OrderBatch.
type BatchOption func(*OrderBatch)

// WithClock replaces time.Now as the source of the delivery date.
func WithClock(now func() time.Time) BatchOption {
	return func(b *OrderBatch) {
		b.now = now
	}
}

func NewOrderBatch(name, description string, opts ...BatchOption) *OrderBatch {
	b := &OrderBatch{
		name:        name,
		description: description,
		maxSize:     MaxBatchSize,
		ids:         make(map[string]struct{}),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *OrderBatch) Name() string { return b.name }

func (b *OrderBatch) SetName(name string) { b.name = name }

func (b *OrderBatch) Description() string { return b.description }

func (b *OrderBatch) SetDescription(description string) { b.description = description }

func (b *OrderBatch) MaxSize() int { return b.maxSize }

// Orders returns a copy of the members in the order they were added.
func (b *OrderBatch) Orders() []*Order {
	return slices.Clone(b.orders)
}

func (b *OrderBatch) Len() int { return len(b.orders) }

func (b *OrderBatch) IsEmpty() bool { return len(b.orders) == 0 }

func (b *OrderBatch) IsFull() bool { return len(b.orders) >= b.maxSize }

func (b *OrderBatch) Exists(order *Order) bool {
	if order == nil {
		return false
	}
	_, ok := b.ids[order.ID()]
	return ok
}

// AddOrder adds order to the batch. It returns false when the batch is full
// or already holds the order.
func (b *OrderBatch) AddOrder(order *Order) (bool, error) {
	if order == nil {
		return false, ErrNullOrderArgument
	}
	if b.IsFull() || b.Exists(order) {
		return false, nil
	}
	b.orders = append(b.orders, order)
	b.ids[order.ID()] = struct{}{}
	return true, nil
}

// Remove takes order out of the batch. It returns false if it was not there.
func (b *OrderBatch) Remove(order *Order) (bool, error) {
	if order == nil {
		return false, ErrNullOrderArgument
	}
	if !b.Exists(order) {
		return false, nil
	}
	delete(b.ids, order.ID())
	b.orders = slices.DeleteFunc(b.orders, func(o *Order) bool {
		return o.ID() == order.ID()
	})
	return true, nil
}

// Clear removes every order.
func (b *OrderBatch) Clear() {
	b.orders = nil
	b.ids = make(map[string]struct{})
}

// DeliverOrdersAfterDate sets today's date as the delivery date of every order
// placed strictly after date and returns those orders. The first order that
// rejects the date aborts the call; orders already updated keep their date.
func (b *OrderBatch) DeliverOrdersAfterDate(date time.Time) ([]*Order, error) {
	cutoff := DateOf(date)
	today := DateOf(b.now())
	var delivered []*Order
	for _, order := range b.orders {
		if !order.OrderDate().After(cutoff) {
			continue
		}
		if err := order.SetDeliveryDate(&today); err != nil {
			return delivered, fmt.Errorf("deliver order %s: %w", order.ID(), err)
		}
		delivered = append(delivered, order)
	}
	return delivered, nil
}

// LargestOrders returns every order whose total is within 0.001 of the
// highest total, sorted by Order.Compare.
func (b *OrderBatch) LargestOrders() []*Order {
	if len(b.orders) == 0 {
		return []*Order{}
	}
	highest := math.Inf(-1)
	for _, order := range b.orders {
		highest = max(highest, order.TotalPrice())
	}
	var largest []*Order
	for _, order := range b.orders {
		if math.Abs(order.TotalPrice()-highest) < largestOrderTolerance {
			largest = append(largest, order)
		}
	}
	SortOrders(largest)
	return largest
}

// AuditIncomeByProduct sums price times quantity over every line of every
// order that sells product.
func (b *OrderBatch) AuditIncomeByProduct(product Product) float64 {
	var income float64
	for _, order := range b.orders {
		for _, item := range order.Items() {
			if SameProduct(item.Product(), product) {
				income += item.Product().Price() * float64(item.Quantity())
			}
		}
	}
	return income
}

// String renders the batch report: the bill of every order, oldest first,
// framed by separator lines.
func (b *OrderBatch) String() string {
	sorted := slices.Clone(b.orders)
	slices.SortStableFunc(sorted, func(x, y *Order) int {
		return x.OrderDate().Compare(y.OrderDate())
	})

	var sb strings.Builder
	for _, order := range sorted {
		sb.WriteString(reportSeparator)
		sb.WriteByte('\n')
		sb.WriteString(order.Bill())
		sb.WriteByte('\n')
	}
	sb.WriteString(reportSeparator)

	return trailingTaxZero.ReplaceAllString(sb.String(), "${1}")
}
