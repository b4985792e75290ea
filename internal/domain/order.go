package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxOrderItems is the number of lines an order can hold.
const MaxOrderItems = 10

// Order is a customer purchase made of up to MaxOrderItems lines.
type Order struct {
	id           string
	user         *User
	orderDate    time.Time
	deliveryDate *time.Time
	items        []*OrderItem
}

// NewOrder creates an empty order for user placed on orderDate. Only the
// calendar day of orderDate is kept.
func NewOrder(user *User, orderDate time.Time) (*Order, error) {
	if user == nil {
		return nil, ErrNullUser
	}
	return &Order{
		id:        uuid.New().String(),
		user:      user,
		orderDate: DateOf(orderDate),
		items:     make([]*OrderItem, 0, MaxOrderItems),
	}, nil
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (o *Order) ID() string { return o.id }

func (o *Order) User() *User { return o.user }

func (o *Order) OrderDate() time.Time { return o.orderDate }

func (o *Order) SetOrderDate(date time.Time) { o.orderDate = DateOf(date) }

// DeliveryDate returns nil while the order has not been delivered.
func (o *Order) DeliveryDate() *time.Time {
	if o.deliveryDate == nil {
		return nil
	}
	d := *o.deliveryDate
	return &d
}

// SetDeliveryDate sets or, with nil, clears the delivery date.
func (o *Order) SetDeliveryDate(date *time.Time) error {
	if date == nil {
		o.deliveryDate = nil
		return nil
	}
	d := DateOf(*date)
	if d.Before(o.orderDate) {
		return ErrInvalidDeliveryDate
	}
	o.deliveryDate = &d
	return nil
}

// Items returns a copy of the current lines in insertion order.
func (o *Order) Items() []*OrderItem {
	return slices.Clone(o.items)
}

func (o *Order) ItemCount() int { return len(o.items) }

// AddOrderItem appends a new line. It returns false when the order already
// holds MaxOrderItems lines. Adding a product twice creates two lines.
func (o *Order) AddOrderItem(product Product, quantity int) (bool, error) {
	if product == nil {
		return false, ErrNullProduct
	}
	if quantity <= 0 {
		return false, ErrInvalidQuantity
	}
	if len(o.items) >= MaxOrderItems {
		return false, nil
	}
	item, err := NewOrderItem(o, product, quantity)
	if err != nil {
		return false, err
	}
	o.items = append(o.items, item)
	return true, nil
}

// RemoveOrderItem takes quantity units of product off the first matching line.
// The line is deleted when nothing is left and later lines move up.
func (o *Order) RemoveOrderItem(product Product, quantity int) bool {
	idx := o.itemIndex(product)
	if idx == -1 {
		return false
	}
	item := o.items[idx]
	left := item.Quantity() - quantity
	if left <= 0 {
		o.items = slices.Delete(o.items, idx, idx+1)
	} else {
		item.SetQuantity(left)
	}
	return true
}

func (o *Order) itemIndex(product Product) int {
	return slices.IndexFunc(o.items, func(item *OrderItem) bool {
		return SameProduct(item.Product(), product)
	})
}

// TotalPrice sums the total price of every line.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, item := range o.items {
		total += item.TotalPrice()
	}
	return total
}

func (o *Order) TaxValue(total float64) float64 {
	return TaxValue(total)
}

// Bill renders one numbered line per item and a total line. The total tax is
// computed on the order total, not summed from the lines.
func (o *Order) Bill() string {
	var sb strings.Builder
	for i, item := range o.items {
		fmt.Fprintf(&sb, "#%d: %s\n", i+1, item.Bill())
	}
	total := o.TotalPrice()
	fmt.Fprintf(&sb, "TOTAL = %s | Tax: %s", formatFixed(total, 1), formatFixed(o.TaxValue(total), 1))
	return sb.String()
}

// Compare orders o and other most recent first, then most expensive first.
// It returns a negative number when o sorts before other.
func (o *Order) Compare(other *Order) int {
	if c := other.orderDate.Compare(o.orderDate); c != 0 {
		return c
	}
	return cmp.Compare(other.TotalPrice(), o.TotalPrice())
}

// SortOrders sorts orders in place by Compare.
func SortOrders(orders []*Order) {
	slices.SortStableFunc(orders, (*Order).Compare)
}
