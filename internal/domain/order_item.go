package domain

import "fmt"

// OrderItem is one line of an Order: a product and how many units of it.
type OrderItem struct {
	product  Product
	order    *Order
	quantity int
}

// NewOrderItem creates a line for product owned by order. The quantity is
// clamped like SetQuantity does.
func NewOrderItem(order *Order, product Product, quantity int) (*OrderItem, error) {
	if product == nil {
		return nil, ErrNullProduct
	}
	if order == nil {
		return nil, ErrNullOrder
	}
	item := &OrderItem{product: product, order: order}
	item.SetQuantity(quantity)
	return item, nil
}

func (i *OrderItem) Product() Product { return i.product }

// Order returns the order this line belongs to.
func (i *OrderItem) Order() *Order { return i.order }

func (i *OrderItem) Quantity() int { return i.quantity }

// SetQuantity sets the quantity. Values below 1 become 1; they are never
// rejected.
func (i *OrderItem) SetQuantity(quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	i.quantity = quantity
}

// TotalPrice is the product price times the quantity.
func (i *OrderItem) TotalPrice() float64 {
	return i.product.Price() * float64(i.quantity)
}

func (i *OrderItem) TaxValue(total float64) float64 {
	return TaxValue(total)
}

func (i *OrderItem) Bill() string {
	total := i.TotalPrice()
	return fmt.Sprintf("Product: %s | Quantity: %d | Price: %s | Tax: %s",
		i.product.Name(), i.quantity, formatFixed(total, 1), formatFixed(i.TaxValue(total), 2))
}

// Equal compares the product and the owning order; quantity is ignored.
func (i *OrderItem) Equal(other *OrderItem) bool {
	if i == other {
		return true
	}
	if i == nil || other == nil {
		return false
	}
	return SameProduct(i.product, other.product) && i.order == other.order
}
