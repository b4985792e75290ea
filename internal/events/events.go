package events

import (
	"time"

	"github.com/cloud-wave-best-zizon/order-batch-service/internal/domain"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type ItemLine struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// OrderPlacedEvent is published when an order joins a batch.
type OrderPlacedEvent struct {
	EventID     string     `json:"event_id"`
	OrderID     string     `json:"order_id"`
	BatchName   string     `json:"batch_name"`
	UserEmail   string     `json:"user_email"`
	OrderDate   string     `json:"order_date"`
	TotalAmount float64    `json:"total_amount"`
	Tax         float64    `json:"tax"`
	Items       []ItemLine `json:"items"`
	Timestamp   time.Time  `json:"timestamp"`
	RequestID   string     `json:"request_id,omitempty"`
}

// OrderDeliveredEvent is published for every order a bulk delivery touched.
type OrderDeliveredEvent struct {
	EventID      string    `json:"event_id"`
	OrderID      string    `json:"order_id"`
	BatchName    string    `json:"batch_name"`
	DeliveryDate string    `json:"delivery_date"`
	Timestamp    time.Time `json:"timestamp"`
	RequestID    string    `json:"request_id,omitempty"`
}

func NewOrderPlacedEvent(batchName string, order *domain.Order, requestID string, at time.Time) OrderPlacedEvent {
	total := order.TotalPrice()
	event := OrderPlacedEvent{
		EventID:     uuid.New().String(),
		OrderID:     order.ID(),
		BatchName:   batchName,
		OrderDate:   order.OrderDate().Format(dateLayout),
		TotalAmount: total,
		Tax:         order.TaxValue(total),
		Items:       make([]ItemLine, 0, order.ItemCount()),
		Timestamp:   at.UTC(),
		RequestID:   requestID,
	}
	if order.User() != nil {
		event.UserEmail = order.User().Email
	}
	for _, item := range order.Items() {
		event.Items = append(event.Items, ItemLine{
			ProductName: item.Product().Name(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.Product().Price(),
		})
	}
	return event
}

func NewOrderDeliveredEvent(batchName string, order *domain.Order, requestID string, at time.Time) OrderDeliveredEvent {
	event := OrderDeliveredEvent{
		EventID:   uuid.New().String(),
		OrderID:   order.ID(),
		BatchName: batchName,
		Timestamp: at.UTC(),
		RequestID: requestID,
	}
	if d := order.DeliveryDate(); d != nil {
		event.DeliveryDate = d.Format(dateLayout)
	}
	return event
}
