package service

import "github.com/cloud-wave-best-zizon/order-batch-service/internal/domain"

const dateLayout = "2006-01-02"

type ProductInput struct {
	Kind            domain.ProductKind
	Name            string
	Price           float64
	PrintingCost    float64
	FabricationCost float64
	PackagingCost   float64
}

type ItemInput struct {
	ProductName string
	Quantity    int
}

type ProductAudit struct {
	Name        string             `json:"name"`
	Kind        domain.ProductKind `json:"kind"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	SoldUnits   int                `json:"sold_units"`
	Benefit     float64            `json:"benefit"`
}

func newProductAudit(p domain.Product) ProductAudit {
	return ProductAudit{
		Name:        p.Name(),
		Kind:        p.Kind(),
		Description: p.DescribeProduct(),
		Price:       p.Price(),
		SoldUnits:   p.SoldUnits(),
		Benefit:     p.AuditBenefits(),
	}
}

type BatchSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Orders      int    `json:"orders"`
	MaxSize     int    `json:"max_size"`
}

func newBatchSummary(b *domain.OrderBatch) BatchSummary {
	return BatchSummary{
		Name:        b.Name(),
		Description: b.Description(),
		Orders:      b.Len(),
		MaxSize:     b.MaxSize(),
	}
}

type ItemView struct {
	Product    string             `json:"product"`
	Kind       domain.ProductKind `json:"kind"`
	Quantity   int                `json:"quantity"`
	TotalPrice float64            `json:"total_price"`
}

type OrderView struct {
	ID           string     `json:"id"`
	BatchName    string     `json:"batch_name"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	OrderDate    string     `json:"order_date"`
	DeliveryDate string     `json:"delivery_date,omitempty"`
	Items        []ItemView `json:"items"`
	TotalPrice   float64    `json:"total_price"`
	Tax          float64    `json:"tax"`
	Bill         string     `json:"bill"`
}

func newOrderView(batchName string, o *domain.Order) OrderView {
	total := o.TotalPrice()
	view := OrderView{
		ID:         o.ID(),
		BatchName:  batchName,
		UserName:   o.User().Name,
		UserEmail:  o.User().Email,
		OrderDate:  o.OrderDate().Format(dateLayout),
		Items:      make([]ItemView, 0, o.ItemCount()),
		TotalPrice: total,
		Tax:        o.TaxValue(total),
		Bill:       o.Bill(),
	}
	if d := o.DeliveryDate(); d != nil {
		view.DeliveryDate = d.Format(dateLayout)
	}
	for _, item := range o.Items() {
		view.Items = append(view.Items, ItemView{
			Product:    item.Product().Name(),
			Kind:       item.Product().Kind(),
			Quantity:   item.Quantity(),
			TotalPrice: item.TotalPrice(),
		})
	}
	return view
}
