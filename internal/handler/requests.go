package handler

import "github.com/cloud-wave-best-zizon/order-batch-service/internal/domain"

type createProductRequest struct {
	Kind            domain.ProductKind `json:"kind" binding:"required"`
	Name            string             `json:"name"`
	Price           float64            `json:"price"`
	PrintingCost    float64            `json:"printing_cost"`
	FabricationCost float64            `json:"fabrication_cost"`
	PackagingCost   float64            `json:"packaging_cost"`
}

type recordSaleRequest struct {
	Units int `json:"units"`
}

type createBatchRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateBatchRequest struct {
	Description string `json:"description"`
}

type userRequest struct {
	Name    string          `json:"name"`
	Email   string          `json:"email" binding:"required"`
	Address *domain.Address `json:"address"`
}

type itemRequest struct {
	Product  string `json:"product" binding:"required"`
	Quantity int    `json:"quantity"`
}

type placeOrderRequest struct {
	User      userRequest   `json:"user" binding:"required"`
	OrderDate string        `json:"order_date" binding:"required"`
	Items     []itemRequest `json:"items" binding:"dive"`
}

type deliverRequest struct {
	After string `json:"after" binding:"required"`
}

// deliveryDateRequest clears the delivery date when Date is null or missing.
type deliveryDateRequest struct {
	Date *string `json:"date"`
}
