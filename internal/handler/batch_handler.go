package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cloud-wave-best-zizon/order-batch-service/internal/domain"
	"github.com/cloud-wave-best-zizon/order-batch-service/internal/service"
	"github.com/cloud-wave-best-zizon/order-batch-service/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type BatchHandler struct {
	batchService *service.BatchService
	logger       *zap.Logger
}

func NewBatchHandler(batchService *service.BatchService, logger *zap.Logger) *BatchHandler {
	return &BatchHandler{
		batchService: batchService,
		logger:       logger,
	}
}

// RegisterRoutes mounts every endpoint on rg.
func (h *BatchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/products", h.RegisterProduct)
	rg.POST("/products/:name/sales", h.RecordSale)
	rg.GET("/products/:name/audit", h.AuditProduct)

	rg.POST("/batches", h.CreateBatch)
	rg.PUT("/batches/:name", h.UpdateBatch)
	rg.POST("/batches/:name/orders", h.PlaceOrder)
	rg.DELETE("/batches/:name/orders/:id", h.RemoveOrder)
	rg.POST("/batches/:name/deliveries", h.DeliverAfter)
	rg.GET("/batches/:name/largest", h.LargestOrders)
	rg.GET("/batches/:name/income", h.AuditIncome)
	rg.GET("/batches/:name/report", h.Report)

	rg.GET("/orders/:id", h.GetOrder)
	rg.GET("/orders/:id/archive", h.GetArchivedOrder)
	rg.POST("/orders/:id/items", h.AddItem)
	rg.DELETE("/orders/:id/items", h.RemoveItem)
	rg.PUT("/orders/:id/delivery", h.SetDeliveryDate)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrBatchNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrBatchExists),
		errors.Is(err, service.ErrProductExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrArchiveDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrUnknownKind),
		errors.Is(err, service.ErrEmptyBatchName),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrNullProduct),
		errors.Is(err, domain.ErrNullOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNullUser),
		errors.Is(err, domain.ErrInvalidDeliveryDate),
		errors.Is(err, domain.ErrNullOrderArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *BatchHandler) fail(c *gin.Context, err error) {
	requestID := c.GetString(middleware.RequestIDKey)
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("request_id", requestID),
			zap.Error(err))
	}
	c.JSON(status, gin.H{
		"error":      err.Error(),
		"request_id": requestID,
	})
}

func (h *BatchHandler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return false
	}
	return true
}

func parseDate(c *gin.Context, field, value string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD", field),
		})
		return time.Time{}, false
	}
	return t, true
}

func (h *BatchHandler) RegisterProduct(c *gin.Context) {
	var req createProductRequest
	if !h.bind(c, &req) {
		return
	}
	audit, err := h.batchService.RegisterProduct(c.Request.Context(), service.ProductInput{
		Kind:            req.Kind,
		Name:            req.Name,
		Price:           req.Price,
		PrintingCost:    req.PrintingCost,
		FabricationCost: req.FabricationCost,
		PackagingCost:   req.PackagingCost,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, audit)
}

func (h *BatchHandler) RecordSale(c *gin.Context) {
	var req recordSaleRequest
	if !h.bind(c, &req) {
		return
	}
	audit, err := h.batchService.RecordSale(c.Request.Context(), c.Param("name"), req.Units)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, audit)
}

func (h *BatchHandler) AuditProduct(c *gin.Context) {
	audit, err := h.batchService.AuditProduct(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, audit)
}

func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req createBatchRequest
	if !h.bind(c, &req) {
		return
	}
	summary, err := h.batchService.CreateBatch(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

func (h *BatchHandler) UpdateBatch(c *gin.Context) {
	var req updateBatchRequest
	if !h.bind(c, &req) {
		return
	}
	summary, err := h.batchService.UpdateBatch(c.Request.Context(), c.Param("name"), req.Description)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *BatchHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if !h.bind(c, &req) {
		return
	}
	orderDate, ok := parseDate(c, "order_date", req.OrderDate)
	if !ok {
		return
	}

	items := make([]service.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.ItemInput{ProductName: item.Product, Quantity: item.Quantity})
	}
	user := domain.User{Name: req.User.Name, Email: req.User.Email, Address: req.User.Address}

	requestID := c.GetString(middleware.RequestIDKey)
	order, added, err := h.batchService.PlaceOrder(c.Request.Context(), c.Param("name"), user, orderDate, items, requestID)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !added {
		c.JSON(http.StatusConflict, gin.H{
			"added": false,
			"error": "batch is full or the order has too many items",
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"added": true, "order": order})
}

func (h *BatchHandler) RemoveOrder(c *gin.Context) {
	removed, err := h.batchService.RemoveOrder(c.Request.Context(), c.Param("name"), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func (h *BatchHandler) DeliverAfter(c *gin.Context) {
	var req deliverRequest
	if !h.bind(c, &req) {
		return
	}
	after, ok := parseDate(c, "after", req.After)
	if !ok {
		return
	}
	requestID := c.GetString(middleware.RequestIDKey)
	delivered, err := h.batchService.DeliverAfter(c.Request.Context(), c.Param("name"), after, requestID)
	if err != nil {
		// Orders delivered before the failure stay delivered; report them.
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Request failed",
				zap.String("request_id", requestID),
				zap.Error(err))
		}
		c.JSON(status, gin.H{
			"error":      err.Error(),
			"request_id": requestID,
			"delivered":  delivered,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivered": delivered})
}

func (h *BatchHandler) LargestOrders(c *gin.Context) {
	orders, err := h.batchService.LargestOrders(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *BatchHandler) AuditIncome(c *gin.Context) {
	product := c.Query("product")
	if product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product query parameter is required"})
		return
	}
	income, err := h.batchService.AuditIncome(c.Request.Context(), c.Param("name"), product)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"batch":   c.Param("name"),
		"product": product,
		"income":  income,
	})
}

func (h *BatchHandler) Report(c *gin.Context) {
	report, err := h.batchService.Report(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, report)
}

func (h *BatchHandler) GetOrder(c *gin.Context) {
	order, err := h.batchService.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *BatchHandler) GetArchivedOrder(c *gin.Context) {
	rec, err := h.batchService.ArchivedOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *BatchHandler) AddItem(c *gin.Context) {
	var req itemRequest
	if !h.bind(c, &req) {
		return
	}
	order, added, err := h.batchService.AddItem(c.Request.Context(), c.Param("id"), req.Product, req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	status := http.StatusOK
	if !added {
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"added": added, "order": order})
}

func (h *BatchHandler) RemoveItem(c *gin.Context) {
	var req itemRequest
	if !h.bind(c, &req) {
		return
	}
	order, removed, err := h.batchService.RemoveItem(c.Request.Context(), c.Param("id"), req.Product, req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed, "order": order})
}

func (h *BatchHandler) SetDeliveryDate(c *gin.Context) {
	var req deliveryDateRequest
	if !h.bind(c, &req) {
		return
	}
	var date *time.Time
	if req.Date != nil {
		d, ok := parseDate(c, "date", *req.Date)
		if !ok {
			return
		}
		date = &d
	}
	order, err := h.batchService.SetDeliveryDate(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
