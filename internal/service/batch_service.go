package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cloud-wave-best-zizon/order-batch-service/internal/domain"
	"github.com/cloud-wave-best-zizon/order-batch-service/internal/events"
	"github.com/cloud-wave-best-zizon/order-batch-service/internal/repository"
	"go.uber.org/zap"
)

type OrderArchive interface {
	SaveOrder(ctx context.Context, rec repository.OrderRecord) error
	GetOrder(ctx context.Context, orderID string) (*repository.OrderRecord, error)
}

type OrderEventPublisher interface {
	PublishOrderPlaced(event events.OrderPlacedEvent) error
}

type DeliveryPublisher interface {
	PublishDelivered(ctx context.Context, event events.OrderDeliveredEvent) error
}

type placedOrder struct {
	order     *domain.Order
	batchName string
	// version counts snapshots; the archive keeps the highest one.
	version int64
}

// BatchService owns the product catalog, the batches and their orders. The
// domain types are not safe for concurrent use, so every read and write of
// them happens under mu. Archiving and publishing run after mu is released.
type BatchService struct {
	mu       sync.Mutex
	products map[string]domain.Product
	batches  map[string]*domain.OrderBatch
	orders   map[string]*placedOrder

	archive     OrderArchive
	orderEvents OrderEventPublisher
	deliveries  DeliveryPublisher
	now         func() time.Time
	logger      *zap.Logger
}

type Option func(*BatchService)

// WithClock sets the clock used for delivery dates and archive timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *BatchService) {
		s.now = now
	}
}

// NewBatchService wires the service. archive may be nil, in which case
// snapshots are not written.
func NewBatchService(archive OrderArchive, orderEvents OrderEventPublisher, deliveries DeliveryPublisher, logger *zap.Logger, opts ...Option) *BatchService {
	s := &BatchService{
		products:    make(map[string]domain.Product),
		batches:     make(map[string]*domain.OrderBatch),
		orders:      make(map[string]*placedOrder),
		archive:     archive,
		orderEvents: orderEvents,
		deliveries:  deliveries,
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sideEffects collects the writes to run once the lock is released.
type sideEffects struct {
	records   []repository.OrderRecord
	placed    []events.OrderPlacedEvent
	delivered []events.OrderDeliveredEvent
}

// snapshot must run under mu so versions follow the order of mutations.
func (s *BatchService) snapshot(fx *sideEffects, p *placedOrder) {
	p.version++
	if s.archive != nil {
		rec := repository.NewOrderRecord(p.batchName, p.order, s.now())
		rec.Version = p.version
		fx.records = append(fx.records, rec)
	}
}

// flush archives and publishes. Failures are logged only; the in-memory state
// stays authoritative.
func (s *BatchService) flush(ctx context.Context, fx sideEffects) {
	for _, rec := range fx.records {
		if err := s.archive.SaveOrder(ctx, rec); err != nil {
			s.logger.Error("Failed to archive order",
				zap.String("order_id", rec.OrderID),
				zap.Error(err))
		}
	}
	for _, event := range fx.placed {
		if err := s.orderEvents.PublishOrderPlaced(event); err != nil {
			s.logger.Error("Failed to publish event",
				zap.String("order_id", event.OrderID),
				zap.Error(err))
		}
	}
	for _, event := range fx.delivered {
		if err := s.deliveries.PublishDelivered(ctx, event); err != nil {
			s.logger.Error("Failed to publish delivery event",
				zap.String("order_id", event.OrderID),
				zap.Error(err))
		}
	}
}

func (s *BatchService) RegisterProduct(ctx context.Context, in ProductInput) (ProductAudit, error) {
	var (
		product domain.Product
		err     error
	)
	switch in.Kind {
	case domain.KindPrintedBook:
		product, err = domain.NewPrintedBook(in.Name, in.Price, in.PrintingCost)
	case domain.KindMerchandising:
		product, err = domain.NewMerchandising(in.Name, in.Price, in.FabricationCost, in.PackagingCost)
	default:
		return ProductAudit{}, fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}
	if err != nil {
		return ProductAudit{}, fmt.Errorf("register product: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.Name()]; ok {
		return ProductAudit{}, fmt.Errorf("%w: %s", ErrProductExists, product.Name())
	}
	s.products[product.Name()] = product

	s.logger.Info("Product registered",
		zap.String("product", product.Name()),
		zap.String("kind", string(product.Kind())),
		zap.Float64("price", product.Price()))

	return newProductAudit(product), nil
}

func (s *BatchService) product(name string) (domain.Product, error) {
	p, ok := s.products[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, name)
	}
	return p, nil
}

// RecordSale adds units to the product's sold units.
func (s *BatchService) RecordSale(ctx context.Context, name string, units int) (ProductAudit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.product(name)
	if err != nil {
		return ProductAudit{}, err
	}
	p.AddSoldUnits(units)
	return newProductAudit(p), nil
}

func (s *BatchService) AuditProduct(ctx context.Context, name string) (ProductAudit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.product(name)
	if err != nil {
		return ProductAudit{}, err
	}
	return newProductAudit(p), nil
}

func (s *BatchService) CreateBatch(ctx context.Context, name, description string) (BatchSummary, error) {
	if strings.TrimSpace(name) == "" {
		return BatchSummary{}, ErrEmptyBatchName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.batches[name]; ok {
		return BatchSummary{}, fmt.Errorf("%w: %s", ErrBatchExists, name)
	}
	batch := domain.NewOrderBatch(name, description, domain.WithClock(s.now))
	s.batches[name] = batch

	s.logger.Info("Batch created", zap.String("batch", name))
	return newBatchSummary(batch), nil
}

// UpdateBatch replaces the description of a batch.
func (s *BatchService) UpdateBatch(ctx context.Context, name, description string) (BatchSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.batch(name)
	if err != nil {
		return BatchSummary{}, err
	}
	batch.SetDescription(description)
	return newBatchSummary(batch), nil
}

func (s *BatchService) batch(name string) (*domain.OrderBatch, error) {
	b, ok := s.batches[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBatchNotFound, name)
	}
	return b, nil
}

func (s *BatchService) placed(orderID string) (*placedOrder, error) {
	p, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return p, nil
}

// PlaceOrder builds an order for user with the given lines and adds it to the
// batch. It returns false, and keeps nothing, when the batch is full or the
// lines do not fit in one order.
func (s *BatchService) PlaceOrder(ctx context.Context, batchName string, user domain.User, orderDate time.Time, items []ItemInput, requestID string) (OrderView, bool, error) {
	var fx sideEffects
	defer func() { s.flush(ctx, fx) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.batch(batchName)
	if err != nil {
		return OrderView{}, false, err
	}
	if batch.IsFull() {
		s.logger.Warn("Batch is full", zap.String("batch", batchName))
		return OrderView{}, false, nil
	}

	order, err := domain.NewOrder(&user, orderDate)
	if err != nil {
		return OrderView{}, false, fmt.Errorf("place order: %w", err)
	}
	for _, in := range items {
		p, err := s.product(in.ProductName)
		if err != nil {
			return OrderView{}, false, err
		}
		ok, err := order.AddOrderItem(p, in.Quantity)
		if err != nil {
			return OrderView{}, false, fmt.Errorf("place order: %w", err)
		}
		if !ok {
			s.logger.Warn("Order is full",
				zap.String("batch", batchName),
				zap.Int("items", len(items)))
			return OrderView{}, false, nil
		}
	}

	added, err := batch.AddOrder(order)
	if err != nil || !added {
		return OrderView{}, false, err
	}
	placed := &placedOrder{order: order, batchName: batchName}
	s.orders[order.ID()] = placed

	s.snapshot(&fx, placed)
	fx.placed = append(fx.placed, events.NewOrderPlacedEvent(batchName, order, requestID, s.now()))

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID()),
		zap.String("batch", batchName),
		zap.String("user", user.Email),
		zap.Float64("total_price", order.TotalPrice()))

	return newOrderView(batchName, order), true, nil
}

func (s *BatchService) Order(ctx context.Context, orderID string) (OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.placed(orderID)
	if err != nil {
		return OrderView{}, err
	}
	return newOrderView(p.batchName, p.order), nil
}

// AddItem appends a line to an order. It returns false when the order is full.
func (s *BatchService) AddItem(ctx context.Context, orderID, productName string, quantity int) (OrderView, bool, error) {
	var fx sideEffects
	defer func() { s.flush(ctx, fx) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.placed(orderID)
	if err != nil {
		return OrderView{}, false, err
	}
	product, err := s.product(productName)
	if err != nil {
		return OrderView{}, false, err
	}
	ok, err := p.order.AddOrderItem(product, quantity)
	if err != nil {
		return OrderView{}, false, fmt.Errorf("add order item: %w", err)
	}
	if ok {
		s.snapshot(&fx, p)
	}
	return newOrderView(p.batchName, p.order), ok, nil
}

// RemoveItem takes quantity units of a product off an order. It returns false
// when the order has no line for that product.
func (s *BatchService) RemoveItem(ctx context.Context, orderID, productName string, quantity int) (OrderView, bool, error) {
	var fx sideEffects
	defer func() { s.flush(ctx, fx) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.placed(orderID)
	if err != nil {
		return OrderView{}, false, err
	}
	product, err := s.product(productName)
	if errors.Is(err, ErrProductNotFound) {
		return newOrderView(p.batchName, p.order), false, nil
	}
	removed := p.order.RemoveOrderItem(product, quantity)
	if removed {
		s.snapshot(&fx, p)
	}
	return newOrderView(p.batchName, p.order), removed, nil
}

// SetDeliveryDate sets or, with nil, clears the delivery date of an order.
func (s *BatchService) SetDeliveryDate(ctx context.Context, orderID string, date *time.Time) (OrderView, error) {
	var fx sideEffects
	defer func() { s.flush(ctx, fx) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.placed(orderID)
	if err != nil {
		return OrderView{}, err
	}
	if err := p.order.SetDeliveryDate(date); err != nil {
		return OrderView{}, fmt.Errorf("set delivery date: %w", err)
	}
	s.snapshot(&fx, p)
	return newOrderView(p.batchName, p.order), nil
}

// RemoveOrder drops an order from its batch and from the service.
func (s *BatchService) RemoveOrder(ctx context.Context, batchName, orderID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.batch(batchName)
	if err != nil {
		return false, err
	}
	p, ok := s.orders[orderID]
	if !ok || p.batchName != batchName {
		return false, nil
	}
	removed, err := batch.Remove(p.order)
	if err != nil {
		return false, err
	}
	if removed {
		delete(s.orders, orderID)
		s.logger.Info("Order removed",
			zap.String("order_id", orderID),
			zap.String("batch", batchName))
	}
	return removed, nil
}

// DeliverAfter marks as delivered today every order of the batch placed after
// date. Orders delivered before a failure are still archived and announced.
func (s *BatchService) DeliverAfter(ctx context.Context, batchName string, date time.Time, requestID string) ([]OrderView, error) {
	var fx sideEffects
	defer func() { s.flush(ctx, fx) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.batch(batchName)
	if err != nil {
		return nil, err
	}
	delivered, deliverErr := batch.DeliverOrdersAfterDate(date)

	views := make([]OrderView, 0, len(delivered))
	for _, order := range delivered {
		if p, ok := s.orders[order.ID()]; ok {
			s.snapshot(&fx, p)
		}
		fx.delivered = append(fx.delivered, events.NewOrderDeliveredEvent(batchName, order, requestID, s.now()))
		views = append(views, newOrderView(batchName, order))
	}

	if deliverErr != nil {
		s.logger.Error("Bulk delivery aborted",
			zap.String("batch", batchName),
			zap.Int("delivered", len(delivered)),
			zap.Error(deliverErr))
		return views, fmt.Errorf("deliver orders: %w", deliverErr)
	}

	s.logger.Info("Orders delivered",
		zap.String("batch", batchName),
		zap.Int("delivered", len(delivered)))
	return views, nil
}

func (s *BatchService) LargestOrders(ctx context.Context, batchName string) ([]OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.batch(batchName)
	if err != nil {
		return nil, err
	}
	largest := batch.LargestOrders()
	views := make([]OrderView, 0, len(largest))
	for _, order := range largest {
		views = append(views, newOrderView(batchName, order))
	}
	return views, nil
}

// AuditIncome returns the gross revenue of a product across the batch.
func (s *BatchService) AuditIncome(ctx context.Context, batchName, productName string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.batch(batchName)
	if err != nil {
		return 0, err
	}
	product, err := s.product(productName)
	if err != nil {
		return 0, err
	}
	return batch.AuditIncomeByProduct(product), nil
}

func (s *BatchService) Report(ctx context.Context, batchName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.batch(batchName)
	if err != nil {
		return "", err
	}
	return batch.String(), nil
}

// ArchivedOrder reads the last snapshot written for an order.
func (s *BatchService) ArchivedOrder(ctx context.Context, orderID string) (*repository.OrderRecord, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	rec, err := s.archive.GetOrder(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return rec, err
}
