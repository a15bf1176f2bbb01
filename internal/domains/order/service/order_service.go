package service

import (
	"context"
	"errors"
	"time"

	"arte-gallery-backend/internal/domains/order/model"
	"arte-gallery-backend/internal/domains/order/repository"
	productrepo "arte-gallery-backend/internal/domains/product/repository"
	"arte-gallery-backend/internal/domains/relation"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/infrastructure/queue"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/apperror"
	"arte-gallery-backend/internal/shared/utils"
	"arte-gallery-backend/pkg/logger"
)

type OrderService struct {
	repo        repository.Repository
	inventory   ProductInventory
	maintainer  *relation.Maintainer
	dispatcher  queue.Dispatcher
	orderPrefix string
}

func NewService(
	repo repository.Repository,
	inventory ProductInventory,
	maintainer *relation.Maintainer,
	dispatcher queue.Dispatcher,
	orderPrefix string,
) ServiceInterface {
	return &OrderService{
		repo:        repo,
		inventory:   inventory,
		maintainer:  maintainer,
		dispatcher:  dispatcher,
		orderPrefix: orderPrefix,
	}
}

// CreateOrder runs the fixed five-step sequence: stock pre-check, order
// persist, atomic conditional stock decrement, best-effort user link,
// best-effort confirmation. The store offers no multi-document
// transaction, so completed steps stay in place when a later one fails;
// an order whose decrement lost the race is left pending for
// administrative reconciliation.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, req model.CreateOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	// Step 1: fetch each product and verify stock. Abort before any
	// mutation; no partial order is created.
	items := make([]model.LineItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := s.inventory.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < line.Quantity {
			return nil, apperror.InsufficientStock(product.ID, product.Name, line.Quantity, product.Stock)
		}
		items = append(items, model.LineItem{
			ProductID:       product.ID,
			Name:            product.Name,
			Quantity:        line.Quantity,
			PriceAtPurchase: product.Price,
		})
	}

	// Step 2: persist the order with a per-line price snapshot.
	order := &model.Order{
		OrderNumber:     utils.GenerateOrderNumber(s.orderPrefix),
		UserID:          userID,
		Email:           req.Email,
		Items:           items,
		Total:           model.ComputeTotal(items),
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentPending,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Step 3: conditional atomic decrement per line. A decrement that
	// finds less stock than the pre-check saw lost a race to a concurrent
	// order; the persisted order stays pending and the caller gets the
	// current availability.
	for _, item := range order.Items {
		if _, err := s.inventory.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, productrepo.ErrStockConflict) {
				available := 0
				if product, perr := s.inventory.GetByID(ctx, item.ProductID); perr == nil {
					available = product.Stock
				}
				logger.Warn("Order lost stock race, left pending for reconciliation", map[string]interface{}{
					"orderId":     order.ID,
					"orderNumber": order.OrderNumber,
					"productId":   item.ProductID,
				})
				return nil, apperror.InsufficientStock(item.ProductID, item.Name, item.Quantity, available)
			}
			logger.Error("stock decrement failed", err)
			return nil, apperror.Internal(err)
		}
	}

	// Step 4: best-effort back-reference onto the purchaser's account.
	if userID != "" {
		s.maintainer.Attach(ctx, docstore.CollUsers, "orders", []string{userID}, order.ID)
	}

	// Step 5: best-effort confirmation to the captured shipping email.
	sketches := make([]shared.OrderItemSketch, len(order.Items))
	for i, item := range order.Items {
		sketches[i] = shared.OrderItemSketch{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.PriceAtPurchase,
		}
	}
	s.dispatcher.Dispatch(shared.TypeOrderConfirmed, shared.OrderConfirmedPayload{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Email:       order.Email,
		FirstName:   order.ShippingAddress.FirstName,
		Total:       order.Total,
		Items:       sketches,
		CreatedAt:   order.CreatedAt,
	})

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID, actorID string, isAdmin bool) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && (order.UserID == "" || order.UserID != actorID) {
		return nil, apperror.Forbidden("this order belongs to another account")
	}
	return order, nil
}

// TrackByNumber is the public tracking lookup; it exposes the order by its
// number without authentication, the way a carrier tracking page would.
func (s *OrderService) TrackByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	return s.repo.GetByNumber(ctx, orderNumber)
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]model.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *OrderService) ListOrders(ctx context.Context, req model.ListOrdersRequest) ([]model.Order, int, error) {
	req.Normalize()
	return s.repo.List(ctx, req)
}

// UpdateStatus applies an admin status transition, appends one tracking
// event, and notifies the captured shipping email.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, actorID string, req model.UpdateOrderStatusRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(order.Status, req.Status) {
		return nil, apperror.InvalidTransition("cannot move order from " + order.Status + " to " + req.Status)
	}

	if req.Status == model.StatusCancelled {
		s.restock(ctx, order)
	}

	order.Status = req.Status
	if req.Carrier != "" {
		order.Tracking.Carrier = req.Carrier
	}
	if req.TrackingNumber != "" {
		order.Tracking.TrackingNumber = req.TrackingNumber
	}
	order.AppendTrackingEvent(model.TrackingStatusFor(req.Status), req.Location, req.Description, time.Now().UTC())

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order status changed", map[string]interface{}{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"status":      order.Status,
		"actorId":     actorID,
	})
	s.notifyStatus(order)
	return order, nil
}

// CancelOrder lets the purchaser cancel while the order is still pending
// or processing. Stock is restored line by line.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, actorID string, isAdmin bool) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && (order.UserID == "" || order.UserID != actorID) {
		return nil, apperror.Forbidden("this order belongs to another account")
	}
	if !model.CanTransition(order.Status, model.StatusCancelled) {
		return nil, apperror.InvalidTransition("order in status " + order.Status + " can no longer be cancelled")
	}

	s.restock(ctx, order)

	order.Status = model.StatusCancelled
	order.AppendTrackingEvent(model.TrackingStatusFor(model.StatusCancelled), "", "cancelled by customer", time.Now().UTC())
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.notifyStatus(order)
	return order, nil
}

// restock returns each line's quantity to inventory. Best-effort: a line
// that fails is logged and skipped, matching the no-rollback stance of
// the creation sequence.
func (s *OrderService) restock(ctx context.Context, order *model.Order) {
	for _, item := range order.Items {
		if _, err := s.inventory.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Warn("Restock failed, needs reconciliation", map[string]interface{}{
				"orderId":   order.ID,
				"productId": item.ProductID,
				"quantity":  item.Quantity,
				"error":     err.Error(),
			})
		}
	}
}

func (s *OrderService) notifyStatus(order *model.Order) {
	s.dispatcher.Dispatch(shared.TypeOrderStatusChanged, shared.OrderStatusChangedPayload{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		Email:          order.Email,
		FirstName:      order.ShippingAddress.FirstName,
		Status:         order.Status,
		TrackingNumber: order.Tracking.TrackingNumber,
	})
}
