package service

import (
	"context"

	"arte-gallery-backend/internal/domains/order/model"
	productmodel "arte-gallery-backend/internal/domains/product/model"
)

type ServiceInterface interface {
	CreateOrder(ctx context.Context, userID string, req model.CreateOrderRequest) (*model.Order, error)
	GetOrder(ctx context.Context, orderID, actorID string, isAdmin bool) (*model.Order, error)
	TrackByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]model.Order, error)
	ListOrders(ctx context.Context, req model.ListOrdersRequest) ([]model.Order, int, error)
	UpdateStatus(ctx context.Context, orderID, actorID string, req model.UpdateOrderStatusRequest) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID, actorID string, isAdmin bool) (*model.Order, error)
}

// ProductInventory is the slice of the product domain the workflow needs:
// reads for the pre-check and price snapshot, plus the atomic stock
// operations. Satisfied by the product repository.
type ProductInventory interface {
	GetByID(ctx context.Context, id string) (*productmodel.Product, error)
	DecrementStock(ctx context.Context, id string, qty int) (int64, error)
	IncrementStock(ctx context.Context, id string, qty int) (int64, error)
}
