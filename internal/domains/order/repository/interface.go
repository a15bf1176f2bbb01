package repository

import (
	"context"

	"arte-gallery-backend/internal/domains/order/model"
)

type Repository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	List(ctx context.Context, req model.ListOrdersRequest) ([]model.Order, int, error)
	Update(ctx context.Context, order *model.Order) error
}
