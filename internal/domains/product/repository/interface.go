package repository

import (
	"context"
	"errors"

	"arte-gallery-backend/internal/domains/product/model"
)

// ErrStockConflict reports a conditional decrement that found less stock
// than requested at commit time.
var ErrStockConflict = errors.New("insufficient stock at decrement time")

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, req model.ListProductsRequest) ([]model.Product, int, error)
	ListRelated(ctx context.Context, product *model.Product, limit int) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error

	// DecrementStock atomically subtracts qty if and only if at least qty
	// units remain; otherwise it returns ErrStockConflict and changes
	// nothing. IncrementStock restores units on cancellation.
	DecrementStock(ctx context.Context, id string, qty int) (remaining int64, err error)
	IncrementStock(ctx context.Context, id string, qty int) (remaining int64, err error)
}
