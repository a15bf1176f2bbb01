package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/domains/order/model"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/shared/apperror"
)

type orderRepository struct {
	store *docstore.Store
}

func NewRepository(store *docstore.Store) Repository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	now := time.Now().UTC()
	order.ID = uuid.NewString()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Tracking.Updates == nil {
		order.Tracking.Updates = []model.TrackingEvent{}
	}

	if err := r.store.Insert(ctx, docstore.CollOrders, order.ID, order); err != nil {
		return apperror.Internal(fmt.Errorf("create order: %w", err))
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := r.store.FindByID(ctx, docstore.CollOrders, id, &order); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("order", id)
		}
		return nil, apperror.Internal(fmt.Errorf("get order: %w", err))
	}
	return &order, nil
}

func (r *orderRepository) GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var order model.Order
	if err := r.store.FindOneByField(ctx, docstore.CollOrders, "orderNumber", orderNumber, &order); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("order", orderNumber)
		}
		return nil, apperror.Internal(fmt.Errorf("get order by number: %w", err))
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	docs, _, err := r.store.Find(ctx, docstore.CollOrders, docstore.Query{
		Filters: []docstore.Filter{{Field: "userId", Op: docstore.OpEq, Value: userID}},
		Sort:    []docstore.Sort{{Field: "createdAt", Desc: true}},
		Page:    1,
		Limit:   500,
	})
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list user orders: %w", err))
	}
	return decodeOrders(docs)
}

func (r *orderRepository) List(ctx context.Context, req model.ListOrdersRequest) ([]model.Order, int, error) {
	q := docstore.Query{
		Page:  req.Page,
		Limit: req.Limit,
		Sort:  []docstore.Sort{{Field: "createdAt", Desc: true}},
	}
	if req.Status != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "status", Op: docstore.OpEq, Value: req.Status})
	}

	docs, total, err := r.store.Find(ctx, docstore.CollOrders, q)
	if err != nil {
		return nil, 0, apperror.Internal(fmt.Errorf("list orders: %w", err))
	}
	orders, err := decodeOrders(docs)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	order.UpdatedAt = time.Now().UTC()
	if err := r.store.Replace(ctx, docstore.CollOrders, order.ID, order); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("order", order.ID)
		}
		return apperror.Internal(fmt.Errorf("update order: %w", err))
	}
	return nil
}

func decodeOrders(docs []docstore.Document) ([]model.Order, error) {
	orders := make([]model.Order, 0, len(docs))
	for _, d := range docs {
		var o model.Order
		if err := json.Unmarshal(d.Data, &o); err != nil {
			return nil, apperror.Internal(fmt.Errorf("decode order %s: %w", d.ID, err))
		}
		orders = append(orders, o)
	}
	return orders, nil
}
