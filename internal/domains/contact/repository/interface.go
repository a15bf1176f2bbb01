package repository

import (
	"context"

	"arte-gallery-backend/internal/domains/contact/model"
)

type Repository interface {
	Create(ctx context.Context, msg *model.Message) error
	GetByID(ctx context.Context, id string) (*model.Message, error)
	List(ctx context.Context, req model.ListContactsRequest) ([]model.Message, int, error)
	Update(ctx context.Context, msg *model.Message) error
	Delete(ctx context.Context, id string) error
}
