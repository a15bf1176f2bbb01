package repository

import (
	"context"

	"arte-gallery-backend/internal/domains/blog/model"
)

type Repository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context, req model.ListPostsRequest) ([]model.Post, int, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id string) error
}
