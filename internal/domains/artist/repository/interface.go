package repository

import (
	"context"

	"arte-gallery-backend/internal/domains/artist/model"
)

type Repository interface {
	Create(ctx context.Context, artist *model.Artist) error
	GetByID(ctx context.Context, id string) (*model.Artist, error)
	List(ctx context.Context, req model.ListArtistsRequest) ([]model.Artist, int, error)
	Update(ctx context.Context, artist *model.Artist) error
	Delete(ctx context.Context, id string) error
}
