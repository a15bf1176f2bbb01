package repository

import (
	"context"

	"arte-gallery-backend/internal/domains/artwork/model"
)

type Repository interface {
	Create(ctx context.Context, artwork *model.Artwork) error
	GetByID(ctx context.Context, id string) (*model.Artwork, error)
	List(ctx context.Context, req model.ListArtworksRequest) ([]model.Artwork, int, error)
	Update(ctx context.Context, artwork *model.Artwork) error
	Delete(ctx context.Context, id string) error

	// IncViews and AdjustLikes are single-statement atomic counter updates.
	IncViews(ctx context.Context, id string) (int64, error)
	AdjustLikes(ctx context.Context, id string, delta int64) (int64, error)
}
