package service

import (
	"context"

	"arte-gallery-backend/internal/domains/artwork/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateArtworkRequest) (*model.Artwork, error)
	Get(ctx context.Context, id string) (*model.Artwork, error)
	List(ctx context.Context, req model.ListArtworksRequest) ([]model.Artwork, int, error)
	Update(ctx context.Context, id string, req model.UpdateArtworkRequest) (*model.Artwork, error)
	RemoveArtwork(ctx context.Context, id string) error

	Like(ctx context.Context, id string) (int64, error)
	Unlike(ctx context.Context, id string) (int64, error)
	UploadImage(ctx context.Context, id string, data []byte) (*model.Artwork, error)
}

// ArtistChecker confirms an artist reference points at a real document.
// Satisfied by the artist repository.
type ArtistChecker interface {
	Exists(ctx context.Context, id string) error
}
