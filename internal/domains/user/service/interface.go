package service

import (
	"context"

	"arte-gallery-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Refresh(ctx context.Context, req model.RefreshRequest) (*model.AuthResponse, error)

	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.Profile, error)

	SaveArtwork(ctx context.Context, userID, artworkID string) error
	UnsaveArtwork(ctx context.Context, userID, artworkID string) error
	AddToWishlist(ctx context.Context, userID, productID string) error
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
}

// ArtworkCatalog and ProductCatalog are the existence checks the save and
// wishlist operations need from their owning domains.
type ArtworkCatalog interface {
	Exists(ctx context.Context, artworkID string) (bool, error)
}

type ProductCatalog interface {
	Exists(ctx context.Context, productID string) (bool, error)
}
