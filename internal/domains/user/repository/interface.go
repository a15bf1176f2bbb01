package repository

import (
	"context"

	"arte-gallery-backend/internal/domains/user/model"
)

// Repository persists user documents. The lookup methods double as the
// directory other domains consult for ownership checks and notification
// addressing.
type Repository interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, u *model.User) error

	// AddRef and RemoveRef maintain the saved-artworks and wishlist
	// id lists. Both are idempotent.
	AddRef(ctx context.Context, userID, field, ref string) error
	RemoveRef(ctx context.Context, userID, field, ref string) error

	ArtistProfileID(ctx context.Context, userID string) (string, error)
	LinkArtistProfile(ctx context.Context, userID, artistID string) error
	IDsByArtistProfile(ctx context.Context, artistID string) ([]string, error)
	ContactByID(ctx context.Context, userID string) (email, firstName string, err error)
}
