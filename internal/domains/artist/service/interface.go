package service

import (
	"context"

	"arte-gallery-backend/internal/domains/artist/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateArtistRequest) (*model.Artist, error)
	GetByID(ctx context.Context, id string) (*model.Artist, error)
	List(ctx context.Context, req model.ListArtistsRequest) ([]model.Artist, int, error)
	Update(ctx context.Context, id string, req model.UpdateArtistRequest) (*model.Artist, error)
	Delete(ctx context.Context, id string) error

	SubmitVerification(ctx context.Context, artistID, actorID string, isAdmin bool, req model.SubmitVerificationRequest) (*model.Artist, error)
	ReviewVerification(ctx context.Context, artistID, reviewerID string, req model.ReviewVerificationRequest) (*model.Artist, error)

	AddContribution(ctx context.Context, artistID, actorID string, isAdmin bool, req model.AddContributionRequest) (*model.Contribution, error)
	UpdateContribution(ctx context.Context, artistID, contributionID, actorID string, isAdmin bool, req model.UpdateContributionRequest) (*model.Contribution, error)
	ReviewContribution(ctx context.Context, artistID, contributionID, reviewerID string, req model.ReviewContributionRequest) (*model.Contribution, error)
}

// ArtworkRemover deletes an artwork together with its media and detaches it
// from every exhibition that references it. Implemented by the artwork
// service; used here for the cascade deletion policy.
type ArtworkRemover interface {
	RemoveArtwork(ctx context.Context, id string) error
}

// UserDirectory is the slice of the user domain this service needs for
// ownership checks and linking, back-reference cleanup, and notification
// addressing.
type UserDirectory interface {
	ArtistProfileID(ctx context.Context, userID string) (string, error)
	LinkArtistProfile(ctx context.Context, userID, artistID string) error
	IDsByArtistProfile(ctx context.Context, artistID string) ([]string, error)
	ContactByID(ctx context.Context, userID string) (email, firstName string, err error)
}
