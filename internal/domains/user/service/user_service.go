package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"arte-gallery-backend/internal/domains/user/model"
	"arte-gallery-backend/internal/domains/user/repository"
	"arte-gallery-backend/internal/shared/apperror"
	"arte-gallery-backend/pkg/jwt"
)

const bcryptCost = 12

type UserService struct {
	repo     repository.Repository
	tokens   *jwt.Manager
	artworks ArtworkCatalog
	products ProductCatalog
}

func NewService(repo repository.Repository, tokens *jwt.Manager, artworks ArtworkCatalog, products ProductCatalog) ServiceInterface {
	return &UserService{
		repo:     repo,
		tokens:   tokens,
		artworks: artworks,
		products: products,
	}
}

func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u := &model.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         model.RoleRegular,
	}
	// The unique email index makes the duplicate check race-free; the
	// repository reports the violation as a Conflict.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.issueTokens(u)
}

func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// Same response for unknown email and wrong password.
		return nil, apperror.Unauthorized("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperror.Unauthorized("invalid email or password")
	}
	return s.issueTokens(u)
}

func (s *UserService) Refresh(ctx context.Context, req model.RefreshRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	claims, err := s.tokens.ValidateToken(req.RefreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, apperror.Unauthorized("invalid refresh token")
	}

	// Re-read the account so role changes take effect at refresh time.
	u, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.Unauthorized("account no longer exists")
	}
	return s.issueTokens(u)
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := u.Profile()
	return &profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	req.Apply(u)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	profile := u.Profile()
	return &profile, nil
}

func (s *UserService) SaveArtwork(ctx context.Context, userID, artworkID string) error {
	ok, err := s.artworks.Exists(ctx, artworkID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("artwork", artworkID)
	}
	return s.repo.AddRef(ctx, userID, "savedArtworks", artworkID)
}

func (s *UserService) UnsaveArtwork(ctx context.Context, userID, artworkID string) error {
	return s.repo.RemoveRef(ctx, userID, "savedArtworks", artworkID)
}

func (s *UserService) AddToWishlist(ctx context.Context, userID, productID string) error {
	ok, err := s.products.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("product", productID)
	}
	return s.repo.AddRef(ctx, userID, "wishlist", productID)
}

func (s *UserService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return s.repo.RemoveRef(ctx, userID, "wishlist", productID)
}

func (s *UserService) issueTokens(u *model.User) (*model.AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &model.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         u.Profile(),
	}, nil
}
