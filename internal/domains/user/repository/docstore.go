package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/domains/user/model"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/shared/apperror"
)

type userRepository struct {
	store *docstore.Store
}

func NewRepository(store *docstore.Store) Repository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = model.RoleRegular
	}
	if u.SavedArtworks == nil {
		u.SavedArtworks = []string{}
	}
	if u.Wishlist == nil {
		u.Wishlist = []string{}
	}
	if u.Orders == nil {
		u.Orders = []string{}
	}

	if err := r.store.Insert(ctx, docstore.CollUsers, u.ID, u); err != nil {
		if errors.Is(err, docstore.ErrDuplicateKey) {
			return apperror.Conflict("email already registered")
		}
		return apperror.Internal(fmt.Errorf("create user: %w", err))
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.store.FindByID(ctx, docstore.CollUsers, id, &u); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, apperror.Internal(fmt.Errorf("get user: %w", err))
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.store.FindOneByField(ctx, docstore.CollUsers, "email", email, &u); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("user", email)
		}
		return nil, apperror.Internal(fmt.Errorf("get user by email: %w", err))
	}
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, u *model.User) error {
	u.UpdatedAt = time.Now().UTC()
	if err := r.store.Replace(ctx, docstore.CollUsers, u.ID, u); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("user", u.ID)
		}
		return apperror.Internal(fmt.Errorf("update user: %w", err))
	}
	return nil
}

func (r *userRepository) AddRef(ctx context.Context, userID, field, ref string) error {
	if _, err := r.store.PushRef(ctx, docstore.CollUsers, []string{userID}, field, ref); err != nil {
		return apperror.Internal(fmt.Errorf("add %s ref: %w", field, err))
	}
	return nil
}

func (r *userRepository) RemoveRef(ctx context.Context, userID, field, ref string) error {
	if _, err := r.store.PullRef(ctx, docstore.CollUsers, []string{userID}, field, ref); err != nil {
		return apperror.Internal(fmt.Errorf("remove %s ref: %w", field, err))
	}
	return nil
}

func (r *userRepository) ArtistProfileID(ctx context.Context, userID string) (string, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.ArtistProfile, nil
}

func (r *userRepository) LinkArtistProfile(ctx context.Context, userID, artistID string) error {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	u.ArtistProfile = artistID
	return r.Update(ctx, u)
}

func (r *userRepository) IDsByArtistProfile(ctx context.Context, artistID string) ([]string, error) {
	docs, _, err := r.store.Find(ctx, docstore.CollUsers, docstore.Query{
		Filters: []docstore.Filter{{Field: "artistProfile", Op: docstore.OpEq, Value: artistID}},
		Limit:   100,
	})
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("find users by artist profile: %w", err))
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		var u model.User
		if err := json.Unmarshal(doc.Data, &u); err != nil {
			return nil, apperror.Internal(fmt.Errorf("decode user: %w", err))
		}
		ids = append(ids, u.ID)
	}
	return ids, nil
}

func (r *userRepository) ContactByID(ctx context.Context, userID string) (string, string, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	return u.Email, u.FirstName, nil
}
