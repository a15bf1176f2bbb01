package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/domains/newsletter/model"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/shared/apperror"
)

type newsletterRepository struct {
	store *docstore.Store
}

func NewRepository(store *docstore.Store) Repository {
	return &newsletterRepository{store: store}
}

// Create relies on the unique email index to make double subscription a
// clean Conflict rather than a read-then-write race.
func (r *newsletterRepository) Create(ctx context.Context, sub *model.Subscription) error {
	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC()

	if err := r.store.Insert(ctx, docstore.CollNewsletter, sub.ID, sub); err != nil {
		if errors.Is(err, docstore.ErrDuplicateKey) {
			return apperror.Conflict("email already subscribed")
		}
		return apperror.Internal(fmt.Errorf("create subscription: %w", err))
	}
	return nil
}

func (r *newsletterRepository) DeleteByEmail(ctx context.Context, email string) error {
	var sub model.Subscription
	if err := r.store.FindOneByField(ctx, docstore.CollNewsletter, "email", email, &sub); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("subscription", email)
		}
		return apperror.Internal(fmt.Errorf("find subscription: %w", err))
	}
	if err := r.store.DeleteByID(ctx, docstore.CollNewsletter, sub.ID); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("subscription", email)
		}
		return apperror.Internal(fmt.Errorf("delete subscription: %w", err))
	}
	return nil
}
