package repository

import (
	"context"

	"arte-gallery-backend/internal/domains/newsletter/model"
)

type Repository interface {
	Create(ctx context.Context, sub *model.Subscription) error
	DeleteByEmail(ctx context.Context, email string) error
}
