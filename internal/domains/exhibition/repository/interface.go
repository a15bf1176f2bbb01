package repository

import (
	"context"

	"arte-gallery-backend/internal/domains/exhibition/model"
)

type Repository interface {
	Create(ctx context.Context, exhibition *model.Exhibition) error
	GetByID(ctx context.Context, id string) (*model.Exhibition, error)
	List(ctx context.Context, req model.ListExhibitionsRequest) ([]model.Exhibition, int, error)
	// All returns every exhibition; used by the nightly status sweep.
	All(ctx context.Context) ([]model.Exhibition, error)
	Update(ctx context.Context, exhibition *model.Exhibition) error
	Delete(ctx context.Context, id string) error
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) error
	GetByID(ctx context.Context, id string) (*model.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]model.Ticket, error)
	ListByExhibition(ctx context.Context, exhibitionID string) ([]model.Ticket, error)
	Update(ctx context.Context, ticket *model.Ticket) error
}
