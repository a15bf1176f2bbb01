package service

import (
	"context"

	"arte-gallery-backend/internal/domains/exhibition/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateExhibitionRequest) (*model.Exhibition, error)
	GetByID(ctx context.Context, id string) (*model.Exhibition, error)
	List(ctx context.Context, req model.ListExhibitionsRequest) ([]model.Exhibition, int, error)
	Update(ctx context.Context, id string, req model.UpdateExhibitionRequest) (*model.Exhibition, error)
	Delete(ctx context.Context, id string) error

	// RefreshStatuses recomputes every exhibition's status against the
	// clock and persists the ones that changed. Returns the change count.
	RefreshStatuses(ctx context.Context) (int, error)

	BookTicket(ctx context.Context, exhibitionID, userID string, req model.BookTicketRequest) (*model.Ticket, error)
	ListUserTickets(ctx context.Context, userID string) ([]model.Ticket, error)
	CancelTicket(ctx context.Context, ticketID, actorID string, isAdmin bool) (*model.Ticket, error)
}
