package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/domains/exhibition/model"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/shared/apperror"
)

type ticketRepository struct {
	store *docstore.Store
}

func NewTicketRepository(store *docstore.Store) TicketRepository {
	return &ticketRepository{store: store}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	now := time.Now().UTC()
	ticket.ID = uuid.NewString()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	if err := r.store.Insert(ctx, docstore.CollTickets, ticket.ID, ticket); err != nil {
		if errors.Is(err, docstore.ErrDuplicateKey) {
			return apperror.Conflict("ticket number already in use")
		}
		return apperror.Internal(fmt.Errorf("create ticket: %w", err))
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := r.store.FindByID(ctx, docstore.CollTickets, id, &ticket); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("ticket", id)
		}
		return nil, apperror.Internal(fmt.Errorf("get ticket: %w", err))
	}
	return &ticket, nil
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID string) ([]model.Ticket, error) {
	return r.list(ctx, docstore.Filter{Field: "userId", Op: docstore.OpEq, Value: userID})
}

func (r *ticketRepository) ListByExhibition(ctx context.Context, exhibitionID string) ([]model.Ticket, error) {
	return r.list(ctx, docstore.Filter{Field: "exhibitionId", Op: docstore.OpEq, Value: exhibitionID})
}

func (r *ticketRepository) list(ctx context.Context, filter docstore.Filter) ([]model.Ticket, error) {
	docs, _, err := r.store.Find(ctx, docstore.CollTickets, docstore.Query{
		Filters: []docstore.Filter{filter},
		Sort:    []docstore.Sort{{Field: "createdAt", Desc: true}},
		Page:    1,
		Limit:   1000,
	})
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list tickets: %w", err))
	}

	tickets := make([]model.Ticket, 0, len(docs))
	for _, d := range docs {
		var t model.Ticket
		if err := json.Unmarshal(d.Data, &t); err != nil {
			return nil, apperror.Internal(fmt.Errorf("decode ticket %s: %w", d.ID, err))
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *model.Ticket) error {
	ticket.UpdatedAt = time.Now().UTC()
	if err := r.store.Replace(ctx, docstore.CollTickets, ticket.ID, ticket); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("ticket", ticket.ID)
		}
		return apperror.Internal(fmt.Errorf("update ticket: %w", err))
	}
	return nil
}
