package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/domains/contact/model"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/shared/apperror"
)

type contactRepository struct {
	store *docstore.Store
}

func NewRepository(store *docstore.Store) Repository {
	return &contactRepository{store: store}
}

func (r *contactRepository) Create(ctx context.Context, msg *model.Message) error {
	now := time.Now().UTC()
	msg.ID = uuid.NewString()
	msg.CreatedAt = now
	msg.UpdatedAt = now
	if msg.Status == "" {
		msg.Status = model.StatusPending
	}

	if err := r.store.Insert(ctx, docstore.CollContacts, msg.ID, msg); err != nil {
		return apperror.Internal(fmt.Errorf("create contact message: %w", err))
	}
	return nil
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*model.Message, error) {
	var msg model.Message
	if err := r.store.FindByID(ctx, docstore.CollContacts, id, &msg); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("contact message", id)
		}
		return nil, apperror.Internal(fmt.Errorf("get contact message: %w", err))
	}
	return &msg, nil
}

func (r *contactRepository) List(ctx context.Context, req model.ListContactsRequest) ([]model.Message, int, error) {
	q := docstore.Query{
		Page:  req.Page,
		Limit: req.Limit,
		Sort:  []docstore.Sort{{Field: "createdAt", Desc: true}},
	}
	if req.Status != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "status", Op: docstore.OpEq, Value: req.Status})
	}
	if req.Unread != nil && *req.Unread {
		q.Filters = append(q.Filters, docstore.Filter{Field: "isRead", Op: docstore.OpEq, Value: false})
	}

	docs, total, err := r.store.Find(ctx, docstore.CollContacts, q)
	if err != nil {
		return nil, 0, apperror.Internal(fmt.Errorf("list contact messages: %w", err))
	}

	messages := make([]model.Message, 0, len(docs))
	for _, d := range docs {
		var m model.Message
		if err := json.Unmarshal(d.Data, &m); err != nil {
			return nil, 0, apperror.Internal(fmt.Errorf("decode contact message %s: %w", d.ID, err))
		}
		messages = append(messages, m)
	}
	return messages, total, nil
}

func (r *contactRepository) Update(ctx context.Context, msg *model.Message) error {
	msg.UpdatedAt = time.Now().UTC()
	if err := r.store.Replace(ctx, docstore.CollContacts, msg.ID, msg); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("contact message", msg.ID)
		}
		return apperror.Internal(fmt.Errorf("update contact message: %w", err))
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteByID(ctx, docstore.CollContacts, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("contact message", id)
		}
		return apperror.Internal(fmt.Errorf("delete contact message: %w", err))
	}
	return nil
}
