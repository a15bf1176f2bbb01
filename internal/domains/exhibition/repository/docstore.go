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

type exhibitionRepository struct {
	store *docstore.Store
}

func NewRepository(store *docstore.Store) Repository {
	return &exhibitionRepository{store: store}
}

func (r *exhibitionRepository) Create(ctx context.Context, exhibition *model.Exhibition) error {
	now := time.Now().UTC()
	exhibition.ID = uuid.NewString()
	exhibition.CreatedAt = now
	exhibition.UpdatedAt = now
	if exhibition.Artists == nil {
		exhibition.Artists = []string{}
	}
	if exhibition.Artworks == nil {
		exhibition.Artworks = []string{}
	}
	if exhibition.TicketTiers == nil {
		exhibition.TicketTiers = []model.TicketTier{}
	}

	if err := r.store.Insert(ctx, docstore.CollExhibitions, exhibition.ID, exhibition); err != nil {
		return apperror.Internal(fmt.Errorf("create exhibition: %w", err))
	}
	return nil
}

func (r *exhibitionRepository) GetByID(ctx context.Context, id string) (*model.Exhibition, error) {
	var exhibition model.Exhibition
	if err := r.store.FindByID(ctx, docstore.CollExhibitions, id, &exhibition); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("exhibition", id)
		}
		return nil, apperror.Internal(fmt.Errorf("get exhibition: %w", err))
	}
	return &exhibition, nil
}

func (r *exhibitionRepository) List(ctx context.Context, req model.ListExhibitionsRequest) ([]model.Exhibition, int, error) {
	q := docstore.Query{
		Page:  req.Page,
		Limit: req.Limit,
		Sort:  []docstore.Sort{{Field: "startDate"}},
	}
	if req.Status != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "status", Op: docstore.OpEq, Value: req.Status})
	}
	if req.Search != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "title", Op: docstore.OpContains, Value: req.Search})
	}

	docs, total, err := r.store.Find(ctx, docstore.CollExhibitions, q)
	if err != nil {
		return nil, 0, apperror.Internal(fmt.Errorf("list exhibitions: %w", err))
	}
	exhibitions, err := decodeExhibitions(docs)
	if err != nil {
		return nil, 0, err
	}
	return exhibitions, total, nil
}

func (r *exhibitionRepository) All(ctx context.Context) ([]model.Exhibition, error) {
	// The catalogue is small; the sweep pages through everything.
	docs, _, err := r.store.Find(ctx, docstore.CollExhibitions, docstore.Query{Page: 1, Limit: 10000})
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("load exhibitions: %w", err))
	}
	return decodeExhibitions(docs)
}

func (r *exhibitionRepository) Update(ctx context.Context, exhibition *model.Exhibition) error {
	exhibition.UpdatedAt = time.Now().UTC()
	if err := r.store.Replace(ctx, docstore.CollExhibitions, exhibition.ID, exhibition); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("exhibition", exhibition.ID)
		}
		return apperror.Internal(fmt.Errorf("update exhibition: %w", err))
	}
	return nil
}

func (r *exhibitionRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteByID(ctx, docstore.CollExhibitions, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("exhibition", id)
		}
		return apperror.Internal(fmt.Errorf("delete exhibition: %w", err))
	}
	return nil
}

func decodeExhibitions(docs []docstore.Document) ([]model.Exhibition, error) {
	exhibitions := make([]model.Exhibition, 0, len(docs))
	for _, d := range docs {
		var e model.Exhibition
		if err := json.Unmarshal(d.Data, &e); err != nil {
			return nil, apperror.Internal(fmt.Errorf("decode exhibition %s: %w", d.ID, err))
		}
		exhibitions = append(exhibitions, e)
	}
	return exhibitions, nil
}
