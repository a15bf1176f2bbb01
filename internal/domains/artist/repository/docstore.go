package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/domains/artist/model"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/shared/apperror"
)

type artistRepository struct {
	store *docstore.Store
}

func NewRepository(store *docstore.Store) Repository {
	return &artistRepository{store: store}
}

func (r *artistRepository) Create(ctx context.Context, artist *model.Artist) error {
	now := time.Now().UTC()
	artist.ID = uuid.NewString()
	artist.CreatedAt = now
	artist.UpdatedAt = now
	if artist.VerificationStatus == "" {
		artist.VerificationStatus = model.VerificationUnverified
	}
	if artist.Artworks == nil {
		artist.Artworks = []string{}
	}
	if artist.Exhibitions == nil {
		artist.Exhibitions = []string{}
	}
	if artist.Contributions == nil {
		artist.Contributions = []model.Contribution{}
	}

	if err := r.store.Insert(ctx, docstore.CollArtists, artist.ID, artist); err != nil {
		return apperror.Internal(fmt.Errorf("create artist: %w", err))
	}
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	var artist model.Artist
	if err := r.store.FindByID(ctx, docstore.CollArtists, id, &artist); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("artist", id)
		}
		return nil, apperror.Internal(fmt.Errorf("get artist: %w", err))
	}
	return &artist, nil
}

func (r *artistRepository) List(ctx context.Context, req model.ListArtistsRequest) ([]model.Artist, int, error) {
	q := docstore.Query{
		Page:  req.Page,
		Limit: req.Limit,
		Sort:  []docstore.Sort{{Field: "name"}},
	}
	if req.Search != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "name", Op: docstore.OpContains, Value: req.Search})
	}
	if req.Verified != nil {
		q.Filters = append(q.Filters, docstore.Filter{Field: "verified", Op: docstore.OpEq, Value: *req.Verified})
	}
	if req.Featured != nil {
		q.Filters = append(q.Filters, docstore.Filter{Field: "featured", Op: docstore.OpEq, Value: *req.Featured})
	}
	if req.Nationality != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "nationality", Op: docstore.OpEq, Value: req.Nationality})
	}

	docs, total, err := r.store.Find(ctx, docstore.CollArtists, q)
	if err != nil {
		return nil, 0, apperror.Internal(fmt.Errorf("list artists: %w", err))
	}

	artists := make([]model.Artist, 0, len(docs))
	for _, d := range docs {
		var a model.Artist
		if err := json.Unmarshal(d.Data, &a); err != nil {
			return nil, 0, apperror.Internal(fmt.Errorf("decode artist %s: %w", d.ID, err))
		}
		artists = append(artists, a)
	}
	return artists, total, nil
}

func (r *artistRepository) Update(ctx context.Context, artist *model.Artist) error {
	artist.UpdatedAt = time.Now().UTC()
	if err := r.store.Replace(ctx, docstore.CollArtists, artist.ID, artist); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("artist", artist.ID)
		}
		return apperror.Internal(fmt.Errorf("update artist: %w", err))
	}
	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteByID(ctx, docstore.CollArtists, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("artist", id)
		}
		return apperror.Internal(fmt.Errorf("delete artist: %w", err))
	}
	return nil
}
