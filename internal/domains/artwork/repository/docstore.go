package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/domains/artwork/model"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/shared/apperror"
)

type artworkRepository struct {
	store *docstore.Store
}

func NewRepository(store *docstore.Store) Repository {
	return &artworkRepository{store: store}
}

func (r *artworkRepository) Create(ctx context.Context, artwork *model.Artwork) error {
	now := time.Now().UTC()
	artwork.ID = uuid.NewString()
	artwork.CreatedAt = now
	artwork.UpdatedAt = now
	if artwork.Images == nil {
		artwork.Images = []model.ImageSet{}
	}
	if artwork.Exhibitions == nil {
		artwork.Exhibitions = []string{}
	}
	if artwork.Tags == nil {
		artwork.Tags = []string{}
	}

	if err := r.store.Insert(ctx, docstore.CollArtworks, artwork.ID, artwork); err != nil {
		return apperror.Internal(fmt.Errorf("create artwork: %w", err))
	}
	return nil
}

func (r *artworkRepository) GetByID(ctx context.Context, id string) (*model.Artwork, error) {
	var artwork model.Artwork
	if err := r.store.FindByID(ctx, docstore.CollArtworks, id, &artwork); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("artwork", id)
		}
		return nil, apperror.Internal(fmt.Errorf("get artwork: %w", err))
	}
	return &artwork, nil
}

func (r *artworkRepository) List(ctx context.Context, req model.ListArtworksRequest) ([]model.Artwork, int, error) {
	q := docstore.Query{Page: req.Page, Limit: req.Limit}
	if req.Search != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "title", Op: docstore.OpContains, Value: req.Search})
	}
	if req.ArtistID != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "artistId", Op: docstore.OpEq, Value: req.ArtistID})
	}
	if req.ForSale != nil {
		q.Filters = append(q.Filters, docstore.Filter{Field: "forSale", Op: docstore.OpEq, Value: *req.ForSale})
	}
	if req.Featured != nil {
		q.Filters = append(q.Filters, docstore.Filter{Field: "featured", Op: docstore.OpEq, Value: *req.Featured})
	}
	if req.Medium != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "medium", Op: docstore.OpEq, Value: req.Medium})
	}
	if req.Period != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "period", Op: docstore.OpEq, Value: req.Period})
	}
	if req.Tag != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "tags", Op: docstore.OpHasRef, Value: req.Tag})
	}
	if req.PriceMin != nil {
		q.Filters = append(q.Filters, docstore.Filter{Field: "price", Op: docstore.OpGte, Value: *req.PriceMin})
	}
	if req.PriceMax != nil {
		q.Filters = append(q.Filters, docstore.Filter{Field: "price", Op: docstore.OpLte, Value: *req.PriceMax})
	}

	switch req.Sort {
	case "views":
		q.Sort = []docstore.Sort{{Field: "views", Desc: true, Numeric: true}}
	case "likes":
		q.Sort = []docstore.Sort{{Field: "likes", Desc: true, Numeric: true}}
	default:
		q.Sort = []docstore.Sort{{Field: "createdAt", Desc: true}}
	}

	docs, total, err := r.store.Find(ctx, docstore.CollArtworks, q)
	if err != nil {
		return nil, 0, apperror.Internal(fmt.Errorf("list artworks: %w", err))
	}

	artworks := make([]model.Artwork, 0, len(docs))
	for _, d := range docs {
		var a model.Artwork
		if err := json.Unmarshal(d.Data, &a); err != nil {
			return nil, 0, apperror.Internal(fmt.Errorf("decode artwork %s: %w", d.ID, err))
		}
		artworks = append(artworks, a)
	}
	return artworks, total, nil
}

func (r *artworkRepository) Update(ctx context.Context, artwork *model.Artwork) error {
	artwork.UpdatedAt = time.Now().UTC()
	if err := r.store.Replace(ctx, docstore.CollArtworks, artwork.ID, artwork); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("artwork", artwork.ID)
		}
		return apperror.Internal(fmt.Errorf("update artwork: %w", err))
	}
	return nil
}

func (r *artworkRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteByID(ctx, docstore.CollArtworks, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("artwork", id)
		}
		return apperror.Internal(fmt.Errorf("delete artwork: %w", err))
	}
	return nil
}

func (r *artworkRepository) IncViews(ctx context.Context, id string) (int64, error) {
	views, err := r.store.IncField(ctx, docstore.CollArtworks, id, "views", 1)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return 0, apperror.NotFound("artwork", id)
		}
		return 0, apperror.Internal(fmt.Errorf("increment views: %w", err))
	}
	return views, nil
}

func (r *artworkRepository) AdjustLikes(ctx context.Context, id string, delta int64) (int64, error) {
	if delta < 0 {
		// Clamp at zero: a decrement on a zero counter is a no-op.
		likes, err := r.store.DecFieldIf(ctx, docstore.CollArtworks, id, "likes", -delta)
		if err != nil {
			switch {
			case errors.Is(err, docstore.ErrConditionFailed):
				return 0, nil
			case errors.Is(err, docstore.ErrNotFound):
				return 0, apperror.NotFound("artwork", id)
			}
			return 0, apperror.Internal(fmt.Errorf("decrement likes: %w", err))
		}
		return likes, nil
	}

	likes, err := r.store.IncField(ctx, docstore.CollArtworks, id, "likes", delta)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return 0, apperror.NotFound("artwork", id)
		}
		return 0, apperror.Internal(fmt.Errorf("increment likes: %w", err))
	}
	return likes, nil
}
