package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/domains/product/model"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/shared/apperror"
)

type productRepository struct {
	store *docstore.Store
}

func NewRepository(store *docstore.Store) Repository {
	return &productRepository{store: store}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	now := time.Now().UTC()
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Images == nil {
		product.Images = []string{}
	}

	if err := r.store.Insert(ctx, docstore.CollProducts, product.ID, product); err != nil {
		return apperror.Internal(fmt.Errorf("create product: %w", err))
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := r.store.FindByID(ctx, docstore.CollProducts, id, &product); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("product", id)
		}
		return nil, apperror.Internal(fmt.Errorf("get product: %w", err))
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, req model.ListProductsRequest) ([]model.Product, int, error) {
	q := docstore.Query{Page: req.Page, Limit: req.Limit}
	if req.Search != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "name", Op: docstore.OpContains, Value: req.Search})
	}
	if req.Category != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "category", Op: docstore.OpEq, Value: req.Category})
	}
	if req.PriceMin != nil {
		q.Filters = append(q.Filters, docstore.Filter{Field: "price", Op: docstore.OpGte, Value: *req.PriceMin})
	}
	if req.PriceMax != nil {
		q.Filters = append(q.Filters, docstore.Filter{Field: "price", Op: docstore.OpLte, Value: *req.PriceMax})
	}
	if req.Featured != nil {
		q.Filters = append(q.Filters, docstore.Filter{Field: "featured", Op: docstore.OpEq, Value: *req.Featured})
	}
	if req.InStock != nil && *req.InStock {
		q.Filters = append(q.Filters, docstore.Filter{Field: "stock", Op: docstore.OpGt, Value: 0})
	}

	switch req.Sort {
	case "priceAsc":
		q.Sort = []docstore.Sort{{Field: "price", Numeric: true}}
	case "priceDesc":
		q.Sort = []docstore.Sort{{Field: "price", Desc: true, Numeric: true}}
	default:
		q.Sort = []docstore.Sort{{Field: "createdAt", Desc: true}}
	}

	docs, total, err := r.store.Find(ctx, docstore.CollProducts, q)
	if err != nil {
		return nil, 0, apperror.Internal(fmt.Errorf("list products: %w", err))
	}
	products, err := decodeProducts(docs)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListRelated favours products tied to the same artist, then fills up from
// the same category.
func (r *productRepository) ListRelated(ctx context.Context, product *model.Product, limit int) ([]model.Product, error) {
	var related []model.Product
	seen := map[string]bool{product.ID: true}

	if product.ArtistID != "" {
		docs, _, err := r.store.Find(ctx, docstore.CollProducts, docstore.Query{
			Filters: []docstore.Filter{{Field: "artistId", Op: docstore.OpEq, Value: product.ArtistID}},
			Page:    1,
			Limit:   limit + 1,
		})
		if err != nil {
			return nil, apperror.Internal(fmt.Errorf("related by artist: %w", err))
		}
		byArtist, err := decodeProducts(docs)
		if err != nil {
			return nil, err
		}
		for _, p := range byArtist {
			if !seen[p.ID] && len(related) < limit {
				related = append(related, p)
				seen[p.ID] = true
			}
		}
	}

	if len(related) < limit {
		docs, _, err := r.store.Find(ctx, docstore.CollProducts, docstore.Query{
			Filters: []docstore.Filter{{Field: "category", Op: docstore.OpEq, Value: product.Category}},
			Page:    1,
			Limit:   limit + 1,
		})
		if err != nil {
			return nil, apperror.Internal(fmt.Errorf("related by category: %w", err))
		}
		byCategory, err := decodeProducts(docs)
		if err != nil {
			return nil, err
		}
		for _, p := range byCategory {
			if !seen[p.ID] && len(related) < limit {
				related = append(related, p)
				seen[p.ID] = true
			}
		}
	}
	return related, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	product.UpdatedAt = time.Now().UTC()
	if err := r.store.Replace(ctx, docstore.CollProducts, product.ID, product); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("product", product.ID)
		}
		return apperror.Internal(fmt.Errorf("update product: %w", err))
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteByID(ctx, docstore.CollProducts, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("product", id)
		}
		return apperror.Internal(fmt.Errorf("delete product: %w", err))
	}
	return nil
}

func (r *productRepository) DecrementStock(ctx context.Context, id string, qty int) (int64, error) {
	remaining, err := r.store.DecFieldIf(ctx, docstore.CollProducts, id, "stock", int64(qty))
	if err != nil {
		switch {
		case errors.Is(err, docstore.ErrConditionFailed):
			return 0, ErrStockConflict
		case errors.Is(err, docstore.ErrNotFound):
			return 0, apperror.NotFound("product", id)
		}
		return 0, apperror.Internal(fmt.Errorf("decrement stock: %w", err))
	}
	return remaining, nil
}

func (r *productRepository) IncrementStock(ctx context.Context, id string, qty int) (int64, error) {
	remaining, err := r.store.IncField(ctx, docstore.CollProducts, id, "stock", int64(qty))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return 0, apperror.NotFound("product", id)
		}
		return 0, apperror.Internal(fmt.Errorf("increment stock: %w", err))
	}
	return remaining, nil
}

func decodeProducts(docs []docstore.Document) ([]model.Product, error) {
	products := make([]model.Product, 0, len(docs))
	for _, d := range docs {
		var p model.Product
		if err := json.Unmarshal(d.Data, &p); err != nil {
			return nil, apperror.Internal(fmt.Errorf("decode product %s: %w", d.ID, err))
		}
		products = append(products, p)
	}
	return products, nil
}
