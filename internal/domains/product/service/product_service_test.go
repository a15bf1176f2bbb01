package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arte-gallery-backend/internal/domains/product/model"
	"arte-gallery-backend/internal/shared/apperror"
)

type fakeRepo struct {
	products map[string]*model.Product
	listHits int
}

func (r *fakeRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = "p-" + p.Name
	r.products[p.ID] = p
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, apperror.NotFound("product", id)
	}
	return p, nil
}

func (r *fakeRepo) List(_ context.Context, req model.ListProductsRequest) ([]model.Product, int, error) {
	r.listHits++
	var out []model.Product
	for _, p := range r.products {
		if req.Featured != nil && p.Featured != *req.Featured {
			continue
		}
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (r *fakeRepo) ListRelated(_ context.Context, _ *model.Product, _ int) ([]model.Product, error) {
	return nil, nil
}

func (r *fakeRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeRepo) DecrementStock(_ context.Context, _ string, _ int) (int64, error) {
	return 0, nil
}

func (r *fakeRepo) IncrementStock(_ context.Context, _ string, _ int) (int64, error) {
	return 0, nil
}

// fakeCache mirrors the JSON round-trip the redis client performs.
type fakeCache struct {
	entries map[string][]byte
}

func (c *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *fakeCache) DeletePattern(_ context.Context, _ string) error { return nil }
func (c *fakeCache) Ping(_ context.Context) error                    { return nil }

func newFixture(products ...*model.Product) (*fakeRepo, *fakeCache, ServiceInterface) {
	repo := &fakeRepo{products: map[string]*model.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	c := &fakeCache{entries: map[string][]byte{}}
	return repo, c, NewService(repo, c)
}

func TestCreate_RejectsUnknownCategory(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Create(context.Background(), model.CreateProductRequest{
		Name:     "Poster",
		Price:    decimal.NewFromInt(15),
		Category: "vehicles",
	})

	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}

func TestFeatured_ServedFromCacheOnSecondCall(t *testing.T) {
	repo, _, svc := newFixture(
		&model.Product{ID: "p1", Name: "Catalogue", Featured: true},
		&model.Product{ID: "p2", Name: "Postcard", Featured: false},
	)

	first, err := svc.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, repo.listHits)

	second, err := svc.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, 1, repo.listHits, "second call should not touch the repository")
}

func TestUpdate_InvalidatesFeaturedCache(t *testing.T) {
	repo, c, svc := newFixture(&model.Product{ID: "p1", Name: "Catalogue", Featured: true, Category: model.CategoryBooks})

	_, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, c.entries)

	featured := false
	_, err = svc.Update(context.Background(), "p1", model.UpdateProductRequest{Featured: &featured})
	require.NoError(t, err)
	assert.Empty(t, c.entries)

	refreshed, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Empty(t, refreshed)
	assert.Equal(t, 2, repo.listHits)
}
