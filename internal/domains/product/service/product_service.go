package service

import (
	"context"
	"time"

	"arte-gallery-backend/internal/domains/product/model"
	"arte-gallery-backend/internal/domains/product/repository"
	"arte-gallery-backend/internal/shared/apperror"
	"arte-gallery-backend/pkg/cache"
	"arte-gallery-backend/pkg/logger"
)

const (
	featuredCacheKey = "products:featured"
	featuredCacheTTL = 10 * time.Minute
	relatedLimit     = 8
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, req model.ListProductsRequest) ([]model.Product, int, error)
	Featured(ctx context.Context) ([]model.Product, error)
	Related(ctx context.Context, id string) ([]model.Product, error)
	Update(ctx context.Context, id string, req model.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductService struct {
	repo  repository.Repository
	cache cache.Cache
}

func NewService(repo repository.Repository, cache cache.Cache) ServiceInterface {
	return &ProductService{repo: repo, cache: cache}
}

func (s *ProductService) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Featured:    req.Featured,
		ArtistID:    req.ArtistID,
		ArtworkID:   req.ArtworkID,
		Images:      req.Images,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, req model.ListProductsRequest) ([]model.Product, int, error) {
	req.Normalize()
	return s.repo.List(ctx, req)
}

func (s *ProductService) Featured(ctx context.Context) ([]model.Product, error) {
	var cached []model.Product
	found, err := s.cache.Get(ctx, featuredCacheKey, &cached)
	if err != nil {
		logger.Warn("Featured cache read failed", map[string]interface{}{"error": err.Error()})
	}
	if found {
		return cached, nil
	}

	featured := true
	products, _, err := s.repo.List(ctx, model.ListProductsRequest{
		Featured: &featured,
		Page:     1,
		Limit:    12,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, featuredCacheKey, products, featuredCacheTTL); err != nil {
		logger.Warn("Featured cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return products, nil
}

func (s *ProductService) Related(ctx context.Context, id string) ([]model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRelated(ctx, product, relatedLimit)
}

func (s *ProductService) Update(ctx context.Context, id string, req model.UpdateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(product)
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFeatured(ctx)
	return nil
}

func (s *ProductService) invalidateFeatured(ctx context.Context) {
	if err := s.cache.Delete(ctx, featuredCacheKey); err != nil {
		logger.Warn("Featured cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
