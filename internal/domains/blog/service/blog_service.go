package service

import (
	"context"

	"arte-gallery-backend/internal/domains/blog/model"
	"arte-gallery-backend/internal/domains/blog/repository"
	"arte-gallery-backend/internal/shared/apperror"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreatePostRequest) (*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context, req model.ListPostsRequest) ([]model.Post, int, error)
	Update(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id string) error
}

type BlogService struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) ServiceInterface {
	return &BlogService{repo: repo}
}

func (s *BlogService) Create(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	post := &model.Post{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
		Featured: req.Featured,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) GetByID(ctx context.Context, id string) (*model.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BlogService) List(ctx context.Context, req model.ListPostsRequest) ([]model.Post, int, error) {
	req.Normalize()
	return s.repo.List(ctx, req)
}

func (s *BlogService) Update(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(post)
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
