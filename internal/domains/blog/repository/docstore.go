package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/domains/blog/model"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/shared/apperror"
)

type blogRepository struct {
	store *docstore.Store
}

func NewRepository(store *docstore.Store) Repository {
	return &blogRepository{store: store}
}

func (r *blogRepository) Create(ctx context.Context, post *model.Post) error {
	now := time.Now().UTC()
	post.ID = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := r.store.Insert(ctx, docstore.CollBlogPosts, post.ID, post); err != nil {
		return apperror.Internal(fmt.Errorf("create blog post: %w", err))
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := r.store.FindByID(ctx, docstore.CollBlogPosts, id, &post); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperror.NotFound("blog post", id)
		}
		return nil, apperror.Internal(fmt.Errorf("get blog post: %w", err))
	}
	return &post, nil
}

func (r *blogRepository) List(ctx context.Context, req model.ListPostsRequest) ([]model.Post, int, error) {
	q := docstore.Query{
		Page:  req.Page,
		Limit: req.Limit,
		Sort:  []docstore.Sort{{Field: "createdAt", Desc: true}},
	}
	if req.Search != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "title", Op: docstore.OpContains, Value: req.Search})
	}
	if req.Tag != "" {
		q.Filters = append(q.Filters, docstore.Filter{Field: "tags", Op: docstore.OpHasRef, Value: req.Tag})
	}
	if req.Featured != nil {
		q.Filters = append(q.Filters, docstore.Filter{Field: "featured", Op: docstore.OpEq, Value: *req.Featured})
	}

	docs, total, err := r.store.Find(ctx, docstore.CollBlogPosts, q)
	if err != nil {
		return nil, 0, apperror.Internal(fmt.Errorf("list blog posts: %w", err))
	}

	posts := make([]model.Post, 0, len(docs))
	for _, d := range docs {
		var p model.Post
		if err := json.Unmarshal(d.Data, &p); err != nil {
			return nil, 0, apperror.Internal(fmt.Errorf("decode blog post %s: %w", d.ID, err))
		}
		posts = append(posts, p)
	}
	return posts, total, nil
}

func (r *blogRepository) Update(ctx context.Context, post *model.Post) error {
	post.UpdatedAt = time.Now().UTC()
	if err := r.store.Replace(ctx, docstore.CollBlogPosts, post.ID, post); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("blog post", post.ID)
		}
		return apperror.Internal(fmt.Errorf("update blog post: %w", err))
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteByID(ctx, docstore.CollBlogPosts, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperror.NotFound("blog post", id)
		}
		return apperror.Internal(fmt.Errorf("delete blog post: %w", err))
	}
	return nil
}
