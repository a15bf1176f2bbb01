package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arte-gallery-backend/internal/domains/blog/model"
	"arte-gallery-backend/internal/shared/apperror"
)

type fakeRepo struct {
	posts map[string]*model.Post
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: map[string]*model.Post{}}
}

func (r *fakeRepo) Create(_ context.Context, post *model.Post) error {
	post.ID = "post-" + post.Title
	if post.Tags == nil {
		post.Tags = []string{}
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*model.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, apperror.NotFound("blog post", id)
	}
	return p, nil
}

func (r *fakeRepo) List(_ context.Context, req model.ListPostsRequest) ([]model.Post, int, error) {
	out := make([]model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if req.Featured != nil && p.Featured != *req.Featured {
			continue
		}
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, post *model.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return apperror.NotFound("blog post", post.ID)
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return apperror.NotFound("blog post", id)
	}
	delete(r.posts, id)
	return nil
}

func TestCreate_RequiresTitleContentAuthor(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), model.CreatePostRequest{Title: "Untitled"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))

	post, err := svc.Create(context.Background(), model.CreatePostRequest{
		Title:   "Hilma af Klint rediscovered",
		Content: "Long before abstraction had a name...",
		Author:  "ARTE Editorial",
		Tags:    []string{"abstraction"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"abstraction"}, post.Tags)
}

func TestUpdate_AppliesOnlyPresentFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	post, err := svc.Create(context.Background(), model.CreatePostRequest{
		Title:   "Opening night",
		Content: "Doors open at seven.",
		Author:  "ARTE Editorial",
	})
	require.NoError(t, err)

	featured := true
	updated, err := svc.Update(context.Background(), post.ID, model.UpdatePostRequest{Featured: &featured})
	require.NoError(t, err)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Opening night", updated.Title)
	assert.Equal(t, "Doors open at seven.", updated.Content)
}

func TestDelete_UnknownPostNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
