package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arte-gallery-backend/internal/domains/artwork/model"
	"arte-gallery-backend/internal/domains/relation"
	"arte-gallery-backend/internal/infrastructure/storage"
	"arte-gallery-backend/internal/shared/apperror"
)

type fakeRepo struct {
	artworks map[string]*model.Artwork
	views    map[string]int64
	deleted  []string
}

func newFakeRepo(artworks ...*model.Artwork) *fakeRepo {
	r := &fakeRepo{artworks: map[string]*model.Artwork{}, views: map[string]int64{}}
	for _, a := range artworks {
		r.artworks[a.ID] = a
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, artwork *model.Artwork) error {
	artwork.ID = "aw-" + artwork.Title
	r.artworks[artwork.ID] = artwork
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*model.Artwork, error) {
	a, ok := r.artworks[id]
	if !ok {
		return nil, apperror.NotFound("artwork", id)
	}
	return a, nil
}

func (r *fakeRepo) List(_ context.Context, _ model.ListArtworksRequest) ([]model.Artwork, int, error) {
	return nil, 0, nil
}

func (r *fakeRepo) Update(_ context.Context, artwork *model.Artwork) error {
	r.artworks[artwork.ID] = artwork
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.artworks, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo) IncViews(_ context.Context, id string) (int64, error) {
	r.views[id]++
	return r.views[id], nil
}

func (r *fakeRepo) AdjustLikes(_ context.Context, id string, delta int64) (int64, error) {
	a, ok := r.artworks[id]
	if !ok {
		return 0, apperror.NotFound("artwork", id)
	}
	a.Likes += delta
	if a.Likes < 0 {
		a.Likes = 0
	}
	return a.Likes, nil
}

type fakeArtists struct {
	known map[string]bool
}

func (f *fakeArtists) Exists(_ context.Context, id string) error {
	if !f.known[id] {
		return apperror.NotFound("artist", id)
	}
	return nil
}

type refOp struct {
	op, collection, field string
	ids                   []string
	ref                   string
}

type fakeRefStore struct {
	ops []refOp
}

func (f *fakeRefStore) PushRef(_ context.Context, collection string, ids []string, field, ref string) (int64, error) {
	f.ops = append(f.ops, refOp{op: "push", collection: collection, field: field, ids: ids, ref: ref})
	return int64(len(ids)), nil
}

func (f *fakeRefStore) PullRef(_ context.Context, collection string, ids []string, field, ref string) (int64, error) {
	f.ops = append(f.ops, refOp{op: "pull", collection: collection, field: field, ids: ids, ref: ref})
	return int64(len(ids)), nil
}

func (f *fakeRefStore) UnsetField(_ context.Context, collection string, ids []string, field string) (int64, error) {
	return int64(len(ids)), nil
}

type fakeMedia struct {
	stored  []string
	removed []string
}

func (f *fakeMedia) Store(_ context.Context, _ []byte, folder, name, _ string) (string, error) {
	url := "http://media/arte/" + folder + "/" + name
	f.stored = append(f.stored, url)
	return url, nil
}

func (f *fakeMedia) Delete(_ context.Context, publicURL string) error {
	f.removed = append(f.removed, publicURL)
	return nil
}

type fixture struct {
	repo    *fakeRepo
	artists *fakeArtists
	refs    *fakeRefStore
	media   *fakeMedia
}

func newFixture(artworks ...*model.Artwork) (*fixture, ServiceInterface) {
	f := &fixture{
		repo:    newFakeRepo(artworks...),
		artists: &fakeArtists{known: map[string]bool{"artist-1": true}},
		refs:    &fakeRefStore{},
		media:   &fakeMedia{},
	}
	svc := NewService(f.repo, f.artists, relation.NewMaintainer(f.refs), f.media, storage.NewImageProcessor())
	return f, svc
}

func TestCreate_AttachesToArtist(t *testing.T) {
	f, svc := newFixture()

	artwork, err := svc.Create(context.Background(), model.CreateArtworkRequest{
		Title:    "Composition VII",
		ArtistID: "artist-1",
	})

	require.NoError(t, err)
	require.Len(t, f.refs.ops, 1)
	assert.Equal(t, refOp{
		op: "push", collection: "artists", field: "artworks",
		ids: []string{"artist-1"}, ref: artwork.ID,
	}, f.refs.ops[0])
}

func TestCreate_UnknownArtistRejected(t *testing.T) {
	_, svc := newFixture()

	_, err := svc.Create(context.Background(), model.CreateArtworkRequest{
		Title:    "Orphan",
		ArtistID: "nobody",
	})

	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}

func TestCreate_ForSaleNeedsPrice(t *testing.T) {
	_, svc := newFixture()

	_, err := svc.Create(context.Background(), model.CreateArtworkRequest{
		Title:    "Untitled",
		ArtistID: "artist-1",
		ForSale:  true,
	})

	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))

	_, err = svc.Create(context.Background(), model.CreateArtworkRequest{
		Title:    "Untitled",
		ArtistID: "artist-1",
		ForSale:  true,
		Price:    decimal.NewFromInt(1200),
	})
	assert.NoError(t, err)
}

func TestGet_CountsView(t *testing.T) {
	f, svc := newFixture(&model.Artwork{ID: "aw1", Title: "Nocturne"})

	first, err := svc.Get(context.Background(), "aw1")
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), "aw1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Views)
	assert.Equal(t, int64(2), second.Views)
	assert.Equal(t, int64(2), f.repo.views["aw1"])
}

func TestUnlike_ClampsAtZero(t *testing.T) {
	_, svc := newFixture(&model.Artwork{ID: "aw1"})

	likes, err := svc.Unlike(context.Background(), "aw1")

	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
}

func TestRemoveArtwork_CleansMediaAndReferences(t *testing.T) {
	f, svc := newFixture(&model.Artwork{
		ID:       "aw1",
		ArtistID: "artist-1",
		Images: []model.ImageSet{
			{Original: "http://media/arte/artworks/aw1/a-original.jpg", Zoom: "http://media/arte/artworks/aw1/a-zoom.jpg", Thumbnail: "http://media/arte/artworks/aw1/a-thumbnail.jpg"},
		},
		Exhibitions: []string{"ex1", "ex2"},
	})

	err := svc.RemoveArtwork(context.Background(), "aw1")

	require.NoError(t, err)
	assert.Len(t, f.media.removed, 3)
	assert.Equal(t, []string{"aw1"}, f.repo.deleted)

	var artistPull, exhibitionPull bool
	for _, op := range f.refs.ops {
		if op.op == "pull" && op.collection == "artists" && op.field == "artworks" {
			artistPull = true
			assert.Equal(t, []string{"artist-1"}, op.ids)
		}
		if op.op == "pull" && op.collection == "exhibitions" && op.field == "artworks" {
			exhibitionPull = true
			assert.Equal(t, []string{"ex1", "ex2"}, op.ids)
		}
	}
	assert.True(t, artistPull)
	assert.True(t, exhibitionPull)
}

func TestUploadImage_RejectsNonImagePayload(t *testing.T) {
	_, svc := newFixture(&model.Artwork{ID: "aw1"})

	_, err := svc.UploadImage(context.Background(), "aw1", []byte("not an image"))

	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}
