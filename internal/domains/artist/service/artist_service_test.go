package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arte-gallery-backend/internal/config"
	"arte-gallery-backend/internal/domains/artist/model"
	"arte-gallery-backend/internal/domains/relation"
	"arte-gallery-backend/internal/shared/apperror"
)

type fakeRepo struct {
	artists map[string]*model.Artist
	deleted []string
}

func newFakeRepo(artists ...*model.Artist) *fakeRepo {
	r := &fakeRepo{artists: map[string]*model.Artist{}}
	for _, a := range artists {
		r.artists[a.ID] = a
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, artist *model.Artist) error {
	artist.ID = "artist-" + artist.Name
	r.artists[artist.ID] = artist
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*model.Artist, error) {
	a, ok := r.artists[id]
	if !ok {
		return nil, apperror.NotFound("artist", id)
	}
	return a, nil
}

func (r *fakeRepo) List(_ context.Context, _ model.ListArtistsRequest) ([]model.Artist, int, error) {
	return nil, 0, nil
}

func (r *fakeRepo) Update(_ context.Context, artist *model.Artist) error {
	if _, ok := r.artists[artist.ID]; !ok {
		return apperror.NotFound("artist", artist.ID)
	}
	r.artists[artist.ID] = artist
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.artists, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeUsers struct {
	profiles map[string]string // userID -> artistID
	emails   map[string]string
	unknown  map[string]bool
}

func (u *fakeUsers) ArtistProfileID(_ context.Context, userID string) (string, error) {
	if u.unknown[userID] {
		return "", apperror.NotFound("user", userID)
	}
	return u.profiles[userID], nil
}

func (u *fakeUsers) LinkArtistProfile(_ context.Context, userID, artistID string) error {
	if u.unknown[userID] {
		return apperror.NotFound("user", userID)
	}
	u.profiles[userID] = artistID
	return nil
}

func (u *fakeUsers) IDsByArtistProfile(_ context.Context, artistID string) ([]string, error) {
	var ids []string
	for userID, profile := range u.profiles {
		if profile == artistID {
			ids = append(ids, userID)
		}
	}
	return ids, nil
}

func (u *fakeUsers) ContactByID(_ context.Context, userID string) (string, string, error) {
	return u.emails[userID], "", nil
}

type fakeRemover struct {
	removed []string
}

func (f *fakeRemover) RemoveArtwork(_ context.Context, id string) error {
	f.removed = append(f.removed, id)
	return nil
}

type dispatched struct {
	kind    string
	payload interface{}
}

type fakeDispatcher struct {
	events []dispatched
}

func (d *fakeDispatcher) Dispatch(kind string, payload interface{}) {
	d.events = append(d.events, dispatched{kind: kind, payload: payload})
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
	f.ops = append(f.ops, refOp{op: "unset", collection: collection, field: field, ids: ids})
	return int64(len(ids)), nil
}

type fixture struct {
	repo       *fakeRepo
	users      *fakeUsers
	remover    *fakeRemover
	dispatcher *fakeDispatcher
	refs       *fakeRefStore
}

func newFixture(policy string, artists ...*model.Artist) (*fixture, ServiceInterface) {
	f := &fixture{
		repo:       newFakeRepo(artists...),
		users:      &fakeUsers{profiles: map[string]string{}, emails: map[string]string{}},
		remover:    &fakeRemover{},
		dispatcher: &fakeDispatcher{},
		refs:       &fakeRefStore{},
	}
	svc := NewService(f.repo, relation.NewMaintainer(f.refs), f.remover, f.users, f.dispatcher, policy)
	return f, svc
}

func unverifiedArtist(id string) *model.Artist {
	return &model.Artist{
		ID:                 id,
		Name:               "Hilma",
		VerificationStatus: model.VerificationUnverified,
	}
}

func TestCreate_LinksOwnerAccount(t *testing.T) {
	f, svc := newFixture(config.ArtistDeleteRestrict)
	f.users.emails["u1"] = "hilma@example.com"

	artist, err := svc.Create(context.Background(), model.CreateArtistRequest{
		Name:   "Hilma",
		UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, artist.ID, f.users.profiles["u1"])

	// The linked account now passes the ownership check without admin rights.
	updated, err := svc.SubmitVerification(context.Background(), artist.ID, "u1", false, model.SubmitVerificationRequest{})
	require.NoError(t, err)
	assert.Equal(t, model.VerificationPending, updated.VerificationStatus)
}

func TestCreate_UnknownOwnerRejected(t *testing.T) {
	f, svc := newFixture(config.ArtistDeleteRestrict)
	f.users.unknown = map[string]bool{"ghost": true}

	_, err := svc.Create(context.Background(), model.CreateArtistRequest{
		Name:   "Hilma",
		UserID: "ghost",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Empty(t, f.repo.artists)
}

func TestSubmitVerification_OwnerStartsPendingRequest(t *testing.T) {
	f, svc := newFixture(config.ArtistDeleteRestrict, unverifiedArtist("a1"))
	f.users.profiles["u1"] = "a1"
	f.users.emails["u1"] = "hilma@example.com"

	artist, err := svc.SubmitVerification(context.Background(), "a1", "u1", false, model.SubmitVerificationRequest{
		Documents: []string{"https://cdn/doc.pdf"},
	})

	require.NoError(t, err)
	assert.Equal(t, model.VerificationPending, artist.VerificationStatus)
	assert.False(t, artist.Verified)
	require.NotNil(t, artist.Verification)
	assert.Equal(t, "u1", artist.Verification.SubmittedBy)

	require.Len(t, f.dispatcher.events, 1)
	assert.Equal(t, "verification:submitted", f.dispatcher.events[0].kind)
}

func TestSubmitVerification_NonOwnerForbidden(t *testing.T) {
	f, svc := newFixture(config.ArtistDeleteRestrict, unverifiedArtist("a1"))
	f.users.profiles["u2"] = "someone-else"

	_, err := svc.SubmitVerification(context.Background(), "a1", "u2", false, model.SubmitVerificationRequest{})

	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestSubmitVerification_ConflictWhilePending(t *testing.T) {
	artist := unverifiedArtist("a1")
	artist.VerificationStatus = model.VerificationPending
	artist.Verification = &model.VerificationRequest{SubmittedBy: "u1", SubmittedAt: time.Now()}
	f, svc := newFixture(config.ArtistDeleteRestrict, artist)
	f.users.profiles["u1"] = "a1"

	_, err := svc.SubmitVerification(context.Background(), "a1", "u1", false, model.SubmitVerificationRequest{})

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	// The existing pending request is untouched.
	assert.Equal(t, "u1", f.repo.artists["a1"].Verification.SubmittedBy)
	assert.Empty(t, f.dispatcher.events)
}

func TestSubmitVerification_ConflictWhenAlreadyVerified(t *testing.T) {
	artist := unverifiedArtist("a1")
	artist.Verified = true
	artist.VerificationStatus = model.VerificationVerified
	f, svc := newFixture(config.ArtistDeleteRestrict, artist)
	f.users.profiles["u1"] = "a1"

	_, err := svc.SubmitVerification(context.Background(), "a1", "u1", false, model.SubmitVerificationRequest{})

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestReviewVerification_ApproveStampsVerified(t *testing.T) {
	artist := unverifiedArtist("a1")
	artist.VerificationStatus = model.VerificationPending
	artist.Verification = &model.VerificationRequest{SubmittedBy: "u1", SubmittedAt: time.Now()}
	f, svc := newFixture(config.ArtistDeleteRestrict, artist)
	f.users.emails["u1"] = "hilma@example.com"

	reviewed, err := svc.ReviewVerification(context.Background(), "a1", "admin-1", model.ReviewVerificationRequest{Approve: true})

	require.NoError(t, err)
	assert.True(t, reviewed.Verified)
	require.NotNil(t, reviewed.VerifiedAt)
	assert.Equal(t, model.VerificationVerified, reviewed.VerificationStatus)
	assert.Equal(t, "admin-1", reviewed.Verification.ReviewedBy)

	require.Len(t, f.dispatcher.events, 1)
	assert.Equal(t, "verification:reviewed", f.dispatcher.events[0].kind)
}

func TestReviewVerification_RejectAllowsResubmission(t *testing.T) {
	artist := unverifiedArtist("a1")
	artist.VerificationStatus = model.VerificationPending
	artist.Verification = &model.VerificationRequest{SubmittedBy: "u1", SubmittedAt: time.Now()}
	f, svc := newFixture(config.ArtistDeleteRestrict, artist)
	f.users.profiles["u1"] = "a1"

	rejected, err := svc.ReviewVerification(context.Background(), "a1", "admin-1", model.ReviewVerificationRequest{
		Approve: false,
		Notes:   "insufficient documentation",
	})
	require.NoError(t, err)
	assert.False(t, rejected.Verified)
	assert.Equal(t, model.VerificationRejected, rejected.VerificationStatus)
	assert.Equal(t, "insufficient documentation", rejected.Verification.Notes)

	// A rejected outcome is replaceable by a brand-new request.
	resubmitted, err := svc.SubmitVerification(context.Background(), "a1", "u1", false, model.SubmitVerificationRequest{})
	require.NoError(t, err)
	assert.Equal(t, model.VerificationPending, resubmitted.VerificationStatus)
	assert.Empty(t, resubmitted.Verification.Notes)
}

func TestReviewVerification_NothingPending(t *testing.T) {
	_, svc := newFixture(config.ArtistDeleteRestrict, unverifiedArtist("a1"))

	_, err := svc.ReviewVerification(context.Background(), "a1", "admin-1", model.ReviewVerificationRequest{Approve: true})

	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))
}

func TestUpdateContribution_ApprovedLockedForOwner(t *testing.T) {
	artist := unverifiedArtist("a1")
	artist.Contributions = []model.Contribution{
		{ID: "c1", Title: "Group show", Type: model.ContributionTypeExhibition, Status: model.ContributionApproved},
	}
	f, svc := newFixture(config.ArtistDeleteRestrict, artist)
	f.users.profiles["u1"] = "a1"

	title := "Renamed show"
	_, err := svc.UpdateContribution(context.Background(), "a1", "c1", "u1", false, model.UpdateContributionRequest{Title: &title})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	// Administrator overrides are allowed.
	updated, err := svc.UpdateContribution(context.Background(), "a1", "c1", "admin-1", true, model.UpdateContributionRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed show", updated.Title)
	assert.Equal(t, model.ContributionApproved, updated.Status)
}

func TestUpdateContribution_OwnerEditResubmitsRejected(t *testing.T) {
	artist := unverifiedArtist("a1")
	artist.Contributions = []model.Contribution{
		{ID: "c1", Title: "Catalogue", Type: model.ContributionTypePublication, Status: model.ContributionRejected},
	}
	f, svc := newFixture(config.ArtistDeleteRestrict, artist)
	f.users.profiles["u1"] = "a1"

	title := "Catalogue, 2nd edition"
	updated, err := svc.UpdateContribution(context.Background(), "a1", "c1", "u1", false, model.UpdateContributionRequest{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, model.ContributionPending, updated.Status)
}

func TestReviewContribution_OnlyPendingReviewable(t *testing.T) {
	artist := unverifiedArtist("a1")
	artist.Contributions = []model.Contribution{
		{ID: "c1", Title: "Award", Type: model.ContributionTypeAward, Status: model.ContributionApproved},
	}
	_, svc := newFixture(config.ArtistDeleteRestrict, artist)

	_, err := svc.ReviewContribution(context.Background(), "a1", "c1", "admin-1", model.ReviewContributionRequest{Approve: false})

	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))
}

func TestDelete_RestrictRefusesWhileArtworksExist(t *testing.T) {
	artist := unverifiedArtist("a1")
	artist.Artworks = []string{"aw1"}
	f, svc := newFixture(config.ArtistDeleteRestrict, artist)

	err := svc.Delete(context.Background(), "a1")

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Empty(t, f.repo.deleted)
	assert.Empty(t, f.remover.removed)
}

func TestDelete_CascadeRemovesArtworksAndDetaches(t *testing.T) {
	artist := unverifiedArtist("a1")
	artist.Artworks = []string{"aw1", "aw2"}
	artist.Exhibitions = []string{"ex1"}
	f, svc := newFixture(config.ArtistDeleteCascade, artist)
	f.users.profiles["u1"] = "a1"

	err := svc.Delete(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, []string{"aw1", "aw2"}, f.remover.removed)
	assert.Equal(t, []string{"a1"}, f.repo.deleted)

	var pulled, unset bool
	for _, op := range f.refs.ops {
		if op.op == "pull" && op.collection == "exhibitions" && op.field == "artists" {
			pulled = true
			assert.Equal(t, []string{"ex1"}, op.ids)
		}
		if op.op == "unset" && op.collection == "users" && op.field == "artistProfile" {
			unset = true
			assert.Equal(t, []string{"u1"}, op.ids)
		}
	}
	assert.True(t, pulled, "artist should be pulled from exhibitions")
	assert.True(t, unset, "users' profile reference should be cleared")
}

func TestDelete_NoArtworksDeletesUnderEitherPolicy(t *testing.T) {
	f, svc := newFixture(config.ArtistDeleteRestrict, unverifiedArtist("a1"))

	err := svc.Delete(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, f.repo.deleted)
}
