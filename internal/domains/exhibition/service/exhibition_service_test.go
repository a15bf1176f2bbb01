package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arte-gallery-backend/internal/domains/exhibition/model"
	"arte-gallery-backend/internal/domains/relation"
	"arte-gallery-backend/internal/shared/apperror"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type fakeRepo struct {
	exhibitions map[string]*model.Exhibition
	updates     int
	listHits    int
}

func newFakeRepo(exhibitions ...*model.Exhibition) *fakeRepo {
	r := &fakeRepo{exhibitions: map[string]*model.Exhibition{}}
	for _, e := range exhibitions {
		r.exhibitions[e.ID] = e
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, e *model.Exhibition) error {
	e.ID = "ex-" + e.Title
	r.exhibitions[e.ID] = e
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*model.Exhibition, error) {
	e, ok := r.exhibitions[id]
	if !ok {
		return nil, apperror.NotFound("exhibition", id)
	}
	return e, nil
}

func (r *fakeRepo) List(_ context.Context, _ model.ListExhibitionsRequest) ([]model.Exhibition, int, error) {
	r.listHits++
	var out []model.Exhibition
	for _, e := range r.exhibitions {
		out = append(out, *e)
	}
	return out, len(out), nil
}

func (r *fakeRepo) All(_ context.Context) ([]model.Exhibition, error) {
	var out []model.Exhibition
	for _, e := range r.exhibitions {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, e *model.Exhibition) error {
	r.exhibitions[e.ID] = e
	r.updates++
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.exhibitions, id)
	return nil
}

type fakeTickets struct {
	tickets map[string]*model.Ticket
}

func (r *fakeTickets) Create(_ context.Context, t *model.Ticket) error {
	t.ID = "tk-" + t.TicketNumber
	r.tickets[t.ID] = t
	return nil
}

func (r *fakeTickets) GetByID(_ context.Context, id string) (*model.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, apperror.NotFound("ticket", id)
	}
	return t, nil
}

func (r *fakeTickets) ListByUser(_ context.Context, userID string) ([]model.Ticket, error) {
	var out []model.Ticket
	for _, t := range r.tickets {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTickets) ListByExhibition(_ context.Context, _ string) ([]model.Ticket, error) {
	return nil, nil
}

func (r *fakeTickets) Update(_ context.Context, t *model.Ticket) error {
	r.tickets[t.ID] = t
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

func (f *fakeRefStore) UnsetField(_ context.Context, _ string, ids []string, _ string) (int64, error) {
	return int64(len(ids)), nil
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

func (c *fakeCache) DeletePattern(_ context.Context, _ string) error {
	c.entries = map[string][]byte{}
	return nil
}

func (c *fakeCache) Ping(_ context.Context) error { return nil }

type fixture struct {
	repo       *fakeRepo
	tickets    *fakeTickets
	refs       *fakeRefStore
	dispatcher *fakeDispatcher
	cache      *fakeCache
}

func newFixture(exhibitions ...*model.Exhibition) (*fixture, *ExhibitionService) {
	f := &fixture{
		repo:       newFakeRepo(exhibitions...),
		tickets:    &fakeTickets{tickets: map[string]*model.Ticket{}},
		refs:       &fakeRefStore{},
		dispatcher: &fakeDispatcher{},
		cache:      &fakeCache{entries: map[string][]byte{}},
	}
	svc := &ExhibitionService{
		repo:       f.repo,
		tickets:    f.tickets,
		maintainer: relation.NewMaintainer(f.refs),
		dispatcher: f.dispatcher,
		cache:      f.cache,
		now:        func() time.Time { return testNow },
	}
	return f, svc
}

func ongoingExhibition(id string) *model.Exhibition {
	return &model.Exhibition{
		ID:        id,
		Title:     "Light and Shadow",
		Location:  "Hall A",
		StartDate: testNow.Add(-10 * 24 * time.Hour),
		EndDate:   testNow.Add(10 * 24 * time.Hour),
		Status:    model.StatusOngoing,
		TicketTiers: []model.TicketTier{
			{Tier: model.TierRegular, Price: decimal.NewFromInt(25)},
			{Tier: model.TierStudent, Price: decimal.NewFromInt(12)},
		},
	}
}

func TestCreate_DerivesStatusAndAttachesReferences(t *testing.T) {
	f, svc := newFixture()

	exhibition, err := svc.Create(context.Background(), model.CreateExhibitionRequest{
		Title:     "Winter Light",
		Location:  "Hall C",
		StartDate: testNow.Add(30 * 24 * time.Hour),
		EndDate:   testNow.Add(60 * 24 * time.Hour),
		Artists:   []string{"a1", "a2"},
		Artworks:  []string{"aw1"},
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusUpcoming, exhibition.Status)

	require.Len(t, f.refs.ops, 2)
	assert.Equal(t, refOp{op: "push", collection: "artists", field: "exhibitions", ids: []string{"a1", "a2"}, ref: exhibition.ID}, f.refs.ops[0])
	assert.Equal(t, refOp{op: "push", collection: "artworks", field: "exhibitions", ids: []string{"aw1"}, ref: exhibition.ID}, f.refs.ops[1])
}

func TestUpdate_ReconcilesReplacedArtistList(t *testing.T) {
	exhibition := ongoingExhibition("ex1")
	exhibition.Artists = []string{"a1", "a2"}
	f, svc := newFixture(exhibition)

	next := []string{"a2", "a3"}
	_, err := svc.Update(context.Background(), "ex1", model.UpdateExhibitionRequest{Artists: &next})

	require.NoError(t, err)
	require.Len(t, f.refs.ops, 2)
	assert.Equal(t, refOp{op: "pull", collection: "artists", field: "exhibitions", ids: []string{"a1"}, ref: "ex1"}, f.refs.ops[0])
	assert.Equal(t, refOp{op: "push", collection: "artists", field: "exhibitions", ids: []string{"a3"}, ref: "ex1"}, f.refs.ops[1])
}

func TestUpdate_RecomputesStatusFromNewDates(t *testing.T) {
	exhibition := ongoingExhibition("ex1")
	_, svc := newFixture(exhibition)

	start := testNow.Add(-40 * 24 * time.Hour)
	end := testNow.Add(-20 * 24 * time.Hour)
	updated, err := svc.Update(context.Background(), "ex1", model.UpdateExhibitionRequest{
		StartDate: &start,
		EndDate:   &end,
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusPast, updated.Status)
}

func TestUpdate_IdenticalListsIssueNoReferenceWrites(t *testing.T) {
	exhibition := ongoingExhibition("ex1")
	exhibition.Artists = []string{"a1", "a2"}
	f, svc := newFixture(exhibition)

	same := []string{"a2", "a1"}
	_, err := svc.Update(context.Background(), "ex1", model.UpdateExhibitionRequest{Artists: &same})

	require.NoError(t, err)
	assert.Empty(t, f.refs.ops)
}

func TestDelete_DetachesFromBothSides(t *testing.T) {
	exhibition := ongoingExhibition("ex1")
	exhibition.Artists = []string{"a1"}
	exhibition.Artworks = []string{"aw1", "aw2"}
	f, svc := newFixture(exhibition)

	err := svc.Delete(context.Background(), "ex1")

	require.NoError(t, err)
	require.Len(t, f.refs.ops, 2)
	assert.Equal(t, refOp{op: "pull", collection: "artists", field: "exhibitions", ids: []string{"a1"}, ref: "ex1"}, f.refs.ops[0])
	assert.Equal(t, refOp{op: "pull", collection: "artworks", field: "exhibitions", ids: []string{"aw1", "aw2"}, ref: "ex1"}, f.refs.ops[1])
}

func TestRefreshStatuses_PersistsOnlyChanges(t *testing.T) {
	stale := ongoingExhibition("ex1")
	stale.StartDate = testNow.Add(-60 * 24 * time.Hour)
	stale.EndDate = testNow.Add(-30 * 24 * time.Hour)
	stale.Status = model.StatusOngoing // stale, sweep should fix

	current := ongoingExhibition("ex2")

	f, svc := newFixture(stale, current)

	changed, err := svc.RefreshStatuses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Equal(t, 1, f.repo.updates)
	assert.Equal(t, model.StatusPast, f.repo.exhibitions["ex1"].Status)
}

func TestBookTicket_ComputesTotalAndNotifies(t *testing.T) {
	f, svc := newFixture(ongoingExhibition("ex1"))

	ticket, err := svc.BookTicket(context.Background(), "ex1", "u1", model.BookTicketRequest{
		Email:     "visitor@example.com",
		VisitDate: testNow.Add(48 * time.Hour),
		Tier:      model.TierStudent,
		Quantity:  3,
	})

	require.NoError(t, err)
	assert.True(t, ticket.Total.Equal(decimal.NewFromInt(36)), "12 x 3 = 36, got %s", ticket.Total)
	assert.Equal(t, model.TicketBooked, ticket.Status)
	assert.NotEmpty(t, ticket.TicketNumber)

	require.Len(t, f.dispatcher.events, 1)
	assert.Equal(t, "ticket:booked", f.dispatcher.events[0].kind)
}

func TestBookTicket_UnknownTierRejected(t *testing.T) {
	_, svc := newFixture(ongoingExhibition("ex1"))

	_, err := svc.BookTicket(context.Background(), "ex1", "u1", model.BookTicketRequest{
		Email:     "visitor@example.com",
		VisitDate: testNow.Add(48 * time.Hour),
		Tier:      model.TierVIP,
		Quantity:  1,
	})

	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}

func TestBookTicket_EndedExhibitionRejected(t *testing.T) {
	past := ongoingExhibition("ex1")
	past.StartDate = testNow.Add(-60 * 24 * time.Hour)
	past.EndDate = testNow.Add(-30 * 24 * time.Hour)
	_, svc := newFixture(past)

	_, err := svc.BookTicket(context.Background(), "ex1", "u1", model.BookTicketRequest{
		Email:     "visitor@example.com",
		VisitDate: past.StartDate,
		Tier:      model.TierRegular,
		Quantity:  1,
	})

	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))
}

func TestCancelTicket_PastDatedRejected(t *testing.T) {
	f, svc := newFixture(ongoingExhibition("ex1"))
	f.tickets.tickets["tk1"] = &model.Ticket{
		ID: "tk1", UserID: "u1", VisitDate: testNow.Add(-24 * time.Hour), Status: model.TicketBooked,
	}

	_, err := svc.CancelTicket(context.Background(), "tk1", "u1", false)

	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))
	assert.Equal(t, model.TicketBooked, f.tickets.tickets["tk1"].Status)
}

func TestCancelTicket_OwnerCancelsFutureTicket(t *testing.T) {
	f, svc := newFixture(ongoingExhibition("ex1"))
	f.tickets.tickets["tk1"] = &model.Ticket{
		ID: "tk1", UserID: "u1", VisitDate: testNow.Add(24 * time.Hour), Status: model.TicketBooked,
	}

	ticket, err := svc.CancelTicket(context.Background(), "tk1", "u1", false)

	require.NoError(t, err)
	assert.Equal(t, model.TicketCancelled, ticket.Status)
}

func TestCancelTicket_StrangerForbidden(t *testing.T) {
	f, svc := newFixture(ongoingExhibition("ex1"))
	f.tickets.tickets["tk1"] = &model.Ticket{
		ID: "tk1", UserID: "u1", VisitDate: testNow.Add(24 * time.Hour), Status: model.TicketBooked,
	}

	_, err := svc.CancelTicket(context.Background(), "tk1", "u2", false)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	// An administrator may cancel on behalf of the visitor.
	_, err = svc.CancelTicket(context.Background(), "tk1", "admin", true)
	assert.NoError(t, err)
}

func TestList_CachedUntilWrite(t *testing.T) {
	f, svc := newFixture(ongoingExhibition("ex1"))

	_, total, err := svc.List(context.Background(), model.ListExhibitionsRequest{Status: model.StatusOngoing})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, _, err = svc.List(context.Background(), model.ListExhibitionsRequest{Status: model.StatusOngoing})
	require.NoError(t, err)
	assert.Equal(t, 1, f.repo.listHits, "second page served from cache")

	// Any write flushes the listing cache.
	title := "Renamed"
	_, err = svc.Update(context.Background(), "ex1", model.UpdateExhibitionRequest{Title: &title})
	require.NoError(t, err)

	_, _, err = svc.List(context.Background(), model.ListExhibitionsRequest{Status: model.StatusOngoing})
	require.NoError(t, err)
	assert.Equal(t, 2, f.repo.listHits)
}

func TestList_SearchBypassesCache(t *testing.T) {
	f, svc := newFixture(ongoingExhibition("ex1"))

	for i := 0; i < 2; i++ {
		_, _, err := svc.List(context.Background(), model.ListExhibitionsRequest{Search: "light"})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, f.repo.listHits)
}
