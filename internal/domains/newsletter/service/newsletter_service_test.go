package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arte-gallery-backend/internal/domains/newsletter/model"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/apperror"
)

type fakeRepo struct {
	emails map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{emails: map[string]bool{}}
}

func (r *fakeRepo) Create(_ context.Context, sub *model.Subscription) error {
	if r.emails[sub.Email] {
		return apperror.Conflict("email already subscribed")
	}
	r.emails[sub.Email] = true
	return nil
}

func (r *fakeRepo) DeleteByEmail(_ context.Context, email string) error {
	if !r.emails[email] {
		return apperror.NotFound("subscription", email)
	}
	delete(r.emails, email)
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

func TestSubscribe_NormalizesAndConfirms(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewService(repo, dispatcher)

	err := svc.Subscribe(context.Background(), model.SubscribeRequest{Email: "  MINA@Example.com "})
	require.NoError(t, err)
	assert.True(t, repo.emails["mina@example.com"])

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, shared.TypeNewsletterSubscribed, dispatcher.events[0].kind)
	assert.Equal(t, shared.NewsletterPayload{Email: "mina@example.com"}, dispatcher.events[0].payload)
}

func TestSubscribe_DuplicateEmailConflict(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewService(repo, dispatcher)

	require.NoError(t, svc.Subscribe(context.Background(), model.SubscribeRequest{Email: "mina@example.com"}))

	err := svc.Subscribe(context.Background(), model.SubscribeRequest{Email: "MINA@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Len(t, dispatcher.events, 1)
}

func TestSubscribe_RejectsInvalidEmail(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeDispatcher{})

	err := svc.Subscribe(context.Background(), model.SubscribeRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
}

func TestUnsubscribe_UnknownEmailNotFound(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	svc := NewService(newFakeRepo(), dispatcher)

	err := svc.Unsubscribe(context.Background(), model.SubscribeRequest{Email: "mina@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Empty(t, dispatcher.events)
}

func TestUnsubscribe_RemovesAndConfirms(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewService(repo, dispatcher)

	require.NoError(t, svc.Subscribe(context.Background(), model.SubscribeRequest{Email: "mina@example.com"}))
	require.NoError(t, svc.Unsubscribe(context.Background(), model.SubscribeRequest{Email: "Mina@example.com"}))

	assert.False(t, repo.emails["mina@example.com"])
	require.Len(t, dispatcher.events, 2)
	assert.Equal(t, shared.TypeNewsletterUnsubscribed, dispatcher.events[1].kind)
}
