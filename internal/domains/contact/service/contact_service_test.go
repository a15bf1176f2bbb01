package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arte-gallery-backend/internal/domains/contact/model"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/apperror"
)

type fakeRepo struct {
	messages map[string]*model.Message
	updates  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{messages: map[string]*model.Message{}}
}

func (r *fakeRepo) Create(_ context.Context, msg *model.Message) error {
	msg.ID = "contact-" + msg.Subject
	if msg.Status == "" {
		msg.Status = model.StatusPending
	}
	r.messages[msg.ID] = msg
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*model.Message, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, apperror.NotFound("contact message", id)
	}
	return m, nil
}

func (r *fakeRepo) List(_ context.Context, _ model.ListContactsRequest) ([]model.Message, int, error) {
	out := make([]model.Message, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, *m)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, msg *model.Message) error {
	if _, ok := r.messages[msg.ID]; !ok {
		return apperror.NotFound("contact message", msg.ID)
	}
	r.messages[msg.ID] = msg
	r.updates++
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.messages[id]; !ok {
		return apperror.NotFound("contact message", id)
	}
	delete(r.messages, id)
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

func TestSubmit_StoresAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewService(repo, dispatcher)

	msg, err := svc.Submit(context.Background(), model.SubmitContactRequest{
		Name:    "  Mina  ",
		Email:   "MINA@Example.com",
		Subject: "Opening hours",
		Message: "Are you open on Mondays?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mina", msg.Name)
	assert.Equal(t, "mina@example.com", msg.Email)
	assert.Equal(t, model.StatusPending, msg.Status)
	assert.False(t, msg.IsRead)

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, shared.TypeContactSubmitted, dispatcher.events[0].kind)
	payload := dispatcher.events[0].payload.(shared.ContactSubmittedPayload)
	assert.Equal(t, msg.ID, payload.ContactID)
	assert.Equal(t, "Opening hours", payload.Subject)
	assert.False(t, payload.IsArtworkInquiry)
}

func TestSubmit_MissingSubjectRejected(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewService(repo, dispatcher)

	_, err := svc.Submit(context.Background(), model.SubmitContactRequest{
		Name:    "Mina",
		Email:   "mina@example.com",
		Message: "hello",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
	assert.Empty(t, repo.messages)
	assert.Empty(t, dispatcher.events)
}

func TestArtworkInquiry_DerivesSubject(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewService(repo, dispatcher)

	msg, err := svc.SubmitArtworkInquiry(context.Background(), model.ArtworkInquiryRequest{
		Name:         "Mina",
		Email:        "mina@example.com",
		Message:      "Is this piece still available?",
		ArtworkID:    "aw-1",
		ArtworkTitle: "The Ten Largest",
	})
	require.NoError(t, err)
	assert.Equal(t, "Inquiry about artwork: The Ten Largest", msg.Subject)
	assert.True(t, msg.IsArtworkInquiry)
	assert.Equal(t, "aw-1", msg.ArtworkID)

	require.Len(t, dispatcher.events, 1)
	payload := dispatcher.events[0].payload.(shared.ContactSubmittedPayload)
	assert.True(t, payload.IsArtworkInquiry)
	assert.Equal(t, "aw-1", payload.ArtworkID)
}

func TestArtworkInquiry_FallsBackToArtworkID(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeDispatcher{})

	msg, err := svc.SubmitArtworkInquiry(context.Background(), model.ArtworkInquiryRequest{
		Name:      "Mina",
		Email:     "mina@example.com",
		Message:   "Still available?",
		ArtworkID: "aw-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Inquiry about artwork: aw-1", msg.Subject)
}

func TestMarkRead_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeDispatcher{})

	msg, err := svc.Submit(context.Background(), model.SubmitContactRequest{
		Name: "Mina", Email: "mina@example.com", Subject: "Hi", Message: "Hello",
	})
	require.NoError(t, err)

	first, err := svc.MarkRead(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.True(t, first.IsRead)
	assert.Equal(t, 1, repo.updates)

	// A second read receipt does not touch the store again.
	second, err := svc.MarkRead(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.True(t, second.IsRead)
	assert.Equal(t, 1, repo.updates)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeDispatcher{})

	msg, err := svc.Submit(context.Background(), model.SubmitContactRequest{
		Name: "Mina", Email: "mina@example.com", Subject: "Hi", Message: "Hello",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), msg.ID, model.UpdateStatusRequest{Status: "done"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))

	updated, err := svc.UpdateStatus(context.Background(), msg.ID, model.UpdateStatusRequest{Status: model.StatusResolved})
	require.NoError(t, err)
	assert.Equal(t, model.StatusResolved, updated.Status)
}
