package job

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arte-gallery-backend/internal/domains/artist/model"
	"arte-gallery-backend/internal/infrastructure/email"
	"arte-gallery-backend/internal/shared"
)

type fakeEmailService struct {
	sent []email.EmailRequest
}

func (f *fakeEmailService) SendEmail(_ context.Context, req email.EmailRequest) error {
	f.sent = append(f.sent, req)
	return nil
}

func newTask(t *testing.T, taskType string, payload interface{}) *asynq.Task {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(taskType, data)
}

func TestVerificationHandler_ReviewedApproved(t *testing.T) {
	mailer := &fakeEmailService{}
	h := NewVerificationHandler(mailer)

	payload := shared.VerificationPayload{
		ArtistID:   "artist-1",
		ArtistName: "Hilma af Klint",
		Email:      "hilma@example.com",
		Status:     model.VerificationVerified,
	}

	err := h.HandleReviewed(context.Background(), newTask(t, shared.TypeVerificationReviewed, payload))
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)

	req := mailer.sent[0]
	assert.Equal(t, []string{"hilma@example.com"}, req.To)
	assert.Contains(t, req.Body, "approved")
	assert.Contains(t, req.Body, "Hilma af Klint")
}

func TestVerificationHandler_ReviewedRejectedCarriesNotes(t *testing.T) {
	mailer := &fakeEmailService{}
	h := NewVerificationHandler(mailer)

	payload := shared.VerificationPayload{
		ArtistID:   "artist-1",
		ArtistName: "Hilma af Klint",
		Email:      "hilma@example.com",
		Status:     model.VerificationRejected,
		Notes:      "portfolio link unreachable",
	}

	err := h.HandleReviewed(context.Background(), newTask(t, shared.TypeVerificationReviewed, payload))
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Body, "portfolio link unreachable")
}

func TestVerificationHandler_SubmittedSkipsWithoutRecipient(t *testing.T) {
	mailer := &fakeEmailService{}
	h := NewVerificationHandler(mailer)

	payload := shared.VerificationPayload{ArtistID: "artist-1", ArtistName: "Hilma af Klint"}
	err := h.HandleSubmitted(context.Background(), newTask(t, shared.TypeVerificationSubmitted, payload))
	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestContributionHandler_StatusChanged(t *testing.T) {
	mailer := &fakeEmailService{}
	h := NewContributionHandler(mailer)

	payload := shared.ContributionPayload{
		ArtistID:   "artist-1",
		ArtistName: "Hilma af Klint",
		Email:      "hilma@example.com",
		Title:      "The Ten Largest",
		Type:       "artwork",
		Status:     "approved",
	}

	err := h.HandleStatusChanged(context.Background(), newTask(t, shared.TypeContributionStatusChanged, payload))
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)

	req := mailer.sent[0]
	assert.Equal(t, []string{"hilma@example.com"}, req.To)
	assert.Contains(t, req.Subject, "approved")
	assert.Contains(t, req.Body, "The Ten Largest")
}
