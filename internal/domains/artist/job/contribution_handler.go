package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"arte-gallery-backend/internal/infrastructure/email"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/utils"
)

// ContributionHandler sends contribution lifecycle emails.
type ContributionHandler struct {
	emailService email.EmailService
}

func NewContributionHandler(emailService email.EmailService) *ContributionHandler {
	return &ContributionHandler{emailService: emailService}
}

// HandleSubmitted processes contribution:submitted tasks.
func (h *ContributionHandler) HandleSubmitted(ctx context.Context, task *asynq.Task) error {
	var payload shared.ContributionPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		return err
	}
	if payload.Email == "" {
		log.Warn().Str("artist_id", payload.ArtistID).Msg("Contribution submitted without recipient, skipping email")
		return nil
	}

	body := fmt.Sprintf(
		"<h2>Contribution submitted</h2>"+
			"<p>Your %s contribution <strong>%s</strong> for %s has been submitted and is awaiting review.</p>",
		payload.Type, payload.Title, payload.ArtistName,
	)
	err := h.emailService.SendEmail(ctx, email.EmailRequest{
		To:      []string{payload.Email},
		Subject: "ARTE Gallery: contribution submitted",
		Body:    body,
		IsHTML:  true,
	})
	if err != nil {
		return fmt.Errorf("send contribution submitted email: %w", err)
	}
	return nil
}

// HandleStatusChanged processes contribution:status_changed tasks.
func (h *ContributionHandler) HandleStatusChanged(ctx context.Context, task *asynq.Task) error {
	var payload shared.ContributionPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		return err
	}
	if payload.Email == "" {
		log.Warn().Str("artist_id", payload.ArtistID).Msg("Contribution reviewed without recipient, skipping email")
		return nil
	}

	body := fmt.Sprintf(
		"<h2>Contribution %s</h2>"+
			"<p>The %s contribution <strong>%s</strong> for %s is now <strong>%s</strong>.</p>",
		payload.Status, payload.Type, payload.Title, payload.ArtistName, payload.Status,
	)
	err := h.emailService.SendEmail(ctx, email.EmailRequest{
		To:      []string{payload.Email},
		Subject: "ARTE Gallery: contribution " + payload.Status,
		Body:    body,
		IsHTML:  true,
	})
	if err != nil {
		return fmt.Errorf("send contribution status email: %w", err)
	}
	return nil
}
