package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"arte-gallery-backend/internal/domains/artist/model"
	"arte-gallery-backend/internal/infrastructure/email"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/utils"
)

// VerificationHandler sends the verification lifecycle emails.
type VerificationHandler struct {
	emailService email.EmailService
}

func NewVerificationHandler(emailService email.EmailService) *VerificationHandler {
	return &VerificationHandler{emailService: emailService}
}

// HandleSubmitted processes verification:submitted tasks.
func (h *VerificationHandler) HandleSubmitted(ctx context.Context, task *asynq.Task) error {
	var payload shared.VerificationPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		return err
	}
	if payload.Email == "" {
		log.Warn().Str("artist_id", payload.ArtistID).Msg("Verification submitted without recipient, skipping email")
		return nil
	}

	body := fmt.Sprintf(
		"<h2>Verification request received</h2>"+
			"<p>Your verification request for <strong>%s</strong> has been received and is awaiting review.</p>"+
			"<p>We will notify you once a decision has been made.</p>",
		payload.ArtistName,
	)
	err := h.emailService.SendEmail(ctx, email.EmailRequest{
		To:      []string{payload.Email},
		Subject: "ARTE Gallery: verification request received",
		Body:    body,
		IsHTML:  true,
	})
	if err != nil {
		return fmt.Errorf("send verification submitted email: %w", err)
	}
	return nil
}

// HandleReviewed processes verification:reviewed tasks.
func (h *VerificationHandler) HandleReviewed(ctx context.Context, task *asynq.Task) error {
	var payload shared.VerificationPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		return err
	}
	if payload.Email == "" {
		log.Warn().Str("artist_id", payload.ArtistID).Msg("Verification reviewed without recipient, skipping email")
		return nil
	}

	var body string
	if payload.Status == model.VerificationVerified {
		body = fmt.Sprintf(
			"<h2>Verification approved</h2>"+
				"<p>Congratulations, <strong>%s</strong> is now a verified artist on ARTE Gallery.</p>",
			payload.ArtistName,
		)
	} else {
		body = fmt.Sprintf(
			"<h2>Verification rejected</h2>"+
				"<p>The verification request for <strong>%s</strong> was not approved.</p>"+
				"<p>Reviewer notes: %s</p>"+
				"<p>You may submit a new request with additional documentation.</p>",
			payload.ArtistName, payload.Notes,
		)
	}
	err := h.emailService.SendEmail(ctx, email.EmailRequest{
		To:      []string{payload.Email},
		Subject: "ARTE Gallery: verification request reviewed",
		Body:    body,
		IsHTML:  true,
	})
	if err != nil {
		return fmt.Errorf("send verification reviewed email: %w", err)
	}
	return nil
}
