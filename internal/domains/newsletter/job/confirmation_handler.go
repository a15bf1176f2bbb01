package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"arte-gallery-backend/internal/infrastructure/email"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/utils"
)

// ConfirmationHandler sends the subscribe and unsubscribe confirmations.
type ConfirmationHandler struct {
	emailService email.EmailService
}

func NewConfirmationHandler(emailService email.EmailService) *ConfirmationHandler {
	return &ConfirmationHandler{emailService: emailService}
}

// HandleSubscribed processes newsletter:subscribed tasks.
func (h *ConfirmationHandler) HandleSubscribed(ctx context.Context, task *asynq.Task) error {
	var payload shared.NewsletterPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		return err
	}

	err := h.emailService.SendEmail(ctx, email.EmailRequest{
		To:      []string{payload.Email},
		Subject: "ARTE Gallery: newsletter subscription confirmed",
		Body: "<h2>Welcome to the ARTE Gallery newsletter</h2>" +
			"<p>You will now receive news about exhibitions, artists and events.</p>",
		IsHTML: true,
	})
	if err != nil {
		return fmt.Errorf("send subscribe confirmation: %w", err)
	}
	return nil
}

// HandleUnsubscribed processes newsletter:unsubscribed tasks.
func (h *ConfirmationHandler) HandleUnsubscribed(ctx context.Context, task *asynq.Task) error {
	var payload shared.NewsletterPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		return err
	}

	err := h.emailService.SendEmail(ctx, email.EmailRequest{
		To:      []string{payload.Email},
		Subject: "ARTE Gallery: you have been unsubscribed",
		Body: "<h2>Unsubscribed</h2>" +
			"<p>You will no longer receive the ARTE Gallery newsletter.</p>",
		IsHTML: true,
	})
	if err != nil {
		return fmt.Errorf("send unsubscribe confirmation: %w", err)
	}
	return nil
}
