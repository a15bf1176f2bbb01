package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"arte-gallery-backend/internal/infrastructure/email"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/utils"
)

// NotificationHandler forwards contact submissions to the gallery inbox.
type NotificationHandler struct {
	emailService email.EmailService
	adminInbox   string
}

func NewNotificationHandler(emailService email.EmailService, adminInbox string) *NotificationHandler {
	return &NotificationHandler{emailService: emailService, adminInbox: adminInbox}
}

func (h *NotificationHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.ContactSubmittedPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		return err
	}

	heading := "New Contact Form Submission"
	if payload.IsArtworkInquiry {
		heading = "New Artwork Inquiry"
	}
	artworkRow := ""
	if payload.ArtworkID != "" {
		artworkRow = fmt.Sprintf("<p><strong>Artwork:</strong> %s</p>", payload.ArtworkID)
	}
	body := fmt.Sprintf(
		"<h2>%s</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"%s"+
			"<p><strong>Message:</strong> %s</p>",
		heading, payload.Name, payload.Email, payload.Subject, artworkRow, payload.Message,
	)
	err := h.emailService.SendEmail(ctx, email.EmailRequest{
		To:      []string{h.adminInbox},
		Subject: heading + ": " + payload.Subject,
		Body:    body,
		IsHTML:  true,
	})
	if err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}
