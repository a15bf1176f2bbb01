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

// StatusUpdateHandler sends the order status change email.
type StatusUpdateHandler struct {
	emailService email.EmailService
}

func NewStatusUpdateHandler(emailService email.EmailService) *StatusUpdateHandler {
	return &StatusUpdateHandler{emailService: emailService}
}

func (h *StatusUpdateHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.OrderStatusChangedPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		return err
	}
	if payload.Email == "" {
		log.Warn().Str("order_id", payload.OrderID).Msg("Status change without recipient, skipping email")
		return nil
	}

	tracking := ""
	if payload.TrackingNumber != "" {
		tracking = fmt.Sprintf("<p>Tracking number: <strong>%s</strong></p>", payload.TrackingNumber)
	}
	body := fmt.Sprintf(
		"<h2>Order update</h2>"+
			"<p>Hello %s, your order <strong>%s</strong> is now <strong>%s</strong>.</p>%s",
		payload.FirstName, payload.OrderNumber, payload.Status, tracking,
	)
	err := h.emailService.SendEmail(ctx, email.EmailRequest{
		To:      []string{payload.Email},
		Subject: "ARTE Gallery: order " + payload.OrderNumber + " " + payload.Status,
		Body:    body,
		IsHTML:  true,
	})
	if err != nil {
		return fmt.Errorf("send status update: %w", err)
	}
	return nil
}
