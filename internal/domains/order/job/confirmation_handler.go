package job

import (
	"context"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"arte-gallery-backend/internal/infrastructure/email"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/utils"
)

// ConfirmationHandler sends the order confirmation email.
type ConfirmationHandler struct {
	emailService email.EmailService
}

func NewConfirmationHandler(emailService email.EmailService) *ConfirmationHandler {
	return &ConfirmationHandler{emailService: emailService}
}

func (h *ConfirmationHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.OrderConfirmedPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		return err
	}
	if payload.Email == "" {
		log.Warn().Str("order_id", payload.OrderID).Msg("Order confirmed without recipient, skipping email")
		return nil
	}

	var rows strings.Builder
	for _, item := range payload.Items {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%d</td><td>%s</td></tr>",
			item.Name, item.Quantity, item.Price.StringFixed(2))
	}

	body := fmt.Sprintf(
		"<h2>Thank you for your order, %s</h2>"+
			"<p>Order <strong>%s</strong> was received on %s.</p>"+
			"<table><tr><th>Item</th><th>Qty</th><th>Price</th></tr>%s</table>"+
			"<p>Total: <strong>%s</strong></p>",
		payload.FirstName, payload.OrderNumber,
		payload.CreatedAt.Format("2 January 2006"),
		rows.String(), payload.Total.StringFixed(2),
	)
	err := h.emailService.SendEmail(ctx, email.EmailRequest{
		To:      []string{payload.Email},
		Subject: "ARTE Gallery: order confirmation " + payload.OrderNumber,
		Body:    body,
		IsHTML:  true,
	})
	if err != nil {
		return fmt.Errorf("send order confirmation: %w", err)
	}
	return nil
}
