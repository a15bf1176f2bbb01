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

// TicketBookedHandler emails the booking confirmation.
type TicketBookedHandler struct {
	emailService email.EmailService
}

func NewTicketBookedHandler(emailService email.EmailService) *TicketBookedHandler {
	return &TicketBookedHandler{emailService: emailService}
}

func (h *TicketBookedHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.TicketBookedPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		return err
	}
	if payload.Email == "" {
		log.Warn().Str("ticket_id", payload.TicketID).Msg("Ticket booked without recipient, skipping email")
		return nil
	}

	body := fmt.Sprintf(
		"<h2>Your tickets are booked</h2>"+
			"<p>Ticket <strong>%s</strong> for <strong>%s</strong>.</p>"+
			"<p>Visit date: %s<br>Quantity: %d<br>Total: %s</p>"+
			"<p>Show the ticket number at the entrance.</p>",
		payload.TicketNumber, payload.ExhibitionTitle,
		payload.Date.Format("Monday, 2 January 2006"), payload.Quantity, payload.Total.StringFixed(2),
	)
	err := h.emailService.SendEmail(ctx, email.EmailRequest{
		To:      []string{payload.Email},
		Subject: "ARTE Gallery: booking confirmation " + payload.TicketNumber,
		Body:    body,
		IsHTML:  true,
	})
	if err != nil {
		return fmt.Errorf("send ticket confirmation: %w", err)
	}
	return nil
}
