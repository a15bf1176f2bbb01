package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"arte-gallery-backend/pkg/logger"
)

type EmailRequest struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

type EmailService interface {
	SendEmail(ctx context.Context, req EmailRequest) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

// NewSMTPEmailService talks to a plain SMTP relay (mailpit/mailhog in
// development, a real relay in production).
func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendEmail(ctx context.Context, req EmailRequest) error {
	contentType := "text/plain; charset=utf-8"
	if req.IsHTML {
		contentType = "text/html; charset=utf-8"
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: %s\r\n\r\n%s",
		s.smtpFrom, strings.Join(req.To, ", "), req.Subject, contentType, req.Body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, req.To, msg); err != nil {
		logger.Info("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        req.To,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
