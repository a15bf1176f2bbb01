package service

import (
	"context"
	"fmt"
	"strings"

	"arte-gallery-backend/internal/domains/contact/model"
	"arte-gallery-backend/internal/domains/contact/repository"
	"arte-gallery-backend/internal/infrastructure/queue"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/apperror"
)

type ServiceInterface interface {
	Submit(ctx context.Context, req model.SubmitContactRequest) (*model.Message, error)
	SubmitArtworkInquiry(ctx context.Context, req model.ArtworkInquiryRequest) (*model.Message, error)
	List(ctx context.Context, req model.ListContactsRequest) ([]model.Message, int, error)
	GetByID(ctx context.Context, id string) (*model.Message, error)
	MarkRead(ctx context.Context, id string) (*model.Message, error)
	UpdateStatus(ctx context.Context, id string, req model.UpdateStatusRequest) (*model.Message, error)
	Delete(ctx context.Context, id string) error
}

type ContactService struct {
	repo       repository.Repository
	dispatcher queue.Dispatcher
}

func NewService(repo repository.Repository, dispatcher queue.Dispatcher) ServiceInterface {
	return &ContactService{repo: repo, dispatcher: dispatcher}
}

func (s *ContactService) Submit(ctx context.Context, req model.SubmitContactRequest) (*model.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	msg := &model.Message{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.notify(msg)
	return msg, nil
}

// SubmitArtworkInquiry stores an inquiry about a specific artwork. The
// subject is derived so gallery staff can triage inquiries apart from
// general mail.
func (s *ContactService) SubmitArtworkInquiry(ctx context.Context, req model.ArtworkInquiryRequest) (*model.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	title := req.ArtworkTitle
	if title == "" {
		title = req.ArtworkID
	}
	msg := &model.Message{
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:          fmt.Sprintf("Inquiry about artwork: %s", title),
		Message:          strings.TrimSpace(req.Message),
		ArtworkID:        req.ArtworkID,
		IsArtworkInquiry: true,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.notify(msg)
	return msg, nil
}

func (s *ContactService) List(ctx context.Context, req model.ListContactsRequest) ([]model.Message, int, error) {
	req.Normalize()
	return s.repo.List(ctx, req)
}

func (s *ContactService) GetByID(ctx context.Context, id string) (*model.Message, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*model.Message, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.IsRead {
		return msg, nil
	}
	msg.IsRead = true
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ContactService) UpdateStatus(ctx context.Context, id string, req model.UpdateStatusRequest) (*model.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	msg.Status = req.Status
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ContactService) notify(msg *model.Message) {
	s.dispatcher.Dispatch(shared.TypeContactSubmitted, shared.ContactSubmittedPayload{
		ContactID:        msg.ID,
		Name:             msg.Name,
		Email:            msg.Email,
		Subject:          msg.Subject,
		Message:          msg.Message,
		ArtworkID:        msg.ArtworkID,
		IsArtworkInquiry: msg.IsArtworkInquiry,
	})
}
