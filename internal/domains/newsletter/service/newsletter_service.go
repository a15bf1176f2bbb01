package service

import (
	"context"
	"strings"

	"arte-gallery-backend/internal/domains/newsletter/model"
	"arte-gallery-backend/internal/domains/newsletter/repository"
	"arte-gallery-backend/internal/infrastructure/queue"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/apperror"
)

type ServiceInterface interface {
	Subscribe(ctx context.Context, req model.SubscribeRequest) error
	Unsubscribe(ctx context.Context, req model.SubscribeRequest) error
}

type NewsletterService struct {
	repo       repository.Repository
	dispatcher queue.Dispatcher
}

func NewService(repo repository.Repository, dispatcher queue.Dispatcher) ServiceInterface {
	return &NewsletterService{repo: repo, dispatcher: dispatcher}
}

func (s *NewsletterService) Subscribe(ctx context.Context, req model.SubscribeRequest) error {
	if err := req.Validate(); err != nil {
		return apperror.ValidationFailed(err)
	}

	sub := &model.Subscription{Email: normalize(req.Email)}
	if err := s.repo.Create(ctx, sub); err != nil {
		return err
	}

	s.dispatcher.Dispatch(shared.TypeNewsletterSubscribed, shared.NewsletterPayload{Email: sub.Email})
	return nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, req model.SubscribeRequest) error {
	if err := req.Validate(); err != nil {
		return apperror.ValidationFailed(err)
	}

	email := normalize(req.Email)
	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		return err
	}

	s.dispatcher.Dispatch(shared.TypeNewsletterUnsubscribed, shared.NewsletterPayload{Email: email})
	return nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
