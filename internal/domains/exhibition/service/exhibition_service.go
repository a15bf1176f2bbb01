package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"arte-gallery-backend/internal/domains/exhibition/model"
	"arte-gallery-backend/internal/domains/exhibition/repository"
	"arte-gallery-backend/internal/domains/relation"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/infrastructure/queue"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/apperror"
	"arte-gallery-backend/internal/shared/utils"
	"arte-gallery-backend/pkg/cache"
	"arte-gallery-backend/pkg/logger"
)

const (
	listingCachePrefix = "exhibitions:list"
	listingCacheTTL    = 5 * time.Minute
)

type cachedListing struct {
	Items []model.Exhibition `json:"items"`
	Total int                `json:"total"`
}

type ExhibitionService struct {
	repo       repository.Repository
	tickets    repository.TicketRepository
	maintainer *relation.Maintainer
	dispatcher queue.Dispatcher
	cache      cache.Cache
	now        func() time.Time
}

func NewService(
	repo repository.Repository,
	tickets repository.TicketRepository,
	maintainer *relation.Maintainer,
	dispatcher queue.Dispatcher,
	cache cache.Cache,
) ServiceInterface {
	return &ExhibitionService{
		repo:       repo,
		tickets:    tickets,
		maintainer: maintainer,
		dispatcher: dispatcher,
		cache:      cache,
		now:        time.Now,
	}
}

func (s *ExhibitionService) Create(ctx context.Context, req model.CreateExhibitionRequest) (*model.Exhibition, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	exhibition := &model.Exhibition{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Artists:     req.Artists,
		Artworks:    req.Artworks,
		TicketTiers: req.TicketTiers,
		CoverImage:  req.CoverImage,
		Status:      model.ComputeStatus(s.now(), req.StartDate, req.EndDate),
	}
	if err := s.repo.Create(ctx, exhibition); err != nil {
		return nil, err
	}

	s.maintainer.Attach(ctx, docstore.CollArtists, "exhibitions", exhibition.Artists, exhibition.ID)
	s.maintainer.Attach(ctx, docstore.CollArtworks, "exhibitions", exhibition.Artworks, exhibition.ID)
	s.invalidateListings(ctx)
	return exhibition, nil
}

func (s *ExhibitionService) GetByID(ctx context.Context, id string) (*model.Exhibition, error) {
	return s.repo.GetByID(ctx, id)
}

// List serves status-filtered pages from the cache; free-text searches go
// straight to the store.
func (s *ExhibitionService) List(ctx context.Context, req model.ListExhibitionsRequest) ([]model.Exhibition, int, error) {
	req.Normalize()
	if req.Search != "" {
		return s.repo.List(ctx, req)
	}

	key := fmt.Sprintf("%s:%s:%d:%d", listingCachePrefix, req.Status, req.Page, req.Limit)
	var cached cachedListing
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Exhibition listing cache read failed", map[string]interface{}{"error": err.Error()})
	}
	if found {
		return cached.Items, cached.Total, nil
	}

	items, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	if err := s.cache.Set(ctx, key, cachedListing{Items: items, Total: total}, listingCacheTTL); err != nil {
		logger.Warn("Exhibition listing cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return items, total, nil
}

// Update replaces the given fields, reconciles both reference lists
// against their previous values, and recomputes the status.
func (s *ExhibitionService) Update(ctx context.Context, id string, req model.UpdateExhibitionRequest) (*model.Exhibition, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	exhibition, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prevArtists := exhibition.Artists
	prevArtworks := exhibition.Artworks

	req.Apply(exhibition)
	if !exhibition.EndDate.After(exhibition.StartDate) {
		return nil, apperror.New(apperror.KindValidationFailed, "endDate must be after startDate")
	}
	exhibition.Status = model.ComputeStatus(s.now(), exhibition.StartDate, exhibition.EndDate)

	if err := s.repo.Update(ctx, exhibition); err != nil {
		return nil, err
	}

	s.maintainer.Sync(ctx, docstore.CollArtists, "exhibitions", prevArtists, exhibition.Artists, id)
	s.maintainer.Sync(ctx, docstore.CollArtworks, "exhibitions", prevArtworks, exhibition.Artworks, id)
	s.invalidateListings(ctx)
	return exhibition, nil
}

func (s *ExhibitionService) Delete(ctx context.Context, id string) error {
	exhibition, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.maintainer.Detach(ctx, docstore.CollArtists, "exhibitions", exhibition.Artists, id)
	s.maintainer.Detach(ctx, docstore.CollArtworks, "exhibitions", exhibition.Artworks, id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *ExhibitionService) invalidateListings(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, listingCachePrefix+":*"); err != nil {
		logger.Warn("Exhibition listing cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *ExhibitionService) RefreshStatuses(ctx context.Context) (int, error) {
	exhibitions, err := s.repo.All(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	changed := 0
	for i := range exhibitions {
		e := &exhibitions[i]
		next := model.ComputeStatus(now, e.StartDate, e.EndDate)
		if next == e.Status {
			continue
		}
		e.Status = next
		if err := s.repo.Update(ctx, e); err != nil {
			logger.Warn("Status refresh failed for exhibition", map[string]interface{}{
				"exhibitionId": e.ID,
				"error":        err.Error(),
			})
			continue
		}
		changed++
	}
	if changed > 0 {
		s.invalidateListings(ctx)
	}
	return changed, nil
}

// ===== Tickets =====

func (s *ExhibitionService) BookTicket(ctx context.Context, exhibitionID, userID string, req model.BookTicketRequest) (*model.Ticket, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	exhibition, err := s.repo.GetByID(ctx, exhibitionID)
	if err != nil {
		return nil, err
	}

	if model.ComputeStatus(s.now(), exhibition.StartDate, exhibition.EndDate) == model.StatusPast {
		return nil, apperror.InvalidTransition("exhibition has already ended")
	}
	if req.VisitDate.Before(exhibition.StartDate) || req.VisitDate.After(exhibition.EndDate) {
		return nil, apperror.New(apperror.KindValidationFailed, "visitDate is outside the exhibition dates")
	}

	price, ok := exhibition.TierPrice(req.Tier)
	if !ok {
		return nil, apperror.New(apperror.KindValidationFailed, "this exhibition does not offer the "+req.Tier+" tier")
	}

	ticket := &model.Ticket{
		TicketNumber: utils.GenerateTicketNumber(),
		ExhibitionID: exhibition.ID,
		UserID:       userID,
		Email:        req.Email,
		VisitDate:    req.VisitDate,
		Tier:         req.Tier,
		Quantity:     req.Quantity,
		UnitPrice:    price,
		Total:        price.Mul(decimal.NewFromInt(int64(req.Quantity))),
		Status:       model.TicketBooked,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(shared.TypeTicketBooked, shared.TicketBookedPayload{
		TicketID:        ticket.ID,
		TicketNumber:    ticket.TicketNumber,
		Email:           ticket.Email,
		ExhibitionTitle: exhibition.Title,
		Date:            ticket.VisitDate,
		Quantity:        ticket.Quantity,
		Total:           ticket.Total,
	})
	return ticket, nil
}

func (s *ExhibitionService) ListUserTickets(ctx context.Context, userID string) ([]model.Ticket, error) {
	return s.tickets.ListByUser(ctx, userID)
}

func (s *ExhibitionService) CancelTicket(ctx context.Context, ticketID, actorID string, isAdmin bool) (*model.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && (ticket.UserID == "" || ticket.UserID != actorID) {
		return nil, apperror.Forbidden("this ticket belongs to another visitor")
	}
	if ticket.Status == model.TicketCancelled {
		return nil, apperror.InvalidTransition("ticket is already cancelled")
	}
	if ticket.VisitDate.Before(s.now()) {
		return nil, apperror.InvalidTransition("past-dated tickets cannot be cancelled")
	}

	ticket.Status = model.TicketCancelled
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
