package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/config"
	"arte-gallery-backend/internal/domains/artist/model"
	"arte-gallery-backend/internal/domains/artist/repository"
	"arte-gallery-backend/internal/domains/relation"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/infrastructure/queue"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/internal/shared/apperror"
	"arte-gallery-backend/pkg/logger"
)

type ArtistService struct {
	repo         repository.Repository
	maintainer   *relation.Maintainer
	artworks     ArtworkRemover
	users        UserDirectory
	dispatcher   queue.Dispatcher
	deletePolicy string
}

func NewService(
	repo repository.Repository,
	maintainer *relation.Maintainer,
	artworks ArtworkRemover,
	users UserDirectory,
	dispatcher queue.Dispatcher,
	deletePolicy string,
) ServiceInterface {
	if deletePolicy == "" {
		deletePolicy = config.ArtistDeleteRestrict
	}
	return &ArtistService{
		repo:         repo,
		maintainer:   maintainer,
		artworks:     artworks,
		users:        users,
		dispatcher:   dispatcher,
		deletePolicy: deletePolicy,
	}
}

func (s *ArtistService) Create(ctx context.Context, req model.CreateArtistRequest) (*model.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	// When an owner account is named, resolve it before writing anything so
	// a bogus userId fails the whole request instead of dropping the link.
	if req.UserID != "" {
		if _, err := s.users.ArtistProfileID(ctx, req.UserID); err != nil {
			return nil, err
		}
	}

	artist := &model.Artist{
		Name:         req.Name,
		Bio:          req.Bio,
		Nationality:  req.Nationality,
		BirthYear:    req.BirthYear,
		ProfileImage: req.ProfileImage,
		Featured:     req.Featured,
	}
	if err := s.repo.Create(ctx, artist); err != nil {
		return nil, err
	}

	if req.UserID != "" {
		if err := s.users.LinkArtistProfile(ctx, req.UserID, artist.ID); err != nil {
			logger.Warn("Could not link owner account to new artist", map[string]interface{}{
				"artistId": artist.ID,
				"userId":   req.UserID,
				"error":    err.Error(),
			})
		}
	}
	return artist, nil
}

func (s *ArtistService) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ArtistService) List(ctx context.Context, req model.ListArtistsRequest) ([]model.Artist, int, error) {
	req.Normalize()
	return s.repo.List(ctx, req)
}

func (s *ArtistService) Update(ctx context.Context, id string, req model.UpdateArtistRequest) (*model.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(artist)
	if err := s.repo.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// Delete applies the configured policy: restrict refuses while artworks
// exist, cascade removes the artworks (with media) first. Either way the
// artist is detached from exhibitions and from users' profile references.
func (s *ArtistService) Delete(ctx context.Context, id string) error {
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if len(artist.Artworks) > 0 {
		if s.deletePolicy == config.ArtistDeleteRestrict {
			return apperror.Conflict("artist has artworks and cannot be deleted")
		}
		for _, artworkID := range artist.Artworks {
			if err := s.artworks.RemoveArtwork(ctx, artworkID); err != nil {
				logger.Warn("Cascade artwork removal failed", map[string]interface{}{
					"artistId":  id,
					"artworkId": artworkID,
					"error":     err.Error(),
				})
			}
		}
	}

	s.maintainer.Detach(ctx, docstore.CollExhibitions, "artists", artist.Exhibitions, id)

	userIDs, err := s.users.IDsByArtistProfile(ctx, id)
	if err != nil {
		logger.Warn("Could not resolve users referencing artist", map[string]interface{}{
			"artistId": id,
			"error":    err.Error(),
		})
	} else {
		s.maintainer.ClearField(ctx, docstore.CollUsers, "artistProfile", userIDs)
	}

	return s.repo.Delete(ctx, id)
}

// ===== Verification workflow =====

func (s *ArtistService) SubmitVerification(ctx context.Context, artistID, actorID string, isAdmin bool, req model.SubmitVerificationRequest) (*model.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, artist.ID, actorID, isAdmin); err != nil {
		return nil, err
	}

	if artist.Verified {
		return nil, apperror.Conflict("artist is already verified")
	}
	if artist.VerificationStatus == model.VerificationPending {
		return nil, apperror.Conflict("a verification request is already pending")
	}

	// Terminal outcomes are replaceable: the request slot is overwritten.
	artist.VerificationStatus = model.VerificationPending
	artist.Verification = &model.VerificationRequest{
		Documents:   req.Documents,
		Message:     req.Message,
		SubmittedBy: actorID,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, artist); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(shared.TypeVerificationSubmitted, shared.VerificationPayload{
		ArtistID:   artist.ID,
		ArtistName: artist.Name,
		Email:      s.contactEmail(ctx, actorID),
	})
	return artist, nil
}

func (s *ArtistService) ReviewVerification(ctx context.Context, artistID, reviewerID string, req model.ReviewVerificationRequest) (*model.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if artist.VerificationStatus != model.VerificationPending || artist.Verification == nil {
		return nil, apperror.InvalidTransition("no pending verification request to review")
	}

	now := time.Now().UTC()
	artist.Verification.ReviewedBy = reviewerID
	artist.Verification.ReviewedAt = &now
	artist.Verification.Notes = req.Notes
	if req.Approve {
		artist.Verified = true
		artist.VerifiedAt = &now
		artist.VerificationStatus = model.VerificationVerified
	} else {
		artist.VerificationStatus = model.VerificationRejected
	}
	if err := s.repo.Update(ctx, artist); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(shared.TypeVerificationReviewed, shared.VerificationPayload{
		ArtistID:   artist.ID,
		ArtistName: artist.Name,
		Email:      s.contactEmail(ctx, artist.Verification.SubmittedBy),
		Status:     artist.VerificationStatus,
		Notes:      req.Notes,
	})
	return artist, nil
}

// ===== Contributions =====

func (s *ArtistService) AddContribution(ctx context.Context, artistID, actorID string, isAdmin bool, req model.AddContributionRequest) (*model.Contribution, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, artist.ID, actorID, isAdmin); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contribution := model.Contribution{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Type:      req.Type,
		Year:      req.Year,
		Status:    model.ContributionPending,
		MediaRefs: req.MediaRefs,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	artist.Contributions = append(artist.Contributions, contribution)
	if err := s.repo.Update(ctx, artist); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(shared.TypeContributionSubmitted, shared.ContributionPayload{
		ArtistID:   artist.ID,
		ArtistName: artist.Name,
		Email:      s.contactEmail(ctx, actorID),
		Title:      contribution.Title,
		Type:       contribution.Type,
	})
	return &contribution, nil
}

func (s *ArtistService) UpdateContribution(ctx context.Context, artistID, contributionID, actorID string, isAdmin bool, req model.UpdateContributionRequest) (*model.Contribution, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, artist.ID, actorID, isAdmin); err != nil {
		return nil, err
	}

	contribution := artist.FindContribution(contributionID)
	if contribution == nil {
		return nil, apperror.NotFound("contribution", contributionID)
	}
	if contribution.Status == model.ContributionApproved && !isAdmin {
		return nil, apperror.Forbidden("approved contributions can only be changed by an administrator")
	}

	req.Apply(contribution)
	// An owner editing a rejected contribution resubmits it for review.
	if contribution.Status == model.ContributionRejected && !isAdmin {
		contribution.Status = model.ContributionPending
	}
	contribution.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, artist); err != nil {
		return nil, err
	}
	return contribution, nil
}

func (s *ArtistService) ReviewContribution(ctx context.Context, artistID, contributionID, reviewerID string, req model.ReviewContributionRequest) (*model.Contribution, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	contribution := artist.FindContribution(contributionID)
	if contribution == nil {
		return nil, apperror.NotFound("contribution", contributionID)
	}
	if contribution.Status != model.ContributionPending {
		return nil, apperror.InvalidTransition("contribution is not pending review")
	}

	if req.Approve {
		contribution.Status = model.ContributionApproved
	} else {
		contribution.Status = model.ContributionRejected
	}
	contribution.Notes = req.Notes
	contribution.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, artist); err != nil {
		return nil, err
	}

	ownerIDs, _ := s.users.IDsByArtistProfile(ctx, artistID)
	email := ""
	if len(ownerIDs) > 0 {
		email = s.contactEmail(ctx, ownerIDs[0])
	}
	s.dispatcher.Dispatch(shared.TypeContributionStatusChanged, shared.ContributionPayload{
		ArtistID:   artist.ID,
		ArtistName: artist.Name,
		Email:      email,
		Title:      contribution.Title,
		Type:       contribution.Type,
		Status:     contribution.Status,
	})
	return contribution, nil
}

// requireOwnership passes administrators through and otherwise demands the
// actor's linked profile reference point at this artist.
func (s *ArtistService) requireOwnership(ctx context.Context, artistID, actorID string, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	profileID, err := s.users.ArtistProfileID(ctx, actorID)
	if err != nil {
		return err
	}
	if profileID != artistID {
		return apperror.Forbidden("you do not manage this artist profile")
	}
	return nil
}

func (s *ArtistService) contactEmail(ctx context.Context, userID string) string {
	if userID == "" {
		return ""
	}
	email, _, err := s.users.ContactByID(ctx, userID)
	if err != nil {
		logger.Warn("Could not resolve notification recipient", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
		return ""
	}
	return email
}
