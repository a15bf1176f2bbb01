package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"arte-gallery-backend/internal/domains/artwork/model"
	"arte-gallery-backend/internal/domains/artwork/repository"
	"arte-gallery-backend/internal/domains/relation"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/infrastructure/storage"
	"arte-gallery-backend/internal/shared/apperror"
	"arte-gallery-backend/pkg/logger"
)

type ArtworkService struct {
	repo       repository.Repository
	artists    ArtistChecker
	maintainer *relation.Maintainer
	media      storage.MediaStore
	processor  *storage.ImageProcessor
}

func NewService(
	repo repository.Repository,
	artists ArtistChecker,
	maintainer *relation.Maintainer,
	media storage.MediaStore,
	processor *storage.ImageProcessor,
) ServiceInterface {
	return &ArtworkService{
		repo:       repo,
		artists:    artists,
		maintainer: maintainer,
		media:      media,
		processor:  processor,
	}
}

func (s *ArtworkService) Create(ctx context.Context, req model.CreateArtworkRequest) (*model.Artwork, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}
	if err := s.artists.Exists(ctx, req.ArtistID); err != nil {
		return nil, apperror.New(apperror.KindValidationFailed, "artistId does not reference an existing artist")
	}

	artwork := &model.Artwork{
		Title:       req.Title,
		ArtistID:    req.ArtistID,
		Description: req.Description,
		Year:        req.Year,
		Period:      req.Period,
		Medium:      req.Medium,
		Dimensions:  req.Dimensions,
		Price:       req.Price,
		ForSale:     req.ForSale,
		Featured:    req.Featured,
		Tags:        req.Tags,
	}
	if err := s.repo.Create(ctx, artwork); err != nil {
		return nil, err
	}

	s.maintainer.Attach(ctx, docstore.CollArtists, "artworks", []string{req.ArtistID}, artwork.ID)
	return artwork, nil
}

// Get returns the artwork and counts the view. The counter update is
// atomic at the store and best-effort for the caller.
func (s *ArtworkService) Get(ctx context.Context, id string) (*model.Artwork, error) {
	artwork, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if views, err := s.repo.IncViews(ctx, id); err != nil {
		logger.Warn("View counter update failed", map[string]interface{}{
			"artworkId": id,
			"error":     err.Error(),
		})
	} else {
		artwork.Views = views
	}
	return artwork, nil
}

func (s *ArtworkService) List(ctx context.Context, req model.ListArtworksRequest) ([]model.Artwork, int, error) {
	req.Normalize()
	return s.repo.List(ctx, req)
}

func (s *ArtworkService) Update(ctx context.Context, id string, req model.UpdateArtworkRequest) (*model.Artwork, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFailed(err)
	}

	artwork, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(artwork)
	if artwork.ForSale && artwork.Price.IsZero() {
		return nil, apperror.New(apperror.KindValidationFailed, "a for-sale artwork needs a price")
	}
	if err := s.repo.Update(ctx, artwork); err != nil {
		return nil, err
	}
	return artwork, nil
}

// RemoveArtwork deletes the artwork, its stored media, and every reference
// to it held by its artist and by exhibitions.
func (s *ArtworkService) RemoveArtwork(ctx context.Context, id string) error {
	artwork, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, set := range artwork.Images {
		for _, url := range []string{set.Original, set.Zoom, set.Thumbnail} {
			if url == "" {
				continue
			}
			if err := s.media.Delete(ctx, url); err != nil {
				logger.Warn("Media cleanup failed", map[string]interface{}{
					"artworkId": id,
					"url":       url,
					"error":     err.Error(),
				})
			}
		}
	}

	s.maintainer.Detach(ctx, docstore.CollArtists, "artworks", []string{artwork.ArtistID}, id)
	s.maintainer.Detach(ctx, docstore.CollExhibitions, "artworks", artwork.Exhibitions, id)

	return s.repo.Delete(ctx, id)
}

func (s *ArtworkService) Like(ctx context.Context, id string) (int64, error) {
	return s.repo.AdjustLikes(ctx, id, 1)
}

func (s *ArtworkService) Unlike(ctx context.Context, id string) (int64, error) {
	return s.repo.AdjustLikes(ctx, id, -1)
}

// UploadImage derives the display, zoom, and thumbnail variants and appends
// them as a new image set.
func (s *ArtworkService) UploadImage(ctx context.Context, id string, data []byte) (*model.Artwork, error) {
	artwork, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.processor.ValidateImage(data); err != nil {
		return nil, apperror.New(apperror.KindValidationFailed, err.Error())
	}

	variants, err := s.processor.ProcessArtworkImage(data)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("process image: %w", err))
	}

	folder := "artworks/" + id
	base := uuid.NewString()
	var set model.ImageSet
	for variant, payload := range variants {
		url, err := s.media.Store(ctx, payload, folder, fmt.Sprintf("%s-%s.jpg", base, variant), "image/jpeg")
		if err != nil {
			return nil, apperror.Internal(fmt.Errorf("store %s variant: %w", variant, err))
		}
		switch variant {
		case "original":
			set.Original = url
		case "zoom":
			set.Zoom = url
		case "thumbnail":
			set.Thumbnail = url
		}
	}

	artwork.Images = append(artwork.Images, set)
	if err := s.repo.Update(ctx, artwork); err != nil {
		return nil, err
	}
	return artwork, nil
}
