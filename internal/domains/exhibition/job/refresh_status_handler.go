package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"arte-gallery-backend/internal/domains/exhibition/service"
)

// RefreshStatusHandler runs the nightly status sweep.
type RefreshStatusHandler struct {
	service service.ServiceInterface
}

func NewRefreshStatusHandler(service service.ServiceInterface) *RefreshStatusHandler {
	return &RefreshStatusHandler{service: service}
}

func (h *RefreshStatusHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	changed, err := h.service.RefreshStatuses(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Exhibition status sweep failed")
		return err
	}
	log.Info().Int("changed", changed).Msg("Exhibition status sweep done")
	return nil
}
