package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterMaintenanceJobs wires the periodic jobs.
func (s *Scheduler) RegisterMaintenanceJobs() error {
	// Exhibition status is recomputed on every write; the nightly sweep
	// catches exhibitions whose dates crossed a boundary with no write.
	task := asynq.NewTask(shared.TypeRefreshExhibitionStatus, nil)
	entryID, err := s.scheduler.Register("10 0 * * *", task, asynq.Queue(shared.QueueMaintenance))
	if err != nil {
		return fmt.Errorf("register exhibition status refresh: %w", err)
	}

	logger.Info("Registered scheduled job", map[string]interface{}{
		"task":  shared.TypeRefreshExhibitionStatus,
		"entry": entryID,
		"cron":  "10 0 * * *",
	})

	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
