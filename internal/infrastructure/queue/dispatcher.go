package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/pkg/logger"
)

// Dispatcher is the notifier boundary: best-effort, fire-and-forget.
// Failures are logged and never reach the calling workflow's result.
type Dispatcher interface {
	Dispatch(kind string, payload interface{})
}

type asynqDispatcher struct {
	client *asynq.Client
}

func NewDispatcher(client *asynq.Client) Dispatcher {
	return &asynqDispatcher{client: client}
}

func (d *asynqDispatcher) Dispatch(kind string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal notification payload for "+kind, err)
		return
	}

	task := asynq.NewTask(kind, data)
	if _, err := d.client.Enqueue(task, asynq.Queue(shared.QueueNotifications)); err != nil {
		logger.Error("Failed to enqueue notification task "+kind, err)
	}
}
