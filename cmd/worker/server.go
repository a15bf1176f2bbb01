package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	artistJob "arte-gallery-backend/internal/domains/artist/job"
	contactJob "arte-gallery-backend/internal/domains/contact/job"
	exhibitionJob "arte-gallery-backend/internal/domains/exhibition/job"
	newsletterJob "arte-gallery-backend/internal/domains/newsletter/job"
	orderJob "arte-gallery-backend/internal/domains/order/job"
	"arte-gallery-backend/internal/infrastructure/queue"
	"arte-gallery-backend/internal/shared"
	"arte-gallery-backend/pkg/container"
	"arte-gallery-backend/pkg/logger"
)

// setupWorkerServer builds the asynq server, registers every task handler
// and starts consuming. Notification tasks outnumber maintenance tasks, so
// the notifications queue gets the higher weight.
func setupWorkerServer(c *container.Container) *asynq.Server {
	confirmation := orderJob.NewConfirmationHandler(c.Email)
	statusUpdate := orderJob.NewStatusUpdateHandler(c.Email)
	verification := artistJob.NewVerificationHandler(c.Email)
	contribution := artistJob.NewContributionHandler(c.Email)
	ticketBooked := exhibitionJob.NewTicketBookedHandler(c.Email)
	contactNotify := contactJob.NewNotificationHandler(c.Email, c.Config.Email.AdminInbox)
	newsletterMail := newsletterJob.NewConfirmationHandler(c.Email)
	refreshStatus := exhibitionJob.NewRefreshStatusHandler(c.ExhibService)

	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeOrderConfirmed, confirmation.ProcessTask)
	mux.HandleFunc(shared.TypeOrderStatusChanged, statusUpdate.ProcessTask)
	mux.HandleFunc(shared.TypeVerificationSubmitted, verification.HandleSubmitted)
	mux.HandleFunc(shared.TypeVerificationReviewed, verification.HandleReviewed)
	mux.HandleFunc(shared.TypeContributionSubmitted, contribution.HandleSubmitted)
	mux.HandleFunc(shared.TypeContributionStatusChanged, contribution.HandleStatusChanged)
	mux.HandleFunc(shared.TypeTicketBooked, ticketBooked.ProcessTask)
	mux.HandleFunc(shared.TypeContactSubmitted, contactNotify.ProcessTask)
	mux.HandleFunc(shared.TypeNewsletterSubscribed, newsletterMail.HandleSubscribed)
	mux.HandleFunc(shared.TypeNewsletterUnsubscribed, newsletterMail.HandleUnsubscribed)
	mux.HandleFunc(shared.TypeRefreshExhibitionStatus, refreshStatus.ProcessTask)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				shared.QueueNotifications: 6,
				shared.QueueMaintenance:   2,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
				logger.Error("Task failed: "+task.Type(), err)
			}),
		},
	)

	go func() {
		logger.Info("Worker starting", map[string]interface{}{
			"queues": []string{shared.QueueNotifications, shared.QueueMaintenance},
		})
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Worker failed: %v", err)
		}
	}()

	return srv
}

func setupScheduler(c *container.Container) *queue.Scheduler {
	scheduler := queue.NewScheduler(c.Config.Redis.Host)
	if err := scheduler.RegisterMaintenanceJobs(); err != nil {
		log.Fatalf("Failed to register scheduled jobs: %v", err)
	}

	go func() {
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Scheduler failed: %v", err)
		}
	}()

	return scheduler
}
