package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lansdowne360/config"
	"lansdowne360/database/repository"
	"lansdowne360/models"
	"lansdowne360/services/tasks"

	"github.com/hibiken/asynq"
)

// InitBookingSyncWorker runs the async worker in background. It applies
// PMS-side status changes, delivered via webhook, to the local ledger.
func InitBookingSyncWorker(reservationRepo repository.ReservationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingSync, handleBookingSyncTask(reservationRepo))

	go func() {
		log.Println("[BookingSyncWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingSyncWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingSyncWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingSyncTask(repo repository.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingStatusEvent
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[BookingSyncHandler] invalid payload: %v", err)
			return err
		}

		if p.ConfirmationNumber == "" {
			log.Printf("[BookingSyncHandler] event without confirmation number, skipping")
			return nil
		}

		if err := repo.UpdateStatusByConfirmation(p.ConfirmationNumber, p.Status); err != nil {
			log.Printf("[BookingSyncHandler] failed to update reservation %s: %v", p.ConfirmationNumber, err)
			return err
		}
		log.Printf("[BookingSyncHandler] reservation %s marked %s", p.ConfirmationNumber, p.Status)
		return nil
	}
}
