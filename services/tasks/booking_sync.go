package tasks

import (
	"encoding/json"

	"lansdowne360/models"

	"github.com/hibiken/asynq"
)

const TypeBookingSync = "ezee:booking_sync"

// NewBookingSyncTask wraps a PMS booking status event into a queue task.
func NewBookingSyncTask(payload models.BookingStatusEvent) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingSync, b), nil
}
