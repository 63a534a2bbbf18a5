package booking

import (
	"context"

	"lansdowne360/database/repository"
	"lansdowne360/models"
	"lansdowne360/services/pms"

	"github.com/go-redis/redis/v8"
)

// BookingEngine bridges the public booking funnel to the eZee PMS and
// mirrors successful bookings into the local reservation ledger.
type BookingEngine interface {
	CheckAvailability(ctx context.Context, start, end, roomTypeID string) ([]pms.AvailabilityItem, error)
	CreateBooking(ctx context.Context, input models.BookingInput) (*pms.BookingResult, error)
	GetBooking(ctx context.Context, confirmationNumber string) (*pms.BookingResult, error)
	CancelBooking(ctx context.Context, confirmationNumber string) (*pms.BookingResult, error)
}

// DefaultBookingEngine implements BookingEngine. CacheClient is
// optional; when nil, availability always hits the PMS.
type DefaultBookingEngine struct {
	SettingsRepo    repository.SettingRepository
	ReservationRepo repository.ReservationRepository
	CacheClient     *redis.Client
}
