package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lansdowne360/models"
	"lansdowne360/services/pms"
	"lansdowne360/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const availabilityCacheTTL = 60 * time.Second

// CheckAvailability returns room availability for the stay range,
// serving from the short-lived cache when possible.
func (e *DefaultBookingEngine) CheckAvailability(ctx context.Context, start, end, roomTypeID string) ([]pms.AvailabilityItem, error) {
	cacheKey := fmt.Sprintf("availability:%s:%s:%s", start, end, roomTypeID)
	if e.CacheClient != nil {
		if cached, err := e.CacheClient.Get(ctx, cacheKey).Result(); err == nil {
			var items []pms.AvailabilityItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	client, err := e.client()
	if err != nil {
		return nil, err
	}
	items, err := client.Availability(ctx, start, end, roomTypeID)
	if err != nil {
		return nil, err
	}

	if e.CacheClient != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := e.CacheClient.Set(ctx, cacheKey, data, availabilityCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache availability", zap.Error(err))
			}
		}
	}
	return items, nil
}

// CreateBooking creates the booking on the PMS and mirrors it into the
// local ledger. The mirror row takes its confirmation number from the
// PMS response and everything else from the caller-supplied payload;
// guest, hotel and room links are left unresolved. The insert is a side
// effect and is not reflected in the returned result.
func (e *DefaultBookingEngine) CreateBooking(ctx context.Context, input models.BookingInput) (*pms.BookingResult, error) {
	client, err := e.client()
	if err != nil {
		return nil, err
	}
	result, err := client.CreateBooking(ctx, input)
	if err != nil {
		return nil, err
	}

	mirror := &models.Reservation{
		ID:                 uuid.New().String(),
		ConfirmationNumber: result.ConfirmationNumber,
		CheckIn:            input.CheckIn,
		CheckOut:           input.CheckOut,
		GuestsCount:        input.GuestsCount,
		Nights:             input.Nights,
		Subtotal:           input.Subtotal,
		Total:              input.Total,
		Status:             "confirmed",
		PaymentStatus:      "pending",
	}
	if err := e.ReservationRepo.Create(mirror); err != nil {
		utils.GetLogger().Error("failed to mirror booking into local ledger",
			zap.String("confirmation_number", result.ConfirmationNumber),
			zap.Error(err))
	}

	return result, nil
}

// GetBooking fetches a booking from the PMS by confirmation number.
func (e *DefaultBookingEngine) GetBooking(ctx context.Context, confirmationNumber string) (*pms.BookingResult, error) {
	client, err := e.client()
	if err != nil {
		return nil, err
	}
	return client.GetBooking(ctx, confirmationNumber)
}

// CancelBooking cancels a booking on the PMS. The local mirror is not
// updated here; status changes arrive through the webhook sync worker
// or the admin panel.
func (e *DefaultBookingEngine) CancelBooking(ctx context.Context, confirmationNumber string) (*pms.BookingResult, error) {
	client, err := e.client()
	if err != nil {
		return nil, err
	}
	return client.CancelBooking(ctx, confirmationNumber)
}
