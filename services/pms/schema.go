package pms

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Booking statuses the PMS is allowed to report. Anything else is a
// contract violation.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// AvailabilityItem is one room type's availability for the queried range.
type AvailabilityItem struct {
	RoomTypeID     string  `json:"roomTypeId"`
	RoomsAvailable int     `json:"roomsAvailable"`
	Rate           float64 `json:"rate"`
}

// BookingResult is the PMS's view of one reservation.
type BookingResult struct {
	ConfirmationNumber string  `json:"confirmationNumber"`
	Total              float64 `json:"total"`
	Status             string  `json:"status"`
}

// Wire structs use pointers so missing fields can be told apart from
// zero values. Extra fields in the response are ignored.
type availabilityItemWire struct {
	RoomTypeID     *string  `json:"roomTypeId"`
	RoomsAvailable *int     `json:"roomsAvailable"`
	Rate           *float64 `json:"rate"`
}

type availabilityWire struct {
	Items []availabilityItemWire `json:"items"`
}

type bookingWire struct {
	ConfirmationNumber *string  `json:"confirmationNumber"`
	Total              *float64 `json:"total"`
	Status             *string  `json:"status"`
}

func decodeAvailability(raw json.RawMessage) ([]AvailabilityItem, error) {
	var wire availabilityWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, wrapDecodeError(err)
	}
	if wire.Items == nil {
		return nil, &ValidationError{Field: "items", Message: "required field is missing"}
	}
	items := make([]AvailabilityItem, 0, len(wire.Items))
	for i, it := range wire.Items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }
		if it.RoomTypeID == nil {
			return nil, &ValidationError{Field: field("roomTypeId"), Message: "required field is missing"}
		}
		if it.RoomsAvailable == nil {
			return nil, &ValidationError{Field: field("roomsAvailable"), Message: "required field is missing"}
		}
		if *it.RoomsAvailable < 0 {
			return nil, &ValidationError{Field: field("roomsAvailable"), Message: "must not be negative"}
		}
		if it.Rate == nil {
			return nil, &ValidationError{Field: field("rate"), Message: "required field is missing"}
		}
		if *it.Rate < 0 {
			return nil, &ValidationError{Field: field("rate"), Message: "must not be negative"}
		}
		items = append(items, AvailabilityItem{
			RoomTypeID:     *it.RoomTypeID,
			RoomsAvailable: *it.RoomsAvailable,
			Rate:           *it.Rate,
		})
	}
	return items, nil
}

func decodeBooking(raw json.RawMessage) (*BookingResult, error) {
	var wire bookingWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, wrapDecodeError(err)
	}
	return validateBooking(&wire, "")
}

func decodeBookingEnvelope(raw json.RawMessage) (*BookingResult, error) {
	var wire struct {
		Booking *bookingWire `json:"booking"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, wrapDecodeError(err)
	}
	if wire.Booking == nil {
		return nil, &ValidationError{Field: "booking", Message: "required field is missing"}
	}
	return validateBooking(wire.Booking, "booking.")
}

func validateBooking(w *bookingWire, prefix string) (*BookingResult, error) {
	if w.ConfirmationNumber == nil {
		return nil, &ValidationError{Field: prefix + "confirmationNumber", Message: "required field is missing"}
	}
	if w.Total == nil {
		return nil, &ValidationError{Field: prefix + "total", Message: "required field is missing"}
	}
	if w.Status == nil {
		return nil, &ValidationError{Field: prefix + "status", Message: "required field is missing"}
	}
	switch *w.Status {
	case StatusConfirmed, StatusPending, StatusCancelled:
	default:
		return nil, &ValidationError{
			Field:   prefix + "status",
			Message: fmt.Sprintf("%q is not a valid booking status", *w.Status),
		}
	}
	return &BookingResult{
		ConfirmationNumber: *w.ConfirmationNumber,
		Total:              *w.Total,
		Status:             *w.Status,
	}, nil
}

// wrapDecodeError converts json decoding failures into validation
// errors carrying the offending field where the decoder names one.
func wrapDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}
	return &ValidationError{Message: err.Error()}
}
