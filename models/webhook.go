package models

// BookingStatusEvent is the payload delivered by the eZee webhook when a
// reservation changes state on the PMS side.
type BookingStatusEvent struct {
	ConfirmationNumber string `json:"confirmationNumber"`
	Status             string `json:"status"`
}
