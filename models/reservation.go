package models

import "time"

// Reservation is the local mirror of a PMS booking. It is written once
// when a booking is created through the funnel and afterwards only
// touched by the admin panel or the webhook sync worker; the PMS client
// itself never updates it.
type Reservation struct {
	ID                 string    `gorm:"primaryKey;column:id" json:"id"`
	ConfirmationNumber string    `gorm:"column:confirmation_number;index" json:"confirmation_number"` // As issued by the PMS; empty if it returned none.
	GuestID            *string   `gorm:"column:guest_id" json:"guest_id"`
	HotelID            *string   `gorm:"column:hotel_id" json:"hotel_id"`
	RoomID             *string   `gorm:"column:room_id" json:"room_id"`
	CheckIn            string    `gorm:"column:check_in" json:"check_in"`   // "YYYY-MM-DD"
	CheckOut           string    `gorm:"column:check_out" json:"check_out"` // "YYYY-MM-DD"
	GuestsCount        int       `gorm:"column:guests_count" json:"guests_count"`
	Nights             int       `gorm:"column:nights" json:"nights"`
	Subtotal           float64   `gorm:"column:subtotal" json:"subtotal"`
	Total              float64   `gorm:"column:total" json:"total"`
	Status             string    `gorm:"column:status" json:"status"`                 // Reservation lifecycle, e.g. "confirmed", "cancelled".
	PaymentStatus      string    `gorm:"column:payment_status" json:"payment_status"` // Independent of Status, e.g. "pending", "paid".
	CreatedAt          time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at" json:"updated_at"`
}
