package models

// BookingInput is the booking payload supplied by the funnel. It is
// forwarded to the PMS as-is; subtotal, total and nights are trusted
// from the caller rather than recomputed from the dates.
type BookingInput struct {
	CheckIn     string  `json:"checkIn" binding:"required"`
	CheckOut    string  `json:"checkOut" binding:"required"`
	GuestsCount int     `json:"guestsCount"`
	Nights      int     `json:"nights"`
	Subtotal    float64 `json:"subtotal"`
	Total       float64 `json:"total"`
	RoomTypeID  string  `json:"roomTypeId,omitempty"`
	GuestName   string  `json:"guestName,omitempty"`
	GuestEmail  string  `json:"guestEmail,omitempty"`
	GuestPhone  string  `json:"guestPhone,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}
