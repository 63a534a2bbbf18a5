package models

import "time"

// Room describes a bookable room type shown on the marketing pages.
// RoomTypeID links it to the PMS room type used in availability queries.
type Room struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	RoomTypeID  string    `gorm:"column:room_type_id;index" json:"room_type_id"`
	Description string    `gorm:"column:description" json:"description"`
	BaseRate    float64   `gorm:"column:base_rate" json:"base_rate"`
	MaxGuests   int       `gorm:"column:max_guests" json:"max_guests"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}
