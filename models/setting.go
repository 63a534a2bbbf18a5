package models

import "time"

// Setting is a category-keyed key/value configuration row. PMS
// connection settings live under category "ezee".
type Setting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Category  string    `gorm:"column:category;index:idx_settings_category_key,unique" json:"category"`
	Key       string    `gorm:"column:key;index:idx_settings_category_key,unique" json:"key"`
	Value     string    `gorm:"column:value" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}
