package models

import "time"

// Base contains common columns for all tables. IDs are plain
// auto-increment integers, assigned per table in insertion order.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
