package models

import "time"

// RecyclingRecord is one ledger entry: a single recycling action by a user.
// Rows are append-only, never updated or deleted. ItemName is kept as
// entered (normalized) even when it matches no catalog item, in which case
// PointsEarned is zero.
type RecyclingRecord struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string    `gorm:"index;not null" json:"user_id"`
	ItemName     string    `gorm:"index;not null" json:"item_name"`
	PointsEarned int       `gorm:"not null" json:"points_earned"`
	RecycledAt   time.Time `gorm:"index;autoCreateTime" json:"recycled_at"`
}
