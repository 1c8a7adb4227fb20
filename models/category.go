package models

import "time"

// Category is descriptive metadata for grouping catalog items. Item rows
// reference categories by name only; there is no enforced foreign key, so a
// category row is presentation data, not a constraint.
type Category struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Color       string    `gorm:"size:7;default:'#2e8b57'" json:"color"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
