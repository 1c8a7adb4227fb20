package models

import "time"

// StartingNextReward is the point threshold a fresh account must reach for
// its first level-up.
const StartingNextReward = 50

// User holds per-account recycling progress. Points, level and next_reward
// are mutated only by the recycling service; both points and level are
// monotonically non-decreasing.
type User struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Points     int       `gorm:"default:0" json:"points"`
	Level      int       `gorm:"default:1" json:"level"`
	NextReward int       `gorm:"default:50" json:"next_reward"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
