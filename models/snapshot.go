package models

import "time"

// CommunitySnapshot is a periodic materialization of the community headline
// numbers, written by the stats scheduler so dashboards can chart history
// without re-aggregating the whole ledger.
type CommunitySnapshot struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	TotalUsers  int64     `json:"total_users"`
	TotalItems  int64     `json:"total_items"`
	TotalPoints int64     `json:"total_points"`
	TakenAt     time.Time `gorm:"index;autoCreateTime" json:"taken_at"`
}
