// services/scheduler.go
package services

import (
	"log"
	"time"

	"ecocycle-service/models"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// TakeSnapshot persists the current community headline numbers as one
// CommunitySnapshot row.
func (s *AnalyticsService) TakeSnapshot() (*models.CommunitySnapshot, error) {
	stats, err := s.CommunityStats()
	if err != nil {
		return nil, err
	}

	snap := models.CommunitySnapshot{
		ID:          uuid.NewString(),
		TotalUsers:  stats.TotalUsers,
		TotalItems:  stats.TotalRecycled,
		TotalPoints: stats.TotalPointsEarned,
	}
	if err := s.DB.Create(&snap).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}

// RecentSnapshots returns the newest snapshots, most recent first.
func (s *AnalyticsService) RecentSnapshots(limit int) ([]models.CommunitySnapshot, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	snaps := []models.CommunitySnapshot{}
	err := s.DB.Order("taken_at DESC").Limit(limit).Find(&snaps).Error
	return snaps, err
}

// StartSnapshotScheduler materializes community stats on a fixed interval so
// dashboards can chart totals over time without rescanning the ledger.
func (s *AnalyticsService) StartSnapshotScheduler(interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			snap, err := s.TakeSnapshot()
			if err != nil {
				log.Printf("[Scheduler] snapshot failed: %v", err)
				return
			}
			log.Printf("📊 Community snapshot: users=%d items=%d points=%d",
				snap.TotalUsers, snap.TotalItems, snap.TotalPoints)
		}),
	)
}
