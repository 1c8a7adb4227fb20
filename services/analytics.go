package services

import (
	"errors"
	"time"

	"ecocycle-service/models"

	"gorm.io/gorm"
)

// AnalyticsService answers read-only aggregation queries over the recycling
// ledger. It never writes and never retries; any store error surfaces to the
// caller as-is.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

// UserStats summarizes one account's recycling history.
type UserStats struct {
	TotalPoints       int64  `json:"total_points"`
	TotalItems        int64  `json:"total_items"`
	MostRecycledItem  string `json:"most_recycled_item"`
	MostRecycledCount int64  `json:"most_recycled_count"`
	WeeklyActivity    int64  `json:"weekly_activity"`
}

// RecyclerRank is one row of the community leaderboard.
type RecyclerRank struct {
	Username    string `json:"username"`
	TotalPoints int64  `json:"total_points"`
}

// ItemPopularity is one row of the popular-items ranking.
type ItemPopularity struct {
	Item  string `json:"item"`
	Count int64  `json:"count"`
}

// CommunityStats summarizes the whole installation.
type CommunityStats struct {
	TotalUsers        int64            `json:"total_users"`
	TotalRecycled     int64            `json:"total_recycled_items"`
	TotalPointsEarned int64            `json:"total_points_earned"`
	TopRecyclers      []RecyclerRank   `json:"top_recyclers"`
	PopularItems      []ItemPopularity `json:"popular_items"`
}

// UserStats returns the per-account aggregates. Asking about an account that
// doesn't exist is ErrUserNotFound; an account with no ledger entries gets
// zeroes.
func (s *AnalyticsService) UserStats(userID string) (*UserStats, error) {
	var user models.User
	if err := s.DB.Select("id").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	stats := &UserStats{}

	if err := s.DB.Model(&models.RecyclingRecord{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points_earned), 0)").
		Scan(&stats.TotalPoints).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.RecyclingRecord{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalItems).Error; err != nil {
		return nil, err
	}

	// Ties on count resolve to the lexicographically first name, so the
	// answer is stable run to run.
	var top struct {
		ItemName  string
		ItemCount int64
	}
	err := s.DB.Model(&models.RecyclingRecord{}).
		Select("item_name, COUNT(*) AS item_count").
		Where("user_id = ?", userID).
		Group("item_name").
		Order("item_count DESC, item_name ASC").
		Limit(1).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}
	stats.MostRecycledItem = top.ItemName
	stats.MostRecycledCount = top.ItemCount

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := s.DB.Model(&models.RecyclingRecord{}).
		Where("user_id = ? AND recycled_at >= ?", userID, weekAgo).
		Count(&stats.WeeklyActivity).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// CommunityStats returns the installation-wide totals plus the two top-5
// rankings. Accounts with no ledger entries never appear in the leaderboard.
func (s *AnalyticsService) CommunityStats() (*CommunityStats, error) {
	stats := &CommunityStats{
		TopRecyclers: []RecyclerRank{},
		PopularItems: []ItemPopularity{},
	}

	if err := s.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.RecyclingRecord{}).Count(&stats.TotalRecycled).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.RecyclingRecord{}).
		Select("COALESCE(SUM(points_earned), 0)").
		Scan(&stats.TotalPointsEarned).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.RecyclingRecord{}).
		Select("users.username AS username, SUM(recycling_records.points_earned) AS total_points").
		Joins("INNER JOIN users ON users.id = recycling_records.user_id").
		Group("users.id, users.username").
		Order("total_points DESC, users.username ASC").
		Limit(5).
		Scan(&stats.TopRecyclers).Error; err != nil {
		return nil, err
	}

	var popular []struct {
		ItemName     string
		RecycleCount int64
	}
	if err := s.DB.Model(&models.RecyclingRecord{}).
		Select("item_name, COUNT(*) AS recycle_count").
		Group("item_name").
		Order("recycle_count DESC, item_name ASC").
		Limit(5).
		Scan(&popular).Error; err != nil {
		return nil, err
	}
	for _, p := range popular {
		stats.PopularItems = append(stats.PopularItems, ItemPopularity{Item: p.ItemName, Count: p.RecycleCount})
	}

	return stats, nil
}

// CategoryDistribution counts ledger entries per catalog category, community
// wide or for one account when userID is non-empty. Entries whose item name
// matches no catalog row are left out — they have no category to land in.
func (s *AnalyticsService) CategoryDistribution(userID string) (map[string]int64, error) {
	q := s.DB.Model(&models.RecyclingRecord{}).
		Select("recycling_items.category AS category, COUNT(recycling_records.id) AS record_count").
		Joins("INNER JOIN recycling_items ON recycling_items.name = recycling_records.item_name").
		Group("recycling_items.category")

	if userID != "" {
		q = q.Where("recycling_records.user_id = ?", userID)
	}

	var rows []struct {
		Category    string
		RecordCount int64
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	dist := make(map[string]int64, len(rows))
	for _, row := range rows {
		dist[row.Category] = row.RecordCount
	}
	return dist, nil
}
