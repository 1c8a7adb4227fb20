package services

import (
	"errors"
	"fmt"
	"strings"

	"ecocycle-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fallback guidance for items the catalog doesn't know. Recycling an unknown
// item is a normal zero-point action, not an error.
const (
	UnknownItemInstruction = "We're not sure how to recycle this item. Please check with your local recycling facility."
	UnknownItemCategory    = "Unknown"
)

var UnknownItemTips = []string{
	"Try searching for similar items",
	"Contact your local waste management",
}

type RecyclingService struct {
	DB      *gorm.DB
	Catalog *CatalogService
}

func NewRecyclingService(db *gorm.DB, catalog *CatalogService) *RecyclingService {
	return &RecyclingService{DB: db, Catalog: catalog}
}

// RecycleResult is what the presentation layer renders after one recycling
// action: the guidance for the item plus the user's updated progress.
type RecycleResult struct {
	Item        string      `json:"item"`
	Instruction string      `json:"instruction"`
	Points      int         `json:"points"`
	Category    string      `json:"category"`
	Tips        []string    `json:"tips"`
	User        models.User `json:"user"`
	LeveledUp   bool        `json:"leveled_up"`
}

// applyScore is the level/points state transition: add the earned points and,
// if the new total reaches the current threshold, bump the level by exactly
// one and move the threshold to level × 50. A single large award never skips
// levels.
func applyScore(points, level, nextReward, earned int) (newPoints, newLevel, newNextReward int) {
	newPoints = points + earned
	newLevel = level
	newNextReward = nextReward
	if newPoints >= nextReward {
		newLevel = level + 1
		newNextReward = newLevel * models.StartingNextReward
	}
	return newPoints, newLevel, newNextReward
}

// Recycle records one recycling action for a user: catalog lookup, point and
// level update, ledger append. The account update and the ledger insert
// commit in one transaction; a concurrent update of the same account aborts
// the transaction instead of silently overwriting it.
func (s *RecyclingService) Recycle(userID, itemName string) (*RecycleResult, error) {
	name := models.NormalizeItemName(itemName)

	result := &RecycleResult{
		Item:        name,
		Instruction: UnknownItemInstruction,
		Points:      0,
		Category:    UnknownItemCategory,
		Tips:        UnknownItemTips,
	}

	item, err := s.Catalog.Lookup(name)
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		return nil, err
	}
	if item != nil {
		result.Instruction = item.Instruction
		result.Points = item.Points
		result.Category = item.Category
		result.Tips = item.Tips
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		newPoints, newLevel, newNextReward := applyScore(user.Points, user.Level, user.NextReward, result.Points)
		result.LeveledUp = newLevel > user.Level

		// Optimistic check on the points column: if another recycle
		// committed between our read and this write, zero rows match and
		// the transaction aborts rather than losing that update.
		res := tx.Model(&models.User{}).
			Where("id = ? AND points = ?", user.ID, user.Points).
			Updates(map[string]interface{}{
				"points":      newPoints,
				"level":       newLevel,
				"next_reward": newNextReward,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("concurrent update for user %s, transaction aborted", user.ID)
		}

		record := models.RecyclingRecord{
			ID:           uuid.NewString(),
			UserID:       user.ID,
			ItemName:     name,
			PointsEarned: result.Points,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		user.Points = newPoints
		user.Level = newLevel
		user.NextReward = newNextReward
		result.User = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateUser creates a fresh account at level 1 with the starting threshold.
func (s *RecyclingService) CreateUser(username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username must not be blank", ErrValidation)
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: username %q already taken", ErrValidation, username)
	}

	user := models.User{
		ID:         uuid.NewString(),
		Username:   username,
		Points:     0,
		Level:      1,
		NextReward: models.StartingNextReward,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureUser returns the account for username, creating it if missing.
func (s *RecyclingService) EnsureUser(username string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.CreateUser(username)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches an account by id.
func (s *RecyclingService) GetUser(id string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
