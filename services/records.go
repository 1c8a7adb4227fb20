package services

import (
	"errors"

	"ecocycle-service/models"

	"gorm.io/gorm"
)

type RecordService struct {
	DB *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{DB: db}
}

// RecordPage is one page of a user's recycling history, newest first.
type RecordPage struct {
	Records     []models.RecyclingRecord `json:"records"`
	Total       int64                    `json:"total"`
	Pages       int                      `json:"pages"`
	CurrentPage int                      `json:"current_page"`
}

// ListRecords pages through a user's ledger ordered by recycled_at
// descending. Out-of-range page/perPage values are clamped rather than
// rejected.
func (s *RecordService) ListRecords(userID string, page, perPage int) (*RecordPage, error) {
	var user models.User
	if err := s.DB.Select("id").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}
	offset := (page - 1) * perPage

	var total int64
	if err := s.DB.Model(&models.RecyclingRecord{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}

	records := []models.RecyclingRecord{}
	if err := s.DB.Where("user_id = ?", userID).
		Order("recycled_at DESC").
		Limit(perPage).Offset(offset).
		Find(&records).Error; err != nil {
		return nil, err
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	return &RecordPage{
		Records:     records,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
	}, nil
}
