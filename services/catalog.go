package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"ecocycle-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// Seed loads the default categories and catalog items. Safe to run on every
// boot: rows whose name already exists are skipped, so calling it twice
// changes nothing.
func (s *CatalogService) Seed() error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, cat := range models.DefaultCategories {
			var count int64
			if err := tx.Model(&models.Category{}).Where("name = ?", cat.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			row := cat
			row.ID = uuid.NewString()
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		seeded := 0
		for _, def := range models.DefaultItems {
			var count int64
			if err := tx.Model(&models.RecyclingItem{}).Where("name = ?", models.NormalizeItemName(def.Name)).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			item, err := models.NewRecyclingItem(def)
			if err != nil {
				return fmt.Errorf("invalid seed item: %w", err)
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
			seeded++
		}
		if seeded > 0 {
			log.Printf("🌱 Catalog seeded: %d new items", seeded)
		}
		return nil
	})
}

// Lookup finds the catalog entry for a (normalized) item name.
func (s *CatalogService) Lookup(name string) (*models.RecyclingItem, error) {
	var item models.RecyclingItem
	err := s.DB.Where("name = ?", models.NormalizeItemName(name)).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ItemSummary is the lightweight search-result shape — enough for an
// autocomplete list, nothing more.
type ItemSummary struct {
	Item     string `json:"item"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}

// Search returns catalog items whose name contains the query,
// case-insensitively. An empty query matches nothing.
func (s *CatalogService) Search(query string) ([]ItemSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []ItemSummary{}, nil
	}

	searchTerm := "%" + strings.ToLower(query) + "%"
	var items []models.RecyclingItem
	if err := s.DB.Where("LOWER(name) LIKE ?", searchTerm).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	res := make([]ItemSummary, len(items))
	for i, item := range items {
		res[i] = ItemSummary{Item: item.Name, Slug: item.Slug, Category: item.Category}
	}
	return res, nil
}

// Categories lists all category metadata rows.
func (s *CatalogService) Categories() ([]models.Category, error) {
	var cats []models.Category
	if err := s.DB.Order("name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}
