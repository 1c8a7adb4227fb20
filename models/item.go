package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// RecyclingItem is a catalog entry: disposal guidance plus point value for one
// item name. Rows are seeded once and never mutated afterwards.
type RecyclingItem struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"index;not null" json:"slug"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
	Points      int       `gorm:"not null" json:"points"`
	Category    string    `gorm:"index;not null" json:"category"`
	Tips        []string  `gorm:"type:text;serializer:json" json:"tips"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ItemDefinition is the seed-time shape of a catalog entry, before IDs and
// slugs are assigned.
type ItemDefinition struct {
	Name        string
	Instruction string
	Points      int
	Category    string
	Tips        []string
}

// NewRecyclingItem builds a catalog entry from a definition, rejecting
// incomplete or malformed input instead of accepting arbitrary field maps.
func NewRecyclingItem(def ItemDefinition) (*RecyclingItem, error) {
	name := NormalizeItemName(def.Name)
	if name == "" {
		return nil, errors.New("recycling item requires a name")
	}
	if strings.TrimSpace(def.Instruction) == "" {
		return nil, fmt.Errorf("recycling item %q requires an instruction", name)
	}
	if def.Points < 0 {
		return nil, fmt.Errorf("recycling item %q has negative points %d", name, def.Points)
	}
	if strings.TrimSpace(def.Category) == "" {
		return nil, fmt.Errorf("recycling item %q requires a category", name)
	}

	return &RecyclingItem{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        slug.Make(name),
		Instruction: def.Instruction,
		Points:      def.Points,
		Category:    def.Category,
		Tips:        def.Tips,
	}, nil
}

// NormalizeItemName maps user input onto the catalog's key space:
// lower-case, surrounding whitespace removed.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
