package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product categories.
const (
	CategoryPrints     = "prints"
	CategoryBooks      = "books"
	CategoryPosters    = "posters"
	CategoryStationery = "stationery"
	CategoryApparel    = "apparel"
	CategoryOther      = "other"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryPrints, CategoryBooks, CategoryPosters, CategoryStationery, CategoryApparel, CategoryOther:
		return true
	}
	return false
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Featured    bool            `json:"featured"`
	ArtistID    string          `json:"artistId,omitempty"`
	ArtworkID   string          `json:"artworkId,omitempty"`
	Images      []string        `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
