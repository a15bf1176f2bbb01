package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Artwork struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	ArtistID    string          `json:"artistId"`
	Description string          `json:"description,omitempty"`
	Year        int             `json:"year,omitempty"`
	Period      string          `json:"period,omitempty"`
	Medium      string          `json:"medium,omitempty"`
	Dimensions  string          `json:"dimensions,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ForSale     bool            `json:"forSale"`
	Featured    bool            `json:"featured"`
	Tags        []string        `json:"tags"`
	Images      []ImageSet      `json:"images"`
	Exhibitions []string        `json:"exhibitions"`
	Views       int64           `json:"views"`
	Likes       int64           `json:"likes"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ImageSet holds the stored variants of one uploaded image. Zoom is the
// high-resolution variant backing the zoomable viewer.
type ImageSet struct {
	Original  string `json:"original"`
	Zoom      string `json:"zoom"`
	Thumbnail string `json:"thumbnail"`
}
