package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type CreateArtworkRequest struct {
	Title       string          `json:"title"`
	ArtistID    string          `json:"artistId"`
	Description string          `json:"description"`
	Year        int             `json:"year"`
	Period      string          `json:"period"`
	Medium      string          `json:"medium"`
	Dimensions  string          `json:"dimensions"`
	Price       decimal.Decimal `json:"price"`
	ForSale     bool            `json:"forSale"`
	Featured    bool            `json:"featured"`
	Tags        []string        `json:"tags"`
}

func (r CreateArtworkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.ArtistID,
			validation.Required.Error("artistId is required"),
		),
		validation.Field(&r.Year,
			validation.When(r.Year != 0, validation.Min(1000), validation.Max(time.Now().Year())),
		),
		validation.Field(&r.Price,
			validation.When(r.ForSale,
				validation.Required.Error("price is required when the artwork is for sale"),
				validation.By(positiveDecimal),
			),
		),
	)
}

func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.IsNegative() || d.IsZero() {
		return validation.NewError("validation_positive", "must be a positive amount")
	}
	return nil
}

// UpdateArtworkRequest is an allow-listed patch. The artist reference,
// image list, and counters are not writable here.
type UpdateArtworkRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Year        *int             `json:"year"`
	Period      *string          `json:"period"`
	Medium      *string          `json:"medium"`
	Dimensions  *string          `json:"dimensions"`
	Price       *decimal.Decimal `json:"price"`
	ForSale     *bool            `json:"forSale"`
	Featured    *bool            `json:"featured"`
	Tags        *[]string        `json:"tags"`
}

func (r UpdateArtworkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.By(func(interface{}) error {
				return validation.Validate(*r.Title, validation.Required.Error("title cannot be empty"), validation.Length(1, 300))
			})),
		),
		validation.Field(&r.Price,
			validation.When(r.Price != nil, validation.By(func(interface{}) error {
				return positiveDecimal(*r.Price)
			})),
		),
	)
}

func (r UpdateArtworkRequest) Apply(a *Artwork) {
	if r.Title != nil {
		a.Title = *r.Title
	}
	if r.Description != nil {
		a.Description = *r.Description
	}
	if r.Year != nil {
		a.Year = *r.Year
	}
	if r.Period != nil {
		a.Period = *r.Period
	}
	if r.Medium != nil {
		a.Medium = *r.Medium
	}
	if r.Dimensions != nil {
		a.Dimensions = *r.Dimensions
	}
	if r.Price != nil {
		a.Price = *r.Price
	}
	if r.ForSale != nil {
		a.ForSale = *r.ForSale
	}
	if r.Featured != nil {
		a.Featured = *r.Featured
	}
	if r.Tags != nil {
		a.Tags = *r.Tags
	}
}

type ListArtworksRequest struct {
	Search   string           `form:"search"`
	ArtistID string           `form:"artistId"`
	ForSale  *bool            `form:"forSale"`
	Featured *bool            `form:"featured"`
	Medium   string           `form:"medium"`
	Period   string           `form:"period"`
	Tag      string           `form:"tag"`
	PriceMin *decimal.Decimal `form:"priceMin"`
	PriceMax *decimal.Decimal `form:"priceMax"`
	Sort     string           `form:"sort"` // newest | views | likes
	Page     int              `form:"page"`
	Limit    int              `form:"limit"`
}

func (r *ListArtworksRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}
