package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Featured    bool            `json:"featured"`
	ArtistID    string          `json:"artistId"`
	ArtworkID   string          `json:"artworkId"`
	Images      []string        `json:"images"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Price,
			validation.Required.Error("price is required"),
			validation.By(nonNegativeDecimal),
		),
		validation.Field(&r.Stock,
			validation.Min(0).Error("stock cannot be negative"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.By(func(interface{}) error {
				if !ValidCategory(r.Category) {
					return validation.NewError("validation_category",
						"category must be one of: prints, books, posters, stationery, apparel, other")
				}
				return nil
			}),
		),
	)
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.IsNegative() {
		return validation.NewError("validation_amount", "must be a non-negative amount")
	}
	return nil
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category"`
	Featured    *bool            `json:"featured"`
	ArtistID    *string          `json:"artistId"`
	ArtworkID   *string          `json:"artworkId"`
	Images      *[]string        `json:"images"`
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, validation.By(func(interface{}) error {
				return validation.Validate(*r.Name, validation.Required.Error("name cannot be empty"), validation.Length(1, 300))
			})),
		),
		validation.Field(&r.Price,
			validation.When(r.Price != nil, validation.By(func(interface{}) error {
				return nonNegativeDecimal(*r.Price)
			})),
		),
		validation.Field(&r.Stock,
			validation.When(r.Stock != nil, validation.By(func(interface{}) error {
				if *r.Stock < 0 {
					return validation.NewError("validation_stock", "stock cannot be negative")
				}
				return nil
			})),
		),
		validation.Field(&r.Category,
			validation.When(r.Category != nil, validation.By(func(interface{}) error {
				if !ValidCategory(*r.Category) {
					return validation.NewError("validation_category", "invalid category")
				}
				return nil
			})),
		),
	)
}

func (r UpdateProductRequest) Apply(p *Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	if r.ArtistID != nil {
		p.ArtistID = *r.ArtistID
	}
	if r.ArtworkID != nil {
		p.ArtworkID = *r.ArtworkID
	}
	if r.Images != nil {
		p.Images = *r.Images
	}
}

type ListProductsRequest struct {
	Search   string           `form:"search"`
	Category string           `form:"category"`
	PriceMin *decimal.Decimal `form:"priceMin"`
	PriceMax *decimal.Decimal `form:"priceMax"`
	Featured *bool            `form:"featured"`
	InStock  *bool            `form:"inStock"`
	Sort     string           `form:"sort"` // newest | priceAsc | priceDesc
	Page     int              `form:"page"`
	Limit    int              `form:"limit"`
}

func (r *ListProductsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}
