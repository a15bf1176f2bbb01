package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateExhibitionRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	StartDate   time.Time    `json:"startDate"`
	EndDate     time.Time    `json:"endDate"`
	Artists     []string     `json:"artists"`
	Artworks    []string     `json:"artworks"`
	TicketTiers []TicketTier `json:"ticketTiers"`
	CoverImage  string       `json:"coverImage"`
}

func (r CreateExhibitionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Location,
			validation.Required.Error("location is required"),
		),
		validation.Field(&r.StartDate, validation.Required.Error("startDate is required")),
		validation.Field(&r.EndDate,
			validation.Required.Error("endDate is required"),
			validation.By(func(interface{}) error {
				if !r.EndDate.After(r.StartDate) {
					return validation.NewError("validation_date_range", "endDate must be after startDate")
				}
				return nil
			}),
		),
		validation.Field(&r.TicketTiers, validation.By(validTiers(r.TicketTiers))),
	)
}

func validTiers(tiers []TicketTier) validation.RuleFunc {
	return func(interface{}) error {
		seen := map[string]bool{}
		for _, t := range tiers {
			switch t.Tier {
			case TierRegular, TierStudent, TierSenior, TierVIP:
			default:
				return validation.NewError("validation_tier", "tier must be one of: regular, student, senior, vip")
			}
			if seen[t.Tier] {
				return validation.NewError("validation_tier", "duplicate ticket tier "+t.Tier)
			}
			seen[t.Tier] = true
			if t.Price.IsNegative() {
				return validation.NewError("validation_tier", "tier price cannot be negative")
			}
		}
		return nil
	}
}

// UpdateExhibitionRequest replaces fields when present. Replacing the
// artist or artwork list triggers relationship reconciliation; status is
// recomputed and never accepted from the caller.
type UpdateExhibitionRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Location    *string       `json:"location"`
	StartDate   *time.Time    `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
	Artists     *[]string     `json:"artists"`
	Artworks    *[]string     `json:"artworks"`
	TicketTiers *[]TicketTier `json:"ticketTiers"`
	CoverImage  *string       `json:"coverImage"`
}

func (r UpdateExhibitionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.By(func(interface{}) error {
				return validation.Validate(*r.Title, validation.Required.Error("title cannot be empty"), validation.Length(1, 300))
			})),
		),
		validation.Field(&r.TicketTiers,
			validation.When(r.TicketTiers != nil, validation.By(func(interface{}) error {
				return validTiers(*r.TicketTiers)(nil)
			})),
		),
	)
}

func (r UpdateExhibitionRequest) Apply(e *Exhibition) {
	if r.Title != nil {
		e.Title = *r.Title
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Location != nil {
		e.Location = *r.Location
	}
	if r.StartDate != nil {
		e.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		e.EndDate = *r.EndDate
	}
	if r.Artists != nil {
		e.Artists = *r.Artists
	}
	if r.Artworks != nil {
		e.Artworks = *r.Artworks
	}
	if r.TicketTiers != nil {
		e.TicketTiers = *r.TicketTiers
	}
	if r.CoverImage != nil {
		e.CoverImage = *r.CoverImage
	}
}

type ListExhibitionsRequest struct {
	Status string `form:"status"` // upcoming | ongoing | past
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (r *ListExhibitionsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

type BookTicketRequest struct {
	Email     string    `json:"email"`
	VisitDate time.Time `json:"visitDate"`
	Tier      string    `json:"tier"`
	Quantity  int       `json:"quantity"`
}

func (r BookTicketRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.VisitDate, validation.Required.Error("visitDate is required")),
		validation.Field(&r.Tier,
			validation.Required.Error("tier is required"),
			validation.In(TierRegular, TierStudent, TierSenior, TierVIP).
				Error("tier must be one of: regular, student, senior, vip"),
		),
		validation.Field(&r.Quantity,
			validation.Required.Error("quantity is required"),
			validation.Min(1).Error("quantity must be at least 1"),
			validation.Max(20),
		),
	)
}
