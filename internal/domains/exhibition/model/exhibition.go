package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Exhibition status is always a function of the clock and the date range,
// recomputed on every write and by the nightly sweep. It is never set
// directly.
const (
	StatusUpcoming = "upcoming"
	StatusOngoing  = "ongoing"
	StatusPast     = "past"
)

// Ticket tiers.
const (
	TierRegular = "regular"
	TierStudent = "student"
	TierSenior  = "senior"
	TierVIP     = "vip"
)

// Ticket statuses.
const (
	TicketBooked    = "booked"
	TicketCancelled = "cancelled"
)

type Exhibition struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Location    string       `json:"location"`
	StartDate   time.Time    `json:"startDate"`
	EndDate     time.Time    `json:"endDate"`
	Status      string       `json:"status"`
	Artists     []string     `json:"artists"`
	Artworks    []string     `json:"artworks"`
	TicketTiers []TicketTier `json:"ticketTiers"`
	CoverImage  string       `json:"coverImage,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type TicketTier struct {
	Tier  string          `json:"tier"`
	Price decimal.Decimal `json:"price"`
}

// ComputeStatus derives the status from the date range.
func ComputeStatus(now, start, end time.Time) string {
	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.After(end):
		return StatusPast
	default:
		return StatusOngoing
	}
}

// TierPrice looks up the price for a tier name.
func (e *Exhibition) TierPrice(tier string) (decimal.Decimal, bool) {
	for _, t := range e.TicketTiers {
		if t.Tier == tier {
			return t.Price, true
		}
	}
	return decimal.Decimal{}, false
}

// Ticket is a booking against an exhibition, stored in its own collection.
type Ticket struct {
	ID           string          `json:"id"`
	TicketNumber string          `json:"ticketNumber"`
	ExhibitionID string          `json:"exhibitionId"`
	UserID       string          `json:"userId,omitempty"`
	Email        string          `json:"email"`
	VisitDate    time.Time       `json:"visitDate"`
	Tier         string          `json:"tier"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
