package shared

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asynq task type names. One per notification kind plus the periodic jobs.
const (
	TypeOrderConfirmed            = "order:confirmed"
	TypeOrderStatusChanged        = "order:status_changed"
	TypeVerificationSubmitted     = "verification:submitted"
	TypeVerificationReviewed      = "verification:reviewed"
	TypeContributionSubmitted     = "contribution:submitted"
	TypeContributionStatusChanged = "contribution:status_changed"
	TypeTicketBooked              = "ticket:booked"
	TypeContactSubmitted          = "contact:submitted"
	TypeNewsletterSubscribed      = "newsletter:subscribed"
	TypeNewsletterUnsubscribed    = "newsletter:unsubscribed"
	TypeRefreshExhibitionStatus   = "exhibition:refresh_status"
)

// Queue names
const (
	QueueNotifications = "notifications"
	QueueMaintenance   = "maintenance"
)

// OrderConfirmedPayload is the order:confirmed task body.
type OrderConfirmedPayload struct {
	OrderID     string            `json:"orderId"`
	OrderNumber string            `json:"orderNumber"`
	Email       string            `json:"email"`
	FirstName   string            `json:"firstName"`
	Total       decimal.Decimal   `json:"total"`
	Items       []OrderItemSketch `json:"items"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type OrderItemSketch struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderStatusChangedPayload is the order:status_changed task body.
type OrderStatusChangedPayload struct {
	OrderID        string `json:"orderId"`
	OrderNumber    string `json:"orderNumber"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

// VerificationPayload covers verification:submitted and verification:reviewed.
type VerificationPayload struct {
	ArtistID   string `json:"artistId"`
	ArtistName string `json:"artistName"`
	Email      string `json:"email"`
	Status     string `json:"status,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// ContributionPayload covers contribution:submitted and
// contribution:status_changed.
type ContributionPayload struct {
	ArtistID   string `json:"artistId"`
	ArtistName string `json:"artistName"`
	Email      string `json:"email"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Status     string `json:"status,omitempty"`
}

// ContactSubmittedPayload is the contact:submitted task body. The mail goes
// to the gallery inbox, not the visitor.
type ContactSubmittedPayload struct {
	ContactID        string `json:"contactId"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Subject          string `json:"subject"`
	Message          string `json:"message"`
	ArtworkID        string `json:"artworkId,omitempty"`
	IsArtworkInquiry bool   `json:"isArtworkInquiry"`
}

// NewsletterPayload covers newsletter:subscribed and newsletter:unsubscribed.
type NewsletterPayload struct {
	Email string `json:"email"`
}

// TicketBookedPayload is the ticket:booked task body.
type TicketBookedPayload struct {
	TicketID        string          `json:"ticketId"`
	TicketNumber    string          `json:"ticketNumber"`
	Email           string          `json:"email"`
	ExhibitionTitle string          `json:"exhibitionTitle"`
	Date            time.Time       `json:"date"`
	Quantity        int             `json:"quantity"`
	Total           decimal.Decimal `json:"total"`
}
