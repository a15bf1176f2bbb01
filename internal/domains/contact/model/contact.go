package model

import "time"

// Contact message statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Message is one contact form submission or artwork inquiry.
type Message struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Subject          string    `json:"subject"`
	Message          string    `json:"message"`
	ArtworkID        string    `json:"artworkId,omitempty"`
	IsArtworkInquiry bool      `json:"isArtworkInquiry"`
	IsRead           bool      `json:"isRead"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
