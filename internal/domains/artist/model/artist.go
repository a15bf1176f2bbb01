package model

import (
	"time"
)

// Verification states. The request record is overwritten by each new
// submission, never versioned.
const (
	VerificationUnverified = "unverified"
	VerificationPending    = "pending"
	VerificationVerified   = "verified"
	VerificationRejected   = "rejected"
)

// Contribution states.
const (
	ContributionPending  = "pending"
	ContributionApproved = "approved"
	ContributionRejected = "rejected"
)

// Contribution types.
const (
	ContributionTypeExhibition  = "exhibition"
	ContributionTypePublication = "publication"
	ContributionTypeAward       = "award"
	ContributionTypeOther       = "other"
)

type Artist struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Bio                string               `json:"bio,omitempty"`
	Nationality        string               `json:"nationality,omitempty"`
	BirthYear          int                  `json:"birthYear,omitempty"`
	ProfileImage       string               `json:"profileImage,omitempty"`
	Featured           bool                 `json:"featured"`
	Verified           bool                 `json:"verified"`
	VerifiedAt         *time.Time           `json:"verifiedAt,omitempty"`
	VerificationStatus string               `json:"verificationStatus"`
	Verification       *VerificationRequest `json:"verification,omitempty"`
	Artworks           []string             `json:"artworks"`
	Exhibitions        []string             `json:"exhibitions"`
	Contributions      []Contribution       `json:"contributions"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

// VerificationRequest is the single mutable request slot on an artist.
type VerificationRequest struct {
	Documents   []string   `json:"documents,omitempty"`
	Message     string     `json:"message,omitempty"`
	SubmittedBy string     `json:"submittedBy"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedBy  string     `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// Contribution is an embedded sub-record on the artist document.
type Contribution struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Year      int       `json:"year,omitempty"`
	Status    string    `json:"status"`
	MediaRefs []string  `json:"mediaRefs,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FindContribution returns a pointer into the artist's contribution slice,
// so callers can mutate it in place before saving.
func (a *Artist) FindContribution(id string) *Contribution {
	for i := range a.Contributions {
		if a.Contributions[i].ID == id {
			return &a.Contributions[i]
		}
	}
	return nil
}
