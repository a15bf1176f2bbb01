package model

import "time"

const (
	RoleRegular = "regular"
	RoleAdmin   = "admin"
)

// User is the account document. PasswordHash is persisted with the rest of
// the document but never leaves the API; handlers respond with Profile.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"passwordHash"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Role          string    `json:"role"`
	ArtistProfile string    `json:"artistProfile,omitempty"`
	SavedArtworks []string  `json:"savedArtworks"`
	Wishlist      []string  `json:"wishlist"`
	Orders        []string  `json:"orders"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Profile is the API view of a user, without credentials.
type Profile struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Role          string    `json:"role"`
	ArtistProfile string    `json:"artistProfile,omitempty"`
	SavedArtworks []string  `json:"savedArtworks"`
	Wishlist      []string  `json:"wishlist"`
	Orders        []string  `json:"orders"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		ArtistProfile: u.ArtistProfile,
		SavedArtworks: u.SavedArtworks,
		Wishlist:      u.Wishlist,
		Orders:        u.Orders,
		CreatedAt:     u.CreatedAt,
	}
}
