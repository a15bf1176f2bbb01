package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateArtistRequest struct {
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	Nationality  string `json:"nationality"`
	BirthYear    int    `json:"birthYear"`
	ProfileImage string `json:"profileImage"`
	Featured     bool   `json:"featured"`
	// UserID optionally links an account as the managing owner of the
	// new artist via the account's artistProfile reference.
	UserID string `json:"userId"`
}

func (r CreateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Bio, validation.Length(0, 5000)),
		validation.Field(&r.Nationality, validation.Length(0, 100)),
		validation.Field(&r.BirthYear,
			validation.When(r.BirthYear != 0, validation.Min(1000), validation.Max(time.Now().Year())),
		),
	)
}

// UpdateArtistRequest is an allow-listed patch. Reference lists and
// verification state are never writable through this DTO.
type UpdateArtistRequest struct {
	Name         *string `json:"name"`
	Bio          *string `json:"bio"`
	Nationality  *string `json:"nationality"`
	BirthYear    *int    `json:"birthYear"`
	ProfileImage *string `json:"profileImage"`
	Featured     *bool   `json:"featured"`
}

func (r UpdateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, validation.By(func(interface{}) error {
				return validation.Validate(*r.Name, validation.Required.Error("name cannot be empty"), validation.Length(1, 200))
			})),
		),
		validation.Field(&r.Bio,
			validation.When(r.Bio != nil, validation.By(func(interface{}) error {
				return validation.Validate(*r.Bio, validation.Length(0, 5000))
			})),
		),
	)
}

// Apply copies the present fields onto the artist.
func (r UpdateArtistRequest) Apply(a *Artist) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Bio != nil {
		a.Bio = *r.Bio
	}
	if r.Nationality != nil {
		a.Nationality = *r.Nationality
	}
	if r.BirthYear != nil {
		a.BirthYear = *r.BirthYear
	}
	if r.ProfileImage != nil {
		a.ProfileImage = *r.ProfileImage
	}
	if r.Featured != nil {
		a.Featured = *r.Featured
	}
}

type ListArtistsRequest struct {
	Search      string `form:"search"`
	Verified    *bool  `form:"verified"`
	Featured    *bool  `form:"featured"`
	Nationality string `form:"nationality"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}

func (r *ListArtistsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

type SubmitVerificationRequest struct {
	Documents []string `json:"documents"`
	Message   string   `json:"message"`
}

func (r SubmitVerificationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Documents, validation.Length(0, 10)),
		validation.Field(&r.Message, validation.Length(0, 2000)),
	)
}

type ReviewVerificationRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

func (r ReviewVerificationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Notes, validation.Length(0, 2000)),
	)
}

type AddContributionRequest struct {
	Title     string   `json:"title"`
	Type      string   `json:"type"`
	Year      int      `json:"year"`
	MediaRefs []string `json:"mediaRefs"`
	Notes     string   `json:"notes"`
}

func (r AddContributionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(ContributionTypeExhibition, ContributionTypePublication, ContributionTypeAward, ContributionTypeOther).
				Error("type must be one of: exhibition, publication, award, other"),
		),
		validation.Field(&r.Year,
			validation.When(r.Year != 0, validation.Min(1000), validation.Max(time.Now().Year())),
		),
	)
}

type UpdateContributionRequest struct {
	Title     *string   `json:"title"`
	Type      *string   `json:"type"`
	Year      *int      `json:"year"`
	MediaRefs *[]string `json:"mediaRefs"`
	Notes     *string   `json:"notes"`
}

func (r UpdateContributionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.By(func(interface{}) error {
				return validation.Validate(*r.Title, validation.Required.Error("title cannot be empty"), validation.Length(1, 300))
			})),
		),
		validation.Field(&r.Type,
			validation.When(r.Type != nil, validation.By(func(interface{}) error {
				return validation.Validate(*r.Type,
					validation.In(ContributionTypeExhibition, ContributionTypePublication, ContributionTypeAward, ContributionTypeOther))
			})),
		),
	)
}

func (r UpdateContributionRequest) Apply(c *Contribution) {
	if r.Title != nil {
		c.Title = *r.Title
	}
	if r.Type != nil {
		c.Type = *r.Type
	}
	if r.Year != nil {
		c.Year = *r.Year
	}
	if r.MediaRefs != nil {
		c.MediaRefs = *r.MediaRefs
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
}

type ReviewContributionRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

func (r ReviewContributionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Notes, validation.Length(0, 2000)),
	)
}
