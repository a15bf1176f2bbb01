package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreatePostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	ImageURL string   `json:"imageUrl"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Tags, validation.Length(0, 20)),
	)
}

type UpdatePostRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Author   *string   `json:"author"`
	ImageURL *string   `json:"imageUrl"`
	Tags     *[]string `json:"tags"`
	Featured *bool     `json:"featured"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.By(func(interface{}) error {
				return validation.Validate(*r.Title, validation.Required.Error("title cannot be empty"), validation.Length(1, 300))
			})),
		),
		validation.Field(&r.Content,
			validation.When(r.Content != nil, validation.By(func(interface{}) error {
				return validation.Validate(*r.Content, validation.Required.Error("content cannot be empty"))
			})),
		),
	)
}

func (r UpdatePostRequest) Apply(p *Post) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Content != nil {
		p.Content = *r.Content
	}
	if r.Author != nil {
		p.Author = *r.Author
	}
	if r.ImageURL != nil {
		p.ImageURL = *r.ImageURL
	}
	if r.Tags != nil {
		p.Tags = *r.Tags
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
}

type ListPostsRequest struct {
	Search   string `form:"search"`
	Tag      string `form:"tag"`
	Featured *bool  `form:"featured"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (r *ListPostsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}
