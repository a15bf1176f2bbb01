package model

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateOrderRequest struct {
	Email           string             `json:"email"`
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress Address            `json:"shippingAddress"`
	BillingAddress  *Address           `json:"billingAddress"`
}

type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Items,
			validation.Required.Error("order needs at least one item"),
			validation.Length(1, 50),
			validation.By(func(interface{}) error {
				for i, item := range r.Items {
					if item.ProductID == "" {
						return validation.NewError("validation_item", "items["+strconv.Itoa(i)+"].productId is required")
					}
					if item.Quantity < 1 {
						return validation.NewError("validation_item", "items["+strconv.Itoa(i)+"].quantity must be at least 1")
					}
				}
				return nil
			}),
		),
		validation.Field(&r.ShippingAddress, validation.By(func(interface{}) error {
			return r.ShippingAddress.validate()
		})),
	)
}

func (a Address) validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.FirstName, validation.Required.Error("firstName is required")),
		validation.Field(&a.LastName, validation.Required.Error("lastName is required")),
		validation.Field(&a.Street, validation.Required.Error("street is required")),
		validation.Field(&a.City, validation.Required.Error("city is required")),
		validation.Field(&a.PostalCode, validation.Required.Error("postalCode is required")),
		validation.Field(&a.Country, validation.Required.Error("country is required")),
	)
}

type UpdateOrderStatusRequest struct {
	Status         string `json:"status"`
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	Location       string `json:"location"`
	Description    string `json:"description"`
}

func (r UpdateOrderStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.By(func(interface{}) error {
				if !ValidStatus(r.Status) {
					return validation.NewError("validation_status",
						"status must be one of: pending, processing, shipped, delivered, cancelled")
				}
				return nil
			}),
		),
	)
}

type ListOrdersRequest struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (r *ListOrdersRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}
