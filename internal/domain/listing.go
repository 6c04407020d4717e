package domain

import "time"

type HousingType string

const (
	HousingApartment HousingType = "apartment"
	HousingHouse     HousingType = "house"
	HousingStudio    HousingType = "studio"
)

func (h HousingType) Valid() bool {
	switch h {
	case HousingApartment, HousingHouse, HousingStudio:
		return true
	}
	return false
}

type Listing struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"owner_id"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	City        string      `json:"city" validate:"required"`
	PostalCode  string      `json:"postal_code,omitempty"`
	Price       float64     `json:"price" validate:"required,gt=0"`
	Rooms       int         `json:"rooms" validate:"required,gte=1"`
	HousingType HousingType `json:"housing_type"`
	IsActive    bool        `json:"is_active"`
	IsDeleted   bool        `json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
