package listing

type CreateListingRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	City        string  `json:"city" validate:"required"`
	PostalCode  string  `json:"postal_code" validate:"omitempty,len=5,numeric"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Rooms       int     `json:"rooms" validate:"required,gte=1"`
	HousingType string  `json:"housing_type" validate:"required,oneof=apartment house studio"`
}

// UpdateListingRequest carries partial updates; nil fields stay untouched.
type UpdateListingRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	City        *string  `json:"city"`
	PostalCode  *string  `json:"postal_code" binding:"omitempty,len=5,numeric"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Rooms       *int     `json:"rooms" binding:"omitempty,gte=1"`
	HousingType *string  `json:"housing_type" binding:"omitempty,oneof=apartment house studio"`
	IsActive    *bool    `json:"is_active"`
}
