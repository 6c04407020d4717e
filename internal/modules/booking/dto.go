package booking

type CreateBookingRequest struct {
	ListingID int64  `json:"listing" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

const (
	ActionConfirm = "confirm"
	ActionReject  = "reject"
	ActionCancel  = "cancel"
)
