package review

type CreateReviewRequest struct {
	BookingID int64  `json:"booking" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}
