package review

import (
	"net/http"
	"strconv"

	"homelet/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/listings/:id/reviews", h.GetByListing)
	}
	if protected != nil {
		protected.POST("/listings/:id/reviews", h.Create)
	}
}

func (h *Handler) Create(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || listingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	authorID := c.GetInt64("user_id")
	if authorID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), authorID, listingID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review data")
		case ErrNotEligible:
			response.Error(c, http.StatusBadRequest, "NOT_ELIGIBLE", "Reviews are allowed only after a completed stay")
		case ErrDuplicate:
			response.Error(c, http.StatusBadRequest, "DUPLICATE_REVIEW", "This booking already has a review")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the booking's tenant can leave a review")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) GetByListing(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || listingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	items, err := h.svc.GetByListing(c.Request.Context(), listingID, limit, offset)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": items})
}
