package booking

import (
	"net/http"
	"strconv"

	"homelet/internal/domain"
	"homelet/internal/middleware"
	"homelet/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", middleware.RequireRole(string(domain.RoleTenant)), h.Create)
	rg.GET("/bookings", h.List)
	rg.PATCH("/bookings/:id/:action", h.Action)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tenantID := c.GetInt64("user_id")
	b, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking date range")
		case ErrDateConflict:
			response.Error(c, http.StatusBadRequest, "DATE_CONFLICT", "Listing is already booked for the selected dates")
		case ErrOwnListing:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot book your own listing")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := domain.Role(c.GetString("role"))

	items, err := h.service.ListForUser(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) Action(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	actorID := c.GetInt64("user_id")
	b, err := h.service.Action(c.Request.Context(), bookingID, actorID, c.Param("action"))
	if err != nil {
		switch err {
		case ErrInvalidAction:
			response.Error(c, http.StatusBadRequest, "INVALID_ACTION", "Unknown booking action")
		case ErrInvalidTransition:
			response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Booking cannot change to this status")
		case ErrLateCancellation:
			response.Error(c, http.StatusBadRequest, "LATE_CANCELLATION", "Bookings can be cancelled no later than 7 days before the stay")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to perform this action")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}
