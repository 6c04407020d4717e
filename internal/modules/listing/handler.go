package listing

import (
	"net/http"
	"strconv"

	"homelet/internal/domain"
	"homelet/internal/middleware"
	"homelet/internal/pkg/response"
	"homelet/internal/pkg/validator"
	"homelet/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires listing endpoints. The public group must carry
// OptionalAuth so search/view history can attribute authenticated callers.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/listings", h.List)
		public.GET("/listings/popular", h.Popular)
		public.GET("/listings/:id", h.Get)
	}

	if protected != nil {
		protected.POST("/listings", middleware.RequireRole(string(domain.RoleLandlord)), h.Create)
		protected.PUT("/listings/:id", h.Update)
		protected.PATCH("/listings/:id", h.Update)
		protected.DELETE("/listings/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if verrs := validator.Validate(&req); verrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing data", verrs)
		return
	}

	l, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create listing")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"listing": l})
}

func (h *Handler) List(c *gin.Context) {
	f := repository.ListingFilter{
		Search:      c.Query("search"),
		City:        c.Query("city"),
		HousingType: c.Query("housing_type"),
		Ordering:    c.Query("ordering"),
	}

	if v, err := strconv.ParseFloat(c.Query("price_min"), 64); err == nil {
		f.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(c.Query("price_max"), 64); err == nil {
		f.PriceMax = &v
	}
	if v, err := strconv.Atoi(c.Query("rooms_min")); err == nil {
		f.RoomsMin = &v
	}
	if v, err := strconv.Atoi(c.Query("rooms_max")); err == nil {
		f.RoomsMax = &v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		f.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		f.Offset = v
	}

	items, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list listings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listings": items})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	l, err := h.service.Get(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load listing")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the owner can update a listing")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing data")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update listing")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the owner can delete a listing")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete listing")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Popular(c *gin.Context) {
	items, err := h.service.Popular(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load popular listings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listings": items})
}
