package history

import (
	"net/http"

	"homelet/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/search/popular", h.Popular)
}

func (h *Handler) Popular(c *gin.Context) {
	items, err := h.service.Top(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load popular searches")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"queries": items})
}
