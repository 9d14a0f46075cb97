package callback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grandhorizon/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/callbacks", h.RequestCallback)
	rg.GET("/callbacks/:reference", h.GetTicket)
}

func (h *Handler) RequestCallback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}

	result, err := h.service.RequestCallback(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal_error", "Failed to file the callback request")
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) GetTicket(c *gin.Context) {
	ticket, err := h.service.GetTicket(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			response.Error(c, http.StatusNotFound, "ticket_not_found", "No callback request with that reference")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal_error", "Failed to load the callback request")
		return
	}

	response.Success(c, http.StatusOK, ticket)
}
