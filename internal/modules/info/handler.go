package info

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
	rg.GET("/info/:category", h.GetCategory)
}

func (h *Handler) GetCategory(c *gin.Context) {
	result, err := h.service.Get(c.Param("category"))
	if err != nil {
		var unknown *UnknownCategoryError
		if errors.As(err, &unknown) {
			response.Error(c, http.StatusNotFound, "unknown_category", unknown.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal_error", "Failed to load hotel information")
		return
	}

	response.Success(c, http.StatusOK, result)
}
