package reservation

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
	rg.POST("/reservations/lookup", h.Lookup)
	rg.POST("/reservations/cancel", h.Cancel)
	rg.POST("/reservations/modify", h.Modify)
}

func (h *Handler) Lookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}

	details, err := h.service.Lookup(req.Confirmation, req.LastName)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, details)
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}

	result, err := h.service.Cancel(req.Confirmation, req.LastName, req.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Modify(c *gin.Context) {
	var req ModifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}

	result, err := h.service.Modify(req.Confirmation, req.LastName, req.Kind, req.NewValue)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func writeServiceError(c *gin.Context, err error) {
	var opErr *Error
	if errors.As(err, &opErr) {
		response.Error(c, HTTPStatus(opErr.Code), opErr.Code, opErr.Message)
		return
	}
	response.Error(c, http.StatusInternalServerError, "internal_error", "Something went wrong processing the request")
}

// HTTPStatus maps an operation error code to its transport status. The
// agent orchestrator keys off the code in the body; the status exists for
// conventional HTTP clients and logging.
func HTTPStatus(code string) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeCancelled, CodeAlreadyCancelled:
		return http.StatusGone
	case CodeVerification:
		return http.StatusForbidden
	case CodeCapacityExceeded:
		return http.StatusConflict
	case CodeInvalidDateFormat, CodeInvalidDates, CodeInvalidRoomType, CodeInvalidGuestCount:
		return http.StatusUnprocessableEntity
	case CodeInvalidModType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
