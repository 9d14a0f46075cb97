package agent

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"grandhorizon/internal/modules/info"
	"grandhorizon/internal/modules/reservation"
	"grandhorizon/internal/pkg/response"
)

type Handler struct {
	registry *Registry
	log      *zap.Logger
}

func NewHandler(registry *Registry, log *zap.Logger) *Handler {
	return &Handler{registry: registry, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/agent/tools", h.ListTools)
	rg.POST("/agent/tools/:name", h.ExecuteTool)
}

func (h *Handler) ListTools(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"tools": h.registry.Definitions()})
}

// ExecuteTool runs one tool with the JSON body as its argument object.
// An empty body means no arguments.
func (h *Handler) ExecuteTool(c *gin.Context) {
	name := c.Param("name")

	args := map[string]any{}
	if err := c.ShouldBindJSON(&args); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "validation_error", "Tool arguments must be a JSON object")
		return
	}

	result, err := h.registry.Execute(c.Request.Context(), name, args)
	if err != nil {
		h.writeToolError(c, name, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) writeToolError(c *gin.Context, name string, err error) {
	var unknownTool *UnknownToolError
	if errors.As(err, &unknownTool) {
		response.Error(c, http.StatusNotFound, "unknown_tool", unknownTool.Error())
		return
	}

	var opErr *reservation.Error
	if errors.As(err, &opErr) {
		response.Error(c, reservation.HTTPStatus(opErr.Code), opErr.Code, opErr.Message)
		return
	}

	var unknownCategory *info.UnknownCategoryError
	if errors.As(err, &unknownCategory) {
		response.Error(c, http.StatusNotFound, "unknown_category", unknownCategory.Error())
		return
	}

	h.log.Error("tool execution failed", zap.String("tool", name), zap.Error(err))
	response.Error(c, http.StatusInternalServerError, "internal_error", "Tool execution failed")
}
