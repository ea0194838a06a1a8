package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/adapters/http/middleware"
	"github.com/jsamuelsen/disaster-response/internal/app"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// Messages returned by the disaster endpoints.
const (
	msgDisasterCreated = "Disaster created successfully with auto-geocoded location."
	msgDisasterUpdated = "Disaster updated."
	msgDisasterDeleted = "Disaster deleted."

	msgTagsNotArray = "Tags must be an array of strings."

	msgCreateDisasterFailed = "Failed to create disaster. Please try again."
	msgListDisastersFailed  = "Failed to fetch disasters."
	msgGetDisasterFailed    = "Failed to fetch disaster."
	msgUpdateDisasterFailed = "Failed to update disaster."
	msgDeleteDisasterFailed = "Failed to delete disaster."
)

// DisasterHandler serves /api/v1/disasters.
type DisasterHandler struct {
	service *app.DisasterService
}

// NewDisasterHandler creates a disaster handler.
func NewDisasterHandler(service *app.DisasterService) *DisasterHandler {
	return &DisasterHandler{service: service}
}

// Create handles POST /api/v1/disasters.
//
// The location is extracted from the description when location_name is
// empty, then geocoded before the disaster is stored.
func (h *DisasterHandler) Create(c *gin.Context) {
	var req dto.CreateDisasterRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, disasterBindError(err), msgCreateDisasterFailed)
		return
	}

	d, err := h.service.Create(c.Request.Context(), middleware.CurrentUser(c).ID, req.ToDomain())
	if err != nil {
		dto.HandleError(c, err, msgCreateDisasterFailed)
		return
	}

	c.JSON(http.StatusCreated, dto.DisasterEnvelope{
		Message:  msgDisasterCreated,
		Disaster: dto.NewDisasterResponse(d),
	})
}

// List handles GET /api/v1/disasters?tag=.
func (h *DisasterHandler) List(c *gin.Context) {
	var q dto.ListDisastersQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err, msgListDisastersFailed)
		return
	}

	disasters, err := h.service.List(c.Request.Context(), domain.DisasterFilter{Tag: q.Tag})
	if err != nil {
		dto.HandleError(c, err, msgListDisastersFailed)
		return
	}

	c.JSON(http.StatusOK, dto.NewDisasterResponses(disasters))
}

// Get handles GET /api/v1/disasters/:id.
func (h *DisasterHandler) Get(c *gin.Context) {
	d, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err, msgGetDisasterFailed)
		return
	}

	c.JSON(http.StatusOK, dto.NewDisasterResponse(d))
}

// Update handles PUT /api/v1/disasters/:id.
func (h *DisasterHandler) Update(c *gin.Context) {
	var req dto.UpdateDisasterRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, disasterBindError(err), msgUpdateDisasterFailed)
		return
	}

	d, err := h.service.Update(c.Request.Context(), middleware.CurrentUser(c).ID, c.Param("id"), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err, msgUpdateDisasterFailed)
		return
	}

	c.JSON(http.StatusOK, dto.DisasterEnvelope{
		Message:  msgDisasterUpdated,
		Disaster: dto.NewDisasterResponse(d),
	})
}

// disasterBindError reports a mistyped title or tags with the same message
// a blank title or bad tags get.
func disasterBindError(err error) error {
	field, ok := dto.MistypedField(err)
	if !ok {
		return err
	}
	switch field {
	case "title":
		return domain.ValidateTitle("")
	case "tags":
		return domain.NewValidationError("tags", msgTagsNotArray)
	default:
		return err
	}
}

// Delete handles DELETE /api/v1/disasters/:id.
func (h *DisasterHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err, msgDeleteDisasterFailed)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgDisasterDeleted})
}

// RegisterRoutes registers the disaster routes on rg, which must already
// require an authenticated user. adminOnly guards deletion.
func (h *DisasterHandler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", adminOnly, h.Delete)
}
