package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/app"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

const msgGeocodeFailed = "Failed to extract or geocode location."

// GeocodeHandler serves POST /api/v1/geocode.
type GeocodeHandler struct {
	locator *app.GeocodeService
}

// NewGeocodeHandler creates a geocode handler.
func NewGeocodeHandler(locator *app.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{locator: locator}
}

// Geocode extracts a location name from the description and resolves its
// coordinates.
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	var req dto.GeocodeRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		if errors.Is(err, dto.ErrBinding) {
			err = domain.NewValidationError("description", "Description is required and must be a string.")
		}
		dto.HandleError(c, err, msgGeocodeFailed)
		return
	}

	located, err := h.locator.Locate(c.Request.Context(), req.Description)
	if err != nil {
		dto.HandleError(c, err, msgGeocodeFailed)
		return
	}

	c.JSON(http.StatusOK, dto.GeocodeResponse{
		LocationName: located.LocationName,
		Coordinates:  dto.Coordinates{Lat: located.Point.Lat, Lng: located.Point.Lng},
	})
}

// RegisterRoutes registers the geocode route on rg.
func (h *GeocodeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/geocode", h.Geocode)
}
