package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/app"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

const (
	msgListResourcesFailed   = "Failed to fetch resources"
	msgCreateResourceFailed  = "Failed to create resource"
	msgNearbyResourcesFailed = "Failed to fetch nearby resources."
)

// ResourceHandler serves resource listing, creation and nearby search.
type ResourceHandler struct {
	service *app.ResourceService
}

// NewResourceHandler creates a resource handler.
func NewResourceHandler(service *app.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// List handles GET /api/v1/resources?limit=&cursor=, newest first.
func (h *ResourceHandler) List(c *gin.Context) {
	var q dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err, msgListResourcesFailed)
		return
	}

	page, err := q.ToPageRequest()
	if err != nil {
		dto.HandleError(c, domain.NewValidationError("cursor", "Invalid pagination cursor."), msgListResourcesFailed)
		return
	}

	resources, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		dto.HandleError(c, err, msgListResourcesFailed)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.NewResourceResponses(resources), page.Limit,
		func(r dto.ResourceResponse) *dto.CursorData {
			return dto.CreatedAtCursor(r.CreatedAt, r.ID)
		}))
}

// Create handles POST /api/v1/resources.
func (h *ResourceHandler) Create(c *gin.Context) {
	var req dto.CreateResourceRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err, msgCreateResourceFailed)
		return
	}

	r, err := h.service.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err, msgCreateResourceFailed)
		return
	}

	c.JSON(http.StatusCreated, dto.NewResourceResponse(r))
}

// Nearby handles GET /api/v1/disasters/:id/resources?lat=&lon=&radius=.
// radius is in meters; a missing or unparsable value uses the default.
func (h *ResourceHandler) Nearby(c *gin.Context) {
	var q dto.NearbyQuery
	_ = c.ShouldBindQuery(&q)

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(q.Lat), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(q.Lon), 64)
	if latErr != nil || lonErr != nil {
		dto.HandleError(c, domain.NewValidationError("", "Latitude and longitude are required."), msgNearbyResourcesFailed)
		return
	}

	radius, err := strconv.ParseFloat(strings.TrimSpace(q.Radius), 64)
	if err != nil {
		radius = 0
	}

	resources, err := h.service.Nearby(c.Request.Context(), domain.NearbyQuery{
		DisasterID:   c.Param("id"),
		Center:       domain.Point{Lat: lat, Lng: lon},
		RadiusMeters: radius,
	})
	if err != nil {
		dto.HandleError(c, err, msgNearbyResourcesFailed)
		return
	}

	c.JSON(http.StatusOK, dto.ResourcesResponse{Resources: dto.NewResourceResponses(resources)})
}

// RegisterRoutes registers the top-level resource routes on open and the
// per-disaster search on disasters.
func (h *ResourceHandler) RegisterRoutes(open, disasters *gin.RouterGroup) {
	open.GET("/resources", h.List)
	open.POST("/resources", h.Create)
	disasters.GET("/:id/resources", h.Nearby)
}
