package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/adapters/http/middleware"
	"github.com/jsamuelsen/disaster-response/internal/app"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

const (
	msgReportUpdated = "Report updated."
	msgReportCreated = "Report submitted."

	msgUpdateReportFailed = "Failed to update report."
	msgCreateReportFailed = "Failed to submit report."
	msgListReportsFailed  = "Failed to fetch reports."
)

// ReportHandler serves report submission, listing and updates.
type ReportHandler struct {
	service *app.ReportService
}

// NewReportHandler creates a report handler.
func NewReportHandler(service *app.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Create handles POST /api/v1/disasters/:id/reports.
func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err, msgCreateReportFailed)
		return
	}

	r, err := h.service.Create(c.Request.Context(), middleware.CurrentUser(c).ID, domain.NewReport{
		DisasterID: c.Param("id"),
		Content:    req.Content,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		dto.HandleError(c, err, msgCreateReportFailed)
		return
	}

	c.JSON(http.StatusCreated, dto.ReportEnvelope{Message: msgReportCreated, Report: dto.NewReportResponse(r)})
}

// List handles GET /api/v1/disasters/:id/reports, newest first.
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err, msgListReportsFailed)
		return
	}

	c.JSON(http.StatusOK, dto.ReportsResponse{Reports: dto.NewReportResponses(reports)})
}

// Update handles PUT /api/v1/reports/:id.
func (h *ReportHandler) Update(c *gin.Context) {
	var req dto.UpdateReportRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err, msgUpdateReportFailed)
		return
	}

	r, err := h.service.Update(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err, msgUpdateReportFailed)
		return
	}

	c.JSON(http.StatusOK, dto.ReportEnvelope{Message: msgReportUpdated, Report: dto.NewReportResponse(r)})
}

// RegisterRoutes registers report routes. Submission and listing hang off a
// disaster; updates address the report directly.
func (h *ReportHandler) RegisterRoutes(open, disasters *gin.RouterGroup) {
	open.PUT("/reports/:id", h.Update)
	disasters.POST("/:id/reports", h.Create)
	disasters.GET("/:id/reports", h.List)
}
