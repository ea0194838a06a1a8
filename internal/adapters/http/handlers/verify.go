package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/adapters/http/middleware"
	"github.com/jsamuelsen/disaster-response/internal/app"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

const msgVerifyFailed = "Failed to verify image"

// VerificationHandler serves image verification for reports.
type VerificationHandler struct {
	service *app.VerificationService
}

// NewVerificationHandler creates a verification handler.
func NewVerificationHandler(service *app.VerificationService) *VerificationHandler {
	return &VerificationHandler{service: service}
}

// VerifyImage handles POST /api/v1/disasters/:id/verify-image. Errors keep
// the standard envelope with success:false alongside it.
func (h *VerificationHandler) VerifyImage(c *gin.Context) {
	var req dto.VerifyImageRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	result, err := h.service.VerifyImage(c.Request.Context(), domain.VerifyImageRequest{
		DisasterID: c.Param("id"),
		ReportID:   req.ReportID,
		ImageURL:   req.ImageURL,
		UserID:     middleware.CurrentUser(c).ID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyImageResponse{
		Success: true,
		Report:  dto.NewReportResponse(result.Report),
		Verification: dto.VerificationSummary{
			Status: result.Status,
			Label:  string(result.Label),
		},
	})
}

func (h *VerificationHandler) fail(c *gin.Context, err error) {
	dto.HandleErrorAs(c, err, msgVerifyFailed, func(resp *dto.ErrorResponse) any {
		return dto.VerifyImageFailure{Success: false, ErrorResponse: *resp}
	})
}

// RegisterRoutes registers the verification route on the disasters group.
func (h *VerificationHandler) RegisterRoutes(disasters *gin.RouterGroup) {
	disasters.POST("/:id/verify-image", h.VerifyImage)
}
