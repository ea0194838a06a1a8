package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/app"
)

const msgSocialFailed = "Failed to fetch social media reports."

// SocialHandler serves the social feed search for a disaster.
type SocialHandler struct {
	service *app.SocialService
}

// NewSocialHandler creates a social handler.
func NewSocialHandler(service *app.SocialService) *SocialHandler {
	return &SocialHandler{service: service}
}

// Fetch handles GET /api/v1/disasters/:id/social.
func (h *SocialHandler) Fetch(c *gin.Context) {
	posts, err := h.service.Fetch(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err, msgSocialFailed)
		return
	}

	c.JSON(http.StatusOK, dto.SocialReportsResponse{Reports: dto.NewSocialPostResponses(posts)})
}

// RegisterRoutes registers the social route on the disasters group.
func (h *SocialHandler) RegisterRoutes(disasters *gin.RouterGroup) {
	disasters.GET("/:id/social", h.Fetch)
}
