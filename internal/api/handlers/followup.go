package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FollowupHandler handles HTTP requests for lead follow-ups
type FollowupHandler struct {
	followupService service.FollowupServiceInterface
}

// NewFollowupHandler creates a new follow-up handler
func NewFollowupHandler(followupService service.FollowupServiceInterface) *FollowupHandler {
	return &FollowupHandler{followupService: followupService}
}

// CreateFollowup handles POST /lead-followups/
// @Summary Schedule a follow-up
// @Tags lead-followups
// @Accept json
// @Produce json
// @Param followup body service.CreateFollowupRequest true "Follow-up data"
// @Success 201 {object} models.LeadFollowup
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Lead or sales agent not found"
// @Router /lead-followups/ [post]
func (h *FollowupHandler) CreateFollowup(c *gin.Context) {
	var req service.CreateFollowupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	followup, err := h.followupService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, followup)
}

// ListLeadFollowups handles GET /leads/{id}/followups
// @Summary List the follow-ups of a lead
// @Description Ordered by follow-up date.
// @Tags lead-followups
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {array} models.LeadFollowup
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id}/followups [get]
func (h *FollowupHandler) ListLeadFollowups(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	followups, err := h.followupService.ListByLead(c.Request.Context(), leadID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, followups)
}
