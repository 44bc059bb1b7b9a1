package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadActivityHandler handles the sub-resources of a lead
type LeadActivityHandler struct {
	activityService service.LeadActivityServiceInterface
}

// NewLeadActivityHandler creates a new lead activity handler
func NewLeadActivityHandler(activityService service.LeadActivityServiceInterface) *LeadActivityHandler {
	return &LeadActivityHandler{activityService: activityService}
}

// CreateAssignment handles POST /leads/{id}/assignments
// @Summary Assign a sales agent to a lead
// @Tags lead-activity
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param assignment body service.CreateLeadAssignmentRequest true "Assignment"
// @Success 201 {object} models.LeadAssignment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id}/assignments [post]
func (h *LeadActivityHandler) CreateAssignment(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CreateLeadAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	assignment, err := h.activityService.AssignAgent(c.Request.Context(), leadID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// ListAssignments handles GET /leads/{id}/assignments
// @Summary List the agents assigned to a lead
// @Tags lead-activity
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {array} models.LeadAssignment
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id}/assignments [get]
func (h *LeadActivityHandler) ListAssignments(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.activityService.ListAssignments(c.Request.Context(), leadID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// ListStatusHistory handles GET /leads/{id}/status-history
// @Summary List the status transitions of a lead
// @Tags lead-activity
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {array} models.LeadStatusHistory
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id}/status-history [get]
func (h *LeadActivityHandler) ListStatusHistory(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	history, err := h.activityService.ListStatusHistory(c.Request.Context(), leadID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// CreateAction handles POST /leads/{id}/actions
// @Summary Log an action on a lead
// @Tags lead-activity
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param action body service.CreateLeadActionRequest true "Action"
// @Success 201 {object} models.LeadAction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id}/actions [post]
func (h *LeadActivityHandler) CreateAction(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CreateLeadActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	action, err := h.activityService.LogAction(c.Request.Context(), leadID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, action)
}

// ListActions handles GET /leads/{id}/actions
// @Summary List the actions logged on a lead
// @Tags lead-activity
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {array} models.LeadAction
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id}/actions [get]
func (h *LeadActivityHandler) ListActions(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actions, err := h.activityService.ListActions(c.Request.Context(), leadID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, actions)
}

// CreateCommunication handles POST /leads/{id}/communications
// @Summary Log a communication with a lead
// @Tags lead-activity
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param communication body service.CreateLeadCommunicationRequest true "Communication"
// @Success 201 {object} models.LeadCommunication
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id}/communications [post]
func (h *LeadActivityHandler) CreateCommunication(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CreateLeadCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	communication, err := h.activityService.LogCommunication(c.Request.Context(), leadID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, communication)
}

// ListCommunications handles GET /leads/{id}/communications
// @Summary List the communications with a lead
// @Tags lead-activity
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {array} models.LeadCommunication
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id}/communications [get]
func (h *LeadActivityHandler) ListCommunications(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	communications, err := h.activityService.ListCommunications(c.Request.Context(), leadID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, communications)
}

// CreateOversight handles POST /leads/{id}/oversights
// @Summary Put a lead under a head of sales' oversight
// @Tags lead-activity
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param oversight body service.CreateOversightRequest true "Oversight"
// @Success 201 {object} models.HeadLeadOversight
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id}/oversights [post]
func (h *LeadActivityHandler) CreateOversight(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CreateOversightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	oversight, err := h.activityService.AddOversight(c.Request.Context(), leadID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, oversight)
}

// ListOversights handles GET /leads/{id}/oversights
// @Summary List the oversight records of a lead
// @Tags lead-activity
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {array} models.HeadLeadOversight
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id}/oversights [get]
func (h *LeadActivityHandler) ListOversights(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	oversights, err := h.activityService.ListOversights(c.Request.Context(), leadID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, oversights)
}
