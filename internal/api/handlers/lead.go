package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for leads
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLead handles POST /leads/
// @Summary Create a lead
// @Description Status defaults to new. owner_id and sales_agent_id must reference existing records.
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} models.Lead
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Owner or sales agent not found"
// @Router /leads/ [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	lead, err := h.leadService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// ListLeads handles GET /leads/
// @Summary List leads
// @Description Newest first.
// @Tags leads
// @Produce json
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Number of items to return" default(100)
// @Param status query string false "Filter by status"
// @Param owner_id query int false "Filter by owner"
// @Param sales_agent_id query int false "Filter by sales agent"
// @Param source query string false "Filter by source"
// @Success 200 {array} models.Lead
// @Failure 400 {object} ErrorResponse
// @Router /leads/ [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	var query service.ListLeadsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err.Error())
		return
	}

	leads, err := h.leadService.List(c.Request.Context(), &query)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// GetLead handles GET /leads/{id}
// @Summary Get a lead
// @Tags leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} models.Lead
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lead, err := h.leadService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// UpdateLead handles PUT /leads/{id}
// @Summary Partially update a lead
// @Description Only the fields present in the body are changed. A status change is recorded in the status history.
// @Tags leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param lead body service.UpdateLeadRequest true "Fields to change"
// @Success 200 {object} models.Lead
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	lead, err := h.leadService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}
