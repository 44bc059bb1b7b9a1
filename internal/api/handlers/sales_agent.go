package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SalesAgentHandler handles HTTP requests for sales agent profiles
type SalesAgentHandler struct {
	agentService service.SalesAgentServiceInterface
}

// NewSalesAgentHandler creates a new sales agent handler
func NewSalesAgentHandler(agentService service.SalesAgentServiceInterface) *SalesAgentHandler {
	return &SalesAgentHandler{agentService: agentService}
}

// CreateSalesAgent handles POST /sales-agents/
// @Summary Create a sales agent profile
// @Description The user must exist and must not already have a sales agent profile.
// @Tags sales-agents
// @Accept json
// @Produce json
// @Param agent body service.CreateSalesAgentRequest true "Sales agent data"
// @Success 201 {object} models.SalesAgent
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /sales-agents/ [post]
func (h *SalesAgentHandler) CreateSalesAgent(c *gin.Context) {
	var req service.CreateSalesAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	agent, err := h.agentService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agent)
}

// ListSalesAgents handles GET /sales-agents/
// @Summary List sales agents
// @Tags sales-agents
// @Produce json
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Number of items to return" default(100)
// @Param department query string false "Filter by department"
// @Success 200 {array} models.SalesAgent
// @Failure 400 {object} ErrorResponse
// @Router /sales-agents/ [get]
func (h *SalesAgentHandler) ListSalesAgents(c *gin.Context) {
	var query service.ListSalesAgentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err.Error())
		return
	}

	agents, err := h.agentService.List(c.Request.Context(), &query)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

// GetSalesAgent handles GET /sales-agents/{id}
// @Summary Get a sales agent
// @Tags sales-agents
// @Produce json
// @Param id path int true "Sales agent ID"
// @Success 200 {object} models.SalesAgent
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sales-agents/{id} [get]
func (h *SalesAgentHandler) GetSalesAgent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	agent, err := h.agentService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}
