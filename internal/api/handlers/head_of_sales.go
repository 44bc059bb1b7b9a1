package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HeadOfSalesHandler handles HTTP requests for heads of sales and their teams
type HeadOfSalesHandler struct {
	headService service.HeadOfSalesServiceInterface
}

// NewHeadOfSalesHandler creates a new head of sales handler
func NewHeadOfSalesHandler(headService service.HeadOfSalesServiceInterface) *HeadOfSalesHandler {
	return &HeadOfSalesHandler{headService: headService}
}

// CreateHeadOfSales handles POST /heads-of-sales/
// @Summary Create a head of sales profile
// @Tags heads-of-sales
// @Accept json
// @Produce json
// @Param head body service.CreateHeadOfSalesRequest true "Head of sales data"
// @Success 201 {object} models.HeadOfSales
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /heads-of-sales/ [post]
func (h *HeadOfSalesHandler) CreateHeadOfSales(c *gin.Context) {
	var req service.CreateHeadOfSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	head, err := h.headService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, head)
}

// ListHeadsOfSales handles GET /heads-of-sales/
// @Summary List heads of sales
// @Tags heads-of-sales
// @Produce json
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Number of items to return" default(100)
// @Success 200 {array} models.HeadOfSales
// @Failure 400 {object} ErrorResponse
// @Router /heads-of-sales/ [get]
func (h *HeadOfSalesHandler) ListHeadsOfSales(c *gin.Context) {
	var query service.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err.Error())
		return
	}

	heads, err := h.headService.List(c.Request.Context(), &query)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, heads)
}

// GetHeadOfSales handles GET /heads-of-sales/{id}
// @Summary Get a head of sales
// @Tags heads-of-sales
// @Produce json
// @Param id path int true "Head of sales ID"
// @Success 200 {object} models.HeadOfSales
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /heads-of-sales/{id} [get]
func (h *HeadOfSalesHandler) GetHeadOfSales(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	head, err := h.headService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, head)
}

// AssignAgent handles POST /heads-of-sales/{id}/agents
// @Summary Add a sales agent to a head of sales' team
// @Tags heads-of-sales
// @Accept json
// @Produce json
// @Param id path int true "Head of sales ID"
// @Param assignment body service.AssignAgentRequest true "Team assignment"
// @Success 201 {object} models.SalesTeamAssignment
// @Failure 400 {object} ErrorResponse "Invalid body or agent already in the team"
// @Failure 404 {object} ErrorResponse
// @Router /heads-of-sales/{id}/agents [post]
func (h *HeadOfSalesHandler) AssignAgent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.AssignAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	assignment, err := h.headService.AssignAgent(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// ListAgents handles GET /heads-of-sales/{id}/agents
// @Summary List the team of a head of sales
// @Tags heads-of-sales
// @Produce json
// @Param id path int true "Head of sales ID"
// @Success 200 {array} models.SalesTeamAssignment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /heads-of-sales/{id}/agents [get]
func (h *HeadOfSalesHandler) ListAgents(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.headService.ListAgents(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}
