package handler

import (
	customerapp "github.com/crm/backend/internal/application/customer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// View360Handler serves the aggregated and precomputed customer views
type View360Handler struct {
	BaseHandler
	viewService *customerapp.ViewService
}

// NewView360Handler creates a new View360Handler
func NewView360Handler(viewService *customerapp.ViewService) *View360Handler {
	return &View360Handler{
		viewService: viewService,
	}
}

// GetView360 godoc
// @ID           getCustomerView360
// @Summary      Get the aggregated 360 view of a customer
// @Description  Aggregates profile, open cases, recent interactions, statistics, risk level and next action in one consistent snapshot
// @Tags         view360
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[customerapp.View360Response]
// @Failure      404 {object} ErrorResponse
// @Router       /customers/{id}/view360 [get]
func (h *View360Handler) GetView360(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	view, err := h.viewService.GetCustomerView360(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, view)
}

// GetConsolidated godoc
// @ID           getConsolidatedView
// @Summary      Get the precomputed consolidated view of a customer
// @Description  Reads the customer_360 materialized row; a malformed payload degrades to an empty view
// @Tags         view360
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[customer.ConsolidatedView]
// @Failure      404 {object} ErrorResponse
// @Router       /customers/{id}/consolidated [get]
func (h *View360Handler) GetConsolidated(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	view, err := h.viewService.GetConsolidated(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, view)
}

// GetConsolidatedByExternalID godoc
// @ID           getConsolidatedViewByExternalId
// @Summary      Get the consolidated view by external ID
// @Tags         view360
// @Produce      json
// @Param        externalId path string true "External ID"
// @Success      200 {object} APIResponse[customer.ConsolidatedView]
// @Failure      404 {object} ErrorResponse
// @Router       /consolidated/external/{externalId} [get]
func (h *View360Handler) GetConsolidatedByExternalID(c *gin.Context) {
	externalID := c.Param("externalId")
	if externalID == "" {
		h.BadRequest(c, "External ID is required")
		return
	}

	view, err := h.viewService.GetConsolidatedByExternalID(c.Request.Context(), externalID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, view)
}

// ListConsolidated godoc
// @ID           listConsolidatedViews
// @Summary      List consolidated views
// @Description  Pages through the precomputed consolidated views, optionally filtered by status or segment
// @Tags         view360
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        segment query string false "Filter by segment"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]customer.ConsolidatedView]
// @Router       /consolidated [get]
func (h *View360Handler) ListConsolidated(c *gin.Context) {
	var query struct {
		Status   string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE PROSPECT SUSPENDED"`
		Segment  string `form:"segment"`
		Page     int    `form:"page" binding:"omitempty,min=1"`
		PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.viewService.ListConsolidated(c.Request.Context(), query.Status, query.Segment, query.Page, query.PageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
