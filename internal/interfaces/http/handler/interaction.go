package handler

import (
	customerapp "github.com/crm/backend/internal/application/customer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InteractionHandler handles interaction API endpoints
type InteractionHandler struct {
	BaseHandler
	interactionService *customerapp.InteractionService
}

// NewInteractionHandler creates a new InteractionHandler
func NewInteractionHandler(interactionService *customerapp.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
	}
}

// Record godoc
// @ID           recordInteraction
// @Summary      Record an interaction
// @Description  Record a customer interaction on any channel
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body customerapp.RecordInteractionRequest true "Interaction to record"
// @Success      201 {object} APIResponse[customerapp.InteractionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /customers/{id}/interactions [post]
func (h *InteractionHandler) Record(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req customerapp.RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	recorded, err := h.interactionService.Record(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, recorded)
}

// GetByID godoc
// @ID           getInteractionById
// @Summary      Get interaction by ID
// @Tags         interactions
// @Produce      json
// @Param        id path string true "Interaction ID" format(uuid)
// @Success      200 {object} APIResponse[customerapp.InteractionResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /interactions/{id} [get]
func (h *InteractionHandler) GetByID(c *gin.Context) {
	interactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid interaction ID format")
		return
	}

	found, err := h.interactionService.GetByID(c.Request.Context(), interactionID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, found)
}

// ListByCustomer godoc
// @ID           listInteractionsByCustomer
// @Summary      List interactions of a customer
// @Tags         interactions
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]customerapp.InteractionResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /customers/{id}/interactions [get]
func (h *InteractionHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var paging struct {
		Page     int `form:"page" binding:"omitempty,min=1"`
		PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&paging); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	interactions, total, err := h.interactionService.ListByCustomer(c.Request.Context(), customerID, paging.Page, paging.PageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := paging.Page
	if page <= 0 {
		page = 1
	}
	pageSize := paging.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	h.SuccessWithMeta(c, interactions, total, page, pageSize)
}

// ListByCase godoc
// @ID           listInteractionsByCase
// @Summary      List interactions linked to a case
// @Tags         interactions
// @Produce      json
// @Param        id path string true "Case ID" format(uuid)
// @Success      200 {object} APIResponse[[]customerapp.InteractionResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /cases/{id}/interactions [get]
func (h *InteractionHandler) ListByCase(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid case ID format")
		return
	}

	interactions, err := h.interactionService.ListByCase(c.Request.Context(), caseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, interactions)
}
