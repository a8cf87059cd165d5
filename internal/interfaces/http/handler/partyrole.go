package handler

import (
	"io"
	"net/http"
	"strconv"

	customerapp "github.com/crm/backend/internal/application/customer"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartyRoleBasePath is the mount point of the standards-shaped customer API
const PartyRoleBasePath = "/tmf-api/customer/v5/customer"

// PartyRoleHandler serves the standards-shaped customer resource. It speaks
// the nested party role document dialect and translates to the flat customer
// model at the boundary; documents are returned bare, without the envelope.
type PartyRoleHandler struct {
	BaseHandler
	customerService *customerapp.CustomerService
}

// NewPartyRoleHandler creates a new PartyRoleHandler
func NewPartyRoleHandler(customerService *customerapp.CustomerService) *PartyRoleHandler {
	return &PartyRoleHandler{
		customerService: customerService,
	}
}

// Create godoc
// @ID           createPartyRole
// @Summary      Create a customer from a party role document
// @Tags         partyRole
// @Accept       json
// @Produce      json
// @Param        request body dto.PartyRoleDocument true "Party role document"
// @Success      201 {object} dto.PartyRoleDocument
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /tmf-api/customer/v5/customer [post]
func (h *PartyRoleHandler) Create(c *gin.Context) {
	var doc dto.PartyRoleDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if doc.Name == "" {
		h.BadRequest(c, "name is required")
		return
	}

	req := dto.DecodePartyRole(doc)
	req.CreatedBy = getActor(c)

	created, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	encoded := dto.EncodePartyRole(*created, PartyRoleBasePath)
	c.Header("Location", encoded.Href)
	c.JSON(http.StatusCreated, encoded)
}

// GetByID godoc
// @ID           getPartyRoleById
// @Summary      Get a customer as a party role document
// @Tags         partyRole
// @Produce      json
// @Param        id path string true "Party role ID" format(uuid)
// @Success      200 {object} dto.PartyRoleDocument
// @Failure      404 {object} ErrorResponse
// @Router       /tmf-api/customer/v5/customer/{id} [get]
func (h *PartyRoleHandler) GetByID(c *gin.Context) {
	partyRoleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid party role ID format")
		return
	}

	found, err := h.customerService.GetByPartyRoleID(c.Request.Context(), partyRoleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EncodePartyRole(*found, PartyRoleBasePath))
}

// List godoc
// @ID           listPartyRoles
// @Summary      List customers as party role documents
// @Description  Pages with offset/limit; the total count is returned in the X-Total-Count header
// @Tags         partyRole
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        segment query string false "Filter by segment"
// @Param        offset query int false "Offset" default(0)
// @Param        limit query int false "Limit" default(20)
// @Success      200 {array} dto.PartyRoleDocument
// @Router       /tmf-api/customer/v5/customer [get]
func (h *PartyRoleHandler) List(c *gin.Context) {
	var query struct {
		Status  string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE PROSPECT SUSPENDED"`
		Segment string `form:"segment"`
		Offset  int    `form:"offset" binding:"omitempty,min=0"`
		Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	page := query.Offset/limit + 1

	customers, total, err := h.customerService.List(c.Request.Context(), customerapp.CustomerListFilter{
		Status:   query.Status,
		Segment:  query.Segment,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	docs := make([]dto.PartyRoleDocument, 0, len(customers))
	for _, customer := range customers {
		docs = append(docs, dto.EncodePartyRole(customer, PartyRoleBasePath))
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, docs)
}

// Patch godoc
// @ID           patchPartyRole
// @Summary      Merge-patch a customer through the party role document shape
// @Description  Applies only the keys present in the payload; creditProfile merges one level deep
// @Tags         partyRole
// @Accept       json
// @Produce      json
// @Param        id path string true "Party role ID" format(uuid)
// @Param        request body dto.PartyRoleDocument true "Partial party role document"
// @Success      200 {object} dto.PartyRoleDocument
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /tmf-api/customer/v5/customer/{id} [patch]
func (h *PartyRoleHandler) Patch(c *gin.Context) {
	partyRoleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid party role ID format")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "Unable to read request body")
		return
	}

	req, err := dto.DecodePartyRolePatch(body)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	existing, err := h.customerService.GetByPartyRoleID(c.Request.Context(), partyRoleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	updated, err := h.customerService.Update(c.Request.Context(), existing.ID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EncodePartyRole(*updated, PartyRoleBasePath))
}

// Delete godoc
// @ID           deletePartyRole
// @Summary      Delete a customer through the party role resource
// @Tags         partyRole
// @Param        id path string true "Party role ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /tmf-api/customer/v5/customer/{id} [delete]
func (h *PartyRoleHandler) Delete(c *gin.Context) {
	partyRoleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid party role ID format")
		return
	}

	existing, err := h.customerService.GetByPartyRoleID(c.Request.Context(), partyRoleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), existing.ID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
