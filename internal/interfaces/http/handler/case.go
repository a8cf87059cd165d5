package handler

import (
	customerapp "github.com/crm/backend/internal/application/customer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseHandler handles customer case API endpoints
type CaseHandler struct {
	BaseHandler
	caseService *customerapp.CaseService
}

// NewCaseHandler creates a new CaseHandler
func NewCaseHandler(caseService *customerapp.CaseService) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
	}
}

// Create godoc
// @ID           createCase
// @Summary      Open a new case
// @Description  Open a support case for a customer
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body customerapp.CreateCaseRequest true "Case creation request"
// @Success      201 {object} APIResponse[customerapp.CaseResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /customers/{id}/cases [post]
func (h *CaseHandler) Create(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req customerapp.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.caseService.Create(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, created)
}

// GetByID godoc
// @ID           getCaseById
// @Summary      Get case by ID
// @Tags         cases
// @Produce      json
// @Param        id path string true "Case ID" format(uuid)
// @Success      200 {object} APIResponse[customerapp.CaseResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /cases/{id} [get]
func (h *CaseHandler) GetByID(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid case ID format")
		return
	}

	found, err := h.caseService.GetByID(c.Request.Context(), caseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, found)
}

// GetByCaseNumber godoc
// @ID           getCaseByNumber
// @Summary      Get case by case number
// @Tags         cases
// @Produce      json
// @Param        caseNumber path string true "Case number"
// @Success      200 {object} APIResponse[customerapp.CaseResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /cases/number/{caseNumber} [get]
func (h *CaseHandler) GetByCaseNumber(c *gin.Context) {
	caseNumber := c.Param("caseNumber")
	if caseNumber == "" {
		h.BadRequest(c, "Case number is required")
		return
	}

	found, err := h.caseService.GetByCaseNumber(c.Request.Context(), caseNumber)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, found)
}

// Update godoc
// @ID           updateCase
// @Summary      Update a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        id path string true "Case ID" format(uuid)
// @Param        request body customerapp.UpdateCaseRequest true "Case update request"
// @Success      200 {object} APIResponse[customerapp.CaseResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /cases/{id} [put]
func (h *CaseHandler) Update(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid case ID format")
		return
	}

	var req customerapp.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.caseService.Update(c.Request.Context(), caseID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, updated)
}

// Resolve godoc
// @ID           resolveCase
// @Summary      Resolve a case
// @Description  Resolve a case, recording notes and the satisfaction score
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        id path string true "Case ID" format(uuid)
// @Param        request body customerapp.ResolveCaseRequest true "Resolution outcome"
// @Success      200 {object} APIResponse[customerapp.CaseResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /cases/{id}/resolve [post]
func (h *CaseHandler) Resolve(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid case ID format")
		return
	}

	var req customerapp.ResolveCaseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	resolved, err := h.caseService.Resolve(c.Request.Context(), caseID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resolved)
}

// Escalate godoc
// @ID           escalateCase
// @Summary      Escalate a case
// @Description  Escalate a case, bumping its priority
// @Tags         cases
// @Produce      json
// @Param        id path string true "Case ID" format(uuid)
// @Success      200 {object} APIResponse[customerapp.CaseResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /cases/{id}/escalate [post]
func (h *CaseHandler) Escalate(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid case ID format")
		return
	}

	escalated, err := h.caseService.Escalate(c.Request.Context(), caseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, escalated)
}

// ListByCustomer godoc
// @ID           listCasesByCustomer
// @Summary      List cases of a customer
// @Tags         cases
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        status query string false "Filter by status"
// @Param        priority query string false "Filter by priority"
// @Success      200 {object} APIResponse[[]customerapp.CaseResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /customers/{id}/cases [get]
func (h *CaseHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var filter customerapp.CaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cases, total, err := h.caseService.ListByCustomer(c.Request.Context(), customerID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	h.SuccessWithMeta(c, cases, total, page, pageSize)
}

// ListOpenByCustomer godoc
// @ID           listOpenCasesByCustomer
// @Summary      List open cases of a customer
// @Description  List cases that are not resolved or closed
// @Tags         cases
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[[]customerapp.CaseResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /customers/{id}/cases/open [get]
func (h *CaseHandler) ListOpenByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	cases, err := h.caseService.ListOpenByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cases)
}

// List godoc
// @ID           listCases
// @Summary      List cases
// @Description  List cases across customers, filtered by status or priority
// @Tags         cases
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        priority query string false "Filter by priority"
// @Success      200 {object} APIResponse[[]customerapp.CaseResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /cases [get]
func (h *CaseHandler) List(c *gin.Context) {
	var filter customerapp.CaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var cases []customerapp.CaseResponse
	var err error
	switch {
	case filter.Status != "":
		cases, err = h.caseService.ListByStatus(c.Request.Context(), filter.Status, filter)
	case filter.Priority != "":
		cases, err = h.caseService.ListByPriority(c.Request.Context(), filter.Priority, filter)
	default:
		h.BadRequest(c, "Either status or priority filter is required")
		return
	}
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cases)
}
