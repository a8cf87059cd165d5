package customer

import (
	"context"
	"time"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CaseService handles the customer case lifecycle
type CaseService struct {
	caseRepo     customer.CaseRepository
	customerRepo customer.CustomerRepository
	now          func() time.Time
}

// NewCaseService creates a new CaseService
func NewCaseService(caseRepo customer.CaseRepository, customerRepo customer.CustomerRepository) *CaseService {
	return &CaseService{
		caseRepo:     caseRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

// Create opens a case for a customer
func (s *CaseService) Create(ctx context.Context, customerID uuid.UUID, req CreateCaseRequest) (*CaseResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	cc, err := customer.NewCustomerCase(customerID, req.Title, req.Description, customer.CasePriority(req.Priority))
	if err != nil {
		return nil, err
	}
	cc.Category = req.Category
	cc.Subcategory = req.Subcategory
	if req.AssignedTo != "" {
		if err := cc.Assign(req.AssignedTo); err != nil {
			return nil, err
		}
	}

	if err := s.caseRepo.Save(ctx, cc); err != nil {
		return nil, err
	}

	response := ToCaseResponse(cc)
	return &response, nil
}

// GetByID retrieves a case by ID
func (s *CaseService) GetByID(ctx context.Context, caseID uuid.UUID) (*CaseResponse, error) {
	cc, err := s.caseRepo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	response := ToCaseResponse(cc)
	return &response, nil
}

// GetByCaseNumber retrieves a case by its public case number
func (s *CaseService) GetByCaseNumber(ctx context.Context, caseNumber string) (*CaseResponse, error) {
	cc, err := s.caseRepo.FindByCaseNumber(ctx, caseNumber)
	if err != nil {
		return nil, err
	}

	response := ToCaseResponse(cc)
	return &response, nil
}

// Update replaces a case's editable attributes
func (s *CaseService) Update(ctx context.Context, caseID uuid.UUID, req UpdateCaseRequest) (*CaseResponse, error) {
	cc, err := s.caseRepo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if err := cc.Update(req.Title, req.Description, customer.CaseStatus(req.Status),
		customer.CasePriority(req.Priority), req.Category, req.Subcategory, req.AssignedTo); err != nil {
		return nil, err
	}

	if err := s.caseRepo.Save(ctx, cc); err != nil {
		return nil, err
	}

	response := ToCaseResponse(cc)
	return &response, nil
}

// Resolve resolves a case, deriving the resolution time
func (s *CaseService) Resolve(ctx context.Context, caseID uuid.UUID, req ResolveCaseRequest) (*CaseResponse, error) {
	cc, err := s.caseRepo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if err := cc.Resolve(req.ResolutionNotes, req.SatisfactionScore, s.now()); err != nil {
		return nil, err
	}

	if err := s.caseRepo.Save(ctx, cc); err != nil {
		return nil, err
	}

	response := ToCaseResponse(cc)
	return &response, nil
}

// Escalate escalates a case
func (s *CaseService) Escalate(ctx context.Context, caseID uuid.UUID) (*CaseResponse, error) {
	cc, err := s.caseRepo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if err := cc.Escalate(); err != nil {
		return nil, err
	}

	if err := s.caseRepo.Save(ctx, cc); err != nil {
		return nil, err
	}

	response := ToCaseResponse(cc)
	return &response, nil
}

// ListByCustomer lists a customer's cases
func (s *CaseService) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter CaseListFilter) ([]CaseResponse, int64, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, 0, err
	}

	cases, err := s.caseRepo.FindByCustomer(ctx, customerID, caseFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	total, err := s.caseRepo.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, 0, err
	}

	return toCaseResponses(cases), total, nil
}

// ListOpenByCustomer lists the customer's cases in the broad open-status set
func (s *CaseService) ListOpenByCustomer(ctx context.Context, customerID uuid.UUID) ([]CaseResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	cases, err := s.caseRepo.FindOpenByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return toCaseResponses(cases), nil
}

// ListByStatus lists cases by status
func (s *CaseService) ListByStatus(ctx context.Context, status string, filter CaseListFilter) ([]CaseResponse, error) {
	cases, err := s.caseRepo.FindByStatus(ctx, customer.CaseStatus(status), caseFilter(filter))
	if err != nil {
		return nil, err
	}
	return toCaseResponses(cases), nil
}

// ListByPriority lists cases by priority
func (s *CaseService) ListByPriority(ctx context.Context, priority string, filter CaseListFilter) ([]CaseResponse, error) {
	cases, err := s.caseRepo.FindByPriority(ctx, customer.CasePriority(priority), caseFilter(filter))
	if err != nil {
		return nil, err
	}
	return toCaseResponses(cases), nil
}

func caseFilter(filter CaseListFilter) shared.Filter {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	return f
}

func toCaseResponses(cases []customer.CustomerCase) []CaseResponse {
	responses := make([]CaseResponse, 0, len(cases))
	for i := range cases {
		responses = append(responses, ToCaseResponse(&cases[i]))
	}
	return responses
}
