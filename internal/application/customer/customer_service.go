package customer

import (
	"context"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo customer.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo customer.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	if req.ExternalID != "" {
		exists, err := s.customerRepo.ExistsByExternalID(ctx, req.ExternalID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this external id already exists")
		}
	}

	c, err := customer.NewCustomer(req.Name, customer.NewCustomerParams{
		ExternalID:           req.ExternalID,
		FormattedName:        req.FormattedName,
		GivenName:            req.GivenName,
		FamilyName:           req.FamilyName,
		PreferredGivenName:   req.PreferredGivenName,
		TradingName:          req.TradingName,
		IdentificationType:   req.IdentificationType,
		IdentificationNumber: req.IdentificationNumber,
		LegacyDocument:       req.Document,
		Email:                req.Email,
		Phone:                req.Phone,
		Segment:              req.Segment,
		PreferredChannel:     req.PreferredChannel,
		Status:               customer.CustomerStatus(req.Status),
		RiskLevel:            customer.RiskLevel(req.RiskLevel),
		CreditScore:          req.CreditScore,
		CreditRiskRating:     req.CreditRiskRating,
		BiometriaStatus:      req.BiometriaStatus,
		CodigoGrupo:          req.CodigoGrupo,
		NomeGrupo:            req.NomeGrupo,
		CreatedBy:            req.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// GetByExternalID retrieves a customer by the upstream system identifier
func (s *CustomerService) GetByExternalID(ctx context.Context, externalID string) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// GetByPartyRoleID retrieves a customer by its party role identifier
func (s *CustomerService) GetByPartyRoleID(ctx context.Context, partyRoleID uuid.UUID) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByPartyRoleID(ctx, partyRoleID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	var customers []customer.Customer
	var err error
	switch {
	case filter.Status != "":
		customers, err = s.customerRepo.FindByStatus(ctx, customer.CustomerStatus(filter.Status), domainFilter)
	case filter.Segment != "":
		customers, err = s.customerRepo.FindBySegment(ctx, filter.Segment, domainFilter)
	default:
		customers, err = s.customerRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	countFilter := domainFilter
	if filter.Status != "" {
		countFilter.Filters["status"] = filter.Status
	}
	if filter.Segment != "" {
		countFilter.Filters["segment"] = filter.Segment
	}
	total, err := s.customerRepo.Count(ctx, countFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, ToCustomerResponse(&customers[i]))
	}

	return responses, total, nil
}

// Update applies a partial update to a customer. Only non-nil request fields
// change the record.
func (s *CustomerService) Update(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := c.UpdateName(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.FormattedName != nil || req.GivenName != nil || req.FamilyName != nil || req.PreferredGivenName != nil {
		formatted := c.FormattedName
		given := c.GivenName
		family := c.FamilyName
		preferred := c.PreferredGivenName
		if req.FormattedName != nil {
			formatted = *req.FormattedName
		}
		if req.GivenName != nil {
			given = *req.GivenName
		}
		if req.FamilyName != nil {
			family = *req.FamilyName
		}
		if req.PreferredGivenName != nil {
			preferred = *req.PreferredGivenName
		}
		c.SetPersonNames(formatted, given, family, preferred)
	}

	if req.TradingName != nil {
		c.SetTradingName(*req.TradingName)
	}

	if req.Email != nil || req.Phone != nil {
		email := c.Email
		phone := c.Phone
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := c.SetContact(email, phone); err != nil {
			return nil, err
		}
	}

	if req.IdentificationType != nil || req.IdentificationNumber != nil {
		idType := c.IdentificationType
		idNumber := c.IdentificationNumber
		if req.IdentificationType != nil {
			idType = *req.IdentificationType
		}
		if req.IdentificationNumber != nil {
			idNumber = *req.IdentificationNumber
		}
		if err := c.SetIdentification(idType, idNumber); err != nil {
			return nil, err
		}
	}

	if req.Segment != nil {
		c.SetSegment(*req.Segment)
	}
	if req.PreferredChannel != nil {
		c.SetPreferredChannel(*req.PreferredChannel)
	}
	if req.RiskLevel != nil {
		if err := c.SetRiskLevel(customer.RiskLevel(*req.RiskLevel)); err != nil {
			return nil, err
		}
	}

	if req.CreditScore != nil || req.CreditRiskRating != nil {
		score := c.CreditScore
		rating := c.CreditRiskRating
		if req.CreditScore != nil {
			score = req.CreditScore
		}
		if req.CreditRiskRating != nil {
			rating = req.CreditRiskRating
		}
		if err := c.SetCreditProfile(score, rating); err != nil {
			return nil, err
		}
	}

	if req.BiometriaStatus != nil {
		c.SetBiometriaStatus(*req.BiometriaStatus)
	}

	if req.CodigoGrupo != nil || req.NomeGrupo != nil {
		code := c.CodigoGrupo
		name := c.NomeGrupo
		if req.CodigoGrupo != nil {
			code = *req.CodigoGrupo
		}
		if req.NomeGrupo != nil {
			name = *req.NomeGrupo
		}
		c.SetGroup(code, name)
	}

	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// Activate activates a customer
func (s *CustomerService) Activate(ctx context.Context, customerID uuid.UUID, actor string) (*CustomerResponse, error) {
	return s.transition(ctx, customerID, func(c *customer.Customer) error {
		return c.Activate(actor)
	})
}

// Deactivate deactivates a customer
func (s *CustomerService) Deactivate(ctx context.Context, customerID uuid.UUID, actor string) (*CustomerResponse, error) {
	return s.transition(ctx, customerID, func(c *customer.Customer) error {
		return c.Deactivate(actor)
	})
}

// Suspend suspends a customer, forcing its risk level to HIGH
func (s *CustomerService) Suspend(ctx context.Context, customerID uuid.UUID, reason, actor string) (*CustomerResponse, error) {
	return s.transition(ctx, customerID, func(c *customer.Customer) error {
		return c.Suspend(reason, actor)
	})
}

func (s *CustomerService) transition(ctx context.Context, customerID uuid.UUID, apply func(*customer.Customer) error) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := apply(c); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// Delete deletes a customer
func (s *CustomerService) Delete(ctx context.Context, customerID uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, customerID)
}

// CountByStatus returns customer counts per lifecycle status
func (s *CustomerService) CountByStatus(ctx context.Context) (map[string]int64, error) {
	statuses := []customer.CustomerStatus{
		customer.CustomerStatusActive,
		customer.CustomerStatusInactive,
		customer.CustomerStatusProspect,
		customer.CustomerStatusSuspended,
	}

	counts := make(map[string]int64, len(statuses))
	for _, status := range statuses {
		count, err := s.customerRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		counts[string(status)] = count
	}

	return counts, nil
}
