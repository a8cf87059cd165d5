package customer

import (
	"context"
	"time"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InteractionService records and lists customer interactions
type InteractionService struct {
	interactionRepo customer.InteractionRepository
	customerRepo    customer.CustomerRepository
	caseRepo        customer.CaseRepository
	now             func() time.Time
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(interactionRepo customer.InteractionRepository, customerRepo customer.CustomerRepository, caseRepo customer.CaseRepository) *InteractionService {
	return &InteractionService{
		interactionRepo: interactionRepo,
		customerRepo:    customerRepo,
		caseRepo:        caseRepo,
		now:             time.Now,
	}
}

// Record records an interaction and bumps the customer's last-interaction
// timestamp.
func (s *InteractionService) Record(ctx context.Context, customerID uuid.UUID, req RecordInteractionRequest) (*InteractionResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.CaseID != nil {
		if _, err := s.caseRepo.FindByID(ctx, *req.CaseID); err != nil {
			return nil, err
		}
	}

	i, err := customer.NewInteraction(customerID, req.CaseID,
		customer.InteractionChannel(req.Channel), customer.Direction(req.Direction),
		req.AgentID, req.AgentName, req.Message)
	if err != nil {
		return nil, err
	}
	if req.DurationSeconds != nil {
		if err := i.SetDuration(*req.DurationSeconds); err != nil {
			return nil, err
		}
	}
	if req.Sentiment != "" || req.SentimentScore != nil {
		i.SetSentiment(req.Sentiment, req.SentimentScore)
	}

	if err := s.interactionRepo.Save(ctx, i); err != nil {
		return nil, err
	}

	c.RecordInteraction(s.now())
	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToInteractionResponse(i)
	return &response, nil
}

// GetByID retrieves an interaction by ID
func (s *InteractionService) GetByID(ctx context.Context, interactionID uuid.UUID) (*InteractionResponse, error) {
	i, err := s.interactionRepo.FindByID(ctx, interactionID)
	if err != nil {
		return nil, err
	}

	response := ToInteractionResponse(i)
	return &response, nil
}

// ListByCustomer lists a customer's interactions
func (s *InteractionService) ListByCustomer(ctx context.Context, customerID uuid.UUID, page, pageSize int) ([]InteractionResponse, int64, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, 0, err
	}

	f := shared.DefaultFilter()
	if page > 0 {
		f.Page = page
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}

	interactions, err := s.interactionRepo.FindByCustomer(ctx, customerID, f)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.interactionRepo.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, 0, err
	}

	return toInteractionResponses(interactions), total, nil
}

// ListByCase lists the interactions attached to a case
func (s *InteractionService) ListByCase(ctx context.Context, caseID uuid.UUID) ([]InteractionResponse, error) {
	if _, err := s.caseRepo.FindByID(ctx, caseID); err != nil {
		return nil, err
	}

	interactions, err := s.interactionRepo.FindByCase(ctx, caseID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	return toInteractionResponses(interactions), nil
}

func toInteractionResponses(interactions []customer.Interaction) []InteractionResponse {
	responses := make([]InteractionResponse, 0, len(interactions))
	for i := range interactions {
		responses = append(responses, ToInteractionResponse(&interactions[i]))
	}
	return responses
}
