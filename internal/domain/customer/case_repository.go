package customer

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CaseRepository defines the interface for customer case persistence
type CaseRepository interface {
	// FindByID finds a case by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerCase, error)

	// FindByCaseNumber finds a case by its public case number
	FindByCaseNumber(ctx context.Context, caseNumber string) (*CustomerCase, error)

	// FindByCustomer finds a page of cases for a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]CustomerCase, error)

	// FindAllByCustomer finds every case for a customer, unpaged
	FindAllByCustomer(ctx context.Context, customerID uuid.UUID) ([]CustomerCase, error)

	// FindOpenByCustomer finds the customer's cases in the broad open-status
	// set (OPEN, IN_PROGRESS, WAITING_CUSTOMER)
	FindOpenByCustomer(ctx context.Context, customerID uuid.UUID) ([]CustomerCase, error)

	// FindByStatus finds cases by status
	FindByStatus(ctx context.Context, status CaseStatus, filter shared.Filter) ([]CustomerCase, error)

	// FindByPriority finds cases by priority
	FindByPriority(ctx context.Context, priority CasePriority, filter shared.Filter) ([]CustomerCase, error)

	// CountByCustomerAndStatus counts a customer's cases with one exact status
	CountByCustomerAndStatus(ctx context.Context, customerID uuid.UUID, status CaseStatus) (int64, error)

	// CountByCustomer counts all cases for a customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// Save creates or updates a case
	Save(ctx context.Context, cc *CustomerCase) error
}
