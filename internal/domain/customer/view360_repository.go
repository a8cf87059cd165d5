package customer

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer360Repository reads the precomputed customer_360 view rows
type Customer360Repository interface {
	// FindByCustomerID finds the consolidated record for a customer
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*Customer360Record, error)

	// FindByExternalID finds the consolidated record by the upstream identifier
	FindByExternalID(ctx context.Context, externalID string) (*Customer360Record, error)

	// FindByStatus finds consolidated records by customer status
	FindByStatus(ctx context.Context, status CustomerStatus, filter shared.Filter) ([]Customer360Record, error)

	// FindBySegment finds consolidated records by segment
	FindBySegment(ctx context.Context, segment string, filter shared.Filter) ([]Customer360Record, error)

	// FindAll finds a page of consolidated records
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer360Record, error)

	// Count counts consolidated records matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ViewRepositories bundles the repositories participating in one consolidated
// read so all fetches observe a single snapshot.
type ViewRepositories struct {
	Customers    CustomerRepository
	Cases        CaseRepository
	Interactions InteractionRepository
}

// ViewTransactionScope executes fn against transaction-scoped repositories.
// Implementations guarantee every repository call inside fn shares one read
// transaction.
type ViewTransactionScope interface {
	Execute(ctx context.Context, fn func(repos ViewRepositories) error) error
}
