package customer

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByExternalID finds a customer by the upstream system identifier
	FindByExternalID(ctx context.Context, externalID string) (*Customer, error)

	// FindByPartyRoleID finds a customer by its party role identifier
	FindByPartyRoleID(ctx context.Context, partyRoleID uuid.UUID) (*Customer, error)

	// FindAll finds all customers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// FindByStatus finds customers by lifecycle status
	FindByStatus(ctx context.Context, status CustomerStatus, filter shared.Filter) ([]Customer, error)

	// FindBySegment finds customers by commercial segment
	FindBySegment(ctx context.Context, segment string, filter shared.Filter) ([]Customer, error)

	// ExistsByExternalID checks if a customer with the external id exists
	ExistsByExternalID(ctx context.Context, externalID string) (bool, error)

	// Save creates or updates a customer
	Save(ctx context.Context, c *Customer) error

	// Delete deletes a customer
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts customers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts customers with the given status
	CountByStatus(ctx context.Context, status CustomerStatus) (int64, error)
}
