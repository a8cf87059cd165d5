package customer

import (
	"context"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InteractionRepository defines the interface for interaction persistence
type InteractionRepository interface {
	// FindByID finds an interaction by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Interaction, error)

	// FindByCustomer finds a page of interactions for a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Interaction, error)

	// FindAllByCustomer finds every interaction for a customer, unpaged
	FindAllByCustomer(ctx context.Context, customerID uuid.UUID) ([]Interaction, error)

	// FindRecentByCustomer finds the customer's most recent interactions,
	// newest first, bounded by limit
	FindRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]Interaction, error)

	// FindByCase finds the interactions attached to a case
	FindByCase(ctx context.Context, caseID uuid.UUID, filter shared.Filter) ([]Interaction, error)

	// CountByCustomer counts all interactions for a customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// CountByCustomerSince counts the customer's interactions created at or
	// after the given instant
	CountByCustomerSince(ctx context.Context, customerID uuid.UUID, since time.Time) (int64, error)

	// Save creates or updates an interaction
	Save(ctx context.Context, i *Interaction) error
}
