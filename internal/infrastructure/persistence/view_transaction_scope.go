package persistence

import (
	"context"

	"github.com/crm/backend/internal/domain/customer"
	"gorm.io/gorm"
)

// GormViewTransactionScope implements ViewTransactionScope using GORM
// transactions. All repository reads inside Execute observe one snapshot,
// so a consolidated view is assembled from consistent data.
type GormViewTransactionScope struct {
	db *gorm.DB
}

// NewGormViewTransactionScope creates a new GormViewTransactionScope.
func NewGormViewTransactionScope(db *gorm.DB) *GormViewTransactionScope {
	return &GormViewTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormViewTransactionScope) Execute(ctx context.Context, fn func(repos customer.ViewRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := customer.ViewRepositories{
			Customers:    NewGormCustomerRepository(tx),
			Cases:        NewGormCaseRepository(tx),
			Interactions: NewGormInteractionRepository(tx),
		}
		return fn(repos)
	})
}

// Ensure GormViewTransactionScope implements ViewTransactionScope
var _ customer.ViewTransactionScope = (*GormViewTransactionScope)(nil)
