package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomer360Repository reads the customer_360 materialized view.
// The view is maintained by the database; this repository never writes.
type GormCustomer360Repository struct {
	db *gorm.DB
}

// NewGormCustomer360Repository creates a new GormCustomer360Repository
func NewGormCustomer360Repository(db *gorm.DB) *GormCustomer360Repository {
	return &GormCustomer360Repository{db: db}
}

// FindByCustomerID finds the consolidated record for a customer
func (r *GormCustomer360Repository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*customer.Customer360Record, error) {
	var record customer.Customer360Record
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByExternalID finds the consolidated record by the upstream identifier
func (r *GormCustomer360Repository) FindByExternalID(ctx context.Context, externalID string) (*customer.Customer360Record, error) {
	if externalID == "" {
		return nil, shared.NewDomainError("INVALID_EXTERNAL_ID", "External id cannot be empty")
	}
	var record customer.Customer360Record
	if err := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByStatus finds consolidated records by customer status
func (r *GormCustomer360Repository) FindByStatus(ctx context.Context, status customer.CustomerStatus, filter shared.Filter) ([]customer.Customer360Record, error) {
	var records []customer.Customer360Record
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&customer.Customer360Record{}).
			Where("status = ?", status),
		filter,
	)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindBySegment finds consolidated records by segment
func (r *GormCustomer360Repository) FindBySegment(ctx context.Context, segment string, filter shared.Filter) ([]customer.Customer360Record, error) {
	var records []customer.Customer360Record
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&customer.Customer360Record{}).
			Where("segment = ?", segment),
		filter,
	)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindAll finds a page of consolidated records
func (r *GormCustomer360Repository) FindAll(ctx context.Context, filter shared.Filter) ([]customer.Customer360Record, error) {
	var records []customer.Customer360Record
	query := r.applyFilter(r.db.WithContext(ctx).Model(&customer.Customer360Record{}), filter)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Count counts consolidated records matching the filter
func (r *GormCustomer360Repository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&customer.Customer360Record{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormCustomer360Repository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, Customer360SortFields, "updated_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCustomer360Repository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR external_id ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "segment":
			query = query.Where("segment = ?", value)
		case "preferred_channel":
			query = query.Where("preferred_channel = ?", value)
		}
	}

	return query
}

// Ensure GormCustomer360Repository implements Customer360Repository
var _ customer.Customer360Repository = (*GormCustomer360Repository)(nil)
