package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCaseRepository implements CaseRepository using GORM
type GormCaseRepository struct {
	db *gorm.DB
}

// NewGormCaseRepository creates a new GormCaseRepository
func NewGormCaseRepository(db *gorm.DB) *GormCaseRepository {
	return &GormCaseRepository{db: db}
}

// FindByID finds a case by its ID
func (r *GormCaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.CustomerCase, error) {
	var model models.CustomerCaseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCaseNumber finds a case by its public case number
func (r *GormCaseRepository) FindByCaseNumber(ctx context.Context, caseNumber string) (*customer.CustomerCase, error) {
	if caseNumber == "" {
		return nil, shared.NewDomainError("INVALID_CASE_NUMBER", "Case number cannot be empty")
	}
	var model models.CustomerCaseModel
	if err := r.db.WithContext(ctx).
		Where("case_number = ?", caseNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer finds a page of cases for a customer
func (r *GormCaseRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]customer.CustomerCase, error) {
	var caseModels []models.CustomerCaseModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.CustomerCaseModel{}).
			Where("customer_id = ?", customerID),
		filter,
	)

	if err := query.Find(&caseModels).Error; err != nil {
		return nil, err
	}
	return toDomainCases(caseModels), nil
}

// FindAllByCustomer finds every case for a customer, unpaged
func (r *GormCaseRepository) FindAllByCustomer(ctx context.Context, customerID uuid.UUID) ([]customer.CustomerCase, error) {
	var caseModels []models.CustomerCaseModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&caseModels).Error; err != nil {
		return nil, err
	}
	return toDomainCases(caseModels), nil
}

// FindOpenByCustomer finds the customer's cases in the broad open-status set
func (r *GormCaseRepository) FindOpenByCustomer(ctx context.Context, customerID uuid.UUID) ([]customer.CustomerCase, error) {
	var caseModels []models.CustomerCaseModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status IN ?", customerID, customer.OpenCaseStatuses).
		Order("created_at DESC").
		Find(&caseModels).Error; err != nil {
		return nil, err
	}
	return toDomainCases(caseModels), nil
}

// FindByStatus finds cases by status
func (r *GormCaseRepository) FindByStatus(ctx context.Context, status customer.CaseStatus, filter shared.Filter) ([]customer.CustomerCase, error) {
	var caseModels []models.CustomerCaseModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.CustomerCaseModel{}).
			Where("status = ?", status),
		filter,
	)

	if err := query.Find(&caseModels).Error; err != nil {
		return nil, err
	}
	return toDomainCases(caseModels), nil
}

// FindByPriority finds cases by priority
func (r *GormCaseRepository) FindByPriority(ctx context.Context, priority customer.CasePriority, filter shared.Filter) ([]customer.CustomerCase, error) {
	var caseModels []models.CustomerCaseModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.CustomerCaseModel{}).
			Where("priority = ?", priority),
		filter,
	)

	if err := query.Find(&caseModels).Error; err != nil {
		return nil, err
	}
	return toDomainCases(caseModels), nil
}

// CountByCustomerAndStatus counts a customer's cases with one exact status
func (r *GormCaseRepository) CountByCustomerAndStatus(ctx context.Context, customerID uuid.UUID, status customer.CaseStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerCaseModel{}).
		Where("customer_id = ? AND status = ?", customerID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCustomer counts all cases for a customer
func (r *GormCaseRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerCaseModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a case
func (r *GormCaseRepository) Save(ctx context.Context, cc *customer.CustomerCase) error {
	model := models.CustomerCaseModelFromDomain(cc)
	return r.db.WithContext(ctx).Save(model).Error
}

// applyFilter applies filter options to the query
func (r *GormCaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR case_number ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "priority":
			query = query.Where("priority = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		case "assigned_to":
			query = query.Where("assigned_to = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CaseSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

func toDomainCases(caseModels []models.CustomerCaseModel) []customer.CustomerCase {
	cases := make([]customer.CustomerCase, len(caseModels))
	for i, model := range caseModels {
		cases[i] = *model.ToDomain()
	}
	return cases
}

// Ensure GormCaseRepository implements CaseRepository
var _ customer.CaseRepository = (*GormCaseRepository)(nil)
