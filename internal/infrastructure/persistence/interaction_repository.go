package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInteractionRepository implements InteractionRepository using GORM
type GormInteractionRepository struct {
	db *gorm.DB
}

// NewGormInteractionRepository creates a new GormInteractionRepository
func NewGormInteractionRepository(db *gorm.DB) *GormInteractionRepository {
	return &GormInteractionRepository{db: db}
}

// FindByID finds an interaction by its ID
func (r *GormInteractionRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Interaction, error) {
	var model models.InteractionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer finds a page of interactions for a customer
func (r *GormInteractionRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]customer.Interaction, error) {
	var interactionModels []models.InteractionModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.InteractionModel{}).
			Where("customer_id = ?", customerID),
		filter,
	)

	if err := query.Find(&interactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainInteractions(interactionModels), nil
}

// FindAllByCustomer finds every interaction for a customer, unpaged
func (r *GormInteractionRepository) FindAllByCustomer(ctx context.Context, customerID uuid.UUID) ([]customer.Interaction, error) {
	var interactionModels []models.InteractionModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&interactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainInteractions(interactionModels), nil
}

// FindRecentByCustomer finds the customer's most recent interactions, newest
// first, bounded by limit
func (r *GormInteractionRepository) FindRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]customer.Interaction, error) {
	if limit <= 0 {
		return []customer.Interaction{}, nil
	}
	var interactionModels []models.InteractionModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&interactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainInteractions(interactionModels), nil
}

// FindByCase finds the interactions attached to a case
func (r *GormInteractionRepository) FindByCase(ctx context.Context, caseID uuid.UUID, filter shared.Filter) ([]customer.Interaction, error) {
	var interactionModels []models.InteractionModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.InteractionModel{}).
			Where("case_id = ?", caseID),
		filter,
	)

	if err := query.Find(&interactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainInteractions(interactionModels), nil
}

// CountByCustomer counts all interactions for a customer
func (r *GormInteractionRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InteractionModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCustomerSince counts the customer's interactions created at or after
// the given instant
func (r *GormInteractionRepository) CountByCustomerSince(ctx context.Context, customerID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InteractionModel{}).
		Where("customer_id = ? AND created_at >= ?", customerID, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an interaction
func (r *GormInteractionRepository) Save(ctx context.Context, i *customer.Interaction) error {
	model := models.InteractionModelFromDomain(i)
	return r.db.WithContext(ctx).Save(model).Error
}

// applyFilter applies filter options to the query
func (r *GormInteractionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "channel":
			query = query.Where("channel = ?", value)
		case "direction":
			query = query.Where("direction = ?", value)
		case "agent_id":
			query = query.Where("agent_id = ?", value)
		case "sentiment":
			query = query.Where("sentiment = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, InteractionSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

func toDomainInteractions(interactionModels []models.InteractionModel) []customer.Interaction {
	interactions := make([]customer.Interaction, len(interactionModels))
	for i, model := range interactionModels {
		interactions[i] = *model.ToDomain()
	}
	return interactions
}

// Ensure GormInteractionRepository implements InteractionRepository
var _ customer.InteractionRepository = (*GormInteractionRepository)(nil)
