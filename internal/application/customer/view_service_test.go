package customer

import (
	"context"
	"testing"
	"time"

	domain "github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newViewService(scope domain.ViewTransactionScope, view360Repo domain.Customer360Repository) *ViewService {
	return NewViewService(scope, view360Repo, zap.NewNop())
}

func TestViewService_GetCustomerView360(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("assembles view with statistics and assessment", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		caseRepo := new(MockCaseRepository)
		interactionRepo := new(MockInteractionRepository)
		scope := &passthroughScope{repos: domain.ViewRepositories{
			Customers:    customerRepo,
			Cases:        caseRepo,
			Interactions: interactionRepo,
		}}
		service := newViewService(scope, new(MockCustomer360Repository))
		service.now = func() time.Time { return now }

		c := storedCustomer(t)
		last := now.Add(-40 * 24 * time.Hour)
		c.LastInteractionAt = &last

		open1, err := domain.NewCustomerCase(c.ID, "No signal", "", domain.CasePriorityHigh)
		require.NoError(t, err)
		open2, err := domain.NewCustomerCase(c.ID, "Wrong invoice", "", domain.CasePriorityMedium)
		require.NoError(t, err)
		resolved, err := domain.NewCustomerCase(c.ID, "Slow internet", "", domain.CasePriorityLow)
		require.NoError(t, err)
		score := 1.5
		require.NoError(t, resolved.Resolve("speed restored", &score, now.Add(-time.Hour)))

		allCases := []domain.CustomerCase{*open1, *open2, *resolved}

		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		caseRepo.On("FindOpenByCustomer", ctx, c.ID).Return([]domain.CustomerCase{*open1, *open2}, nil)
		interactionRepo.On("FindRecentByCustomer", ctx, c.ID, 10).Return([]domain.Interaction{}, nil)
		caseRepo.On("FindAllByCustomer", ctx, c.ID).Return(allCases, nil)
		interactionRepo.On("FindAllByCustomer", ctx, c.ID).Return([]domain.Interaction{}, nil)

		view, err := service.GetCustomerView360(ctx, c.ID)

		require.NoError(t, err)
		assert.Equal(t, c.ID, view.Customer.ID)
		assert.Len(t, view.OpenCases, 2)
		assert.Equal(t, 3, view.Statistics.TotalCases)
		assert.Equal(t, 2, view.Statistics.OpenCases)
		assert.Equal(t, 1, view.Statistics.ResolvedCases)
		assert.InDelta(t, 1.5, view.Statistics.AverageSatisfactionScore, 1e-9)
		assert.Equal(t, "HIGH", view.RiskLevel)
		assert.Equal(t, domain.ActionFollowUpOpenCases, view.NextRecommendedAction)
	})

	t.Run("not found", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		scope := &passthroughScope{repos: domain.ViewRepositories{
			Customers:    customerRepo,
			Cases:        new(MockCaseRepository),
			Interactions: new(MockInteractionRepository),
		}}
		service := newViewService(scope, new(MockCustomer360Repository))
		id := uuid.New()

		customerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		view, err := service.GetCustomerView360(ctx, id)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("quiet customer stays low risk", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		caseRepo := new(MockCaseRepository)
		interactionRepo := new(MockInteractionRepository)
		scope := &passthroughScope{repos: domain.ViewRepositories{
			Customers:    customerRepo,
			Cases:        caseRepo,
			Interactions: interactionRepo,
		}}
		service := newViewService(scope, new(MockCustomer360Repository))
		service.now = func() time.Time { return now }

		c := storedCustomer(t)

		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		caseRepo.On("FindOpenByCustomer", ctx, c.ID).Return([]domain.CustomerCase{}, nil)
		interactionRepo.On("FindRecentByCustomer", ctx, c.ID, 10).Return([]domain.Interaction{}, nil)
		caseRepo.On("FindAllByCustomer", ctx, c.ID).Return([]domain.CustomerCase{}, nil)
		interactionRepo.On("FindAllByCustomer", ctx, c.ID).Return([]domain.Interaction{}, nil)

		view, err := service.GetCustomerView360(ctx, c.ID)

		require.NoError(t, err)
		assert.Equal(t, domain.Statistics{}, view.Statistics)
		assert.Equal(t, "LOW", view.RiskLevel)
		assert.Equal(t, domain.ActionMaintain, view.NextRecommendedAction)
	})

	t.Run("configured interaction limit is passed through", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		caseRepo := new(MockCaseRepository)
		interactionRepo := new(MockInteractionRepository)
		scope := &passthroughScope{repos: domain.ViewRepositories{
			Customers:    customerRepo,
			Cases:        caseRepo,
			Interactions: interactionRepo,
		}}
		service := NewViewService(scope, new(MockCustomer360Repository), zap.NewNop(), WithRecentInteractionLimit(25))

		c := storedCustomer(t)

		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		caseRepo.On("FindOpenByCustomer", ctx, c.ID).Return([]domain.CustomerCase{}, nil)
		interactionRepo.On("FindRecentByCustomer", ctx, c.ID, 25).Return([]domain.Interaction{}, nil)
		caseRepo.On("FindAllByCustomer", ctx, c.ID).Return([]domain.CustomerCase{}, nil)
		interactionRepo.On("FindAllByCustomer", ctx, c.ID).Return([]domain.Interaction{}, nil)

		_, err := service.GetCustomerView360(ctx, c.ID)

		require.NoError(t, err)
		interactionRepo.AssertCalled(t, "FindRecentByCustomer", ctx, c.ID, 25)
	})

	t.Run("non-positive limit keeps the default", func(t *testing.T) {
		service := NewViewService(&passthroughScope{}, new(MockCustomer360Repository), zap.NewNop(), WithRecentInteractionLimit(0))
		assert.Equal(t, defaultRecentInteractionLimit, service.interactionLimit)
	})
}

func TestViewService_GetConsolidated(t *testing.T) {
	ctx := context.Background()

	t.Run("parses stored payload", func(t *testing.T) {
		view360Repo := new(MockCustomer360Repository)
		service := newViewService(&passthroughScope{}, view360Repo)

		id := uuid.New()
		record := &domain.Customer360Record{
			CustomerID: id,
			Data:       `{"identification":{"customerId":"` + id.String() + `","name":"Maria Souza"},"statistics":{"totalCases":2}}`,
		}
		view360Repo.On("FindByCustomerID", ctx, id).Return(record, nil)

		view, err := service.GetConsolidated(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", view.Identification.Name)
		assert.Equal(t, 2, view.Statistics.TotalCases)
	})

	t.Run("malformed payload degrades to empty view and warns", func(t *testing.T) {
		view360Repo := new(MockCustomer360Repository)
		core, logs := observer.New(zap.WarnLevel)
		service := NewViewService(&passthroughScope{}, view360Repo, zap.New(core))

		id := uuid.New()
		record := &domain.Customer360Record{CustomerID: id, Data: `{"broken`}
		view360Repo.On("FindByCustomerID", ctx, id).Return(record, nil)

		view, err := service.GetConsolidated(ctx, id)

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, domain.ConsolidatedView{}, *view)
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("record not found", func(t *testing.T) {
		view360Repo := new(MockCustomer360Repository)
		service := newViewService(&passthroughScope{}, view360Repo)
		id := uuid.New()

		view360Repo.On("FindByCustomerID", ctx, id).Return(nil, shared.ErrNotFound)

		view, err := service.GetConsolidated(ctx, id)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestViewService_ListConsolidated(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a paginated page with filter defaults", func(t *testing.T) {
		view360Repo := new(MockCustomer360Repository)
		service := newViewService(&passthroughScope{}, view360Repo)

		id := uuid.New()
		records := []domain.Customer360Record{{
			CustomerID: id,
			Data:       `{"identification":{"customerId":"` + id.String() + `","name":"Maria Souza"}}`,
		}}
		view360Repo.On("FindBySegment", ctx, "PREMIUM", mock.AnythingOfType("shared.Filter")).Return(records, nil)
		view360Repo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(41), nil)

		page, err := service.ListConsolidated(ctx, "", "PREMIUM", 0, 0)

		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Maria Souza", page.Items[0].Identification.Name)
		assert.Equal(t, int64(41), page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.PageSize)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("status filter routes to FindByStatus", func(t *testing.T) {
		view360Repo := new(MockCustomer360Repository)
		service := newViewService(&passthroughScope{}, view360Repo)

		view360Repo.On("FindByStatus", ctx, domain.CustomerStatusSuspended, mock.AnythingOfType("shared.Filter")).
			Return([]domain.Customer360Record{}, nil)
		view360Repo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)

		page, err := service.ListConsolidated(ctx, "SUSPENDED", "", 2, 5)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 5, page.PageSize)
		view360Repo.AssertExpectations(t)
	})
}
