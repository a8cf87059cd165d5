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
)

func storedCustomer(t *testing.T) *domain.Customer {
	t.Helper()
	c, err := domain.NewCustomer("Maria Souza", domain.NewCustomerParams{})
	require.NoError(t, err)
	c.ClearDomainEvents()
	return c
}

func TestCaseService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("opens case for existing customer", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewCaseService(caseRepo, customerRepo)
		c := storedCustomer(t)

		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		caseRepo.On("Save", ctx, mock.AnythingOfType("*customer.CustomerCase")).Return(nil)

		resp, err := service.Create(ctx, c.ID, CreateCaseRequest{
			Title:    "No signal at home",
			Priority: "HIGH",
			Category: "NETWORK",
		})

		require.NoError(t, err)
		assert.Equal(t, c.ID, resp.CustomerID)
		assert.Equal(t, "OPEN", resp.Status)
		assert.Equal(t, "HIGH", resp.Priority)
		assert.Contains(t, resp.CaseNumber, "CASE-")
	})

	t.Run("assigned case starts in progress", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewCaseService(caseRepo, customerRepo)
		c := storedCustomer(t)

		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		caseRepo.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := service.Create(ctx, c.ID, CreateCaseRequest{Title: "Billing", AssignedTo: "agent-3"})

		require.NoError(t, err)
		assert.Equal(t, "IN_PROGRESS", resp.Status)
		assert.Equal(t, "agent-3", resp.AssignedTo)
	})

	t.Run("unknown customer", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewCaseService(caseRepo, customerRepo)
		id := uuid.New()

		customerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		resp, err := service.Create(ctx, id, CreateCaseRequest{Title: "Billing"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		caseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCaseService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("derives resolution time with injected clock", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewCaseService(caseRepo, customerRepo)

		cc, err := domain.NewCustomerCase(uuid.New(), "No signal", "", domain.CasePriorityMedium)
		require.NoError(t, err)
		resolvedAt := cc.CreatedAt.Add(2 * time.Hour)
		service.now = func() time.Time { return resolvedAt }

		caseRepo.On("FindByID", ctx, cc.ID).Return(cc, nil)
		caseRepo.On("Save", ctx, cc).Return(nil)

		score := 4.0
		resp, err := service.Resolve(ctx, cc.ID, ResolveCaseRequest{
			ResolutionNotes:   "tower maintenance finished",
			SatisfactionScore: &score,
		})

		require.NoError(t, err)
		assert.Equal(t, "RESOLVED", resp.Status)
		require.NotNil(t, resp.ResolutionTimeMinutes)
		assert.Equal(t, int64(120), *resp.ResolutionTimeMinutes)
		require.NotNil(t, resp.SatisfactionScore)
		assert.Equal(t, 4.0, *resp.SatisfactionScore)
	})

	t.Run("already resolved", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewCaseService(caseRepo, customerRepo)

		cc, err := domain.NewCustomerCase(uuid.New(), "No signal", "", domain.CasePriorityMedium)
		require.NoError(t, err)
		require.NoError(t, cc.Resolve("done", nil, time.Now()))

		caseRepo.On("FindByID", ctx, cc.ID).Return(cc, nil)

		resp, err := service.Resolve(ctx, cc.ID, ResolveCaseRequest{})

		assert.Nil(t, resp)
		assert.Error(t, err)
		caseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCaseService_ListOpenByCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("returns broad open set", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewCaseService(caseRepo, customerRepo)
		c := storedCustomer(t)

		waiting, err := domain.NewCustomerCase(c.ID, "Waiting on docs", "", domain.CasePriorityLow)
		require.NoError(t, err)
		waiting.Status = domain.CaseStatusWaitingCustomer

		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		caseRepo.On("FindOpenByCustomer", ctx, c.ID).Return([]domain.CustomerCase{*waiting}, nil)

		responses, err := service.ListOpenByCustomer(ctx, c.ID)

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "WAITING_CUSTOMER", responses[0].Status)
	})
}
