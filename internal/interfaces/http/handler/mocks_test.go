package handler

import (
	"context"
	"testing"
	"time"

	domain "github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository implements customer.CustomerRepository for testing
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByExternalID(ctx context.Context, externalID string) (*domain.Customer, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByPartyRoleID(ctx context.Context, partyRoleID uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, partyRoleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]domain.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByStatus(ctx context.Context, status domain.CustomerStatus, filter shared.Filter) ([]domain.Customer, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindBySegment(ctx context.Context, segment string, filter shared.Filter) ([]domain.Customer, error) {
	args := m.Called(ctx, segment, filter)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	args := m.Called(ctx, externalID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) CountByStatus(ctx context.Context, status domain.CustomerStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockCaseRepository implements customer.CaseRepository for testing
type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomerCase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerCase), args.Error(1)
}

func (m *MockCaseRepository) FindByCaseNumber(ctx context.Context, caseNumber string) (*domain.CustomerCase, error) {
	args := m.Called(ctx, caseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerCase), args.Error(1)
}

func (m *MockCaseRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]domain.CustomerCase, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]domain.CustomerCase), args.Error(1)
}

func (m *MockCaseRepository) FindAllByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.CustomerCase, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.CustomerCase), args.Error(1)
}

func (m *MockCaseRepository) FindOpenByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.CustomerCase, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.CustomerCase), args.Error(1)
}

func (m *MockCaseRepository) FindByStatus(ctx context.Context, status domain.CaseStatus, filter shared.Filter) ([]domain.CustomerCase, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]domain.CustomerCase), args.Error(1)
}

func (m *MockCaseRepository) FindByPriority(ctx context.Context, priority domain.CasePriority, filter shared.Filter) ([]domain.CustomerCase, error) {
	args := m.Called(ctx, priority, filter)
	return args.Get(0).([]domain.CustomerCase), args.Error(1)
}

func (m *MockCaseRepository) CountByCustomerAndStatus(ctx context.Context, customerID uuid.UUID, status domain.CaseStatus) (int64, error) {
	args := m.Called(ctx, customerID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCaseRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCaseRepository) Save(ctx context.Context, cc *domain.CustomerCase) error {
	args := m.Called(ctx, cc)
	return args.Error(0)
}

// MockInteractionRepository implements customer.InteractionRepository for testing
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Interaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]domain.Interaction, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]domain.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) FindAllByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Interaction, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) FindRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]domain.Interaction, error) {
	args := m.Called(ctx, customerID, limit)
	return args.Get(0).([]domain.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) FindByCase(ctx context.Context, caseID uuid.UUID, filter shared.Filter) ([]domain.Interaction, error) {
	args := m.Called(ctx, caseID, filter)
	return args.Get(0).([]domain.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) CountByCustomerSince(ctx context.Context, customerID uuid.UUID, since time.Time) (int64, error) {
	args := m.Called(ctx, customerID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) Save(ctx context.Context, i *domain.Interaction) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

// MockCustomer360Repository implements customer.Customer360Repository for testing
type MockCustomer360Repository struct {
	mock.Mock
}

func (m *MockCustomer360Repository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.Customer360Record, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer360Record), args.Error(1)
}

func (m *MockCustomer360Repository) FindByExternalID(ctx context.Context, externalID string) (*domain.Customer360Record, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer360Record), args.Error(1)
}

func (m *MockCustomer360Repository) FindByStatus(ctx context.Context, status domain.CustomerStatus, filter shared.Filter) ([]domain.Customer360Record, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]domain.Customer360Record), args.Error(1)
}

func (m *MockCustomer360Repository) FindBySegment(ctx context.Context, segment string, filter shared.Filter) ([]domain.Customer360Record, error) {
	args := m.Called(ctx, segment, filter)
	return args.Get(0).([]domain.Customer360Record), args.Error(1)
}

func (m *MockCustomer360Repository) FindAll(ctx context.Context, filter shared.Filter) ([]domain.Customer360Record, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Customer360Record), args.Error(1)
}

func (m *MockCustomer360Repository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// passthroughScope executes the function directly against the given
// repositories, standing in for a real transaction scope.
type passthroughScope struct {
	repos domain.ViewRepositories
}

func (s *passthroughScope) Execute(ctx context.Context, fn func(repos domain.ViewRepositories) error) error {
	return fn(s.repos)
}

// newTestCustomer builds a stored-looking customer fixture
func newTestCustomer(t *testing.T) *domain.Customer {
	t.Helper()
	c, err := domain.NewCustomer("Maria Souza", domain.NewCustomerParams{
		ExternalID:           "EXT-001",
		IdentificationType:   "CPF",
		IdentificationNumber: "52998224725",
		Email:                "maria@example.com",
		Phone:                "11999990000",
		Segment:              "PREMIUM",
	})
	require.NoError(t, err)
	return c
}
