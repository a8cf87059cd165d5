package customer

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerCase(t *testing.T) {
	customerID := uuid.New()

	t.Run("creates case with defaults", func(t *testing.T) {
		cc, err := NewCustomerCase(customerID, "Billing dispute", "Double charge on invoice", "")

		require.NoError(t, err)
		assert.Equal(t, customerID, cc.CustomerID)
		assert.Equal(t, CaseStatusOpen, cc.Status)
		assert.Equal(t, CasePriorityMedium, cc.Priority)
		assert.True(t, strings.HasPrefix(cc.CaseNumber, "CASE-"))
		assert.Len(t, cc.GetDomainEvents(), 1)
	})

	t.Run("case numbers are unique", func(t *testing.T) {
		a, err := NewCustomerCase(customerID, "First", "", CasePriorityLow)
		require.NoError(t, err)
		b, err := NewCustomerCase(customerID, "Second", "", CasePriorityLow)
		require.NoError(t, err)

		assert.NotEqual(t, a.CaseNumber, b.CaseNumber)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		cc, err := NewCustomerCase(customerID, " ", "", CasePriorityHigh)

		assert.Error(t, err)
		assert.Nil(t, cc)
	})

	t.Run("fails with unknown priority", func(t *testing.T) {
		cc, err := NewCustomerCase(customerID, "Billing dispute", "", "URGENT")

		assert.Error(t, err)
		assert.Nil(t, cc)
	})
}

func TestCustomerCase_Resolve(t *testing.T) {
	newCase := func(t *testing.T) *CustomerCase {
		cc, err := NewCustomerCase(uuid.New(), "Billing dispute", "", CasePriorityMedium)
		require.NoError(t, err)
		cc.ClearDomainEvents()
		return cc
	}

	t.Run("derives resolution minutes from creation time", func(t *testing.T) {
		cc := newCase(t)
		cc.CreatedAt = time.Now().Add(-90 * time.Minute)

		score := 4.5
		require.NoError(t, cc.Resolve("credited the duplicate charge", &score, time.Now()))

		assert.Equal(t, CaseStatusResolved, cc.Status)
		require.NotNil(t, cc.ResolutionTimeMinutes)
		assert.Equal(t, int64(90), *cc.ResolutionTimeMinutes)
		require.NotNil(t, cc.ResolvedAt)
		assert.Equal(t, "credited the duplicate charge", cc.ResolutionNotes)
		assert.Len(t, cc.GetDomainEvents(), 1)
	})

	t.Run("resolve without score", func(t *testing.T) {
		cc := newCase(t)

		require.NoError(t, cc.Resolve("no response needed", nil, time.Now()))
		assert.Nil(t, cc.SatisfactionScore)
	})

	t.Run("rejects out of range score", func(t *testing.T) {
		cc := newCase(t)

		score := 5.5
		assert.Error(t, cc.Resolve("done", &score, time.Now()))
	})

	t.Run("rejects double resolution", func(t *testing.T) {
		cc := newCase(t)

		require.NoError(t, cc.Resolve("done", nil, time.Now()))
		assert.Error(t, cc.Resolve("done again", nil, time.Now()))
	})
}

func TestCustomerCase_Lifecycle(t *testing.T) {
	t.Run("assign moves open case to in progress", func(t *testing.T) {
		cc, err := NewCustomerCase(uuid.New(), "Port-in stuck", "", CasePriorityHigh)
		require.NoError(t, err)

		require.NoError(t, cc.Assign("agent-7"))
		assert.Equal(t, CaseStatusInProgress, cc.Status)
		assert.Equal(t, "agent-7", cc.AssignedTo)
	})

	t.Run("escalate bumps priority", func(t *testing.T) {
		cc, err := NewCustomerCase(uuid.New(), "Port-in stuck", "", CasePriorityMedium)
		require.NoError(t, err)

		require.NoError(t, cc.Escalate())
		assert.Equal(t, CaseStatusEscalated, cc.Status)
		assert.Equal(t, CasePriorityHigh, cc.Priority)
	})

	t.Run("close requires resolved", func(t *testing.T) {
		cc, err := NewCustomerCase(uuid.New(), "Port-in stuck", "", CasePriorityMedium)
		require.NoError(t, err)

		assert.Error(t, cc.Close())

		require.NoError(t, cc.Resolve("ported", nil, time.Now()))
		require.NoError(t, cc.Close())
		assert.Equal(t, CaseStatusClosed, cc.Status)
	})

	t.Run("broad open set", func(t *testing.T) {
		cc := &CustomerCase{Status: CaseStatusWaitingCustomer}
		assert.True(t, cc.IsOpen())

		cc.Status = CaseStatusResolved
		assert.False(t, cc.IsOpen())
	})
}
