package customer

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeCustomer    = "Customer"
	AggregateTypeCase        = "CustomerCase"
	AggregateTypeInteraction = "Interaction"
)

// Event type constants
const (
	EventTypeCustomerCreated       = "CustomerCreated"
	EventTypeCustomerUpdated       = "CustomerUpdated"
	EventTypeCustomerStatusChanged = "CustomerStatusChanged"
	EventTypeCustomerSuspended     = "CustomerSuspended"
	EventTypeCustomerDeleted       = "CustomerDeleted"
	EventTypeCaseOpened            = "CaseOpened"
	EventTypeCaseResolved          = "CaseResolved"
	EventTypeCaseEscalated         = "CaseEscalated"
	EventTypeInteractionRecorded   = "InteractionRecorded"
)

// CustomerCreatedEvent is published when a new customer is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID      `json:"customer_id"`
	ExternalID string         `json:"external_id,omitempty"`
	Name       string         `json:"name"`
	Status     CustomerStatus `json:"status"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(c *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, AggregateTypeCustomer, c.ID),
		CustomerID:      c.ID,
		ExternalID:      c.ExternalID,
		Name:            c.Name,
		Status:          c.Status,
	}
}

// CustomerUpdatedEvent is published when a customer's profile is updated
type CustomerUpdatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Segment    string    `json:"segment,omitempty"`
}

// NewCustomerUpdatedEvent creates a new CustomerUpdatedEvent
func NewCustomerUpdatedEvent(c *Customer) *CustomerUpdatedEvent {
	return &CustomerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerUpdated, AggregateTypeCustomer, c.ID),
		CustomerID:      c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Segment:         c.Segment,
	}
}

// CustomerStatusChangedEvent is published when a customer's status changes
type CustomerStatusChangedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID      `json:"customer_id"`
	OldStatus  CustomerStatus `json:"old_status"`
	NewStatus  CustomerStatus `json:"new_status"`
}

// NewCustomerStatusChangedEvent creates a new CustomerStatusChangedEvent
func NewCustomerStatusChangedEvent(c *Customer, oldStatus, newStatus CustomerStatus) *CustomerStatusChangedEvent {
	return &CustomerStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerStatusChanged, AggregateTypeCustomer, c.ID),
		CustomerID:      c.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// CustomerSuspendedEvent is published when a customer is suspended
type CustomerSuspendedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID      `json:"customer_id"`
	OldStatus  CustomerStatus `json:"old_status"`
	Reason     string         `json:"reason,omitempty"`
}

// NewCustomerSuspendedEvent creates a new CustomerSuspendedEvent
func NewCustomerSuspendedEvent(c *Customer, oldStatus CustomerStatus, reason string) *CustomerSuspendedEvent {
	return &CustomerSuspendedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerSuspended, AggregateTypeCustomer, c.ID),
		CustomerID:      c.ID,
		OldStatus:       oldStatus,
		Reason:          reason,
	}
}

// CustomerDeletedEvent is published when a customer is deleted
type CustomerDeletedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
}

// NewCustomerDeletedEvent creates a new CustomerDeletedEvent
func NewCustomerDeletedEvent(c *Customer) *CustomerDeletedEvent {
	return &CustomerDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerDeleted, AggregateTypeCustomer, c.ID),
		CustomerID:      c.ID,
		Name:            c.Name,
	}
}

// CaseOpenedEvent is published when a new case is opened for a customer
type CaseOpenedEvent struct {
	shared.BaseDomainEvent
	CaseID     uuid.UUID    `json:"case_id"`
	CustomerID uuid.UUID    `json:"customer_id"`
	CaseNumber string       `json:"case_number"`
	Priority   CasePriority `json:"priority"`
}

// NewCaseOpenedEvent creates a new CaseOpenedEvent
func NewCaseOpenedEvent(cc *CustomerCase) *CaseOpenedEvent {
	return &CaseOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCaseOpened, AggregateTypeCase, cc.ID),
		CaseID:          cc.ID,
		CustomerID:      cc.CustomerID,
		CaseNumber:      cc.CaseNumber,
		Priority:        cc.Priority,
	}
}

// CaseResolvedEvent is published when a case is resolved
type CaseResolvedEvent struct {
	shared.BaseDomainEvent
	CaseID                uuid.UUID `json:"case_id"`
	CustomerID            uuid.UUID `json:"customer_id"`
	CaseNumber            string    `json:"case_number"`
	ResolutionTimeMinutes *int64    `json:"resolution_time_minutes,omitempty"`
	SatisfactionScore     *float64  `json:"satisfaction_score,omitempty"`
}

// NewCaseResolvedEvent creates a new CaseResolvedEvent
func NewCaseResolvedEvent(cc *CustomerCase) *CaseResolvedEvent {
	return &CaseResolvedEvent{
		BaseDomainEvent:       shared.NewBaseDomainEvent(EventTypeCaseResolved, AggregateTypeCase, cc.ID),
		CaseID:                cc.ID,
		CustomerID:            cc.CustomerID,
		CaseNumber:            cc.CaseNumber,
		ResolutionTimeMinutes: cc.ResolutionTimeMinutes,
		SatisfactionScore:     cc.SatisfactionScore,
	}
}

// CaseEscalatedEvent is published when a case is escalated
type CaseEscalatedEvent struct {
	shared.BaseDomainEvent
	CaseID     uuid.UUID    `json:"case_id"`
	CustomerID uuid.UUID    `json:"customer_id"`
	CaseNumber string       `json:"case_number"`
	Priority   CasePriority `json:"priority"`
}

// NewCaseEscalatedEvent creates a new CaseEscalatedEvent
func NewCaseEscalatedEvent(cc *CustomerCase) *CaseEscalatedEvent {
	return &CaseEscalatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCaseEscalated, AggregateTypeCase, cc.ID),
		CaseID:          cc.ID,
		CustomerID:      cc.CustomerID,
		CaseNumber:      cc.CaseNumber,
		Priority:        cc.Priority,
	}
}

// InteractionRecordedEvent is published when an interaction is recorded
type InteractionRecordedEvent struct {
	shared.BaseDomainEvent
	InteractionID uuid.UUID          `json:"interaction_id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	Channel       InteractionChannel `json:"channel"`
	Direction     Direction          `json:"direction"`
}

// NewInteractionRecordedEvent creates a new InteractionRecordedEvent
func NewInteractionRecordedEvent(i *Interaction) *InteractionRecordedEvent {
	return &InteractionRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInteractionRecorded, AggregateTypeInteraction, i.ID),
		InteractionID:   i.ID,
		CustomerID:      i.CustomerID,
		Channel:         i.Channel,
		Direction:       i.Direction,
	}
}
