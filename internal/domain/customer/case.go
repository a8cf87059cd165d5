package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CaseStatus represents the lifecycle status of a customer case
type CaseStatus string

const (
	CaseStatusOpen            CaseStatus = "OPEN"
	CaseStatusInProgress      CaseStatus = "IN_PROGRESS"
	CaseStatusWaitingCustomer CaseStatus = "WAITING_CUSTOMER"
	CaseStatusResolved        CaseStatus = "RESOLVED"
	CaseStatusClosed          CaseStatus = "CLOSED"
	CaseStatusEscalated       CaseStatus = "ESCALATED"
)

// OpenCaseStatuses is the broad "still being worked" set used for open-case
// listings. Statistics count only CaseStatusOpen; the two definitions are
// intentionally distinct.
var OpenCaseStatuses = []CaseStatus{CaseStatusOpen, CaseStatusInProgress, CaseStatusWaitingCustomer}

// CasePriority represents the urgency of a case
type CasePriority string

const (
	CasePriorityLow      CasePriority = "LOW"
	CasePriorityMedium   CasePriority = "MEDIUM"
	CasePriorityHigh     CasePriority = "HIGH"
	CasePriorityCritical CasePriority = "CRITICAL"
)

// CustomerCase is a support case opened for a customer
type CustomerCase struct {
	shared.BaseAggregateRoot
	CaseNumber            string       `gorm:"type:varchar(60);not null;uniqueIndex"`
	CustomerID            uuid.UUID    `gorm:"type:uuid;not null;index"`
	Title                 string       `gorm:"type:varchar(255);not null"`
	Description           string       `gorm:"type:text"`
	Status                CaseStatus   `gorm:"type:varchar(30);not null;default:'OPEN';index"`
	Priority              CasePriority `gorm:"type:varchar(20);not null;default:'MEDIUM';index"`
	Category              string       `gorm:"type:varchar(100)"`
	Subcategory           string       `gorm:"type:varchar(100)"`
	AssignedTo            string       `gorm:"type:varchar(100)"`
	ResolvedAt            *time.Time
	ResolutionTimeMinutes *int64
	ResolutionNotes       string   `gorm:"type:text"`
	SatisfactionScore     *float64 // 0 to 5
}

// TableName returns the table name for GORM
func (CustomerCase) TableName() string {
	return "customer_cases"
}

// NewCustomerCase opens a case for a customer. Status defaults to OPEN and
// priority to MEDIUM; the case number is generated.
func NewCustomerCase(customerID uuid.UUID, title, description string, priority CasePriority) (*CustomerCase, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Case title cannot be empty")
	}
	if len(title) > 255 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Case title cannot exceed 255 characters")
	}
	if priority == "" {
		priority = CasePriorityMedium
	}
	if err := validateCasePriority(priority); err != nil {
		return nil, err
	}

	cc := &CustomerCase{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CaseNumber:        generateCaseNumber(),
		CustomerID:        customerID,
		Title:             title,
		Description:       description,
		Status:            CaseStatusOpen,
		Priority:          priority,
	}

	cc.AddDomainEvent(NewCaseOpenedEvent(cc))

	return cc, nil
}

// Update replaces the case's editable attributes
func (cc *CustomerCase) Update(title, description string, status CaseStatus, priority CasePriority, category, subcategory, assignedTo string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Case title cannot be empty")
	}
	if err := validateCaseStatus(status); err != nil {
		return err
	}
	if err := validateCasePriority(priority); err != nil {
		return err
	}

	cc.Title = title
	cc.Description = description
	cc.Status = status
	cc.Priority = priority
	cc.Category = category
	cc.Subcategory = subcategory
	cc.AssignedTo = assignedTo
	cc.touch()

	return nil
}

// Assign assigns the case to an agent and moves it to IN_PROGRESS when still open
func (cc *CustomerCase) Assign(agent string) error {
	if cc.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Cannot assign a resolved or closed case")
	}

	cc.AssignedTo = agent
	if cc.Status == CaseStatusOpen {
		cc.Status = CaseStatusInProgress
	}
	cc.touch()

	return nil
}

// Escalate marks the case escalated and bumps its priority one step
func (cc *CustomerCase) Escalate() error {
	if cc.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Cannot escalate a resolved or closed case")
	}

	cc.Status = CaseStatusEscalated
	switch cc.Priority {
	case CasePriorityLow:
		cc.Priority = CasePriorityMedium
	case CasePriorityMedium:
		cc.Priority = CasePriorityHigh
	case CasePriorityHigh:
		cc.Priority = CasePriorityCritical
	}
	cc.touch()

	cc.AddDomainEvent(NewCaseEscalatedEvent(cc))

	return nil
}

// Resolve resolves the case, deriving the resolution time from the creation
// timestamp. The satisfaction score is optional and must fall in [0, 5].
func (cc *CustomerCase) Resolve(notes string, satisfactionScore *float64, now time.Time) error {
	if cc.Status == CaseStatusResolved || cc.Status == CaseStatusClosed {
		return shared.NewDomainError("INVALID_STATE", "Case is already resolved or closed")
	}
	if satisfactionScore != nil && (*satisfactionScore < 0 || *satisfactionScore > 5) {
		return shared.NewDomainError("INVALID_SATISFACTION_SCORE", "Satisfaction score must be between 0 and 5")
	}

	cc.Status = CaseStatusResolved
	cc.ResolutionNotes = notes
	cc.SatisfactionScore = satisfactionScore
	cc.ResolvedAt = &now

	if !cc.CreatedAt.IsZero() {
		minutes := int64(now.Sub(cc.CreatedAt).Minutes())
		cc.ResolutionTimeMinutes = &minutes
	}
	cc.touch()

	cc.AddDomainEvent(NewCaseResolvedEvent(cc))

	return nil
}

// Close closes a resolved case
func (cc *CustomerCase) Close() error {
	if cc.Status != CaseStatusResolved {
		return shared.NewDomainError("INVALID_STATE", "Only resolved cases can be closed")
	}

	cc.Status = CaseStatusClosed
	cc.touch()

	return nil
}

// IsOpen returns true if the case is still being worked, using the broad
// open-status set
func (cc *CustomerCase) IsOpen() bool {
	for _, s := range OpenCaseStatuses {
		if cc.Status == s {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the case reached a final status
func (cc *CustomerCase) IsTerminal() bool {
	return cc.Status == CaseStatusResolved || cc.Status == CaseStatusClosed
}

func (cc *CustomerCase) touch() {
	cc.UpdatedAt = time.Now()
	cc.IncrementVersion()
}

func generateCaseNumber() string {
	return fmt.Sprintf("CASE-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func validateCaseStatus(status CaseStatus) error {
	switch status {
	case CaseStatusOpen, CaseStatusInProgress, CaseStatusWaitingCustomer,
		CaseStatusResolved, CaseStatusClosed, CaseStatusEscalated:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid case status")
	}
}

func validateCasePriority(priority CasePriority) error {
	switch priority {
	case CasePriorityLow, CasePriorityMedium, CasePriorityHigh, CasePriorityCritical:
		return nil
	default:
		return shared.NewDomainError("INVALID_PRIORITY", "Invalid case priority")
	}
}
