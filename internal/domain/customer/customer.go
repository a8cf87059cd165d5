package customer

import (
	"regexp"
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerStatus represents the lifecycle status of a customer
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "ACTIVE"
	CustomerStatusInactive  CustomerStatus = "INACTIVE"
	CustomerStatusProspect  CustomerStatus = "PROSPECT"
	CustomerStatusSuspended CustomerStatus = "SUSPENDED"
)

// RiskLevel represents the customer's relationship risk classification
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// Party type discriminator values used by the external party-role contract
const (
	PartyTypeIndividual   = "Individual"
	PartyTypeOrganization = "Organization"
)

// Identification document types
const (
	IdentificationTypeCPF  = "CPF"
	IdentificationTypeCNPJ = "CNPJ"
)

// BiometriaStatusColetada is the only biometric status that counts as verified
const BiometriaStatusColetada = "COLETADA"

var nonDigits = regexp.MustCompile(`[^0-9]`)

// Customer is the aggregate root for the customer context.
// It carries both the normalized party identity fields and the business
// attributes exposed as characteristics on the external party-role contract.
type Customer struct {
	shared.BaseAggregateRoot
	PartyRoleID          uuid.UUID      `gorm:"type:uuid;not null"`
	ExternalID           string         `gorm:"type:varchar(100);index"`
	Name                 string         `gorm:"type:varchar(255);not null"`
	FormattedName        string         `gorm:"type:varchar(255)"`
	GivenName            string         `gorm:"type:varchar(100)"`
	FamilyName           string         `gorm:"type:varchar(100)"`
	PreferredGivenName   string         `gorm:"type:varchar(100)"`
	TradingName          string         `gorm:"type:varchar(255)"`
	IdentificationType   string         `gorm:"type:varchar(20)"`
	IdentificationNumber string         `gorm:"type:varchar(20)"`
	Email                string         `gorm:"type:varchar(255);index"`
	Phone                string         `gorm:"type:varchar(20)"`
	Segment              string         `gorm:"type:varchar(100);index"`
	PreferredChannel     string         `gorm:"type:varchar(50)"`
	RiskLevel            RiskLevel      `gorm:"type:varchar(50)"`
	Status               CustomerStatus `gorm:"type:varchar(50);not null;default:'ACTIVE'"`
	CreditScore          *int
	CreditRiskRating     *int
	BiometriaStatus      string     `gorm:"type:varchar(50)"`
	CodigoGrupo          string     `gorm:"type:varchar(50)"`
	NomeGrupo            string     `gorm:"type:varchar(100)"`
	LastInteractionAt    *time.Time `gorm:"index"`
	CreatedBy            string     `gorm:"type:varchar(100)"`
	UpdatedBy            string     `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomerParams carries the optional creation attributes for NewCustomer.
// Only Name is required; everything else defaults.
type NewCustomerParams struct {
	ExternalID           string
	FormattedName        string
	GivenName            string
	FamilyName           string
	PreferredGivenName   string
	TradingName          string
	IdentificationType   string
	IdentificationNumber string
	// LegacyDocument is the combined CPF/CNPJ field from upstream systems.
	// When set and no identification number is given, it is normalized into
	// IdentificationType/IdentificationNumber.
	LegacyDocument   string
	Email            string
	Phone            string
	Segment          string
	PreferredChannel string
	Status           CustomerStatus
	RiskLevel        RiskLevel
	CreditScore      *int
	CreditRiskRating *int
	BiometriaStatus  string
	CodigoGrupo      string
	NomeGrupo        string
	CreatedBy        string
}

// NewCustomer creates a customer applying the creation defaults explicitly:
// generated ids, ACTIVE status when none is given, and the legacy combined
// document migrated into identification type/number.
func NewCustomer(name string, params NewCustomerParams) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if params.Email != "" {
		if err := validateEmail(params.Email); err != nil {
			return nil, err
		}
	}

	status := params.Status
	if status == "" {
		status = CustomerStatusActive
	}
	if err := validateCustomerStatus(status); err != nil {
		return nil, err
	}

	if params.RiskLevel != "" {
		if err := validateRiskLevel(params.RiskLevel); err != nil {
			return nil, err
		}
	}

	idType := params.IdentificationType
	idNumber := params.IdentificationNumber
	if params.LegacyDocument != "" && idNumber == "" {
		idNumber = nonDigits.ReplaceAllString(params.LegacyDocument, "")
		if len(idNumber) == 11 {
			idType = IdentificationTypeCPF
		} else {
			idType = IdentificationTypeCNPJ
		}
	}

	c := &Customer{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		PartyRoleID:          uuid.New(),
		ExternalID:           params.ExternalID,
		Name:                 name,
		FormattedName:        params.FormattedName,
		GivenName:            params.GivenName,
		FamilyName:           params.FamilyName,
		PreferredGivenName:   params.PreferredGivenName,
		TradingName:          params.TradingName,
		IdentificationType:   idType,
		IdentificationNumber: idNumber,
		Email:                params.Email,
		Phone:                params.Phone,
		Segment:              params.Segment,
		PreferredChannel:     params.PreferredChannel,
		Status:               status,
		RiskLevel:            params.RiskLevel,
		CreditScore:          params.CreditScore,
		CreditRiskRating:     params.CreditRiskRating,
		BiometriaStatus:      params.BiometriaStatus,
		CodigoGrupo:          params.CodigoGrupo,
		NomeGrupo:            params.NomeGrupo,
		CreatedBy:            params.CreatedBy,
	}

	c.AddDomainEvent(NewCustomerCreatedEvent(c))

	return c, nil
}

// UpdateName updates the customer's display name
func (c *Customer) UpdateName(name string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = name
	c.touch()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// SetPersonNames sets the individual name breakdown
func (c *Customer) SetPersonNames(formatted, given, family, preferred string) {
	c.FormattedName = formatted
	c.GivenName = given
	c.FamilyName = family
	c.PreferredGivenName = preferred
	c.touch()
}

// SetTradingName sets the organization trading name
func (c *Customer) SetTradingName(tradingName string) {
	c.TradingName = tradingName
	c.touch()
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(email, phone string) error {
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	if phone != "" && len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 20 characters")
	}

	c.Email = email
	c.Phone = phone
	c.touch()

	return nil
}

// SetIdentification sets the identification document.
// An empty type is derived from the number length (11 digits means CPF).
func (c *Customer) SetIdentification(idType, idNumber string) error {
	if idNumber != "" && len(idNumber) > 20 {
		return shared.NewDomainError("INVALID_IDENTIFICATION", "Identification number cannot exceed 20 characters")
	}
	if idType == "" && idNumber != "" {
		if len(idNumber) == 11 {
			idType = IdentificationTypeCPF
		} else {
			idType = IdentificationTypeCNPJ
		}
	}

	c.IdentificationType = idType
	c.IdentificationNumber = idNumber
	c.touch()

	return nil
}

// SetSegment sets the commercial segment
func (c *Customer) SetSegment(segment string) {
	c.Segment = segment
	c.touch()
}

// SetPreferredChannel sets the preferred contact channel
func (c *Customer) SetPreferredChannel(channel string) {
	c.PreferredChannel = channel
	c.touch()
}

// SetRiskLevel sets the relationship risk classification
func (c *Customer) SetRiskLevel(level RiskLevel) error {
	if err := validateRiskLevel(level); err != nil {
		return err
	}

	c.RiskLevel = level
	c.touch()

	return nil
}

// SetCreditProfile sets the credit score and risk rating
func (c *Customer) SetCreditProfile(score, rating *int) error {
	if score != nil && *score < 0 {
		return shared.NewDomainError("INVALID_CREDIT_SCORE", "Credit score cannot be negative")
	}
	if rating != nil && *rating < 0 {
		return shared.NewDomainError("INVALID_CREDIT_RATING", "Credit risk rating cannot be negative")
	}

	c.CreditScore = score
	c.CreditRiskRating = rating
	c.touch()

	return nil
}

// SetBiometriaStatus sets the biometric collection status
func (c *Customer) SetBiometriaStatus(status string) {
	c.BiometriaStatus = status
	c.touch()
}

// SetGroup sets the corporate group hierarchy attributes
func (c *Customer) SetGroup(code, name string) {
	c.CodigoGrupo = code
	c.NomeGrupo = name
	c.touch()
}

// Activate activates the customer
func (c *Customer) Activate(actor string) error {
	if c.Status == CustomerStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Customer is already active")
	}

	oldStatus := c.Status
	c.Status = CustomerStatusActive
	c.UpdatedBy = actor
	c.touch()

	c.AddDomainEvent(NewCustomerStatusChangedEvent(c, oldStatus, CustomerStatusActive))

	return nil
}

// Deactivate deactivates the customer
func (c *Customer) Deactivate(actor string) error {
	if c.Status == CustomerStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Customer is already inactive")
	}

	oldStatus := c.Status
	c.Status = CustomerStatusInactive
	c.UpdatedBy = actor
	c.touch()

	c.AddDomainEvent(NewCustomerStatusChangedEvent(c, oldStatus, CustomerStatusInactive))

	return nil
}

// Suspend suspends the customer. Suspension forces the risk level to HIGH.
func (c *Customer) Suspend(reason, actor string) error {
	if c.Status == CustomerStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Customer is already suspended")
	}

	oldStatus := c.Status
	c.Status = CustomerStatusSuspended
	c.RiskLevel = RiskLevelHigh
	c.UpdatedBy = actor
	c.touch()

	c.AddDomainEvent(NewCustomerSuspendedEvent(c, oldStatus, reason))

	return nil
}

// RecordInteraction bumps the last-interaction timestamp if newer
func (c *Customer) RecordInteraction(at time.Time) {
	if c.LastInteractionAt == nil || at.After(*c.LastInteractionAt) {
		c.LastInteractionAt = &at
		c.touch()
	}
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// IsSuspended returns true if the customer is suspended
func (c *Customer) IsSuspended() bool {
	return c.Status == CustomerStatusSuspended
}

// IsIndividual returns true if the customer is a natural person
func (c *Customer) IsIndividual() bool {
	return c.IdentificationType == IdentificationTypeCPF || c.PartyType() == PartyTypeIndividual
}

// IsOrganization returns true if the customer is a legal entity
func (c *Customer) IsOrganization() bool {
	return c.IdentificationType == IdentificationTypeCNPJ || c.PartyType() == PartyTypeOrganization
}

// PartyType derives the party discriminator from the identification fields.
// An 11-digit identification number means an individual (CPF holder).
// Returns "" when nothing allows a derivation.
func (c *Customer) PartyType() string {
	if c.IdentificationType != "" {
		if c.IdentificationType == IdentificationTypeCPF {
			return PartyTypeIndividual
		}
		return PartyTypeOrganization
	}
	if c.IdentificationNumber != "" {
		if len(c.IdentificationNumber) == 11 {
			return PartyTypeIndividual
		}
		return PartyTypeOrganization
	}
	return ""
}

// BiometriaMessage returns the agent-facing biometric verification message
func (c *Customer) BiometriaMessage() string {
	if c.BiometriaStatus == BiometriaStatusColetada {
		return "Biometrado"
	}
	return "Valide o token"
}

func (c *Customer) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Validation functions

func validateCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 255 characters")
	}
	return nil
}

func validateCustomerStatus(status CustomerStatus) error {
	switch status {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusProspect, CustomerStatusSuspended:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Customer status must be ACTIVE, INACTIVE, PROSPECT or SUSPENDED")
	}
}

func validateRiskLevel(level RiskLevel) error {
	switch level {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return nil
	default:
		return shared.NewDomainError("INVALID_RISK_LEVEL", "Risk level must be LOW, MEDIUM or HIGH")
	}
}

func validateEmail(email string) error {
	if len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 255 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
