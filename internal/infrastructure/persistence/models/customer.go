package models

import (
	"time"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/google/uuid"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	AggregateModel
	PartyRoleID          uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex"`
	ExternalID           string                  `gorm:"type:varchar(100);index"`
	Name                 string                  `gorm:"type:varchar(255);not null"`
	FormattedName        string                  `gorm:"type:varchar(255)"`
	GivenName            string                  `gorm:"type:varchar(100)"`
	FamilyName           string                  `gorm:"type:varchar(100)"`
	PreferredGivenName   string                  `gorm:"type:varchar(100)"`
	TradingName          string                  `gorm:"type:varchar(255)"`
	IdentificationType   string                  `gorm:"type:varchar(20)"`
	IdentificationNumber string                  `gorm:"type:varchar(20);index"`
	Email                string                  `gorm:"type:varchar(255);index"`
	Phone                string                  `gorm:"type:varchar(20)"`
	Segment              string                  `gorm:"type:varchar(100);index"`
	PreferredChannel     string                  `gorm:"type:varchar(50)"`
	RiskLevel            customer.RiskLevel      `gorm:"type:varchar(50)"`
	Status               customer.CustomerStatus `gorm:"type:varchar(50);not null;default:'ACTIVE';index"`
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
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *customer.Customer {
	return &customer.Customer{
		BaseAggregateRoot:    m.aggregateRoot(),
		PartyRoleID:          m.PartyRoleID,
		ExternalID:           m.ExternalID,
		Name:                 m.Name,
		FormattedName:        m.FormattedName,
		GivenName:            m.GivenName,
		FamilyName:           m.FamilyName,
		PreferredGivenName:   m.PreferredGivenName,
		TradingName:          m.TradingName,
		IdentificationType:   m.IdentificationType,
		IdentificationNumber: m.IdentificationNumber,
		Email:                m.Email,
		Phone:                m.Phone,
		Segment:              m.Segment,
		PreferredChannel:     m.PreferredChannel,
		RiskLevel:            m.RiskLevel,
		Status:               m.Status,
		CreditScore:          m.CreditScore,
		CreditRiskRating:     m.CreditRiskRating,
		BiometriaStatus:      m.BiometriaStatus,
		CodigoGrupo:          m.CodigoGrupo,
		NomeGrupo:            m.NomeGrupo,
		LastInteractionAt:    m.LastInteractionAt,
		CreatedBy:            m.CreatedBy,
		UpdatedBy:            m.UpdatedBy,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.PartyRoleID = c.PartyRoleID
	m.ExternalID = c.ExternalID
	m.Name = c.Name
	m.FormattedName = c.FormattedName
	m.GivenName = c.GivenName
	m.FamilyName = c.FamilyName
	m.PreferredGivenName = c.PreferredGivenName
	m.TradingName = c.TradingName
	m.IdentificationType = c.IdentificationType
	m.IdentificationNumber = c.IdentificationNumber
	m.Email = c.Email
	m.Phone = c.Phone
	m.Segment = c.Segment
	m.PreferredChannel = c.PreferredChannel
	m.RiskLevel = c.RiskLevel
	m.Status = c.Status
	m.CreditScore = c.CreditScore
	m.CreditRiskRating = c.CreditRiskRating
	m.BiometriaStatus = c.BiometriaStatus
	m.CodigoGrupo = c.CodigoGrupo
	m.NomeGrupo = c.NomeGrupo
	m.LastInteractionAt = c.LastInteractionAt
	m.CreatedBy = c.CreatedBy
	m.UpdatedBy = c.UpdatedBy
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// CustomerCaseModel is the persistence model for the CustomerCase domain entity.
type CustomerCaseModel struct {
	AggregateModel
	CaseNumber            string                `gorm:"type:varchar(60);not null;uniqueIndex"`
	CustomerID            uuid.UUID             `gorm:"type:uuid;not null;index"`
	Title                 string                `gorm:"type:varchar(255);not null"`
	Description           string                `gorm:"type:text"`
	Status                customer.CaseStatus   `gorm:"type:varchar(30);not null;default:'OPEN';index"`
	Priority              customer.CasePriority `gorm:"type:varchar(20);not null;default:'MEDIUM';index"`
	Category              string                `gorm:"type:varchar(100)"`
	Subcategory           string                `gorm:"type:varchar(100)"`
	AssignedTo            string                `gorm:"type:varchar(100)"`
	ResolvedAt            *time.Time
	ResolutionTimeMinutes *int64
	ResolutionNotes       string `gorm:"type:text"`
	SatisfactionScore     *float64
}

// TableName returns the table name for GORM
func (CustomerCaseModel) TableName() string {
	return "customer_cases"
}

// ToDomain converts the persistence model to a domain CustomerCase entity.
func (m *CustomerCaseModel) ToDomain() *customer.CustomerCase {
	return &customer.CustomerCase{
		BaseAggregateRoot:     m.aggregateRoot(),
		CaseNumber:            m.CaseNumber,
		CustomerID:            m.CustomerID,
		Title:                 m.Title,
		Description:           m.Description,
		Status:                m.Status,
		Priority:              m.Priority,
		Category:              m.Category,
		Subcategory:           m.Subcategory,
		AssignedTo:            m.AssignedTo,
		ResolvedAt:            m.ResolvedAt,
		ResolutionTimeMinutes: m.ResolutionTimeMinutes,
		ResolutionNotes:       m.ResolutionNotes,
		SatisfactionScore:     m.SatisfactionScore,
	}
}

// FromDomain populates the persistence model from a domain CustomerCase entity.
func (m *CustomerCaseModel) FromDomain(cc *customer.CustomerCase) {
	m.FromDomainAggregateRoot(cc.BaseAggregateRoot)
	m.CaseNumber = cc.CaseNumber
	m.CustomerID = cc.CustomerID
	m.Title = cc.Title
	m.Description = cc.Description
	m.Status = cc.Status
	m.Priority = cc.Priority
	m.Category = cc.Category
	m.Subcategory = cc.Subcategory
	m.AssignedTo = cc.AssignedTo
	m.ResolvedAt = cc.ResolvedAt
	m.ResolutionTimeMinutes = cc.ResolutionTimeMinutes
	m.ResolutionNotes = cc.ResolutionNotes
	m.SatisfactionScore = cc.SatisfactionScore
}

// CustomerCaseModelFromDomain creates a new persistence model from a domain CustomerCase entity.
func CustomerCaseModelFromDomain(cc *customer.CustomerCase) *CustomerCaseModel {
	m := &CustomerCaseModel{}
	m.FromDomain(cc)
	return m
}

// InteractionModel is the persistence model for the Interaction domain entity.
type InteractionModel struct {
	AggregateModel
	CustomerID      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	CaseID          *uuid.UUID                  `gorm:"type:uuid;index"`
	Channel         customer.InteractionChannel `gorm:"type:varchar(30);not null"`
	Direction       customer.Direction          `gorm:"type:varchar(20);not null"`
	AgentID         string                      `gorm:"type:varchar(100);not null"`
	AgentName       string                      `gorm:"type:varchar(255);not null"`
	Message         string                      `gorm:"type:text"`
	DurationSeconds *int
	Sentiment       string `gorm:"type:varchar(50)"`
	SentimentScore  *float64
	Notes           string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InteractionModel) TableName() string {
	return "interactions"
}

// ToDomain converts the persistence model to a domain Interaction entity.
func (m *InteractionModel) ToDomain() *customer.Interaction {
	return &customer.Interaction{
		BaseAggregateRoot: m.aggregateRoot(),
		CustomerID:        m.CustomerID,
		CaseID:            m.CaseID,
		Channel:           m.Channel,
		Direction:         m.Direction,
		AgentID:           m.AgentID,
		AgentName:         m.AgentName,
		Message:           m.Message,
		DurationSeconds:   m.DurationSeconds,
		Sentiment:         m.Sentiment,
		SentimentScore:    m.SentimentScore,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Interaction entity.
func (m *InteractionModel) FromDomain(i *customer.Interaction) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.CustomerID = i.CustomerID
	m.CaseID = i.CaseID
	m.Channel = i.Channel
	m.Direction = i.Direction
	m.AgentID = i.AgentID
	m.AgentName = i.AgentName
	m.Message = i.Message
	m.DurationSeconds = i.DurationSeconds
	m.Sentiment = i.Sentiment
	m.SentimentScore = i.SentimentScore
	m.Notes = i.Notes
}

// InteractionModelFromDomain creates a new persistence model from a domain Interaction entity.
func InteractionModelFromDomain(i *customer.Interaction) *InteractionModel {
	m := &InteractionModel{}
	m.FromDomain(i)
	return m
}
