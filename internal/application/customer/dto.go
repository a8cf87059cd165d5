package customer

import (
	"time"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/google/uuid"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	ExternalID           string `json:"external_id" binding:"max=100"`
	Name                 string `json:"name" binding:"required,min=1,max=255"`
	FormattedName        string `json:"formatted_name" binding:"max=255"`
	GivenName            string `json:"given_name" binding:"max=100"`
	FamilyName           string `json:"family_name" binding:"max=100"`
	PreferredGivenName   string `json:"preferred_given_name" binding:"max=100"`
	TradingName          string `json:"trading_name" binding:"max=255"`
	IdentificationType   string `json:"identification_type" binding:"omitempty,oneof=CPF CNPJ RG PASSPORT"`
	IdentificationNumber string `json:"identification_number" binding:"max=20"`
	Document             string `json:"document" binding:"max=20"` // legacy combined CPF/CNPJ
	Email                string `json:"email" binding:"omitempty,email,max=255"`
	Phone                string `json:"phone" binding:"max=20"`
	Segment              string `json:"segment" binding:"max=100"`
	PreferredChannel     string `json:"preferred_channel" binding:"max=50"`
	Status               string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE PROSPECT SUSPENDED"`
	RiskLevel            string `json:"risk_level" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	CreditScore          *int   `json:"credit_score" binding:"omitempty,min=0"`
	CreditRiskRating     *int   `json:"credit_risk_rating" binding:"omitempty,min=0"`
	BiometriaStatus      string `json:"biometria_status" binding:"max=50"`
	CodigoGrupo          string `json:"codigo_grupo" binding:"max=50"`
	NomeGrupo            string `json:"nome_grupo" binding:"max=100"`
	CreatedBy            string `json:"-"`
}

// UpdateCustomerRequest represents a partial customer update. Only non-nil
// fields are applied.
type UpdateCustomerRequest struct {
	Name                 *string `json:"name" binding:"omitempty,min=1,max=255"`
	FormattedName        *string `json:"formatted_name" binding:"omitempty,max=255"`
	GivenName            *string `json:"given_name" binding:"omitempty,max=100"`
	FamilyName           *string `json:"family_name" binding:"omitempty,max=100"`
	PreferredGivenName   *string `json:"preferred_given_name" binding:"omitempty,max=100"`
	TradingName          *string `json:"trading_name" binding:"omitempty,max=255"`
	IdentificationType   *string `json:"identification_type" binding:"omitempty,oneof=CPF CNPJ RG PASSPORT"`
	IdentificationNumber *string `json:"identification_number" binding:"omitempty,max=20"`
	Email                *string `json:"email" binding:"omitempty,email,max=255"`
	Phone                *string `json:"phone" binding:"omitempty,max=20"`
	Segment              *string `json:"segment" binding:"omitempty,max=100"`
	PreferredChannel     *string `json:"preferred_channel" binding:"omitempty,max=50"`
	RiskLevel            *string `json:"risk_level" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	CreditScore          *int    `json:"credit_score" binding:"omitempty,min=0"`
	CreditRiskRating     *int    `json:"credit_risk_rating" binding:"omitempty,min=0"`
	BiometriaStatus      *string `json:"biometria_status" binding:"omitempty,max=50"`
	CodigoGrupo          *string `json:"codigo_grupo" binding:"omitempty,max=50"`
	NomeGrupo            *string `json:"nome_grupo" binding:"omitempty,max=100"`
}

// SuspendCustomerRequest carries the suspension reason
type SuspendCustomerRequest struct {
	Reason string `json:"reason" binding:"max=255"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID                   uuid.UUID  `json:"id"`
	PartyRoleID          uuid.UUID  `json:"party_role_id"`
	ExternalID           string     `json:"external_id,omitempty"`
	Name                 string     `json:"name"`
	FormattedName        string     `json:"formatted_name,omitempty"`
	GivenName            string     `json:"given_name,omitempty"`
	FamilyName           string     `json:"family_name,omitempty"`
	PreferredGivenName   string     `json:"preferred_given_name,omitempty"`
	TradingName          string     `json:"trading_name,omitempty"`
	IdentificationType   string     `json:"identification_type,omitempty"`
	IdentificationNumber string     `json:"identification_number,omitempty"`
	Email                string     `json:"email,omitempty"`
	Phone                string     `json:"phone,omitempty"`
	Segment              string     `json:"segment,omitempty"`
	PreferredChannel     string     `json:"preferred_channel,omitempty"`
	RiskLevel            string     `json:"risk_level,omitempty"`
	Status               string     `json:"status"`
	PartyType            string     `json:"party_type,omitempty"`
	CreditScore          *int       `json:"credit_score,omitempty"`
	CreditRiskRating     *int       `json:"credit_risk_rating,omitempty"`
	BiometriaStatus      string     `json:"biometria_status,omitempty"`
	BiometriaMessage     string     `json:"biometria_message"`
	CodigoGrupo          string     `json:"codigo_grupo,omitempty"`
	NomeGrupo            string     `json:"nome_grupo,omitempty"`
	LastInteractionAt    *time.Time `json:"last_interaction_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	Version              int        `json:"version"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE PROSPECT SUSPENDED"`
	Segment  string `form:"segment"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                   c.ID,
		PartyRoleID:          c.PartyRoleID,
		ExternalID:           c.ExternalID,
		Name:                 c.Name,
		FormattedName:        c.FormattedName,
		GivenName:            c.GivenName,
		FamilyName:           c.FamilyName,
		PreferredGivenName:   c.PreferredGivenName,
		TradingName:          c.TradingName,
		IdentificationType:   c.IdentificationType,
		IdentificationNumber: c.IdentificationNumber,
		Email:                c.Email,
		Phone:                c.Phone,
		Segment:              c.Segment,
		PreferredChannel:     c.PreferredChannel,
		RiskLevel:            string(c.RiskLevel),
		Status:               string(c.Status),
		PartyType:            c.PartyType(),
		CreditScore:          c.CreditScore,
		CreditRiskRating:     c.CreditRiskRating,
		BiometriaStatus:      c.BiometriaStatus,
		BiometriaMessage:     c.BiometriaMessage(),
		CodigoGrupo:          c.CodigoGrupo,
		NomeGrupo:            c.NomeGrupo,
		LastInteractionAt:    c.LastInteractionAt,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
		Version:              c.Version,
	}
}

// =============================================================================
// Case DTOs
// =============================================================================

// CreateCaseRequest represents a request to open a case
type CreateCaseRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Category    string `json:"category" binding:"max=100"`
	Subcategory string `json:"subcategory" binding:"max=100"`
	AssignedTo  string `json:"assigned_to" binding:"max=100"`
}

// UpdateCaseRequest represents a full case update
type UpdateCaseRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required,oneof=OPEN IN_PROGRESS WAITING_CUSTOMER RESOLVED CLOSED ESCALATED"`
	Priority    string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Category    string `json:"category" binding:"max=100"`
	Subcategory string `json:"subcategory" binding:"max=100"`
	AssignedTo  string `json:"assigned_to" binding:"max=100"`
}

// ResolveCaseRequest carries the resolution outcome
type ResolveCaseRequest struct {
	ResolutionNotes   string   `json:"resolution_notes"`
	SatisfactionScore *float64 `json:"satisfaction_score" binding:"omitempty,min=0,max=5"`
}

// CaseResponse represents a case in API responses
type CaseResponse struct {
	ID                    uuid.UUID  `json:"id"`
	CaseNumber            string     `json:"case_number"`
	CustomerID            uuid.UUID  `json:"customer_id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description,omitempty"`
	Status                string     `json:"status"`
	Priority              string     `json:"priority"`
	Category              string     `json:"category,omitempty"`
	Subcategory           string     `json:"subcategory,omitempty"`
	AssignedTo            string     `json:"assigned_to,omitempty"`
	ResolvedAt            *time.Time `json:"resolved_at,omitempty"`
	ResolutionTimeMinutes *int64     `json:"resolution_time_minutes,omitempty"`
	ResolutionNotes       string     `json:"resolution_notes,omitempty"`
	SatisfactionScore     *float64   `json:"satisfaction_score,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// CaseListFilter represents filter options for case lists
type CaseListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS WAITING_CUSTOMER RESOLVED CLOSED ESCALATED"`
	Priority string `form:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCaseResponse converts a domain CustomerCase to CaseResponse
func ToCaseResponse(cc *customer.CustomerCase) CaseResponse {
	return CaseResponse{
		ID:                    cc.ID,
		CaseNumber:            cc.CaseNumber,
		CustomerID:            cc.CustomerID,
		Title:                 cc.Title,
		Description:           cc.Description,
		Status:                string(cc.Status),
		Priority:              string(cc.Priority),
		Category:              cc.Category,
		Subcategory:           cc.Subcategory,
		AssignedTo:            cc.AssignedTo,
		ResolvedAt:            cc.ResolvedAt,
		ResolutionTimeMinutes: cc.ResolutionTimeMinutes,
		ResolutionNotes:       cc.ResolutionNotes,
		SatisfactionScore:     cc.SatisfactionScore,
		CreatedAt:             cc.CreatedAt,
		UpdatedAt:             cc.UpdatedAt,
	}
}

// =============================================================================
// Interaction DTOs
// =============================================================================

// RecordInteractionRequest represents a request to record an interaction
type RecordInteractionRequest struct {
	CaseID          *uuid.UUID `json:"case_id"`
	Channel         string     `json:"channel" binding:"required,oneof=CHAT EMAIL PHONE SOCIAL_MEDIA WHATSAPP SMS"`
	Direction       string     `json:"direction" binding:"required,oneof=INBOUND OUTBOUND"`
	AgentID         string     `json:"agent_id" binding:"required,max=100"`
	AgentName       string     `json:"agent_name" binding:"required,max=255"`
	Message         string     `json:"message"`
	DurationSeconds *int       `json:"duration_seconds" binding:"omitempty,min=0"`
	Sentiment       string     `json:"sentiment" binding:"max=50"`
	SentimentScore  *float64   `json:"sentiment_score"`
}

// InteractionResponse represents an interaction in API responses
type InteractionResponse struct {
	ID              uuid.UUID  `json:"id"`
	CustomerID      uuid.UUID  `json:"customer_id"`
	CaseID          *uuid.UUID `json:"case_id,omitempty"`
	Channel         string     `json:"channel"`
	Direction       string     `json:"direction"`
	AgentID         string     `json:"agent_id"`
	AgentName       string     `json:"agent_name"`
	Message         string     `json:"message,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
	Sentiment       string     `json:"sentiment,omitempty"`
	SentimentScore  *float64   `json:"sentiment_score,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToInteractionResponse converts a domain Interaction to InteractionResponse
func ToInteractionResponse(i *customer.Interaction) InteractionResponse {
	return InteractionResponse{
		ID:              i.ID,
		CustomerID:      i.CustomerID,
		CaseID:          i.CaseID,
		Channel:         string(i.Channel),
		Direction:       string(i.Direction),
		AgentID:         i.AgentID,
		AgentName:       i.AgentName,
		Message:         i.Message,
		DurationSeconds: i.DurationSeconds,
		Sentiment:       i.Sentiment,
		SentimentScore:  i.SentimentScore,
		CreatedAt:       i.CreatedAt,
	}
}

// =============================================================================
// 360 view DTOs
// =============================================================================

// View360Response is the aggregated single-customer view
type View360Response struct {
	Customer              CustomerResponse      `json:"customer"`
	OpenCases             []CaseResponse        `json:"open_cases"`
	RecentInteractions    []InteractionResponse `json:"recent_interactions"`
	Statistics            customer.Statistics   `json:"statistics"`
	RiskLevel             string                `json:"risk_level"`
	NextRecommendedAction string                `json:"next_recommended_action"`
}
