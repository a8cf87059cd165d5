package customer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ViewIdentification is the identity snippet of the consolidated view
type ViewIdentification struct {
	CustomerID uuid.UUID `json:"customerId"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Segment    string    `json:"segment,omitempty"`
	Status     string    `json:"status,omitempty"`
}

// ProductSummary is a contracted product row inside the consolidated view
type ProductSummary struct {
	ProductID    string           `json:"productId,omitempty"`
	ProductName  string           `json:"productName,omitempty"`
	ProductCode  string           `json:"productCode,omitempty"`
	ContractDate string           `json:"contractDate,omitempty"`
	ExpiryDate   string           `json:"expiryDate,omitempty"`
	Status       string           `json:"status,omitempty"`
	MonthlyValue *decimal.Decimal `json:"monthlyValue,omitempty"`
}

// FinancialSummary aggregates the customer's billing position
type FinancialSummary struct {
	LifetimeValue      *decimal.Decimal `json:"lifetimeValue,omitempty"`
	TotalPurchases     *int             `json:"totalPurchases,omitempty"`
	TotalRevenue       *decimal.Decimal `json:"totalRevenue,omitempty"`
	TotalPaid          *decimal.Decimal `json:"totalPaid,omitempty"`
	TotalPending       *decimal.Decimal `json:"totalPending,omitempty"`
	AverageTicketValue *decimal.Decimal `json:"averageTicketValue,omitempty"`
	LastPaymentDate    string           `json:"lastPaymentDate,omitempty"`
	PaymentStatus      string           `json:"paymentStatus,omitempty"`
	CreditLimit        *decimal.Decimal `json:"creditLimit,omitempty"`
	CurrentBalance     *decimal.Decimal `json:"currentBalance,omitempty"`
}

// CaseSummary is the case row shape carried in the consolidated view
type CaseSummary struct {
	CaseID            uuid.UUID  `json:"caseId"`
	CaseNumber        string     `json:"caseNumber"`
	Title             string     `json:"title"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	Category          string     `json:"category,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	SatisfactionScore *float64   `json:"satisfactionScore,omitempty"`
}

// InteractionSummary is the interaction row shape carried in the consolidated view
type InteractionSummary struct {
	InteractionID  uuid.UUID `json:"interactionId"`
	Channel        string    `json:"channel"`
	Direction      string    `json:"direction,omitempty"`
	AgentName      string    `json:"agentName,omitempty"`
	Message        string    `json:"message,omitempty"`
	Sentiment      string    `json:"sentiment,omitempty"`
	SentimentScore *float64  `json:"sentimentScore,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ConsolidatedView is the single aggregate read over one customer: identity,
// activity, financial position and the derived metrics. Recreated on every
// request; never the source of truth.
type ConsolidatedView struct {
	Identification ViewIdentification   `json:"identification"`
	Products       []ProductSummary     `json:"products,omitempty"`
	Financials     *FinancialSummary    `json:"financials,omitempty"`
	Cases          []CaseSummary        `json:"cases"`
	Interactions   []InteractionSummary `json:"interactions"`
	Statistics     Statistics           `json:"statistics"`
	RiskLevel      RiskLevel            `json:"riskLevel,omitempty"`
	NextAction     string               `json:"nextRecommendedAction,omitempty"`
}

// NewCaseSummary maps a case to its consolidated-view row
func NewCaseSummary(cc *CustomerCase) CaseSummary {
	return CaseSummary{
		CaseID:            cc.ID,
		CaseNumber:        cc.CaseNumber,
		Title:             cc.Title,
		Status:            string(cc.Status),
		Priority:          string(cc.Priority),
		Category:          cc.Category,
		CreatedAt:         cc.CreatedAt,
		ResolvedAt:        cc.ResolvedAt,
		SatisfactionScore: cc.SatisfactionScore,
	}
}

// NewInteractionSummary maps an interaction to its consolidated-view row
func NewInteractionSummary(i *Interaction) InteractionSummary {
	return InteractionSummary{
		InteractionID:  i.ID,
		Channel:        string(i.Channel),
		Direction:      string(i.Direction),
		AgentName:      i.AgentName,
		Message:        i.Message,
		Sentiment:      i.Sentiment,
		SentimentScore: i.SentimentScore,
		CreatedAt:      i.CreatedAt,
	}
}

// Customer360Record is one row of the customer_360 database view: the flat
// lookup columns plus the consolidated view pre-assembled as a JSON payload
// by the storage layer.
type Customer360Record struct {
	CustomerID       uuid.UUID `gorm:"column:customer_id;primaryKey"`
	ExternalID       string    `gorm:"column:external_id"`
	Name             string    `gorm:"column:name"`
	Email            string    `gorm:"column:email"`
	Phone            string    `gorm:"column:phone"`
	Status           string    `gorm:"column:status"`
	Segment          string    `gorm:"column:segment"`
	PreferredChannel string    `gorm:"column:preferred_channel"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
	Data             string    `gorm:"column:data"`

	parsed     *ConsolidatedView `gorm:"-"`
	parseError error             `gorm:"-"`
}

// TableName returns the backing view name for GORM
func (Customer360Record) TableName() string {
	return "customer_360"
}

// View parses the JSON payload into a ConsolidatedView. The parse happens at
// most once per record and the result is memoized. A malformed payload
// degrades to an empty view; the parse error is reported once alongside it so
// the caller can emit an observability signal, never a failure.
func (r *Customer360Record) View() (*ConsolidatedView, error) {
	if r.parsed == nil {
		view := &ConsolidatedView{}
		if r.Data != "" {
			if err := json.Unmarshal([]byte(r.Data), view); err != nil {
				r.parseError = err
				view = &ConsolidatedView{}
			}
		}
		r.parsed = view
	}
	return r.parsed, r.parseError
}
