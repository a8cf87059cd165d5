package customer

import (
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InteractionChannel represents the channel an interaction happened on
type InteractionChannel string

const (
	ChannelChat        InteractionChannel = "CHAT"
	ChannelEmail       InteractionChannel = "EMAIL"
	ChannelPhone       InteractionChannel = "PHONE"
	ChannelSocialMedia InteractionChannel = "SOCIAL_MEDIA"
	ChannelWhatsApp    InteractionChannel = "WHATSAPP"
	ChannelSMS         InteractionChannel = "SMS"
)

// Direction represents who initiated the interaction
type Direction string

const (
	DirectionInbound  Direction = "INBOUND"
	DirectionOutbound Direction = "OUTBOUND"
)

// Interaction is a single contact between the customer and an agent
type Interaction struct {
	shared.BaseAggregateRoot
	CustomerID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	CaseID          *uuid.UUID         `gorm:"type:uuid;index"`
	Channel         InteractionChannel `gorm:"type:varchar(30);not null"`
	Direction       Direction          `gorm:"type:varchar(20);not null"`
	AgentID         string             `gorm:"type:varchar(100);not null"`
	AgentName       string             `gorm:"type:varchar(255);not null"`
	Message         string             `gorm:"type:text"`
	DurationSeconds *int
	Sentiment       string `gorm:"type:varchar(50)"`
	SentimentScore  *float64
	Notes           string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Interaction) TableName() string {
	return "interactions"
}

// NewInteraction records a customer interaction
func NewInteraction(customerID uuid.UUID, caseID *uuid.UUID, channel InteractionChannel, direction Direction, agentID, agentName, message string) (*Interaction, error) {
	if err := validateChannel(channel); err != nil {
		return nil, err
	}
	if err := validateDirection(direction); err != nil {
		return nil, err
	}
	if agentID == "" {
		return nil, shared.NewDomainError("INVALID_AGENT", "Agent id cannot be empty")
	}

	i := &Interaction{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		CaseID:            caseID,
		Channel:           channel,
		Direction:         direction,
		AgentID:           agentID,
		AgentName:         agentName,
		Message:           message,
	}

	i.AddDomainEvent(NewInteractionRecordedEvent(i))

	return i, nil
}

// SetDuration sets the call/chat duration in seconds
func (i *Interaction) SetDuration(seconds int) error {
	if seconds < 0 {
		return shared.NewDomainError("INVALID_DURATION", "Duration cannot be negative")
	}
	i.DurationSeconds = &seconds
	i.UpdatedAt = time.Now()
	return nil
}

// SetSentiment sets the sentiment label and score
func (i *Interaction) SetSentiment(label string, score *float64) {
	i.Sentiment = label
	i.SentimentScore = score
	i.UpdatedAt = time.Now()
}

func validateChannel(channel InteractionChannel) error {
	switch channel {
	case ChannelChat, ChannelEmail, ChannelPhone, ChannelSocialMedia, ChannelWhatsApp, ChannelSMS:
		return nil
	default:
		return shared.NewDomainError("INVALID_CHANNEL", "Invalid interaction channel")
	}
}

func validateDirection(direction Direction) error {
	switch direction {
	case DirectionInbound, DirectionOutbound:
		return nil
	default:
		return shared.NewDomainError("INVALID_DIRECTION", "Direction must be INBOUND or OUTBOUND")
	}
}
