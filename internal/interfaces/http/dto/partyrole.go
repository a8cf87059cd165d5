package dto

import "time"

// Discriminator values used by the party role document shape.
const (
	PartyRoleType    = "Customer"
	PartyRoleBase    = "PartyRole"
	TypeIndividual   = "Individual"
	TypeOrganization = "Organization"

	typeIndividualIdentification   = "IndividualIdentification"
	typeOrganizationIdentification = "OrganizationIdentification"
	typeCreditProfile              = "CreditProfile"
	typeEmailContactMedium         = "EmailContactMedium"
	typePhoneContactMedium         = "PhoneContactMedium"
	typeStringCharacteristic       = "StringCharacteristic"

	mediumTypeEmail = "email"
	mediumTypePhone = "phone"
)

// Characteristic names carried on the party role document.
const (
	CharSegment          = "segment"
	CharRiskLevel        = "riskLevel"
	CharBiometriaStatus  = "biometriaStatus"
	CharBiometriaMessage = "biometriaMessage"
	CharCodigoGrupo      = "codigoGrupo"
	CharNomeGrupo        = "nomeGrupo"
)

// PartyRoleDocument is the external customer representation exchanged on the
// standards-shaped API. It is produced and consumed by the codec only, never
// persisted directly.
type PartyRoleDocument struct {
	ID             string           `json:"id,omitempty"`
	Href           string           `json:"href,omitempty"`
	Name           string           `json:"name"`
	Status         string           `json:"status,omitempty"`
	Type           string           `json:"@type"`
	BaseType       string           `json:"@baseType"`
	EngagedParty   *EngagedParty    `json:"engagedParty,omitempty"`
	CreditProfile  []CreditProfile  `json:"creditProfile,omitempty"`
	ContactMedium  []ContactMedium  `json:"contactMedium,omitempty"`
	Characteristic []Characteristic `json:"characteristic,omitempty"`
	ValidFor       *ValidFor        `json:"validFor,omitempty"`
}

// EngagedParty is the discriminated party behind the customer role. The @type
// field selects the Individual or Organization variant; the optional fields
// belong to one variant each.
type EngagedParty struct {
	ID                         string                `json:"id,omitempty"`
	Name                       string                `json:"name,omitempty"`
	Type                       string                `json:"@type"`
	ReferredType               string                `json:"@referredType,omitempty"`
	GivenName                  string                `json:"givenName,omitempty"`
	FamilyName                 string                `json:"familyName,omitempty"`
	FormattedName              string                `json:"formattedName,omitempty"`
	PreferredGivenName         string                `json:"preferredGivenName,omitempty"`
	TradingName                string                `json:"tradingName,omitempty"`
	IndividualIdentification   []PartyIdentification `json:"individualIdentification,omitempty"`
	OrganizationIdentification []PartyIdentification `json:"organizationIdentification,omitempty"`
}

// PartyIdentification is one identification document of the engaged party
type PartyIdentification struct {
	IdentificationType string `json:"identificationType,omitempty"`
	IdentificationID   string `json:"identificationId,omitempty"`
	Type               string `json:"@type,omitempty"`
}

// CreditProfile carries the credit assessment of the customer
type CreditProfile struct {
	CreditScore      *int   `json:"creditScore,omitempty"`
	CreditRiskRating *int   `json:"creditRiskRating,omitempty"`
	Type             string `json:"@type,omitempty"`
}

// ContactMedium is one contact point, discriminated by its @type tag
type ContactMedium struct {
	MediumType   string `json:"mediumType,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Type         string `json:"@type,omitempty"`
}

// Characteristic is a dynamic name/value attribute of the party role
type Characteristic struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"@type,omitempty"`
}

// ValidFor is the validity period of the party role
type ValidFor struct {
	StartDateTime time.Time `json:"startDateTime"`
}
