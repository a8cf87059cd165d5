package dto

import (
	"encoding/json"

	appcustomer "github.com/crm/backend/internal/application/customer"
)

// EncodePartyRole translates a flat customer record into the nested party
// role document. basePath is the mounted resource path used to build href.
func EncodePartyRole(c appcustomer.CustomerResponse, basePath string) PartyRoleDocument {
	doc := PartyRoleDocument{
		ID:       c.PartyRoleID.String(),
		Href:     basePath + "/" + c.PartyRoleID.String(),
		Name:     c.Name,
		Status:   c.Status,
		Type:     PartyRoleType,
		BaseType: PartyRoleBase,
		ValidFor: &ValidFor{StartDateTime: c.CreatedAt},
	}

	partyType := c.PartyType
	if partyType == "" {
		partyType = TypeOrganization
	}

	party := &EngagedParty{
		ID:           c.ID.String(),
		Name:         c.Name,
		Type:         partyType,
		ReferredType: partyType,
	}
	if partyType == TypeIndividual {
		party.GivenName = c.GivenName
		party.FamilyName = c.FamilyName
		party.FormattedName = c.FormattedName
		party.PreferredGivenName = c.PreferredGivenName
		if c.IdentificationNumber != "" {
			party.IndividualIdentification = []PartyIdentification{{
				IdentificationType: c.IdentificationType,
				IdentificationID:   c.IdentificationNumber,
				Type:               typeIndividualIdentification,
			}}
		}
	} else {
		party.TradingName = c.TradingName
		if c.IdentificationNumber != "" {
			party.OrganizationIdentification = []PartyIdentification{{
				IdentificationType: c.IdentificationType,
				IdentificationID:   c.IdentificationNumber,
				Type:               typeOrganizationIdentification,
			}}
		}
	}
	doc.EngagedParty = party

	if c.CreditScore != nil || c.CreditRiskRating != nil {
		doc.CreditProfile = []CreditProfile{{
			CreditScore:      c.CreditScore,
			CreditRiskRating: c.CreditRiskRating,
			Type:             typeCreditProfile,
		}}
	}

	if c.Email != "" {
		doc.ContactMedium = append(doc.ContactMedium, ContactMedium{
			MediumType:   mediumTypeEmail,
			EmailAddress: c.Email,
			Type:         typeEmailContactMedium,
		})
	}
	if c.Phone != "" {
		doc.ContactMedium = append(doc.ContactMedium, ContactMedium{
			MediumType:  mediumTypePhone,
			PhoneNumber: c.Phone,
			Type:        typePhoneContactMedium,
		})
	}

	doc.Characteristic = appendCharacteristic(doc.Characteristic, CharSegment, c.Segment)
	doc.Characteristic = appendCharacteristic(doc.Characteristic, CharRiskLevel, c.RiskLevel)
	if c.BiometriaStatus != "" {
		doc.Characteristic = appendCharacteristic(doc.Characteristic, CharBiometriaStatus, c.BiometriaStatus)
		doc.Characteristic = appendCharacteristic(doc.Characteristic, CharBiometriaMessage, c.BiometriaMessage)
	}
	doc.Characteristic = appendCharacteristic(doc.Characteristic, CharCodigoGrupo, c.CodigoGrupo)
	doc.Characteristic = appendCharacteristic(doc.Characteristic, CharNomeGrupo, c.NomeGrupo)

	return doc
}

func appendCharacteristic(list []Characteristic, name, value string) []Characteristic {
	if value == "" {
		return list
	}
	return append(list, Characteristic{
		Name:  name,
		Value: value,
		Type:  typeStringCharacteristic,
	})
}

// DecodePartyRole translates an incoming party role document into the flat
// create request. Missing optional parts are simply left empty; an
// unrecognized engaged-party variant is read as an Organization.
func DecodePartyRole(doc PartyRoleDocument) appcustomer.CreateCustomerRequest {
	req := appcustomer.CreateCustomerRequest{
		Name:   doc.Name,
		Status: doc.Status,
	}
	if req.Status == "" {
		req.Status = "ACTIVE"
	}

	if ep := doc.EngagedParty; ep != nil {
		if ep.Type == TypeIndividual {
			req.GivenName = ep.GivenName
			req.FamilyName = ep.FamilyName
			req.FormattedName = ep.FormattedName
			req.PreferredGivenName = ep.PreferredGivenName
			if len(ep.IndividualIdentification) > 0 {
				id := ep.IndividualIdentification[0]
				req.IdentificationType = id.IdentificationType
				req.IdentificationNumber = id.IdentificationID
				if req.IdentificationType == "" {
					req.IdentificationType = "CPF"
				}
			}
		} else {
			req.TradingName = ep.TradingName
			// Organizations carry a CNPJ even when no identification
			// entry was sent with the document
			req.IdentificationType = "CNPJ"
			if len(ep.OrganizationIdentification) > 0 {
				id := ep.OrganizationIdentification[0]
				req.IdentificationNumber = id.IdentificationID
				if id.IdentificationType != "" {
					req.IdentificationType = id.IdentificationType
				}
			}
		}
	}

	if len(doc.CreditProfile) > 0 {
		req.CreditScore = doc.CreditProfile[0].CreditScore
		req.CreditRiskRating = doc.CreditProfile[0].CreditRiskRating
	}

	for _, medium := range doc.ContactMedium {
		switch {
		case medium.Type == typeEmailContactMedium || medium.MediumType == mediumTypeEmail:
			req.Email = medium.EmailAddress
		case medium.Type == typePhoneContactMedium || medium.MediumType == mediumTypePhone:
			req.Phone = medium.PhoneNumber
		}
	}

	for _, ch := range doc.Characteristic {
		switch ch.Name {
		case CharSegment:
			req.Segment = ch.Value
		case CharRiskLevel:
			req.RiskLevel = ch.Value
		case CharBiometriaStatus:
			req.BiometriaStatus = ch.Value
		case CharCodigoGrupo:
			req.CodigoGrupo = ch.Value
		case CharNomeGrupo:
			req.NomeGrupo = ch.Value
		}
	}

	return req
}

// engagedPartyPatch mirrors EngagedParty with presence-aware fields
type engagedPartyPatch struct {
	Type                       string                `json:"@type"`
	GivenName                  *string               `json:"givenName"`
	FamilyName                 *string               `json:"familyName"`
	FormattedName              *string               `json:"formattedName"`
	PreferredGivenName         *string               `json:"preferredGivenName"`
	TradingName                *string               `json:"tradingName"`
	IndividualIdentification   []PartyIdentification `json:"individualIdentification"`
	OrganizationIdentification []PartyIdentification `json:"organizationIdentification"`
}

// partyRolePatch is the presence-aware view of an incoming merge document.
// nil means the key was absent and the field must stay untouched.
type partyRolePatch struct {
	Name           *string            `json:"name"`
	EngagedParty   *engagedPartyPatch `json:"engagedParty"`
	CreditProfile  []CreditProfile    `json:"creditProfile"`
	ContactMedium  []ContactMedium    `json:"contactMedium"`
	Characteristic []Characteristic   `json:"characteristic"`
}

// DecodePartyRolePatch translates a partial party role document into the flat
// partial update request. Only keys present in the payload produce non-nil
// fields; creditProfile merges one level deep through its first entry.
func DecodePartyRolePatch(data []byte) (appcustomer.UpdateCustomerRequest, error) {
	var patch partyRolePatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return appcustomer.UpdateCustomerRequest{}, err
	}

	req := appcustomer.UpdateCustomerRequest{
		Name: patch.Name,
	}

	if ep := patch.EngagedParty; ep != nil {
		req.GivenName = ep.GivenName
		req.FamilyName = ep.FamilyName
		req.FormattedName = ep.FormattedName
		req.PreferredGivenName = ep.PreferredGivenName
		req.TradingName = ep.TradingName

		ids := ep.IndividualIdentification
		if len(ids) == 0 {
			ids = ep.OrganizationIdentification
		}
		if len(ids) > 0 {
			if ids[0].IdentificationType != "" {
				req.IdentificationType = &ids[0].IdentificationType
			}
			if ids[0].IdentificationID != "" {
				req.IdentificationNumber = &ids[0].IdentificationID
			}
		}
	}

	if len(patch.CreditProfile) > 0 {
		req.CreditScore = patch.CreditProfile[0].CreditScore
		req.CreditRiskRating = patch.CreditProfile[0].CreditRiskRating
	}

	for _, medium := range patch.ContactMedium {
		switch {
		case medium.Type == typeEmailContactMedium || medium.MediumType == mediumTypeEmail:
			email := medium.EmailAddress
			req.Email = &email
		case medium.Type == typePhoneContactMedium || medium.MediumType == mediumTypePhone:
			phone := medium.PhoneNumber
			req.Phone = &phone
		}
	}

	for _, ch := range patch.Characteristic {
		value := ch.Value
		switch ch.Name {
		case CharSegment:
			req.Segment = &value
		case CharRiskLevel:
			req.RiskLevel = &value
		case CharBiometriaStatus:
			req.BiometriaStatus = &value
		case CharCodigoGrupo:
			req.CodigoGrupo = &value
		case CharNomeGrupo:
			req.NomeGrupo = &value
		}
	}

	return req, nil
}
