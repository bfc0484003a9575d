package providers

import (
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/responses"
	"medidata-service/internal/pkg/npi_dto"
	"strings"
)

// NormalizeRegistryRecord maps one raw registry record onto the canonical
// provider shape. It fails soft: records without an identifying number or a
// derivable name yield nil and are skipped by callers.
func NormalizeRegistryRecord(record *npi_dto.Record) *responses.Provider {
	if record == nil {
		return nil
	}
	number := record.Number.String()
	if number == "" {
		return nil
	}
	if record.Basic == nil {
		return nil
	}
	basic := record.Basic

	name, enumerationType := deriveName(record, basic)
	if name == "" {
		return nil
	}

	address := pickAddress(record.Addresses)

	provider := &responses.Provider{
		ID:              number,
		Name:            name,
		Specialty:       pickSpecialty(record.Taxonomies),
		Location:        composeLocation(address),
		Rating:          0,
		Insurance:       []string{},
		NPINumber:       number,
		EnumerationType: enumerationType,
		IsAffiliated:    false,
	}
	if address != nil {
		provider.Phone = address.TelephoneNumber
	}
	provider.Email = pickEmail(record.Endpoints)
	return provider
}

// NormalizeDirectoryRow never fails; directory rows are trusted and every
// missing attribute degrades to a sentinel or empty value.
func NormalizeDirectoryRow(row *models.Provider) responses.Provider {
	name := joinNonEmpty(" ", row.FirstName, row.LastName)
	if name == "" {
		name = constvars.SentinelUnknownProvider
	}

	specialty := row.Taxonomy
	if specialty == "" {
		specialty = constvars.SentinelSpecialtyMissing
	}

	location := joinNonEmpty(", ", row.City, row.State)
	if location == "" {
		location = constvars.SentinelLocationNotAvailable
	}

	insurance := []string{}
	if row.Insurance != "" {
		insurance = []string{row.Insurance}
	}

	enumerationType := constvars.EnumerationTypeOrganization
	if row.ProviderType == "" || row.ProviderType == "individual" {
		enumerationType = constvars.EnumerationTypeIndividual
	}

	return responses.Provider{
		ID:              row.ProviderID,
		Name:            name,
		Specialty:       specialty,
		Location:        location,
		Rating:          0,
		Insurance:       insurance,
		EnumerationType: enumerationType,
		IsAffiliated:    true,
		Email:           row.Email,
		Phone:           row.PhoneNum,
	}
}

// deriveName classifies the record and composes the display name. The
// explicit type marker wins, then individual-name fields, then the
// organization name.
func deriveName(record *npi_dto.Record, basic *npi_dto.Basic) (string, string) {
	individualName := joinNonEmpty(" ", basic.FirstName, basic.MiddleName, basic.LastName)
	if individualName != "" && basic.Credential != "" {
		individualName += ", " + basic.Credential
	}

	switch record.EnumerationType {
	case constvars.EnumerationTypeIndividual:
		return individualName, constvars.EnumerationTypeIndividual
	case constvars.EnumerationTypeOrganization:
		return basic.OrganizationName, constvars.EnumerationTypeOrganization
	}

	if basic.FirstName != "" || basic.LastName != "" {
		return individualName, constvars.EnumerationTypeIndividual
	}
	if basic.OrganizationName != "" {
		return basic.OrganizationName, constvars.EnumerationTypeOrganization
	}
	return "", ""
}

func pickSpecialty(taxonomies []npi_dto.Taxonomy) string {
	for _, taxonomy := range taxonomies {
		if taxonomy.Primary && taxonomy.Desc != "" {
			return taxonomy.Desc
		}
	}
	if len(taxonomies) > 0 && taxonomies[0].Desc != "" {
		return taxonomies[0].Desc
	}
	return constvars.SentinelSpecialtyMissing
}

func pickAddress(addresses []npi_dto.Address) *npi_dto.Address {
	for i := range addresses {
		if addresses[i].AddressPurpose == constvars.AddressPurposeLocation {
			return &addresses[i]
		}
	}
	if len(addresses) > 0 {
		return &addresses[0]
	}
	return nil
}

func composeLocation(address *npi_dto.Address) string {
	if address == nil {
		return constvars.SentinelLocationNotAvailable
	}
	location := joinNonEmpty(", ", address.City, address.State, address.PostalCode)
	if location == "" {
		return constvars.SentinelLocationNotAvailable
	}
	return location
}

// pickEmail only trusts endpoints the registry labels as email. DIRECT
// messaging endpoints carry address-shaped values that are not email.
func pickEmail(endpoints []npi_dto.Endpoint) string {
	for _, endpoint := range endpoints {
		if strings.Contains(strings.ToLower(endpoint.EndpointType), "email") ||
			strings.Contains(strings.ToLower(endpoint.EndpointDescription), "email") {
			return endpoint.Endpoint
		}
	}
	return ""
}

func joinNonEmpty(separator string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, separator)
}
