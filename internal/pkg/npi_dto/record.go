package npi_dto

import "github.com/goccy/go-json"

// SearchResult is the envelope the NPI registry answers with. ResultCount
// is the registry's own total, which may exceed the number of records it
// actually shipped in Results.
type SearchResult struct {
	ResultCount int      `json:"result_count"`
	Results     []Record `json:"results"`
}

// Record is one raw registry entry. The registry is heterogeneous: every
// block is optional and individual vs organization records carry different
// basic fields, so all of this is probed defensively by the normalizer.
type Record struct {
	Number          json.Number `json:"number"`
	EnumerationType string      `json:"enumeration_type,omitempty"`
	Basic           *Basic      `json:"basic,omitempty"`

	Taxonomies []Taxonomy `json:"taxonomies,omitempty"`
	Addresses  []Address  `json:"addresses,omitempty"`
	Endpoints  []Endpoint `json:"endpoints,omitempty"`
}

type Basic struct {
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	MiddleName       string `json:"middle_name,omitempty"`
	Credential       string `json:"credential,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
}

type Taxonomy struct {
	Desc    string `json:"desc,omitempty"`
	Primary bool   `json:"primary,omitempty"`
	State   string `json:"state,omitempty"`
	Code    string `json:"code,omitempty"`
}

type Address struct {
	AddressPurpose  string `json:"address_purpose,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
	TelephoneNumber string `json:"telephone_number,omitempty"`
}

type Endpoint struct {
	EndpointType        string `json:"endpoint_type,omitempty"`
	EndpointDescription string `json:"endpoint_description,omitempty"`
	Endpoint            string `json:"endpoint,omitempty"`
}
