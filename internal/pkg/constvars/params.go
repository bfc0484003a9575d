package constvars

const (
	URLParamNPINumber  = "npiNumber"
	URLParamProviderID = "providerID"
	URLParamRequestID  = "requestID"
)

const (
	QueryParamNumber              = "number"
	QueryParamEnumerationType     = "enumeration_type"
	QueryParamTaxonomyDescription = "taxonomy_description"
	QueryParamFirstName           = "first_name"
	QueryParamLastName            = "last_name"
	QueryParamOrganizationName    = "organization_name"
	QueryParamCity                = "city"
	QueryParamState               = "state"
	QueryParamPostalCode          = "postal_code"
	QueryParamCountryCode         = "country_code"
	QueryParamLimit               = "limit"
	QueryParamVersion             = "version"
)
