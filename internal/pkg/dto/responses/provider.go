package responses

// Provider is the canonical output shape shared by the search aggregator,
// single-NPI lookup and favorites hydration, whatever the source record
// looked like. Optional fields default to empty strings so the shape stays
// uniform across sources.
type Provider struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	Location        string   `json:"location"`
	Rating          int      `json:"rating"`
	Insurance       []string `json:"insurance"`
	NPINumber       string   `json:"npi_number"`
	EnumerationType string   `json:"enumeration_type"`
	IsAffiliated    bool     `json:"is_affiliated"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
}

// SearchProviders reports the merged result set plus per-source counts so
// callers can distinguish provenance. AffiliatedCount and NPICount are
// pre-truncation contributing counts; APIResultCount is the registry's own
// reported total.
type SearchProviders struct {
	ResultCount     int        `json:"result_count"`
	Results         []Provider `json:"results"`
	AffiliatedCount int        `json:"affiliated_count"`
	NPICount        int        `json:"npi_count"`
	APIResultCount  int        `json:"api_result_count"`
	Error           string     `json:"error,omitempty"`
}
