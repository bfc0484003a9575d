package requests

// SearchProviders holds the free-text search filters. All fields are
// optional; Limit is clamped to [1,200] by the usecase.
type SearchProviders struct {
	Number              string
	EnumerationType     string
	TaxonomyDescription string
	FirstName           string
	LastName            string
	OrganizationName    string
	City                string
	State               string
	PostalCode          string
	CountryCode         string
	Limit               int
}

// HasFilter reports whether any real filter beyond limit was supplied.
// Limit alone must not trigger an unfiltered scan of either backing source.
func (r *SearchProviders) HasFilter() bool {
	return r.Number != "" ||
		r.EnumerationType != "" ||
		r.TaxonomyDescription != "" ||
		r.FirstName != "" ||
		r.LastName != "" ||
		r.OrganizationName != "" ||
		r.City != "" ||
		r.State != "" ||
		r.PostalCode != "" ||
		r.CountryCode != ""
}
