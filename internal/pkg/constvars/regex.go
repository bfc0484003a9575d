package constvars

const (
	// RegexNPINumber matches a bare 10-digit NPI. Anything else is treated
	// as a directory provider identifier.
	RegexNPINumber = `^[0-9]{10}$`
)
