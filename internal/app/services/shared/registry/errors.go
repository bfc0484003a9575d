package registry

import "fmt"

// Error separates transport failures from non-success registry responses.
// The search aggregator maps the former to 503 and the latter to 502 when no
// local fallback results exist.
type Error struct {
	Transport  bool
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Transport {
		return fmt.Sprintf("npi registry: transport failure: %v", e.Err)
	}
	return fmt.Sprintf("npi registry: status %d", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}
