// Package factbank loads and indexes the achievement bank, the static
// ground truth of what the candidate can truthfully claim.
package factbank

import "fmt"

// LoadError represents a failure to read, validate, or parse the
// achievement bank. Bank load failures are fatal at startup.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("achievement bank load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("achievement bank load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
