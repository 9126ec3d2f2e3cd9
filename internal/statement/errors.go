package statement

import (
	"errors"
	"fmt"
)

// ErrNoContent is returned when a document yields neither tabular rows nor
// text, before any extraction-service call is made.
var ErrNoContent = errors.New("no tables or text extracted from document")

// ConfigurationError reports invalid chunking parameters. It fails the call
// immediately; there is no sensible recovery from a zero or negative stride.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// ExtractorCallError wraps a network, timeout or service error from the
// extraction client. It is recovered locally (default account info, or zero
// transactions for the chunk) and logged, never surfaced to the caller.
type ExtractorCallError struct {
	Err error
}

func (e *ExtractorCallError) Error() string {
	return fmt.Sprintf("extraction call failed: %v", e.Err)
}

func (e *ExtractorCallError) Unwrap() error { return e.Err }

// ExtractorParseError wraps extractor output that is not valid JSON or whose
// shape cannot be coerced into the expected record. Same local recovery as
// ExtractorCallError. Raw keeps a bounded prefix of the offending response so
// the cause stays inspectable in logs.
type ExtractorParseError struct {
	Raw string
	Err error
}

func (e *ExtractorParseError) Error() string {
	return fmt.Sprintf("extractor response not usable: %v", e.Err)
}

func (e *ExtractorParseError) Unwrap() error { return e.Err }

const rawErrorPrefixLen = 200

// newParseError builds an ExtractorParseError keeping at most
// rawErrorPrefixLen bytes of the raw response.
func newParseError(raw string, err error) *ExtractorParseError {
	if len(raw) > rawErrorPrefixLen {
		raw = raw[:rawErrorPrefixLen]
	}
	return &ExtractorParseError{Raw: raw, Err: err}
}
