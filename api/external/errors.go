/* errors.go
 * Error taxonomy for the provider layer. Transport failures and malformed payloads are
 * both recoverable: the fetch orchestrator treats either as "this source unavailable"
 * and falls through to the next source.
 */

package external

import "fmt"

// TransportError wraps a network or HTTP-status failure against one source.
type TransportError struct {
	Source string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request to %s failed: %v", e.Source, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MappingError reports a wire payload whose required structural fields (game list,
// position identifiers) are absent or unusable. Missing labels, team names and scores
// are not mapping errors; those degrade to placeholders.
type MappingError struct {
	Source string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s: malformed payload: %s", e.Source, e.Reason)
}
