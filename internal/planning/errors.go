package planning

import (
	"errors"
	"fmt"
)

// Input errors: reported immediately, no partial state produced.
var (
	// ErrNoUserProfile means plan generation was requested without a
	// user profile to plan against.
	ErrNoUserProfile = errors.New("planning: no user profile")

	// ErrNoExistingSchedule means adjustment or analysis was requested
	// for a goal that has no schedule yet.
	ErrNoExistingSchedule = errors.New("planning: no existing schedule")

	// ErrAPIKeyMissing means the remote strategy was selected but no
	// API key is configured.
	ErrAPIKeyMissing = errors.New("planning: remote API key missing")
)

// RemoteErrorKind classifies remote-strategy failures so callers can tell
// retry-later from fix-configuration from unexpected.
type RemoteErrorKind string

const (
	// RemoteNetwork covers transport failures reaching the endpoint.
	RemoteNetwork RemoteErrorKind = "network"
	// RemoteRateLimited covers HTTP 429 responses.
	RemoteRateLimited RemoteErrorKind = "rate_limited"
	// RemoteServer covers non-2xx responses other than 429.
	RemoteServer RemoteErrorKind = "server"
	// RemoteInvalidResponse covers undecodable or malformed bodies.
	RemoteInvalidResponse RemoteErrorKind = "invalid_response"
)

// RemoteError is a remote-strategy failure with enough detail to decide
// whether to retry. Retries are never automatic.
type RemoteError struct {
	Kind   RemoteErrorKind
	Status int // HTTP status for server/rate-limited kinds, 0 otherwise
	Err    error
}

func (e *RemoteError) Error() string {
	switch e.Kind {
	case RemoteRateLimited:
		return fmt.Sprintf("planning: remote rate limited (status %d)", e.Status)
	case RemoteServer:
		return fmt.Sprintf("planning: remote server error (status %d): %v", e.Status, e.Err)
	default:
		return fmt.Sprintf("planning: remote %s error: %v", e.Kind, e.Err)
	}
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Retryable reports whether the failure is worth retrying later
// (rate limits and 5xx responses), as opposed to a configuration or
// response-format problem.
func (e *RemoteError) Retryable() bool {
	return e.Kind == RemoteRateLimited || (e.Kind == RemoteServer && e.Status >= 500)
}
