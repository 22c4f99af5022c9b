package lookup

// Status classifies the result of a single lookup call. Exactly one status is
// produced per call; there are no retries.
type Status string

const (
	// StatusFound means HTTP 200 with a body matching the expected schema.
	StatusFound Status = "FOUND"
	// StatusNotFound means the remote source has no record (HTTP 404). A valid
	// negative result, not an error condition.
	StatusNotFound Status = "NOT_FOUND"
	// StatusRateLimited means HTTP 429. Surfaced as "no data"; the human
	// controls retry timing.
	StatusRateLimited Status = "RATE_LIMITED"
	// StatusTimeout means the call did not complete within the deadline and
	// the caller did not cancel.
	StatusTimeout Status = "TIMEOUT"
	// StatusTransportError covers every other failure: connection refused,
	// unexpected status codes, malformed bodies.
	StatusTransportError Status = "TRANSPORT_ERROR"
)

// Outcome is the typed result of one transport call. Payload is non-nil only
// for StatusFound; Detail carries diagnostics for the failure statuses.
type Outcome struct {
	Status  Status
	Payload *Payload
	Detail  string
}
