package signal

import (
	"fmt"
	"time"
)

// FailureRecord describes one reported failure. Records are immutable once
// built and are never touched again after being handed to the sink.
//
// ID is stable across runs ("<prefix>_<origin>") so tooling can correlate
// failures to the command that produced them without parsing message text.
// RecordID is unique per record and correlates history entries with log lines.
type FailureRecord struct {
	ID       string
	RecordID string
	Message  string
	Category Category
	Cause    error
	Target   string
	Origin   string
	Time     time.Time
}

// Error makes a record usable as the hard failure returned in strict mode.
func (r *FailureRecord) Error() string {
	return fmt.Sprintf("[%s] %s", r.ID, r.Message)
}

func (r *FailureRecord) Unwrap() error {
	return r.Cause
}

// ShortNamer is the capability of domain objects that expose a canonical
// short identifier, substituted for the raw object in records and logs.
type ShortNamer interface {
	ShortName() string
}

// normalizeTarget resolves a target to its display form. Malformed values
// degrade to their raw rendering, never to an error.
func normalizeTarget(target any) string {
	switch v := target.(type) {
	case nil:
		return ""
	case ShortNamer:
		return v.ShortName()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
