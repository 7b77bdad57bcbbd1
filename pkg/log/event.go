package log

import "time"

// Event is one diagnostic event reported by the codec.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// BuildID identifies the build that reported the event (UUID).
	BuildID string `cbor:"2,keyasint"`

	// Severity classifies the event.
	Severity Severity `cbor:"3,keyasint"`

	// Component identifies the reporting component ("xml", "model",
	// "discovery", ...).
	Component string `cbor:"4,keyasint"`

	// Message is the human-readable event text.
	Message string `cbor:"5,keyasint"`

	// DeviceID is the device being built, when known.
	DeviceID string `cbor:"6,keyasint,omitempty"`

	// ChannelID is the channel being built, when known.
	ChannelID string `cbor:"7,keyasint,omitempty"`
}

// Severity classifies a diagnostic event.
type Severity uint8

const (
	// SeverityError reports a failure surfaced to the caller.
	SeverityError Severity = 0
	// SeverityWarn reports a recovered problem (defaulted field).
	SeverityWarn Severity = 1
	// SeverityInfo reports build progress.
	SeverityInfo Severity = 2
	// SeverityDebug reports forward-compatibility skips and details.
	SeverityDebug Severity = 3
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarn:
		return "WARN"
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}
