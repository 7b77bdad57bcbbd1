package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes diagnostic events to an slog.Logger.
// Useful for development when you want to see codec events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at the matching level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("component", event.Component),
	}
	if event.BuildID != "" {
		attrs = append(attrs, slog.String("build_id", event.BuildID))
	}
	if event.DeviceID != "" {
		attrs = append(attrs, slog.String("device_id", event.DeviceID))
	}
	if event.ChannelID != "" {
		attrs = append(attrs, slog.String("channel_id", event.ChannelID))
	}

	a.logger.LogAttrs(context.Background(), level(event.Severity), event.Message, attrs...)
}

func level(s Severity) slog.Level {
	switch s {
	case SeverityError:
		return slog.LevelError
	case SeverityWarn:
		return slog.LevelWarn
	case SeverityInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
