package signal

import (
	"go.uber.org/zap"
)

type Severity int8

const (
	SeverityDebug Severity = iota
	SeverityWarning
	SeverityError
)

// Entry is what the dispatcher hands to the sink, exactly once per Signal
// call and before any raise/return decision is finalized.
type Entry struct {
	Severity           Severity
	Message            string
	Strict             bool
	Origin             string
	Target             string
	Records            []*FailureRecord
	SuppressAutoAppend bool
}

// Sink receives every failure the dispatcher builds. Implementations must be
// synchronous relative to the dispatcher and must not fail under normal
// operation.
type Sink interface {
	Log(e Entry)
}

// ZapSink forwards entries to a zap logger.
type ZapSink struct {
	lg *zap.Logger
}

func NewZapSink(lg *zap.Logger) *ZapSink {
	return &ZapSink{lg: lg}
}

func (s *ZapSink) Log(e Entry) {
	fields := []zap.Field{
		zap.String("origin", e.Origin),
		zap.Bool("strict", e.Strict),
	}
	if e.Target != "" {
		fields = append(fields, zap.String("target", e.Target))
	}
	for _, rec := range e.Records {
		fields = append(fields,
			zap.String("failure_id", rec.ID),
			zap.String("record_id", rec.RecordID),
			zap.Stringer("category", rec.Category),
		)
		if rec.Cause != nil {
			fields = append(fields, zap.NamedError("cause", rec.Cause))
		}
	}

	switch e.Severity {
	case SeverityDebug:
		s.lg.Debug(e.Message, fields...)
	case SeverityError:
		s.lg.Error(e.Message, fields...)
	default:
		s.lg.Warn(e.Message, fields...)
	}
}
