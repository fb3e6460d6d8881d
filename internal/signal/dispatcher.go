// Package signal is the single sanctioned path for a command to convert an
// internal problem into either a hard failure (a returned error the caller
// must propagate) or a soft, logged one (a nil return plus the invocation's
// interrupt flag). Centralizing this keeps failure identifiers, target
// normalization and logging consistent across the whole command library.
package signal

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ContinueMode resumes the command's enclosing loop instead of stopping it.
// Because a callee cannot continue its caller's loop in Go, continue modes
// only guarantee a nil return with the interrupt flag untouched; the actual
// continue statement stays in the caller.
type ContinueMode int

const (
	ContinueNone ContinueMode = iota
	Continue
	ContinueSilently
)

type options struct {
	category      Category
	categorySet   bool
	causes        []error
	cause         error
	target        any
	origin        string
	suppressInner bool
	cont          ContinueMode
	label         string
}

type Option func(*options)

// WithCategory classifies the failure explicitly. Required when no cause is
// attached, since there is nothing else to infer a classification from.
func WithCategory(c Category) Option {
	return func(o *options) {
		o.category = c
		o.categorySet = true
	}
}

// WithCauses attaches a chain of underlying causes. One FailureRecord is
// produced per cause, each inheriting that cause's category when no explicit
// category is supplied.
func WithCauses(errs ...error) Option {
	return func(o *options) { o.causes = append(o.causes, errs...) }
}

// WithCause attaches an explicit cause. Combined with WithCauses it becomes
// the cause attached to every produced record, while the chain entries still
// drive per-record categories.
func WithCause(err error) Option {
	return func(o *options) { o.cause = err }
}

// WithTarget records the domain object being processed when the failure
// occurred. Objects implementing ShortNamer are unwrapped to their canonical
// short identifier.
func WithTarget(target any) Option {
	return func(o *options) { o.target = target }
}

// WithOrigin overrides the auto-detected name of the terminating command.
func WithOrigin(name string) Option {
	return func(o *options) { o.origin = name }
}

// WithSuppressInnerMessage keeps the cause's own message text out of the
// record's message.
func WithSuppressInnerMessage() Option {
	return func(o *options) { o.suppressInner = true }
}

func WithContinue() Option {
	return func(o *options) { o.cont = Continue }
}

func WithContinueSilently() Option {
	return func(o *options) { o.cont = ContinueSilently }
}

// WithContinueLabel names the enclosing loop being resumed. Advisory in Go;
// only meaningful together with a continue mode.
func WithContinueLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// Dispatcher builds failure records, forwards them to the sink and executes
// the termination policy selected by the invocation and the options.
type Dispatcher struct {
	prefix string
	sink   Sink
}

func New(prefix string, sink Sink) *Dispatcher {
	return &Dispatcher{prefix: prefix, sink: sink}
}

// Signal reports one failure of the command owning inv.
//
// Policy matrix:
//   - strict, no continue: interrupt flag set, first record returned as a
//     hard failure the caller must propagate;
//   - strict + ContinueSilently: records kept in history, nil returned, flag
//     untouched;
//   - lenient + Continue: records kept in history, nil returned, flag
//     untouched;
//   - lenient, no continue: records kept in history, flag set, nil returned.
//     The caller must check inv.Interrupted() or return immediately.
//
// The sink receives exactly one entry per call, before the policy resolves.
// An empty message is the one malformed input that is not tolerated.
func (d *Dispatcher) Signal(inv *Invocation, message string, opts ...Option) error {
	if message == "" {
		panic("signal: message is required")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	origin := o.origin
	if origin == "" {
		origin = callerFunc(1)
	}
	target := normalizeTarget(o.target)
	records := d.buildRecords(o, message, origin, target)

	severity := SeverityWarning
	if o.cont == ContinueSilently {
		severity = SeverityDebug
	}
	d.sink.Log(Entry{
		Severity:           severity,
		Message:            message,
		Strict:             inv.Strict,
		Origin:             origin,
		Target:             target,
		Records:            records,
		SuppressAutoAppend: o.suppressInner,
	})

	inv.record(records...)

	if o.cont != ContinueNone {
		return nil
	}

	inv.interrupt()
	if inv.Strict {
		return records[0]
	}
	return nil
}

// buildRecords produces one record per cause chain entry, or exactly one
// record when no chain is supplied.
func (d *Dispatcher) buildRecords(o *options, message, origin, target string) []*FailureRecord {
	id := d.prefix + "_" + origin
	now := time.Now()

	mk := func(category Category, cause, inner error) *FailureRecord {
		msg := message
		if inner != nil && !o.suppressInner {
			msg = message + ": " + inner.Error()
		}
		return &FailureRecord{
			ID:       id,
			RecordID: uuid.NewString(),
			Message:  msg,
			Category: category,
			Cause:    cause,
			Target:   target,
			Origin:   origin,
			Time:     now,
		}
	}
	resolve := func(cause error) Category {
		if o.categorySet {
			return o.category
		}
		return CategoryOf(cause)
	}

	if len(o.causes) == 0 {
		return []*FailureRecord{mk(resolve(o.cause), o.cause, o.cause)}
	}

	return lo.Map(o.causes, func(entry error, _ int) *FailureRecord {
		attached, inner := entry, entry
		if o.cause != nil {
			// The explicit cause wins as the attached error and as the
			// readable inner message; the chain entry still drives category.
			attached, inner = o.cause, o.cause
		}
		return mk(resolve(entry), attached, inner)
	})
}
