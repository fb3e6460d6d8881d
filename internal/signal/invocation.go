package signal

import (
	"github.com/opservo/adminkit/internal/core/ids"
)

// Invocation is the state cell of one logical command run against one target.
// It replaces any ambient "stop now" variable: the dispatcher writes the
// interrupt flag here and the owning command reads it.
//
// An Invocation belongs to exactly one command run. Fan-out over several
// targets builds one Invocation per target, so no synchronization is needed.
type Invocation struct {
	Command string
	Strict  bool
	RunId   ids.RunId

	interrupted bool
	history     []*FailureRecord
}

func NewInvocation(command string, strict bool) *Invocation {
	return &Invocation{
		Command: command,
		Strict:  strict,
		RunId:   ids.NewRunId(),
	}
}

// Interrupted reports whether a prior Signal decided this command must stop.
// Commands running lenient without a continue mode are contractually required
// to check this (or return right after signaling).
func (inv *Invocation) Interrupted() bool {
	return inv.interrupted
}

// History returns every failure recorded during this run, oldest first.
func (inv *Invocation) History() []*FailureRecord {
	out := make([]*FailureRecord, len(inv.history))
	copy(out, inv.history)
	return out
}

func (inv *Invocation) interrupt() {
	inv.interrupted = true
}

func (inv *Invocation) record(recs ...*FailureRecord) {
	inv.history = append(inv.history, recs...)
}
