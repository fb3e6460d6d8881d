package toolkit

import (
	"context"
	"sort"

	"github.com/iancoleman/strcase"

	"github.com/opservo/adminkit/internal/signal"
)

// RunFunc is the body of one administrative command. Commands never raise
// failures themselves; every problem goes through the dispatcher, and a
// command running lenient returns immediately after signaling.
type RunFunc func(ctx context.Context, inv *signal.Invocation, args []string) error

type Command struct {
	Name string
	Help string
	Run  RunFunc
}

// CommandName derives the CLI name from the Go-style command name,
// e.g. "FlushNamespace" -> "flush-namespace".
func CommandName(goName string) string {
	return strcase.ToKebab(goName)
}

func (t *Toolkit) register(goName, help string, run RunFunc) {
	name := CommandName(goName)
	t.commands[name] = &Command{Name: name, Help: help, Run: run}
}

// Lookup returns the registered command, if any.
func (t *Toolkit) Lookup(name string) (*Command, bool) {
	cmd, ok := t.commands[name]
	return cmd, ok
}

// Commands lists all registered commands sorted by name.
func (t *Toolkit) Commands() []*Command {
	out := make([]*Command, 0, len(t.commands))
	for _, cmd := range t.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
