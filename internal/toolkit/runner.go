package toolkit

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/opservo/adminkit/internal/signal"
)

// Target is one remote endpoint a fan-out command runs against.
type Target struct {
	Name string
	Addr string
}

// ShortName satisfies the dispatcher's target normalization capability.
func (t Target) ShortName() string {
	return t.Name
}

// Result is the outcome of one command run against one target.
type Result struct {
	Target Target
	Inv    *signal.Invocation
	Err    error
}

// RunAll runs fn once per target concurrently. Each target gets its own
// invocation, so one target's interrupt flag never leaks into another's.
func (t *Toolkit) RunAll(
	ctx context.Context,
	command string,
	targets []Target,
	fn func(ctx context.Context, inv *signal.Invocation, target Target) error,
) []Result {
	results := make([]Result, len(targets))
	p := pool.New().WithContext(ctx)
	for i, target := range targets {
		p.Go(func(ctx context.Context) error {
			inv := signal.NewInvocation(command, t.strict)
			results[i] = Result{Target: target, Inv: inv, Err: fn(ctx, inv, target)}
			return nil
		})
	}
	_ = p.Wait()
	return results
}
