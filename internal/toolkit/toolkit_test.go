package toolkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/opservo/adminkit/internal/config"
	"github.com/opservo/adminkit/internal/signal"
)

func newTestToolkit(strict bool) *Toolkit {
	return New(&config.Config{
		Toolkit: config.ToolkitConfig{Prefix: "adminkit", Strict: strict},
	}, zap.NewNop())
}

func TestCommandName(t *testing.T) {
	require.Equal(t, "flush-namespace", CommandName("FlushNamespace"))
	require.Equal(t, "ping-server", CommandName("PingServer"))
}

func TestBuiltinCommandsRegistered(t *testing.T) {
	tk := newTestToolkit(false)

	for _, name := range []string{
		"ping-server", "server-info", "delete-keys", "flush-namespace",
		"list-buckets", "ensure-bucket", "purge-bucket",
	} {
		_, ok := tk.Lookup(name)
		require.True(t, ok, "command %s", name)
	}

	cmds := tk.Commands()
	require.Len(t, cmds, 7)
	require.Equal(t, "delete-keys", cmds[0].Name)
}

func TestRunUnknownCommand(t *testing.T) {
	tk := newTestToolkit(false)

	_, err := tk.Run(context.Background(), "no-such-command", nil)
	require.Error(t, err)
}

func TestRunUnconfiguredServiceLenient(t *testing.T) {
	tk := newTestToolkit(false)

	inv, err := tk.Run(context.Background(), "ping-server", nil)
	require.NoError(t, err)
	require.True(t, inv.Interrupted())

	history := inv.History()
	require.Len(t, history, 1)
	require.Equal(t, signal.InvalidOperation, history[0].Category)
	require.Equal(t, "adminkit_pingServer", history[0].ID)
}

func TestRunUnconfiguredServiceStrict(t *testing.T) {
	tk := newTestToolkit(true)

	inv, err := tk.Run(context.Background(), "list-buckets", nil)
	require.Error(t, err)
	require.True(t, inv.Interrupted())

	var rec *signal.FailureRecord
	require.ErrorAs(t, err, &rec)
	require.Equal(t, "adminkit_listBuckets", rec.ID)
}

func TestRunAllIndependentInvocations(t *testing.T) {
	tk := newTestToolkit(false)
	dispatcher := tk.dispatcher

	targets := []Target{
		{Name: "db-01", Addr: "10.0.0.1:6379"},
		{Name: "db-02", Addr: "10.0.0.2:6379"},
		{Name: "db-03", Addr: "10.0.0.3:6379"},
	}

	results := tk.RunAll(context.Background(), "probe", targets,
		func(_ context.Context, inv *signal.Invocation, target Target) error {
			if target.Name == "db-02" {
				return dispatcher.Signal(inv, "probe failed",
					signal.WithCategory(signal.Connection),
					signal.WithTarget(target),
				)
			}
			return nil
		})

	require.Len(t, results, 3)
	for i, res := range results {
		require.Equal(t, targets[i], res.Target, "result order must match targets")
		require.NoError(t, res.Err)
	}
	require.False(t, results[0].Inv.Interrupted())
	require.True(t, results[1].Inv.Interrupted())
	require.False(t, results[2].Inv.Interrupted())

	history := results[1].Inv.History()
	require.Len(t, history, 1)
	require.Equal(t, "db-02", history[0].Target)
}
