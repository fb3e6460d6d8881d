package toolkit

import (
	"context"
	"strings"

	"go.uber.org/zap"

	valkeyInfra "github.com/opservo/adminkit/internal/infrastructure/valkey"
	"github.com/opservo/adminkit/internal/signal"
)

func (t *Toolkit) registerValkeyCommands() {
	t.register("PingServer", "check that the valkey server answers", t.pingServer)
	t.register("ServerInfo", "dump the valkey server info sections", t.serverInfo)
	t.register("DeleteKeys", "delete the given keys", t.deleteKeys)
	t.register("FlushNamespace", "delete every key under <namespace>:", t.flushNamespace)
}

func (t *Toolkit) pingServer(ctx context.Context, inv *signal.Invocation, _ []string) error {
	if t.valkey == nil {
		return t.dispatcher.Signal(inv, "valkey is not configured",
			signal.WithCategory(signal.InvalidOperation))
	}

	if err := t.waitValkeyReachable(ctx); err != nil {
		return t.dispatcher.Signal(inv, "valkey did not answer",
			signal.WithCause(valkeyInfra.Wrap(err)))
	}

	t.lg.Info("valkey is reachable", zap.String("run_id", inv.RunId.String()))
	return nil
}

func (t *Toolkit) serverInfo(ctx context.Context, inv *signal.Invocation, _ []string) error {
	if t.valkey == nil {
		return t.dispatcher.Signal(inv, "valkey is not configured",
			signal.WithCategory(signal.InvalidOperation))
	}

	info, err := t.valkey.Do(ctx, t.valkey.B().Info().Build()).ToString()
	if err != nil {
		return t.dispatcher.Signal(inv, "cannot read server info",
			signal.WithCause(valkeyInfra.Wrap(err)))
	}

	for _, line := range strings.Split(info, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			t.lg.Info("info section", zap.String("section", strings.TrimSpace(line[1:])))
		}
	}
	return nil
}

func (t *Toolkit) deleteKeys(ctx context.Context, inv *signal.Invocation, args []string) error {
	if t.valkey == nil {
		return t.dispatcher.Signal(inv, "valkey is not configured",
			signal.WithCategory(signal.InvalidOperation))
	}
	if len(args) == 0 {
		return t.dispatcher.Signal(inv, "at least one key is required",
			signal.WithCategory(signal.InvalidOperation))
	}

	deleted := int64(0)
	for _, key := range args {
		n, err := t.valkey.Do(ctx, t.valkey.B().Del().Key(key).Build()).AsInt64()
		if err != nil {
			if sigErr := t.dispatcher.Signal(inv, "cannot delete key",
				signal.WithCause(valkeyInfra.Wrap(err)),
				signal.WithTarget(key),
				signal.WithContinue(),
			); sigErr != nil {
				return sigErr
			}
			continue
		}
		deleted += n
	}

	t.lg.Info("keys deleted", zap.Int64("count", deleted))
	return nil
}

func (t *Toolkit) flushNamespace(ctx context.Context, inv *signal.Invocation, args []string) error {
	if t.valkey == nil {
		return t.dispatcher.Signal(inv, "valkey is not configured",
			signal.WithCategory(signal.InvalidOperation))
	}
	if len(args) != 1 || args[0] == "" {
		return t.dispatcher.Signal(inv, "exactly one namespace is required",
			signal.WithCategory(signal.InvalidOperation))
	}
	namespace := args[0]

	lockCtx, cancel, err := t.locker.WithContext(ctx, "flush:"+namespace)
	if err != nil {
		return t.dispatcher.Signal(inv, "cannot lock namespace for flush",
			signal.WithCause(valkeyInfra.Wrap(err)),
			signal.WithTarget(namespace))
	}
	defer cancel()

	pattern := namespace + ":*"
	var cursor uint64
	removed := int64(0)
	for {
		entry, err := t.valkey.Do(lockCtx,
			t.valkey.B().Scan().Cursor(cursor).Match(pattern).Count(valkeyInfra.DefaultScanCount).Build(),
		).AsScanEntry()
		if err != nil {
			return t.dispatcher.Signal(inv, "scan failed",
				signal.WithCause(valkeyInfra.Wrap(err)),
				signal.WithTarget(namespace))
		}

		if len(entry.Elements) > 0 {
			n, err := t.valkey.Do(lockCtx, t.valkey.B().Del().Key(entry.Elements...).Build()).AsInt64()
			if err != nil {
				// Partial batches are expected under concurrent writers; keep
				// scanning and report the batch that failed.
				if sigErr := t.dispatcher.Signal(inv, "cannot delete key batch",
					signal.WithCause(valkeyInfra.Wrap(err)),
					signal.WithTarget(namespace),
					signal.WithContinue(),
				); sigErr != nil {
					return sigErr
				}
			} else {
				removed += n
			}
		}

		cursor = entry.Cursor
		if cursor == 0 {
			break
		}
	}

	t.lg.Info("namespace flushed",
		zap.String("namespace", namespace),
		zap.Int64("removed", removed),
	)
	return nil
}
