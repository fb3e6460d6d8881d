// Package toolkit holds the administrative command library. Every command is
// a thin call-check-signal sequence over a remote service client; all
// termination policy lives in the signal dispatcher.
package toolkit

import (
	"context"
	"fmt"

	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/valkey-io/valkey-go"
	"github.com/valkey-io/valkey-go/valkeylock"
	"go.uber.org/zap"

	"github.com/opservo/adminkit/internal/config"
	"github.com/opservo/adminkit/internal/signal"
)

type Toolkit struct {
	dispatcher *signal.Dispatcher
	lg         *zap.Logger
	strict     bool
	commands   map[string]*Command

	valkey valkey.Client
	locker valkeylock.Locker
	s3     *awsS3.Client
}

func New(cfg *config.Config, lg *zap.Logger) *Toolkit {
	t := &Toolkit{
		dispatcher: signal.New(cfg.Toolkit.Prefix, signal.NewZapSink(lg)),
		lg:         lg,
		strict:     cfg.Toolkit.Strict,
		commands:   make(map[string]*Command),
	}
	t.registerValkeyCommands()
	t.registerS3Commands()
	return t
}

func (t *Toolkit) AttachValkey(client valkey.Client, locker valkeylock.Locker) {
	t.valkey = client
	t.locker = locker
}

func (t *Toolkit) AttachS3(client *awsS3.Client) {
	t.s3 = client
}

// Run executes one command under a fresh invocation. The invocation is
// returned so the caller can inspect the interrupt flag and failure history
// even when err is nil (lenient mode).
func (t *Toolkit) Run(ctx context.Context, name string, args []string) (*signal.Invocation, error) {
	cmd, ok := t.commands[name]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}
	inv := signal.NewInvocation(name, t.strict)
	err := cmd.Run(ctx, inv, args)
	return inv, err
}
