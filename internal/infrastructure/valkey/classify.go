package valkey

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/valkey-io/valkey-go"

	"github.com/opservo/adminkit/internal/signal"
)

// Classify maps a valkey client error onto the toolkit's failure taxonomy.
// Anything we cannot place stays not-specified; the taxonomy is closed.
func Classify(err error) signal.Category {
	if err == nil {
		return signal.Unspecified
	}
	if verr, ok := valkey.IsValkeyErr(err); ok {
		msg := verr.Error()
		switch {
		case strings.HasPrefix(msg, "NOPERM"),
			strings.HasPrefix(msg, "NOAUTH"),
			strings.HasPrefix(msg, "WRONGPASS"):
			return signal.Permission
		case strings.HasPrefix(msg, "OOM"):
			return signal.ResourceLimit
		default:
			return signal.InvalidOperation
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, valkey.ErrClosing) ||
		errors.Is(err, context.DeadlineExceeded) {
		return signal.Connection
	}
	return signal.Unspecified
}

// Wrap attaches the classification so the dispatcher can inherit it.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return signal.Categorize(err, Classify(err))
}
