package valkey

import (
	"time"

	"github.com/valkey-io/valkey-go"
	"github.com/valkey-io/valkey-go/valkeylock"
)

// NewLocker guards mutating commands (flush, delete) against concurrent runs
// on the same namespace.
func NewLocker(client valkey.Client, keyValidity time.Duration) (valkeylock.Locker, error) {
	lock, err := valkeylock.NewLocker(valkeylock.LockerOption{
		ClientBuilder: func(option valkey.ClientOption) (valkey.Client, error) {
			return client, nil
		},
		KeyPrefix:      "adminkit:lock:",
		KeyValidity:    keyValidity,
		ExtendInterval: time.Minute,
		TryNextAfter:   time.Second,
	})
	if err != nil {
		return nil, err
	}
	return lock, nil
}
