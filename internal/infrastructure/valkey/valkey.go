package valkey

import (
	"github.com/valkey-io/valkey-go"
	"github.com/valkey-io/valkey-go/valkeyotel"
)

const (
	DefaultScanCount = 100
)

func NewClient(cfg *Config) (valkey.Client, error) {
	client, err := valkeyotel.NewClient(valkey.ClientOption{
		InitAddress: cfg.Addresses,
		Username:    cfg.Username,
		Password:    cfg.Password,
		ClientName:  "adminkit",
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
