package valkey

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Addresses []string `mapstructure:"addresses" validate:"required,dive,hostname_port"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

func (c Config) Validate() error {
	if len(c.Addresses) == 0 {
		return fmt.Errorf("at least one address is required")
	}
	return nil
}

const (
	valkeyAddressesKey = "VALKEY_ADDRESSES"
	valkeyUsernameKey  = "VALKEY_USERNAME"
	valkeyPasswordKey  = "VALKEY_PASSWORD"
)

func NewConfigFromEnv() (*Config, error) {
	var addresses []string
	if raw := os.Getenv(valkeyAddressesKey); raw != "" {
		addresses = strings.Split(raw, ",")
	}
	c := &Config{
		Addresses: addresses,
		Username:  os.Getenv(valkeyUsernameKey),
		Password:  os.Getenv(valkeyPasswordKey),
	}
	err := c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}
