package build

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Set at link time via -ldflags "-X ...".
var (
	ServiceName = "adminkit"
	Version     = "dev"
)

// GlobalInstanceId identifies one process instance across all log lines.
var GlobalInstanceId = strings.ToLower(ulid.Make().String()) //nolint:gochecknoglobals // process identity
