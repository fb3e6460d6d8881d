package ids

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// RunId correlates all failures and log lines of one command run.
type RunId string

func NewRunId() RunId {
	return RunId(strings.ToLower(ulid.Make().String()))
}

func (id RunId) String() string {
	return string(id)
}
