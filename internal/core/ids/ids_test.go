package ids_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opservo/adminkit/internal/core/ids"
)

func TestNewRunId(t *testing.T) {
	id := ids.NewRunId()

	require.Len(t, id.String(), 26)
	require.Equal(t, strings.ToLower(id.String()), id.String())
	require.NotEqual(t, id, ids.NewRunId())
}
