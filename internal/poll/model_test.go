package poll

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestHasOption(t *testing.T) {
	p := Poll{Options: pq.StringArray{"beach", "mall"}}

	require.True(t, p.hasOption("beach"))
	require.False(t, p.hasOption("moon"))
	require.False(t, p.hasOption(""))
}
