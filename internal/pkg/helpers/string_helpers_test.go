package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimToNil(t *testing.T) {
	t.Parallel()

	value := "  hello  "
	got := TrimToNil(&value)
	require.NotNil(t, got)
	assert.Equal(t, "hello", *got)

	blank := "   "
	assert.Nil(t, TrimToNil(&blank))

	empty := ""
	assert.Nil(t, TrimToNil(&empty))

	assert.Nil(t, TrimToNil(nil))
}

func TestSplitCSV(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"go", "sql", "docker"}, SplitCSV("go, sql ,docker"))
	assert.Equal(t, []string{"go"}, SplitCSV("go"))
	assert.Nil(t, SplitCSV(""))
	assert.Nil(t, SplitCSV("  "))
	assert.Nil(t, SplitCSV(",, ,"))
}
