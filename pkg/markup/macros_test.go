package markup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyMacro(t *testing.T, name, text string, args []string) string {
	t.Helper()
	transform, ok := NewContext().LookupMacro(name)
	require.True(t, ok, "builtin macro %q not registered", name)

	out, err := transform.Transform(text, args)
	require.NoError(t, err)
	return out
}

func TestBuiltinMacros(t *testing.T) {
	assert.Equal(t, "SHOUT", applyMacro(t, "upper", "shout", nil))
	assert.Equal(t, "quiet", applyMacro(t, "lower", "Quiet", nil))
	assert.Equal(t, "A Title", applyMacro(t, "title", "a title", nil))
}

func TestTimeMacro(t *testing.T) {
	t.Run("replaces the placeholder with the layout argument", func(t *testing.T) {
		got := applyMacro(t, "time", "year {time}", []string{"2006"})
		assert.Equal(t, "year "+time.Now().Format("2006"), got)
	})

	t.Run("text without the placeholder passes through", func(t *testing.T) {
		assert.Equal(t, "no clock here", applyMacro(t, "time", "no clock here", nil))
	})
}
