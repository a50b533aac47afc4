package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("TODO_DEBUG", "")
		assert.False(t, DebugEnabled())
	})

	t.Run("enabled when set", func(t *testing.T) {
		t.Setenv("TODO_DEBUG", "1")
		assert.True(t, DebugEnabled())
	})
}
