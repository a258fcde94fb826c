package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindingsHaveRequiredFields(t *testing.T) {
	for _, b := range All {
		assert.NotEmpty(t, b.Action, "binding %v has no action", b.Keys)
		assert.NotEmpty(t, b.Keys, "binding %s has no keys", b.Action)
		assert.NotEmpty(t, b.Description, "binding %s has no description", b.Action)
	}
}

func TestBindings_NoKeyBoundTwice(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			prev, dup := seen[k]
			assert.False(t, dup, "key %q bound to %s and %s", k, prev, b.Action)
			seen[k] = b.Action
		}
	}
}
