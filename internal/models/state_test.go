package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateAddIsIdempotent(t *testing.T) {
	var s State
	s.Add("5.7.0")
	s.Add("5.7.0")
	assert.Equal(t, []string{"5.7.0"}, s.Installed)
	assert.True(t, s.Has("5.7.0"))
	assert.False(t, s.Has("5.6.0"))
}

func TestStateRemoveClearsInUse(t *testing.T) {
	s := State{Installed: []string{"5.6.0", "5.7.0"}, InUse: "5.7.0"}

	s.Remove("5.7.0")
	assert.Equal(t, []string{"5.6.0"}, s.Installed)
	assert.Empty(t, s.InUse)

	s.InUse = "5.6.0"
	s.Remove("main-snapshot-2022-09-12")
	assert.Equal(t, "5.6.0", s.InUse, "removing an absent name leaves in_use alone")
}
