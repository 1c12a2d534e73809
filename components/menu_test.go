package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenTick(t *testing.T) {
	s := ScreenData{Remaining: 1}
	assert.True(t, s.Tick(0.5))
	assert.False(t, s.Tick(0.5))
	assert.Equal(t, 1.0, s.Elapsed)
}
