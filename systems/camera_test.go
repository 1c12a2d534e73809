package systems

import (
	"testing"

	"github.com/automoto/koopa/components"
	"github.com/stretchr/testify/assert"
)

func TestFollowCamera(t *testing.T) {
	t.Run("eases toward the player", func(t *testing.T) {
		cam := &components.CameraData{}
		FollowCamera(cam, 1000, 600, 1600)
		assert.InDelta(t, 70, cam.X, 1e-9)
	})

	t.Run("clamps to the level", func(t *testing.T) {
		cam := &components.CameraData{}
		FollowCamera(cam, 50, 600, 1600)
		assert.Equal(t, 0.0, cam.X)

		for i := 0; i < 500; i++ {
			FollowCamera(cam, 1590, 600, 1600)
		}
		assert.Equal(t, 1000.0, cam.X)
	})

	t.Run("narrow levels pin to zero", func(t *testing.T) {
		cam := &components.CameraData{X: 30}
		FollowCamera(cam, 200, 600, 400)
		assert.Equal(t, 0.0, cam.X)
	})
}
