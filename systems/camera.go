package systems

import (
	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/gamemath"
)

// FollowCamera eases the camera toward centering targetX and keeps the
// viewport inside [0, levelWidth].
func FollowCamera(cam *components.CameraData, targetX, viewportWidth, levelWidth float64) {
	target := targetX - viewportWidth/2
	cam.X = gamemath.Approach(cam.X, target, cfg.Camera.FollowSmoothing)
	cam.X = gamemath.Clamp(cam.X, 0, levelWidth-viewportWidth)
}
