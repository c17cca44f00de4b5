package parameter

// Camera follow rig
// Offsets are relative to avatar position, factors are per-tick blends
const (
	// CameraLookHeight raises the look target to head level
	CameraLookHeight = 1.0

	// CameraHeight and CameraTrail place the camera above and behind the avatar (+Z is behind)
	CameraHeight = 3.0
	CameraTrail  = 5.0

	// CameraLookLerp smooths the look target
	CameraLookLerp = 0.1

	// CameraFollowLerp smooths the camera position, slower than the look target to hide jitter
	CameraFollowLerp = 0.05
)

// Camera starting pose before the first follow tick
const (
	CameraStartX = 0.0
	CameraStartY = 2.0
	CameraStartZ = 5.0

	CameraFieldOfView = 75.0
)
