package parameter

import (
	"time"
)

// Avatar Movement
const (
	// AvatarTopSpeed is the ground speed in units per second at full intent
	AvatarTopSpeed = 2.5

	// AvatarBound is the symmetric clamp applied to both ground axes
	AvatarBound = 10.0

	// AvatarVelocityLerp is the per-tick blend of current velocity toward target velocity
	AvatarVelocityLerp = 0.2

	// AvatarYawLerp is the per-tick blend of current yaw toward the facing angle
	AvatarYawLerp = 0.1
)

// Avatar Spawn
const (
	AvatarSpawnX = 0.0
	AvatarSpawnY = 1.0
	AvatarSpawnZ = 0.0
)

// Avatar Animation
const (
	// ClipWalk and ClipIdle follow the rig's armature naming
	ClipWalk = "CharacterArmature|Walk"
	ClipIdle = "CharacterArmature|Idle"

	// AnimationFade is the cross-fade between idle and walk
	AnimationFade = 500 * time.Millisecond
)
