package parameter

// System Execution Priorities (lower runs first)
// The order is the per-frame producer-before-consumer contract:
// intent is sampled, the avatar moves, then readers observe the finished transform
const (
	PriorityInput       = 10
	PriorityCharacter   = 20
	PriorityAnimation   = 30 // After character triggers, blends weights
	PriorityCamera      = 40 // Reads transform
	PriorityProximity   = 50 // Reads transform, writes store
	PriorityTimekeeper  = 900
	PriorityDiagnostics = 1000 // After all others, telemetry collection
)
