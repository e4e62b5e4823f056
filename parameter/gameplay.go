package parameter

import "time"

// Physics
const (
	// Gravity is added to vertical velocity every frame (pixels/frame²)
	Gravity = 0.6

	// TargetBottomMargin is how far below the frame a target's top edge may fall before respawn
	TargetBottomMargin = 50.0

	// BombBottomMargin is how far below the frame a bomb's top edge may fall before removal
	BombBottomMargin = 80.0

	// SideMargin is the lateral drift allowed past either frame edge
	SideMargin = 200.0
)

// Targets
const (
	TargetCount  = 6
	TargetRadius = 30.0

	// Launch velocity ranges in pixels/frame, negative Y is upward
	TargetVXMin = -4.0
	TargetVXMax = 4.0
	TargetVYMin = -25.0
	TargetVYMax = -18.0

	// TargetSpawnInset keeps the launch column away from the frame edges
	TargetSpawnInset = 50

	// Launch depth below the bottom edge, added to the radius
	TargetSpawnDepthMin = 20
	TargetSpawnDepthMax = 120

	// TargetStaggerMax is the extra random depth applied at round start
	TargetStaggerMax = 150
)

// Bombs
const (
	BombRadius   = 28.0
	BombInterval = 6 * time.Second
	BombMax      = 2

	// Bomb vertical launch range is the target range shifted by these offsets
	BombVYMinOffset = -4.0
	BombVYMaxOffset = -2.0

	BombSpawnInset    = 80
	BombSpawnDepthMin = 40
	BombSpawnDepthMax = 140
)

// Slicing
const (
	// SliceSpeedThreshold is the minimum tracked-point speed (pixels/frame) for a hit
	SliceSpeedThreshold = 12.0

	// TrailLength is the number of frames kept in the trail window
	TrailLength = 20
)

// Effects
const (
	HitEffectDuration       = 60 * time.Millisecond
	ExplosionEffectDuration = 120 * time.Millisecond

	// Effect ring radius over the entity radius
	HitRingPad       = 12.0
	ExplosionRingPad = 20.0
)
