// Package framing classifies a single measurement against photographic
// convention: shot type, headroom, leadroom, camera angle, cropping, and
// body coverage.
package framing

// headroomRange is the accepted headroom band for a shot type, as a fraction
// of frame height.
type headroomRange struct {
	Min float64
	Max float64
}

// Published per-shot-type headroom bands. The severe band extends each bound
// by 1.5x.
var headroomRanges = map[ShotType]headroomRange{
	ExtremeCloseup: {0.02, 0.08},
	Closeup:        {0.03, 0.10},
	MediumCloseup:  {0.04, 0.10},
	MediumShot:     {0.05, 0.12},
	AmericanShot:   {0.05, 0.12},
	MediumFull:     {0.04, 0.11},
	FullShot:       {0.03, 0.10},
	LongShot:       {0.02, 0.12},
}

const (
	// SevereBandFactor widens a violated headroom bound before the status
	// escalates to severe.
	SevereBandFactor = 1.5

	// Leadroom is the frame fraction on the side the subject faces.
	LeadroomMin = 0.15
	LeadroomMax = 0.35

	// Face yaw (radians) beyond which the head counts as turned, making
	// leadroom meaningful.
	faceTurnedYaw = 0.26 // ~15 degrees

	// Camera angle derivation: eye-to-shoulder drop over face height,
	// normalized against the eye-level baseline.
	eyeLevelBaseline  = 0.85
	lowAngleRatio     = 1.25
	veryLowAngleRatio = 1.6
	highAngleRatio    = 0.75
	veryHighAngleRatio = 0.4
	dutchTiltDegrees  = 10.0

	// Cropping margins (normalized image space).
	EdgeMargin         = 0.03
	CriticalEdgeMargin = 0.01

	// Extreme closeup refinement: a head-only frame whose face exceeds this
	// fraction of frame height.
	extremeCloseupFaceHeight = 0.30

	// Full/long refinement for schemas without foot landmarks: the nose-to-
	// ankle span implies the feet fit inside the frame.
	fullShotMaxSpan = 0.75
	longShotMaxSpan = 0.45

	// Face-width distance estimation, used when the upstream depth estimate
	// is absent. distance = k / faceWidth, clamped.
	depthCalibration = 0.2
	minDistanceM     = 0.3
	maxDistanceM     = 5.0

	// Distance-scaled headroom bands (config-gated): bands widen
	// proportionally for subjects beyond this distance.
	scalingBaseDistanceM = 2.0
)
