// Package gap computes per-dimension differences between the reference
// measurement and the current frame.
package gap

// Tolerances and priority tiers per monitored dimension. Priority 1 is the
// most urgent tier. The position-priority ambiguity in earlier revisions is
// resolved here: position is tier 2, matching the published table.
const (
	HorizontalTolerance = 0.08 // fraction of frame width
	VerticalTolerance   = 0.08 // fraction of frame height
	DistanceTolerance   = 0.3  // meters
	TiltTolerance       = 5.0  // degrees
	FaceYawTolerance    = 15.0 // degrees
	PaddingTolerance    = 0.12 // normalized margin asymmetry

	PriorityPosition    = 2
	PriorityDistance    = 3
	PriorityAspectRatio = 3
	PriorityPadding     = 3
	PriorityCameraAngle = 4
	PriorityTilt        = 4
	PriorityComposition = 5
	PriorityGaze        = 6
	PriorityFaceYaw     = 6
)

// Linear-decay scales for the completion score: an out-of-tolerance
// difference loses score proportionally to its excess over the scale.
const (
	positionScale = 0.5
	distanceScale = 2.0
	tiltScale     = 45.0
	yawScale      = 90.0
	paddingScale  = 0.5
	// Categorical mismatches carry difference 1.0 over a unit scale, so a
	// mismatch contributes zero until resolved.
	categoricalScale = 1.0
)
