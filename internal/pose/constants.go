package pose

// Comparison thresholds, degrees unless noted.
const (
	// AngleThreshold is the limb-angle difference beyond which a
	// directional correction is reported.
	AngleThreshold = 15.0

	// Shoulder posture supplement: the reference is "level" under
	// LevelShoulderTolerance and the current frame is flagged past
	// ShoulderTiltThreshold.
	LevelShoulderTolerance = 10.0
	ShoulderTiltThreshold  = 20.0

	// minVectorLength guards the angle formula against coincident joints
	// (normalized units).
	minVectorLength = 1e-6
)
