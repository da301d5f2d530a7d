package measure

// COCO body keypoint indices. Extended wholebody schemas (up to 133 points)
// keep the body at 0-16 and append feet, face, and hand landmarks; everything
// past the base 17 must be treated as optional.
const (
	Nose          = 0
	LeftEye       = 1
	RightEye      = 2
	LeftEar       = 3
	RightEar      = 4
	LeftShoulder  = 5
	RightShoulder = 6
	LeftElbow     = 7
	RightElbow    = 8
	LeftWrist     = 9
	RightWrist    = 10
	LeftHip       = 11
	RightHip      = 12
	LeftKnee      = 13
	RightKnee     = 14
	LeftAnkle     = 15
	RightAnkle    = 16

	NumBodyKeypoints = 17

	// Wholebody extension ranges (RTMPose 133-point layout).
	FootIndexStart         = 17
	FaceIndexStart         = 23
	HandIndexStart         = 91
	NumWholebodyKeypoints  = 133
	DefaultVisibilityScore = 0.5
)

// Group names an anatomical joint group used for pose-extent and shot-type
// classification.
type Group int

const (
	GroupHead Group = iota
	GroupShoulders
	GroupTorso
	GroupLegs
)

var groupNames = map[Group]string{
	GroupHead:      "head",
	GroupShoulders: "shoulders",
	GroupTorso:     "torso",
	GroupLegs:      "legs",
}

func (g Group) String() string {
	if n, ok := groupNames[g]; ok {
		return n
	}
	return "unknown"
}

// GroupIndices returns the member joint indices of a group.
func GroupIndices(g Group) []int {
	switch g {
	case GroupHead:
		return []int{Nose, LeftEye, RightEye, LeftEar, RightEar}
	case GroupShoulders:
		return []int{LeftShoulder, RightShoulder}
	case GroupTorso:
		return []int{LeftShoulder, RightShoulder, LeftHip, RightHip}
	case GroupLegs:
		return []int{LeftKnee, RightKnee, LeftAnkle, RightAnkle}
	default:
		return nil
	}
}

// AllGroups lists every anatomical group in classification order.
func AllGroups() []Group {
	return []Group{GroupHead, GroupShoulders, GroupTorso, GroupLegs}
}
