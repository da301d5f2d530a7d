package framing

import "github.com/tryangle-app/tryangle/backend/guidance/internal/measure"

// ShotType is the 8-level photographic framing ladder, ordered by how much
// of the body is visible.
type ShotType int

const (
	ShotUnknown ShotType = iota - 1
	ExtremeCloseup
	Closeup
	MediumCloseup
	MediumShot
	AmericanShot
	MediumFull
	FullShot
	LongShot
)

var shotNames = map[ShotType]string{
	ShotUnknown:    "unknown",
	ExtremeCloseup: "extreme_closeup",
	Closeup:        "closeup",
	MediumCloseup:  "medium_closeup",
	MediumShot:     "medium_shot",
	AmericanShot:   "american_shot",
	MediumFull:     "medium_full",
	FullShot:       "full_shot",
	LongShot:       "long_shot",
}

func (s ShotType) String() string {
	if n, ok := shotNames[s]; ok {
		return n
	}
	return "unknown"
}

// Distance returns the absolute index difference on the shot ladder,
// reporting false when either side is unknown.
func Distance(a, b ShotType) (int, bool) {
	if a == ShotUnknown || b == ShotUnknown {
		return 0, false
	}
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d, true
}

// classifyShot walks the joint groups top-down: each additional visible
// structural level widens the shot. Ambiguous head-only frames are refined
// by relative face size; full versus long is refined by the subject's
// vertical span.
func (a *Analyzer) classifyShot(m *measure.FrameMeasurement) ShotType {
	visible := func(indices ...int) bool {
		n := 0
		for _, idx := range indices {
			if kp, ok := m.Keypoint(idx); ok && kp.Visible(a.visibility) {
				n++
			}
		}
		return n*2 >= len(indices) && n > 0
	}

	head := visible(measure.Nose, measure.LeftEye, measure.RightEye, measure.LeftEar, measure.RightEar)
	shoulders := visible(measure.LeftShoulder, measure.RightShoulder)
	hips := visible(measure.LeftHip, measure.RightHip)
	knees := visible(measure.LeftKnee, measure.RightKnee)
	ankles := visible(measure.LeftAnkle, measure.RightAnkle)
	feet := a.feetVisible(m)

	if !head && !shoulders {
		return ShotUnknown
	}

	switch {
	case feet || ankles:
		span := a.subjectSpan(m)
		if feet || span <= fullShotMaxSpan {
			if span <= longShotMaxSpan {
				return LongShot
			}
			return FullShot
		}
		return MediumFull
	case knees:
		return AmericanShot
	case hips:
		return MediumShot
	case shoulders:
		return MediumCloseup
	default:
		// Head only: an oversized face reads as extreme closeup.
		if m.Face != nil && m.Face.Rect.H >= extremeCloseupFaceHeight {
			return ExtremeCloseup
		}
		return Closeup
	}
}

// feetVisible checks the wholebody foot landmark range, which is optional in
// the base 17-point schema.
func (a *Analyzer) feetVisible(m *measure.FrameMeasurement) bool {
	if len(m.Keypoints) <= measure.FootIndexStart {
		return false
	}
	end := min(len(m.Keypoints), measure.FaceIndexStart)
	for i := measure.FootIndexStart; i < end; i++ {
		if m.Keypoints[i].Visible(a.visibility) {
			return true
		}
	}
	return false
}

// subjectSpan is the vertical extent of the visible body landmarks.
func (a *Analyzer) subjectSpan(m *measure.FrameMeasurement) float64 {
	top, bottom := 1.0, 0.0
	found := false
	limit := min(len(m.Keypoints), measure.NumBodyKeypoints)
	for i := 0; i < limit; i++ {
		kp := m.Keypoints[i]
		if !kp.Visible(a.visibility) {
			continue
		}
		found = true
		if kp.Y < top {
			top = kp.Y
		}
		if kp.Y > bottom {
			bottom = kp.Y
		}
	}
	if !found {
		return 0
	}
	return bottom - top
}

// relevantJoints returns the structural joints whose bounding box defines
// body coverage for the given shot type.
func relevantJoints(s ShotType) []int {
	head := []int{measure.Nose, measure.LeftEye, measure.RightEye, measure.LeftEar, measure.RightEar}
	upper := append(head, measure.LeftShoulder, measure.RightShoulder)
	mid := append(upper, measure.LeftElbow, measure.RightElbow, measure.LeftHip, measure.RightHip)
	lower := append(mid, measure.LeftKnee, measure.RightKnee)
	full := append(lower, measure.LeftAnkle, measure.RightAnkle)

	switch s {
	case ExtremeCloseup, Closeup:
		return head
	case MediumCloseup:
		return upper
	case MediumShot:
		return mid
	case AmericanShot:
		return lower
	case MediumFull, FullShot, LongShot:
		return full
	default:
		return full
	}
}
