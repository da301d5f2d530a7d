// Package pose compares two partially-visible keypoint sets and reports
// per-limb joint-angle differences. Its defining property is graceful
// behavior under partial data: a joint missing from either frame is never
// compared and never reported as an error.
package pose

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
)

// Extent classifies how much of the body is comparable across both frames.
type Extent int

const (
	ExtentUnknown Extent = iota
	ExtentPortrait
	ExtentUpperBody
	ExtentFullBody
)

func (e Extent) String() string {
	switch e {
	case ExtentPortrait:
		return "portrait"
	case ExtentUpperBody:
		return "upper_body"
	case ExtentFullBody:
		return "full_body"
	default:
		return "unknown"
	}
}

// Limb identifies one of the four compared limb triplets.
type Limb int

const (
	LeftArm Limb = iota
	RightArm
	LeftLeg
	RightLeg
)

var limbNames = map[Limb]string{
	LeftArm:  "left_arm",
	RightArm: "right_arm",
	LeftLeg:  "left_leg",
	RightLeg: "right_leg",
}

func (l Limb) String() string {
	if n, ok := limbNames[l]; ok {
		return n
	}
	return "unknown"
}

// Joints returns the limb's (proximal, middle, distal) joint indices. The
// interior angle is measured at the middle joint.
func (l Limb) Joints() (int, int, int) {
	switch l {
	case LeftArm:
		return measure.LeftShoulder, measure.LeftElbow, measure.LeftWrist
	case RightArm:
		return measure.RightShoulder, measure.RightElbow, measure.RightWrist
	case LeftLeg:
		return measure.LeftHip, measure.LeftKnee, measure.LeftAnkle
	default:
		return measure.RightHip, measure.RightKnee, measure.RightAnkle
	}
}

// AngleComparison is one compared limb angle, in degrees.
type AngleComparison struct {
	Limb       Limb
	Reference  float64
	Current    float64
	Difference float64
}

// Deviation is a limb whose angle difference exceeds the correction
// threshold, with the direction the subject should move it.
type Deviation struct {
	Limb      Limb
	Bend      bool // true: bend further; false: straighten
	Current   float64
	Target    float64
	Magnitude float64
}

// Result is the outcome of comparing two keypoint sets.
type Result struct {
	Extent        Extent
	Angles        []AngleComparison
	Deviations    []Deviation
	MissingGroups []measure.Group
	ShoulderTilt  *float64 // degrees, set when the current frame's shoulders are tilted but the reference's are level
	Accuracy      float64
}

// Comparator performs adaptive pose comparison. Stateless.
type Comparator struct {
	visibility float64
}

// NewComparator creates a comparator with the given visibility threshold.
func NewComparator(visibility float64) *Comparator {
	return &Comparator{visibility: visibility}
}

// Compare restricts all computation to joints visible in both frames,
// classifies the comparable extent, and measures interior limb angles.
// Accuracy defaults to 1.0 when nothing was comparable: no data is not a
// mismatch.
func (c *Comparator) Compare(ref, cur []measure.Keypoint) Result {
	comparable := c.comparableIndices(ref, cur)

	res := Result{
		Extent:   classifyExtent(comparable),
		Accuracy: 1.0,
	}
	for _, g := range measure.AllGroups() {
		if !groupVisible(g, comparable) {
			res.MissingGroups = append(res.MissingGroups, g)
		}
	}

	total := 0.0
	for _, limb := range []Limb{LeftArm, RightArm, LeftLeg, RightLeg} {
		p, m, d := limb.Joints()
		if !comparable[p] || !comparable[m] || !comparable[d] {
			continue // limb silently excluded
		}
		refAngle, ok := interiorAngle(ref[p], ref[m], ref[d])
		if !ok {
			continue
		}
		curAngle, ok := interiorAngle(cur[p], cur[m], cur[d])
		if !ok {
			continue
		}
		diff := math.Abs(refAngle - curAngle)
		res.Angles = append(res.Angles, AngleComparison{
			Limb:       limb,
			Reference:  refAngle,
			Current:    curAngle,
			Difference: diff,
		})
		total += math.Max(0, 1.0-diff/180.0)

		if diff > AngleThreshold {
			res.Deviations = append(res.Deviations, Deviation{
				Limb: limb,
				// A larger current angle means the limb is straighter than
				// the reference, so it should bend.
				Bend:      curAngle > refAngle,
				Current:   curAngle,
				Target:    refAngle,
				Magnitude: diff,
			})
		}
	}
	if len(res.Angles) > 0 {
		res.Accuracy = total / float64(len(res.Angles))
	}

	res.ShoulderTilt = shoulderTiltDeviation(ref, cur, comparable)
	return res
}

// comparableIndices intersects the two visible-index sets.
func (c *Comparator) comparableIndices(ref, cur []measure.Keypoint) map[int]bool {
	n := min(len(ref), len(cur))
	out := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		if ref[i].Visible(c.visibility) && cur[i].Visible(c.visibility) {
			out[i] = true
		}
	}
	return out
}

// groupVisible requires at least half of a group's member joints to be
// comparable.
func groupVisible(g measure.Group, comparable map[int]bool) bool {
	members := measure.GroupIndices(g)
	if len(members) == 0 {
		return false
	}
	n := 0
	for _, idx := range members {
		if comparable[idx] {
			n++
		}
	}
	return n*2 >= len(members)
}

func classifyExtent(comparable map[int]bool) Extent {
	head := groupVisible(measure.GroupHead, comparable)
	shoulders := groupVisible(measure.GroupShoulders, comparable)
	torso := groupVisible(measure.GroupTorso, comparable)
	legs := groupVisible(measure.GroupLegs, comparable)

	switch {
	case torso && legs:
		return ExtentFullBody
	case shoulders && torso:
		return ExtentUpperBody
	case head:
		return ExtentPortrait
	default:
		return ExtentUnknown
	}
}

// interiorAngle measures the angle at the middle joint in degrees via the
// three-point formula. Degenerate (near zero-length) vectors report false
// rather than propagating NaN.
func interiorAngle(a, m, b measure.Keypoint) (float64, bool) {
	v1 := a.Point().Vec2().Sub(m.Point().Vec2())
	v2 := b.Point().Vec2().Sub(m.Point().Vec2())
	l1, l2 := v1.Len(), v2.Len()
	if l1 < minVectorLength || l2 < minVectorLength {
		return 0, false
	}
	cos := mgl64.Clamp(v1.Dot(v2)/(l1*l2), -1, 1)
	return math.Acos(cos) * 180 / math.Pi, true
}

// shoulderTiltDeviation reports the current shoulder tilt when the reference
// holds its shoulders level but the current frame does not.
func shoulderTiltDeviation(ref, cur []measure.Keypoint, comparable map[int]bool) *float64 {
	if !comparable[measure.LeftShoulder] || !comparable[measure.RightShoulder] {
		return nil
	}
	refTilt := shoulderTilt(ref)
	curTilt := shoulderTilt(cur)
	if refTilt <= LevelShoulderTolerance && curTilt > ShoulderTiltThreshold {
		return &curTilt
	}
	return nil
}

// shoulderTilt returns the absolute shoulder-line deviation from horizontal
// in degrees, folding the angle so a turned-away subject still measures
// small tilt.
func shoulderTilt(kps []measure.Keypoint) float64 {
	l := kps[measure.LeftShoulder].Point()
	r := kps[measure.RightShoulder].Point()
	deg := math.Abs(math.Atan2(r.Y-l.Y, r.X-l.X) * 180 / math.Pi)
	if deg > 90 {
		deg = math.Abs(deg - 180)
	}
	return deg
}
