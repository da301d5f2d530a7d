package framing

import (
	"math"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
)

// RoomStatus grades headroom or leadroom against its accepted band.
type RoomStatus int

const (
	RoomOptimal RoomStatus = iota
	RoomTooLittle
	RoomTooMuch
)

func (s RoomStatus) String() string {
	switch s {
	case RoomTooLittle:
		return "too_little"
	case RoomTooMuch:
		return "too_much"
	default:
		return "optimal"
	}
}

// Headroom is the vertical space above the subject's head.
type Headroom struct {
	Value  float64
	Status RoomStatus
	Severe bool
}

// Leadroom is the frame fraction on the side the subject faces. Only present
// when the head or gaze is turned left or right.
type Leadroom struct {
	Value      float64
	FacingLeft bool
	Status     RoomStatus
}

// Severity grades a cropping violation.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityCritical
)

func (s Severity) String() string {
	if s == SeverityCritical {
		return "critical"
	}
	return "warning"
}

// Violation is a structural joint too close to a frame edge.
type Violation struct {
	Joint      int
	Severity   Severity
	EdgeDist   float64
}

// Result is the framing classification of one measurement. Missing inputs
// leave the corresponding field at its neutral default rather than failing
// the whole analysis.
type Result struct {
	ShotType    ShotType
	Headroom    *Headroom
	Leadroom    *Leadroom
	CameraAngle measure.CameraAngle
	Violations  []Violation
	Coverage    float64
	DistanceM   *float64
}

// Analyzer classifies framing. Stateless; safe to share.
type Analyzer struct {
	visibility      float64
	distanceScaling bool
}

// NewAnalyzer creates a framing analyzer. distanceScaling widens headroom
// bands for far subjects (tunable behavior, off by default).
func NewAnalyzer(visibility float64, distanceScaling bool) *Analyzer {
	return &Analyzer{visibility: visibility, distanceScaling: distanceScaling}
}

// Analyze classifies a single measurement. Every sub-computation degrades
// independently: missing keypoints short-circuit only the parts that need
// them.
func (a *Analyzer) Analyze(m *measure.FrameMeasurement) Result {
	res := Result{
		ShotType:    a.classifyShot(m),
		CameraAngle: a.deriveCameraAngle(m),
		Violations:  a.croppingViolations(m),
	}
	res.DistanceM = a.estimateDistance(m)
	res.Headroom = a.analyzeHeadroom(m, res.ShotType, res.DistanceM)
	res.Leadroom = a.analyzeLeadroom(m)
	res.Coverage = a.bodyCoverage(m, res.ShotType)
	return res
}

// analyzeHeadroom measures space above the topmost confident landmark,
// refined by the face rectangle when present (the head extends above the
// face box by a fixed multiplier).
func (a *Analyzer) analyzeHeadroom(m *measure.FrameMeasurement, shot ShotType, distance *float64) *Headroom {
	top, ok := a.headTop(m)
	if !ok || shot == ShotUnknown {
		return nil
	}

	band, found := headroomRanges[shot]
	if !found {
		return nil
	}
	if a.distanceScaling && distance != nil && *distance > scalingBaseDistanceM {
		factor := *distance / scalingBaseDistanceM
		band.Min *= factor
		band.Max *= factor
	}

	h := &Headroom{Value: top, Status: RoomOptimal}
	switch {
	case top < band.Min:
		h.Status = RoomTooLittle
		h.Severe = top < band.Min/SevereBandFactor
	case top > band.Max:
		h.Status = RoomTooMuch
		h.Severe = top > band.Max*SevereBandFactor
	}
	return h
}

// headTop estimates the normalized y of the top of the subject's head.
func (a *Analyzer) headTop(m *measure.FrameMeasurement) (float64, bool) {
	top := math.Inf(1)
	limit := min(len(m.Keypoints), measure.NumBodyKeypoints)
	for i := 0; i < limit; i++ {
		if kp := m.Keypoints[i]; kp.Visible(a.visibility) && kp.Y < top {
			top = kp.Y
		}
	}
	if m.Face != nil {
		// The hairline sits above the detected face box.
		faceTop := m.Face.Rect.Y - m.Face.Rect.H*0.25
		if faceTop < top {
			top = faceTop
		}
	}
	if math.IsInf(top, 1) {
		return 0, false
	}
	return math.Max(0, top), true
}

// analyzeLeadroom is meaningful only when the subject faces left or right.
func (a *Analyzer) analyzeLeadroom(m *measure.FrameMeasurement) *Leadroom {
	facingLeft, turned := a.facingDirection(m)
	if !turned {
		return nil
	}
	pos, ok := m.SubjectPosition(a.visibility)
	if !ok {
		return nil
	}

	room := pos.X
	if !facingLeft {
		room = 1 - pos.X
	}
	l := &Leadroom{Value: room, FacingLeft: facingLeft, Status: RoomOptimal}
	switch {
	case room < LeadroomMin:
		l.Status = RoomTooLittle
	case room > LeadroomMax:
		l.Status = RoomTooMuch
	}
	return l
}

// facingDirection prefers the gaze classifier, falling back to face yaw.
// Positive yaw means the head is turned toward the frame's right.
func (a *Analyzer) facingDirection(m *measure.FrameMeasurement) (facingLeft, turned bool) {
	if m.Gaze != nil {
		if left, ok := m.Gaze.Direction.Horizontal(); ok {
			return left, true
		}
		if m.Gaze.Direction == measure.GazeCenter {
			return false, false
		}
	}
	if m.Face != nil && m.Face.Yaw != nil {
		if yaw := *m.Face.Yaw; math.Abs(yaw) > faceTurnedYaw {
			return yaw < 0, true
		}
	}
	return false, false
}

// deriveCameraAngle uses the eye-to-shoulder drop relative to face size,
// normalized against an eye-level baseline. A tilted shoulder line overrides
// everything as a dutch angle.
func (a *Analyzer) deriveCameraAngle(m *measure.FrameMeasurement) measure.CameraAngle {
	if tilt := a.shoulderLineTilt(m); tilt != nil && *tilt > dutchTiltDegrees {
		return measure.AngleDutch
	}

	eyeY, ok := a.meanY(m, measure.LeftEye, measure.RightEye)
	if !ok {
		return measure.AngleUnknown
	}
	shoulderY, ok := a.meanY(m, measure.LeftShoulder, measure.RightShoulder)
	if !ok {
		return measure.AngleUnknown
	}
	faceSize := a.faceSize(m)
	if faceSize <= 0 {
		return measure.AngleUnknown
	}

	norm := ((shoulderY - eyeY) / faceSize) / eyeLevelBaseline
	switch {
	case norm >= veryLowAngleRatio:
		return measure.AngleVeryLow
	case norm >= lowAngleRatio:
		return measure.AngleLow
	case norm <= veryHighAngleRatio:
		return measure.AngleVeryHigh
	case norm <= highAngleRatio:
		return measure.AngleHigh
	default:
		return measure.AngleEyeLevel
	}
}

func (a *Analyzer) shoulderLineTilt(m *measure.FrameMeasurement) *float64 {
	l, lok := m.Keypoint(measure.LeftShoulder)
	r, rok := m.Keypoint(measure.RightShoulder)
	if !lok || !rok || !l.Visible(a.visibility) || !r.Visible(a.visibility) {
		return nil
	}
	deg := math.Abs(math.Atan2(r.Y-l.Y, r.X-l.X) * 180 / math.Pi)
	if deg > 90 {
		deg = math.Abs(deg - 180)
	}
	return &deg
}

func (a *Analyzer) meanY(m *measure.FrameMeasurement, indices ...int) (float64, bool) {
	sum, n := 0.0, 0
	for _, idx := range indices {
		if kp, ok := m.Keypoint(idx); ok && kp.Visible(a.visibility) {
			sum += kp.Y
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// faceSize prefers the detected face rectangle, falling back to the
// ear-to-ear distance.
func (a *Analyzer) faceSize(m *measure.FrameMeasurement) float64 {
	if m.Face != nil && m.Face.Rect.H > 0 {
		return m.Face.Rect.H
	}
	l, lok := m.Keypoint(measure.LeftEar)
	r, rok := m.Keypoint(measure.RightEar)
	if lok && rok && l.Visible(a.visibility) && r.Visible(a.visibility) {
		return l.Point().DistanceTo(r.Point()) * 1.2
	}
	return 0
}

// croppingViolations flags confident structural joints within the edge
// margin, graded by distance to the nearest edge.
func (a *Analyzer) croppingViolations(m *measure.FrameMeasurement) []Violation {
	var out []Violation
	limit := min(len(m.Keypoints), measure.NumBodyKeypoints)
	for i := 0; i < limit; i++ {
		kp := m.Keypoints[i]
		if !kp.Visible(a.visibility) {
			continue
		}
		dist := math.Min(math.Min(kp.X, 1-kp.X), math.Min(kp.Y, 1-kp.Y))
		if dist >= EdgeMargin {
			continue
		}
		sev := SeverityWarning
		if dist < CriticalEdgeMargin {
			sev = SeverityCritical
		}
		out = append(out, Violation{Joint: i, Severity: sev, EdgeDist: dist})
	}
	return out
}

// bodyCoverage is the bounding-box area of the joints relevant to the shot
// type, used to catch too-tight or too-loose framing independent of the
// shot classification.
func (a *Analyzer) bodyCoverage(m *measure.FrameMeasurement, shot ShotType) float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	for _, idx := range relevantJoints(shot) {
		kp, ok := m.Keypoint(idx)
		if !ok || !kp.Visible(a.visibility) {
			continue
		}
		found = true
		minX = math.Min(minX, kp.X)
		maxX = math.Max(maxX, kp.X)
		minY = math.Min(minY, kp.Y)
		maxY = math.Max(maxY, kp.Y)
	}
	if !found {
		return 0
	}
	return (maxX - minX) * (maxY - minY)
}

// estimateDistance passes through the upstream depth estimate when present,
// otherwise falls back to the inverse face-width model.
func (a *Analyzer) estimateDistance(m *measure.FrameMeasurement) *float64 {
	if m.Depth != nil {
		d := m.Depth.Meters
		return &d
	}
	if m.Face == nil || m.Face.Rect.W <= 0 {
		return nil
	}
	d := depthCalibration / m.Face.Rect.W
	d = math.Min(math.Max(d, minDistanceM), maxDistanceM)
	return &d
}
