package gap

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
)

// Dimension identifies one monitored comparison dimension.
type Dimension int

const (
	DimHorizontalPosition Dimension = iota
	DimVerticalPosition
	DimDistance
	DimCameraAngle
	DimTilt
	DimComposition
	DimGaze
	DimFaceYaw
	DimAspectRatio
	DimPadding
)

var dimensionNames = map[Dimension]string{
	DimHorizontalPosition: "horizontal_position",
	DimVerticalPosition:   "vertical_position",
	DimDistance:           "distance",
	DimCameraAngle:        "camera_angle",
	DimTilt:               "tilt",
	DimComposition:        "composition",
	DimGaze:               "gaze",
	DimFaceYaw:            "face_yaw",
	DimAspectRatio:        "aspect_ratio",
	DimPadding:            "padding",
}

func (d Dimension) String() string {
	if n, ok := dimensionNames[d]; ok {
		return n
	}
	return "unknown"
}

// Gap is a quantified reference-vs-current difference along one dimension.
type Gap struct {
	Dimension  Dimension
	Current    *float64
	Target     *float64
	Difference float64
	Tolerance  float64
	Priority   int
	Metadata   map[string]string
}

// WithinTolerance reports whether the difference is acceptable.
func (g Gap) WithinTolerance() bool {
	return g.Difference <= g.Tolerance
}

// Analyzer compares measurement snapshots. It is stateless; a single
// instance may be shared across ticks.
type Analyzer struct {
	visibility float64
}

// NewAnalyzer creates an analyzer using the given keypoint visibility
// threshold for position lookups.
func NewAnalyzer(visibility float64) *Analyzer {
	return &Analyzer{visibility: visibility}
}

// Analyze returns the out-of-tolerance gaps between reference and current,
// sorted by priority (lower integer first); dimensions of equal priority keep
// their evaluation order.
func (a *Analyzer) Analyze(ref, cur *measure.FrameMeasurement) []Gap {
	evaluated := a.evaluate(ref, cur)
	gaps := make([]Gap, 0, len(evaluated))
	for _, g := range evaluated {
		if !g.WithinTolerance() {
			gaps = append(gaps, g)
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Priority < gaps[j].Priority
	})
	return gaps
}

// Score returns the completion score in [0,1]: the mean over every evaluated
// dimension of 1.0 when within tolerance, otherwise a linear decay of the
// excess difference against the dimension's scale. No evaluable dimensions
// scores 1.0 (nothing contradicts a match).
func (a *Analyzer) Score(ref, cur *measure.FrameMeasurement) float64 {
	evaluated := a.evaluate(ref, cur)
	if len(evaluated) == 0 {
		return 1.0
	}
	scores := make([]float64, len(evaluated))
	for i, g := range evaluated {
		scores[i] = dimensionScore(g)
	}
	return stat.Mean(scores, nil)
}

func dimensionScore(g Gap) float64 {
	if g.WithinTolerance() {
		return 1.0
	}
	excess := g.Difference - g.Tolerance
	return math.Max(0, 1.0-excess/decayScale(g.Dimension))
}

func decayScale(d Dimension) float64 {
	switch d {
	case DimHorizontalPosition, DimVerticalPosition:
		return positionScale
	case DimDistance:
		return distanceScale
	case DimTilt:
		return tiltScale
	case DimFaceYaw:
		return yawScale
	case DimPadding:
		return paddingScale
	default:
		return categoricalScale
	}
}

// evaluate computes every dimension for which both snapshots carry data, in
// the fixed dimension-table order.
func (a *Analyzer) evaluate(ref, cur *measure.FrameMeasurement) []Gap {
	var out []Gap
	add := func(g Gap, ok bool) {
		if ok {
			out = append(out, g)
		}
	}

	refPos, refOK := ref.SubjectPosition(a.visibility)
	curPos, curOK := cur.SubjectPosition(a.visibility)
	if refOK && curOK {
		add(numericGap(DimHorizontalPosition, curPos.X, refPos.X, HorizontalTolerance, PriorityPosition), true)
		add(numericGap(DimVerticalPosition, curPos.Y, refPos.Y, VerticalTolerance, PriorityPosition), true)
	}

	if ref.Depth != nil && cur.Depth != nil {
		add(numericGap(DimDistance, cur.Depth.Meters, ref.Depth.Meters, DistanceTolerance, PriorityDistance), true)
	}

	if ref.CameraAngle != measure.AngleUnknown && cur.CameraAngle != measure.AngleUnknown {
		add(categoricalGap(DimCameraAngle, cur.CameraAngle.String(), ref.CameraAngle.String(), PriorityCameraAngle), true)
	}

	add(numericGap(DimTilt, cur.TiltAngle, ref.TiltAngle, TiltTolerance, PriorityTilt), true)

	if ref.Composition != measure.CompositionUnknown && cur.Composition != measure.CompositionUnknown {
		add(categoricalGap(DimComposition, cur.Composition.String(), ref.Composition.String(), PriorityComposition), true)
	}

	if ref.Gaze != nil && cur.Gaze != nil &&
		ref.Gaze.Direction != measure.GazeUnknown && cur.Gaze.Direction != measure.GazeUnknown {
		add(categoricalGap(DimGaze, cur.Gaze.Direction.String(), ref.Gaze.Direction.String(), PriorityGaze), true)
	}

	if ref.Face != nil && cur.Face != nil && ref.Face.Yaw != nil && cur.Face.Yaw != nil {
		refYaw := toDegrees(*ref.Face.Yaw)
		curYaw := toDegrees(*cur.Face.Yaw)
		add(numericGap(DimFaceYaw, curYaw, refYaw, FaceYawTolerance, PriorityFaceYaw), true)
	}

	if ref.Aspect != measure.AspectUnknown && cur.Aspect != measure.AspectUnknown {
		add(categoricalGap(DimAspectRatio, cur.Aspect.String(), ref.Aspect.String(), PriorityAspectRatio), true)
	}

	if ref.Padding != nil && cur.Padding != nil {
		add(paddingGap(ref.Padding, cur.Padding), true)
	}

	return out
}

func numericGap(d Dimension, current, target, tolerance float64, priority int) Gap {
	c, t := current, target
	return Gap{
		Dimension:  d,
		Current:    &c,
		Target:     &t,
		Difference: math.Abs(current - target),
		Tolerance:  tolerance,
		Priority:   priority,
	}
}

// categoricalGap follows the convention for exact-match dimensions: a
// mismatch is difference 1.0 over tolerance 0, with both values carried in
// metadata for message generation.
func categoricalGap(d Dimension, current, target string, priority int) Gap {
	diff := 0.0
	if current != target {
		diff = 1.0
	}
	return Gap{
		Dimension:  d,
		Difference: diff,
		Tolerance:  0.0,
		Priority:   priority,
		Metadata:   map[string]string{"current": current, "target": target},
	}
}

// paddingGap flags excessive asymmetry: the largest per-side margin deviation
// from the reference.
func paddingGap(ref, cur *measure.Padding) Gap {
	worst := 0.0
	for _, d := range []float64{
		math.Abs(cur.Top - ref.Top),
		math.Abs(cur.Bottom - ref.Bottom),
		math.Abs(cur.Left - ref.Left),
		math.Abs(cur.Right - ref.Right),
	} {
		worst = math.Max(worst, d)
	}
	g := Gap{
		Dimension:  DimPadding,
		Difference: worst,
		Tolerance:  PaddingTolerance,
		Priority:   PriorityPadding,
	}
	return g
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
