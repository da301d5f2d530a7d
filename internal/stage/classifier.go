package stage

import (
	"math"
	"sort"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/framing"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/gap"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/messages"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/pose"
)

const (
	// Shot-ladder gap that forces a distance correction before anything else.
	shotLadderGap = 2

	// Coverage area difference triggering a fine distance correction once the
	// shot ladder roughly agrees.
	coverageThreshold = 0.15

	// Subject position distance (normalized) triggering a reposition, and the
	// settled distance below which framing detail becomes actionable.
	positionThreshold = 0.15
	positionSettled   = 0.05

	headroomThreshold = 0.05
	leadroomThreshold = 0.10

	maxPoseItems = 3
)

// Input bundles the per-tick analyzer outputs.
type Input struct {
	Ref        *measure.FrameMeasurement
	Cur        *measure.FrameMeasurement
	RefFraming framing.Result
	CurFraming framing.Result
	Pose       pose.Result
	Gaps       []gap.Gap
}

// Output is the classified stage with its rendered instructions. Items is
// empty only at StageComplete. Satisfied reports every tracked category
// independently of which single stage is surfaced.
type Output struct {
	Stage     Stage
	Items     []FeedbackItem
	Satisfied map[Category]bool
}

// Classifier applies the staged correction order. mirror flips horizontal
// directions for front-camera previews, where the on-screen image is
// left-right reversed.
type Classifier struct {
	catalog    *messages.Catalog
	visibility float64
	mirror     bool
}

func NewClassifier(catalog *messages.Catalog, visibility float64, mirror bool) *Classifier {
	return &Classifier{catalog: catalog, visibility: visibility, mirror: mirror}
}

// Classify walks the stages in order and stops at the first one with an
// unresolved correction, then attaches the all-category satisfaction report.
func (c *Classifier) Classify(in Input) Output {
	out := c.classify(in)
	out.Satisfied = c.satisfaction(in)
	return out
}

func (c *Classifier) classify(in Input) Output {
	if item, ok := c.aspectItem(in); ok {
		return Output{Stage: StageAspectRatio, Items: []FeedbackItem{item}}
	}

	shotDist, shotsKnown := framing.Distance(in.CurFraming.ShotType, in.RefFraming.ShotType)
	if shotsKnown && shotDist >= shotLadderGap {
		return Output{Stage: StageShotType, Items: []FeedbackItem{c.shotItem(in)}}
	}
	if shotsKnown && shotDist <= 1 {
		if item, ok := c.coverageItem(in); ok {
			return Output{Stage: StageCoverage, Items: []FeedbackItem{item}}
		}
	}

	posDist, posKnown := c.positionDistance(in)
	settled := !shotsKnown || shotDist == 0
	if settled && posKnown && posDist > positionThreshold {
		return Output{Stage: StagePosition, Items: []FeedbackItem{c.positionItem(in)}}
	}

	if posKnown && posDist <= positionSettled {
		if items := c.framingDetailItems(in); len(items) > 0 {
			return Output{Stage: StageFramingDetail, Items: items}
		}
	}

	if items := c.poseItems(in); len(items) > 0 {
		return Output{Stage: StagePose, Items: items}
	}

	return Output{Stage: StageComplete}
}

// satisfaction evaluates each tracked category on its own. Position and
// aspect come from the gap list (their gap tolerances are the "done" bar);
// the rest reuse the staging thresholds. Categories that cannot be evaluated
// on this frame count as satisfied, matching the neutral-default policy of
// the analyzers.
func (c *Classifier) satisfaction(in Input) map[Category]bool {
	sat := make(map[Category]bool)
	for _, cat := range TrackedCategories() {
		sat[cat] = true
	}

	for _, g := range in.Gaps {
		switch g.Dimension {
		case gap.DimHorizontalPosition, gap.DimVerticalPosition:
			sat[CategoryPosition] = false
		case gap.DimAspectRatio:
			sat[CategoryAspectRatio] = false
		}
	}

	if dist, known := framing.Distance(in.CurFraming.ShotType, in.RefFraming.ShotType); known {
		if dist >= shotLadderGap {
			sat[CategoryShotType] = false
		}
		if math.Abs(in.CurFraming.Coverage-in.RefFraming.Coverage) > coverageThreshold {
			sat[CategoryCoverage] = false
		}
	}

	if refH, curH := in.RefFraming.Headroom, in.CurFraming.Headroom; refH != nil && curH != nil {
		if math.Abs(curH.Value-refH.Value) > headroomThreshold {
			sat[CategoryHeadroom] = false
		}
	}
	if refL, curL := in.RefFraming.Leadroom, in.CurFraming.Leadroom; refL != nil && curL != nil {
		if math.Abs(curL.Value-refL.Value) > leadroomThreshold {
			sat[CategoryLeadroom] = false
		}
	}

	for _, d := range in.Pose.Deviations {
		sat[limbCategory(d.Limb)] = false
	}
	if in.Pose.ShoulderTilt != nil {
		sat[CategoryPosture] = false
	}

	return sat
}

// NoSubjectItem is the single instruction emitted while the live frame has no
// detectable subject. It precedes every stage.
func (c *Classifier) NoSubjectItem() FeedbackItem {
	return FeedbackItem{
		ID:       string(CategoryNoSubject),
		Category: CategoryNoSubject,
		Priority: 0,
		Icon:     "person",
		Message:  c.catalog.Render(messages.NoSubject, nil),
	}
}

func (c *Classifier) aspectItem(in Input) (FeedbackItem, bool) {
	if in.Ref.Aspect == measure.AspectUnknown || in.Cur.Aspect == measure.AspectUnknown {
		return FeedbackItem{}, false
	}
	if in.Ref.Aspect == in.Cur.Aspect {
		return FeedbackItem{}, false
	}
	return FeedbackItem{
		ID:       string(CategoryAspectRatio),
		Category: CategoryAspectRatio,
		Priority: int(StageAspectRatio) + 1,
		Icon:     "ratio",
		Message:  c.catalog.Render(messages.AspectSwitch, map[string]any{"Target": in.Ref.Aspect.String()}),
	}, true
}

// shotItem asks the photographer to walk. A lower index on the ladder means a
// tighter shot than the reference wants, so step back.
func (c *Classifier) shotItem(in Input) FeedbackItem {
	id := messages.ShotMoveCloser
	if int(in.CurFraming.ShotType) < int(in.RefFraming.ShotType) {
		id = messages.ShotStepBack
	}
	cur := float64(in.CurFraming.ShotType)
	target := float64(in.RefFraming.ShotType)
	return FeedbackItem{
		ID:       string(CategoryShotType),
		Category: CategoryShotType,
		Priority: int(StageShotType) + 1,
		Icon:     "distance",
		Message:  c.catalog.Render(id, nil),
		Current:  &cur,
		Target:   &target,
		Unit:     "shot",
	}
}

func (c *Classifier) coverageItem(in Input) (FeedbackItem, bool) {
	diff := in.CurFraming.Coverage - in.RefFraming.Coverage
	if math.Abs(diff) <= coverageThreshold {
		return FeedbackItem{}, false
	}
	id := messages.CoverageBack
	if diff < 0 {
		id = messages.CoverageCloser
	}
	cur, target, tol := in.CurFraming.Coverage, in.RefFraming.Coverage, coverageThreshold
	return FeedbackItem{
		ID:        string(CategoryCoverage),
		Category:  CategoryCoverage,
		Priority:  int(StageCoverage) + 1,
		Icon:      "distance",
		Message:   c.catalog.Render(id, nil),
		Current:   &cur,
		Target:    &target,
		Tolerance: &tol,
	}, true
}

func (c *Classifier) positionDistance(in Input) (float64, bool) {
	refPos, refOK := in.Ref.SubjectPosition(c.visibility)
	curPos, curOK := in.Cur.SubjectPosition(c.visibility)
	if !refOK || !curOK {
		return 0, false
	}
	return curPos.DistanceTo(refPos), true
}

// positionItem instructs a camera move along the dominant offset axis. Moving
// the camera right shifts the subject left in the frame, so a subject sitting
// right of target means "move right".
func (c *Classifier) positionItem(in Input) FeedbackItem {
	refPos, _ := in.Ref.SubjectPosition(c.visibility)
	curPos, _ := in.Cur.SubjectPosition(c.visibility)
	dx := curPos.X - refPos.X
	dy := curPos.Y - refPos.Y

	var id string
	var cur, target float64
	if math.Abs(dx) >= math.Abs(dy) {
		id = messages.MoveLeft
		if dx > 0 {
			id = messages.MoveRight
		}
		if c.mirror {
			id = flipHorizontal(id)
		}
		cur, target = curPos.X, refPos.X
	} else {
		id = messages.MoveUp
		if dy > 0 {
			id = messages.MoveDown
		}
		cur, target = curPos.Y, refPos.Y
	}
	tol := positionThreshold
	return FeedbackItem{
		ID:        string(CategoryPosition),
		Category:  CategoryPosition,
		Priority:  int(StagePosition) + 1,
		Icon:      "move",
		Message:   c.catalog.Render(id, nil),
		Current:   &cur,
		Target:    &target,
		Tolerance: &tol,
	}
}

func flipHorizontal(id string) string {
	switch id {
	case messages.MoveLeft:
		return messages.MoveRight
	case messages.MoveRight:
		return messages.MoveLeft
	}
	return id
}

func (c *Classifier) framingDetailItems(in Input) []FeedbackItem {
	var items []FeedbackItem

	if refH, curH := in.RefFraming.Headroom, in.CurFraming.Headroom; refH != nil && curH != nil {
		if diff := curH.Value - refH.Value; math.Abs(diff) > headroomThreshold {
			id := messages.HeadroomLess
			if diff < 0 {
				id = messages.HeadroomMore
			}
			cur, target, tol := curH.Value, refH.Value, headroomThreshold
			items = append(items, FeedbackItem{
				ID:        string(CategoryHeadroom),
				Category:  CategoryHeadroom,
				Priority:  int(StageFramingDetail) + 1,
				Icon:      "tilt",
				Message:   c.catalog.Render(id, nil),
				Current:   &cur,
				Target:    &target,
				Tolerance: &tol,
			})
		}
	}

	if refL, curL := in.RefFraming.Leadroom, in.CurFraming.Leadroom; refL != nil && curL != nil {
		if diff := curL.Value - refL.Value; math.Abs(diff) > leadroomThreshold {
			id := messages.LeadroomLess
			if diff < 0 {
				id = messages.LeadroomMore
			}
			cur, target, tol := curL.Value, refL.Value, leadroomThreshold
			items = append(items, FeedbackItem{
				ID:        string(CategoryLeadroom),
				Category:  CategoryLeadroom,
				Priority:  int(StageFramingDetail) + 1,
				Icon:      "move",
				Message:   c.catalog.Render(id, nil),
				Current:   &cur,
				Target:    &target,
				Tolerance: &tol,
			})
		}
	}

	return items
}

// poseItems renders the largest limb deviations, at most maxPoseItems, with a
// shoulder-level reminder filling a remaining slot.
func (c *Classifier) poseItems(in Input) []FeedbackItem {
	devs := make([]pose.Deviation, len(in.Pose.Deviations))
	copy(devs, in.Pose.Deviations)
	sort.SliceStable(devs, func(i, j int) bool {
		return devs[i].Magnitude > devs[j].Magnitude
	})
	if len(devs) > maxPoseItems {
		devs = devs[:maxPoseItems]
	}

	var items []FeedbackItem
	for _, d := range devs {
		id := messages.PoseStraighten
		if d.Bend {
			id = messages.PoseBend
		}
		cur, target, tol := d.Current, d.Target, pose.AngleThreshold
		items = append(items, FeedbackItem{
			ID:       "pose_" + d.Limb.String(),
			Category: limbCategory(d.Limb),
			Priority: int(StagePose) + 1,
			Icon:     "pose",
			Message: c.catalog.Render(id, map[string]any{
				"Limb":    c.catalog.Render(limbMessageID(d.Limb), nil),
				"Degrees": int(math.Round(d.Magnitude)),
			}),
			Current:   &cur,
			Target:    &target,
			Tolerance: &tol,
			Unit:      "deg",
		})
	}

	if in.Pose.ShoulderTilt != nil && len(items) < maxPoseItems {
		tilt := *in.Pose.ShoulderTilt
		items = append(items, FeedbackItem{
			ID:       string(CategoryPosture),
			Category: CategoryPosture,
			Priority: int(StagePose) + 1,
			Icon:     "pose",
			Message:  c.catalog.Render(messages.ShouldersLevel, nil),
			Current:  &tilt,
			Unit:     "deg",
		})
	}

	return items
}

func limbCategory(l pose.Limb) Category {
	switch l {
	case pose.LeftArm:
		return CategoryPoseLeftArm
	case pose.RightArm:
		return CategoryPoseRightArm
	case pose.LeftLeg:
		return CategoryPoseLeftLeg
	default:
		return CategoryPoseRightLeg
	}
}

func limbMessageID(l pose.Limb) string {
	switch l {
	case pose.LeftArm:
		return messages.LimbLeftArm
	case pose.RightArm:
		return messages.LimbRightArm
	case pose.LeftLeg:
		return messages.LimbLeftLeg
	default:
		return messages.LimbRightLeg
	}
}
