// Package stage turns analyzer output into at most one coarse correction per
// tick. Corrections are ordered so that large-scale problems (wrong aspect,
// wrong shot) are fixed before fine ones (pose); later checks are suppressed
// until earlier ones pass.
package stage

// Stage is the first unresolved correction level for a tick.
type Stage int

const (
	StageAspectRatio Stage = iota
	StageShotType
	StageCoverage
	StagePosition
	StageFramingDetail
	StagePose
	StageComplete
)

var stageNames = map[Stage]string{
	StageAspectRatio:   "aspect_ratio",
	StageShotType:      "shot_type",
	StageCoverage:      "coverage",
	StagePosition:      "position",
	StageFramingDetail: "framing_detail",
	StagePose:          "pose",
	StageComplete:      "complete",
}

func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return "unknown"
}

// Category identifies the kind of correction an item asks for. The stability
// filter keys its per-item state on this.
type Category string

const (
	CategoryNoSubject    Category = "no_subject"
	CategoryAspectRatio  Category = "aspect_ratio"
	CategoryShotType     Category = "shot_type"
	CategoryCoverage     Category = "coverage"
	CategoryPosition     Category = "position"
	CategoryHeadroom     Category = "headroom"
	CategoryLeadroom     Category = "leadroom"
	CategoryPoseLeftArm  Category = "pose_left_arm"
	CategoryPoseRightArm Category = "pose_right_arm"
	CategoryPoseLeftLeg  Category = "pose_left_leg"
	CategoryPoseRightLeg Category = "pose_right_leg"
	CategoryPosture      Category = "posture"
)

// Sticky categories describe corrections the subject performs slowly; the
// stability filter holds them on screen across brief interruptions.
func (c Category) Sticky() bool {
	switch c {
	case CategoryPoseLeftArm, CategoryPoseRightArm, CategoryPoseLeftLeg, CategoryPoseRightLeg, CategoryPosture:
		return true
	}
	return false
}

// TrackedCategories returns every correction category in stage order. The
// per-tick progress report covers all of them, satisfied or not.
func TrackedCategories() []Category {
	return []Category{
		CategoryAspectRatio,
		CategoryShotType,
		CategoryCoverage,
		CategoryPosition,
		CategoryHeadroom,
		CategoryLeadroom,
		CategoryPoseLeftArm,
		CategoryPoseRightArm,
		CategoryPoseLeftLeg,
		CategoryPoseRightLeg,
		CategoryPosture,
	}
}

// CategoryStatus reports one tracked category for the multi-category progress
// UI: whether it currently needs no correction, plus its stable on-screen
// items if any.
type CategoryStatus struct {
	Category  Category       `json:"category"`
	Satisfied bool           `json:"satisfied"`
	Active    []FeedbackItem `json:"active_feedback,omitempty"`
}

// FeedbackItem is one rendered instruction for the UI.
type FeedbackItem struct {
	ID        string   `json:"id"`
	Category  Category `json:"category"`
	Priority  int      `json:"priority"`
	Icon      string   `json:"icon"`
	Message   string   `json:"message"`
	Current   *float64 `json:"current,omitempty"`
	Target    *float64 `json:"target,omitempty"`
	Tolerance *float64 `json:"tolerance,omitempty"`
	Unit      string   `json:"unit,omitempty"`
}
