// Package messages renders localized, imperative feedback strings. The
// catalog ships English and Korean, matching the app's supported languages.
package messages

import (
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs used by the feedback generators.
const (
	NoSubject       = "no_subject"
	AspectSwitch    = "aspect_switch"
	ShotStepBack    = "shot_step_back"
	ShotMoveCloser  = "shot_move_closer"
	CoverageCloser  = "coverage_closer"
	CoverageBack    = "coverage_back"
	MoveLeft        = "move_left"
	MoveRight       = "move_right"
	MoveUp          = "move_up"
	MoveDown        = "move_down"
	HeadroomMore    = "headroom_more"
	HeadroomLess    = "headroom_less"
	LeadroomMore    = "leadroom_more"
	LeadroomLess    = "leadroom_less"
	PoseBend        = "pose_bend"
	PoseStraighten  = "pose_straighten"
	ShouldersLevel  = "shoulders_level"
	LimbLeftArm     = "limb_left_arm"
	LimbRightArm    = "limb_right_arm"
	LimbLeftLeg     = "limb_left_leg"
	LimbRightLeg    = "limb_right_leg"
)

// Catalog resolves message IDs for one language.
type Catalog struct {
	localizer *i18n.Localizer
}

// NewCatalog builds the bundle and a localizer for the given BCP 47 tag,
// falling back to English for unknown tags or missing translations.
func NewCatalog(lang string) *Catalog {
	bundle := i18n.NewBundle(language.English)
	addEnglish(bundle)
	addKorean(bundle)
	return &Catalog{localizer: i18n.NewLocalizer(bundle, lang, language.English.String())}
}

// Render resolves a message ID with optional template data. A missing ID is
// a programming error; it logs and returns the ID so the UI never sees an
// empty instruction.
func (c *Catalog) Render(id string, data map[string]any) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		slog.Error("message lookup failed", "id", id, "error", err)
		return id
	}
	return s
}

func addEnglish(b *i18n.Bundle) {
	b.MustAddMessages(language.English,
		&i18n.Message{ID: NoSubject, Other: "Show your subject in the frame"},
		&i18n.Message{ID: AspectSwitch, Other: "Switch the camera to {{.Target}}"},
		&i18n.Message{ID: ShotStepBack, Other: "Step back to widen the shot"},
		&i18n.Message{ID: ShotMoveCloser, Other: "Move closer to tighten the shot"},
		&i18n.Message{ID: CoverageCloser, Other: "Move closer so the subject fills more of the frame"},
		&i18n.Message{ID: CoverageBack, Other: "Step back to give the subject more room"},
		&i18n.Message{ID: MoveLeft, Other: "Move the camera left"},
		&i18n.Message{ID: MoveRight, Other: "Move the camera right"},
		&i18n.Message{ID: MoveUp, Other: "Raise the camera"},
		&i18n.Message{ID: MoveDown, Other: "Lower the camera"},
		&i18n.Message{ID: HeadroomMore, Other: "Tilt up to leave more room above the head"},
		&i18n.Message{ID: HeadroomLess, Other: "Tilt down to reduce the room above the head"},
		&i18n.Message{ID: LeadroomMore, Other: "Leave more space on the side your subject faces"},
		&i18n.Message{ID: LeadroomLess, Other: "Reduce the space on the side your subject faces"},
		&i18n.Message{ID: PoseBend, Other: "Bend the {{.Limb}} about {{.Degrees}} degrees more"},
		&i18n.Message{ID: PoseStraighten, Other: "Straighten the {{.Limb}} about {{.Degrees}} degrees"},
		&i18n.Message{ID: ShouldersLevel, Other: "Level the shoulders"},
		&i18n.Message{ID: LimbLeftArm, Other: "left arm"},
		&i18n.Message{ID: LimbRightArm, Other: "right arm"},
		&i18n.Message{ID: LimbLeftLeg, Other: "left leg"},
		&i18n.Message{ID: LimbRightLeg, Other: "right leg"},
	)
}

func addKorean(b *i18n.Bundle) {
	b.MustAddMessages(language.Korean,
		&i18n.Message{ID: NoSubject, Other: "피사체가 화면에 보이게 해주세요"},
		&i18n.Message{ID: AspectSwitch, Other: "카메라 비율을 {{.Target}}로 변경하세요"},
		&i18n.Message{ID: ShotStepBack, Other: "뒤로 물러나서 더 넓게 담아주세요"},
		&i18n.Message{ID: ShotMoveCloser, Other: "더 가까이 다가가서 촬영하세요"},
		&i18n.Message{ID: CoverageCloser, Other: "피사체가 화면을 더 채우도록 가까이 가세요"},
		&i18n.Message{ID: CoverageBack, Other: "피사체 여백이 생기도록 뒤로 물러나세요"},
		&i18n.Message{ID: MoveLeft, Other: "카메라를 왼쪽으로 이동하세요"},
		&i18n.Message{ID: MoveRight, Other: "카메라를 오른쪽으로 이동하세요"},
		&i18n.Message{ID: MoveUp, Other: "카메라를 위로 올리세요"},
		&i18n.Message{ID: MoveDown, Other: "카메라를 아래로 내리세요"},
		&i18n.Message{ID: HeadroomMore, Other: "머리 위 여백을 조금 늘려주세요"},
		&i18n.Message{ID: HeadroomLess, Other: "머리 위 여백을 줄여주세요"},
		&i18n.Message{ID: LeadroomMore, Other: "시선 방향 여백을 늘려주세요"},
		&i18n.Message{ID: LeadroomLess, Other: "시선 방향 여백을 줄여주세요"},
		&i18n.Message{ID: PoseBend, Other: "{{.Limb}}을 {{.Degrees}}도 정도 더 굽혀주세요"},
		&i18n.Message{ID: PoseStraighten, Other: "{{.Limb}}을 {{.Degrees}}도 정도 펴주세요"},
		&i18n.Message{ID: ShouldersLevel, Other: "어깨를 수평으로 맞춰주세요"},
		&i18n.Message{ID: LimbLeftArm, Other: "왼팔"},
		&i18n.Message{ID: LimbRightArm, Other: "오른팔"},
		&i18n.Message{ID: LimbLeftLeg, Other: "왼다리"},
		&i18n.Message{ID: LimbRightLeg, Other: "오른다리"},
	)
}
