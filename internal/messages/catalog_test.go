package messages

import (
	"strings"
	"testing"
)

// every renderable ID with representative template data.
var allIDs = map[string]map[string]any{
	NoSubject:      nil,
	AspectSwitch:   {"Target": "4:3"},
	ShotStepBack:   nil,
	ShotMoveCloser: nil,
	CoverageCloser: nil,
	CoverageBack:   nil,
	MoveLeft:       nil,
	MoveRight:      nil,
	MoveUp:         nil,
	MoveDown:       nil,
	HeadroomMore:   nil,
	HeadroomLess:   nil,
	LeadroomMore:   nil,
	LeadroomLess:   nil,
	PoseBend:       {"Limb": "left arm", "Degrees": 20},
	PoseStraighten: {"Limb": "right leg", "Degrees": 15},
	ShouldersLevel: nil,
	LimbLeftArm:    nil,
	LimbRightArm:   nil,
	LimbLeftLeg:    nil,
	LimbRightLeg:   nil,
}

func TestEveryIDResolvesInBothLanguages(t *testing.T) {
	for _, lang := range []string{"en", "ko"} {
		c := NewCatalog(lang)
		for id, data := range allIDs {
			got := c.Render(id, data)
			if got == "" || got == id {
				t.Errorf("%s: %q did not resolve, got %q", lang, id, got)
			}
		}
	}
}

func TestTemplateDataInterpolates(t *testing.T) {
	c := NewCatalog("en")

	got := c.Render(AspectSwitch, map[string]any{"Target": "16:9"})
	if !strings.Contains(got, "16:9") {
		t.Errorf("aspect message %q should carry the target ratio", got)
	}

	got = c.Render(PoseBend, map[string]any{"Limb": "left arm", "Degrees": 25})
	if !strings.Contains(got, "left arm") || !strings.Contains(got, "25") {
		t.Errorf("pose message %q should carry limb and degrees", got)
	}
}

func TestKoreanCatalogLocalizes(t *testing.T) {
	en := NewCatalog("en").Render(NoSubject, nil)
	ko := NewCatalog("ko").Render(NoSubject, nil)
	if en == ko {
		t.Errorf("en and ko should differ, both %q", en)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	fr := NewCatalog("fr").Render(MoveUp, nil)
	en := NewCatalog("en").Render(MoveUp, nil)
	if fr != en {
		t.Errorf("unsupported tag should render English, got %q", fr)
	}
}

func TestMissingIDReturnsID(t *testing.T) {
	c := NewCatalog("en")
	if got := c.Render("does_not_exist", nil); got != "does_not_exist" {
		t.Errorf("missing ID should fall back to the ID itself, got %q", got)
	}
}
