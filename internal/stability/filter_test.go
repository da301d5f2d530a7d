package stability

import (
	"testing"
	"time"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/stage"
)

func testConfig() Config {
	return Config{
		AppearFrames:     3,
		DisappearFrames:  5,
		MaxVisible:       5,
		PerfectScore:     0.95,
		PerfectFrames:    10,
		CompletedDisplay: 2 * time.Second,
	}
}

func item(cat stage.Category, priority int) stage.FeedbackItem {
	return stage.FeedbackItem{ID: string(cat), Category: cat, Priority: priority, Message: "msg " + string(cat)}
}

func outputWith(items ...stage.FeedbackItem) stage.Output {
	return stage.Output{Stage: stage.StagePosition, Items: items}
}

func TestAppearHysteresis(t *testing.T) {
	f := New(testConfig())
	now := time.Now()
	out := outputWith(item(stage.CategoryPosition, 4))

	for tick := 1; tick <= 2; tick++ {
		if snap := f.Apply(out, 0.5, now); len(snap.Visible) != 0 {
			t.Fatalf("tick %d: item visible before the appear window, got %+v", tick, snap.Visible)
		}
	}
	snap := f.Apply(out, 0.5, now)
	if len(snap.Visible) != 1 || snap.Visible[0].Category != stage.CategoryPosition {
		t.Fatalf("tick 3: item should be visible, got %+v", snap.Visible)
	}
}

func TestFlickerNeverShows(t *testing.T) {
	f := New(testConfig())
	now := time.Now()
	out := outputWith(item(stage.CategoryHeadroom, 5))

	// Alternating present/absent never accumulates three consecutive ticks.
	for i := 0; i < 20; i++ {
		var snap Snapshot
		if i%2 == 0 {
			snap = f.Apply(out, 0.5, now)
		} else {
			snap = f.Apply(stage.Output{Stage: stage.StageComplete}, 0.5, now)
		}
		if len(snap.Visible) != 0 {
			t.Fatalf("tick %d: flickering item became visible", i)
		}
	}
}

func TestDisappearHysteresisAndCompletion(t *testing.T) {
	f := New(testConfig())
	now := time.Now()
	out := outputWith(item(stage.CategoryPosition, 4))

	for i := 0; i < 3; i++ {
		f.Apply(out, 0.5, now)
	}

	empty := stage.Output{Stage: stage.StageComplete}
	for tick := 1; tick <= 4; tick++ {
		snap := f.Apply(empty, 0.9, now)
		if len(snap.Visible) != 1 {
			t.Fatalf("absent tick %d: item should persist through the disappear window", tick)
		}
		if len(snap.Completed) != 0 {
			t.Fatalf("absent tick %d: premature completion event", tick)
		}
	}

	snap := f.Apply(empty, 0.9, now)
	if len(snap.Visible) != 0 {
		t.Fatal("item should hide on the fifth absent tick")
	}
	if len(snap.Completed) != 1 || snap.Completed[0].Category != stage.CategoryPosition {
		t.Fatalf("completed = %+v, want one position event", snap.Completed)
	}
	if snap.Completed[0].ID == "" {
		t.Error("completion events need unique IDs")
	}

	// The event expires after its display window.
	snap = f.Apply(empty, 0.9, now.Add(3*time.Second))
	if len(snap.Completed) != 0 {
		t.Errorf("completed = %+v, want expired", snap.Completed)
	}
}

func TestStickyCategoriesPersistLonger(t *testing.T) {
	f := New(testConfig())
	now := time.Now()
	out := stage.Output{Stage: stage.StagePose, Items: []stage.FeedbackItem{item(stage.CategoryPoseLeftArm, 6)}}

	for i := 0; i < 3; i++ {
		f.Apply(out, 0.5, now)
	}

	empty := stage.Output{Stage: stage.StageComplete}
	for tick := 1; tick <= 9; tick++ {
		if snap := f.Apply(empty, 0.9, now); len(snap.Visible) != 1 {
			t.Fatalf("absent tick %d: sticky pose item should persist", tick)
		}
	}
	if snap := f.Apply(empty, 0.9, now); len(snap.Visible) != 0 {
		t.Fatal("sticky item should hide after the doubled window")
	}
}

func TestPerfectDebounce(t *testing.T) {
	f := New(testConfig())
	now := time.Now()
	empty := stage.Output{Stage: stage.StageComplete}

	for tick := 1; tick <= 9; tick++ {
		if snap := f.Apply(empty, 0.97, now); snap.IsPerfect {
			t.Fatalf("tick %d: perfect before the debounce window", tick)
		}
	}
	if snap := f.Apply(empty, 0.97, now); !snap.IsPerfect {
		t.Fatal("tick 10: should be perfect")
	}

	// One bad tick resets the streak.
	if snap := f.Apply(empty, 0.5, now); snap.IsPerfect {
		t.Fatal("low score must break the perfect streak")
	}
	if snap := f.Apply(empty, 0.97, now); snap.IsPerfect {
		t.Fatal("streak must restart from zero")
	}
}

func TestPerfectRequiresCleanScreen(t *testing.T) {
	f := New(testConfig())
	now := time.Now()
	out := outputWith(item(stage.CategoryPosition, 4))

	for i := 0; i < 3; i++ {
		f.Apply(out, 0.97, now)
	}
	// Visible feedback blocks the perfect streak regardless of score.
	for tick := 1; tick <= 15; tick++ {
		if snap := f.Apply(out, 0.97, now); snap.IsPerfect {
			t.Fatalf("tick %d: perfect with visible feedback", tick)
		}
	}
}

func TestVisibleOrderingAndCap(t *testing.T) {
	cfg := testConfig()
	cfg.MaxVisible = 2
	f := New(cfg)
	now := time.Now()

	out := outputWith(
		item(stage.CategoryHeadroom, 5),
		item(stage.CategoryPosition, 4),
		item(stage.CategoryLeadroom, 5),
	)
	var snap Snapshot
	for i := 0; i < 3; i++ {
		snap = f.Apply(out, 0.5, now)
	}
	if len(snap.Visible) != 2 {
		t.Fatalf("visible = %d items, want cap of 2", len(snap.Visible))
	}
	if snap.Visible[0].Category != stage.CategoryPosition {
		t.Errorf("lowest priority integer first, got %v", snap.Visible[0].Category)
	}
	if snap.Visible[1].Category != stage.CategoryHeadroom {
		t.Errorf("equal priorities order by ID, got %v", snap.Visible[1].Category)
	}
}

func TestBypassFreezesCounters(t *testing.T) {
	f := New(testConfig())
	now := time.Now()
	out := outputWith(item(stage.CategoryPosition, 4))

	f.Apply(out, 0.5, now)
	f.Apply(out, 0.5, now)

	urgent := item(stage.CategoryNoSubject, 0)
	snap := f.Bypass(urgent, 0, now)
	if len(snap.Visible) != 1 || snap.Visible[0].Category != stage.CategoryNoSubject {
		t.Fatalf("bypass snapshot = %+v", snap.Visible)
	}
	if snap.IsPerfect || snap.Score != 0 {
		t.Error("bypass snapshot is never perfect")
	}

	// The position counter was frozen at 2, so one more tick shows it.
	snap = f.Apply(out, 0.5, now)
	if len(snap.Visible) != 1 || snap.Visible[0].Category != stage.CategoryPosition {
		t.Fatalf("counters should survive a bypass, got %+v", snap.Visible)
	}
}

func TestSnapshotCompletedDoesNotAliasFilterState(t *testing.T) {
	f := New(testConfig())
	now := time.Now()
	empty := stage.Output{Stage: stage.StageComplete}

	complete := func(it stage.FeedbackItem, at time.Time) Snapshot {
		out := outputWith(it)
		for i := 0; i < 3; i++ {
			f.Apply(out, 0.5, at)
		}
		var snap Snapshot
		for i := 0; i < 5; i++ {
			snap = f.Apply(empty, 0.9, at)
		}
		return snap
	}

	complete(item(stage.CategoryPosition, 4), now)
	held := complete(item(stage.CategoryHeadroom, 5), now.Add(time.Second))
	if len(held.Completed) != 2 || held.Completed[0].Category != stage.CategoryPosition {
		t.Fatalf("completed = %+v, want position then headroom", held.Completed)
	}

	// Expiring the first event compacts the filter's pending list in place;
	// the already-published snapshot must keep what it was handed.
	f.Apply(empty, 0.9, now.Add(2500*time.Millisecond))

	if held.Completed[0].Category != stage.CategoryPosition {
		t.Errorf("held snapshot rewritten to %v", held.Completed[0].Category)
	}
}

func TestCategoryStatusesReport(t *testing.T) {
	f := New(testConfig())
	now := time.Now()
	out := outputWith(item(stage.CategoryPosition, 4))
	out.Satisfied = map[stage.Category]bool{stage.CategoryPosition: false}

	snap := f.Apply(out, 0.5, now)
	if len(snap.Categories) != len(stage.TrackedCategories()) {
		t.Fatalf("categories = %d, want all %d tracked", len(snap.Categories), len(stage.TrackedCategories()))
	}

	byCat := func(s Snapshot, cat stage.Category) stage.CategoryStatus {
		for _, cs := range s.Categories {
			if cs.Category == cat {
				return cs
			}
		}
		t.Fatalf("category %v missing from report", cat)
		return stage.CategoryStatus{}
	}

	// Raw verdict shows immediately; the active item waits out the appear
	// window like the visible list does.
	pos := byCat(snap, stage.CategoryPosition)
	if pos.Satisfied {
		t.Error("unsatisfied category reported satisfied")
	}
	if len(pos.Active) != 0 {
		t.Errorf("active before the appear window: %+v", pos.Active)
	}
	if head := byCat(snap, stage.CategoryHeadroom); !head.Satisfied || len(head.Active) != 0 {
		t.Errorf("untouched category should be satisfied and idle, got %+v", head)
	}

	for i := 0; i < 2; i++ {
		snap = f.Apply(out, 0.5, now)
	}
	pos = byCat(snap, stage.CategoryPosition)
	if len(pos.Active) != 1 || pos.Active[0].Category != stage.CategoryPosition {
		t.Errorf("active after the appear window = %+v", pos.Active)
	}
}

func TestResetClearsEverything(t *testing.T) {
	f := New(testConfig())
	now := time.Now()
	out := outputWith(item(stage.CategoryPosition, 4))

	for i := 0; i < 3; i++ {
		f.Apply(out, 0.97, now)
	}
	f.Reset()

	snap := f.Apply(out, 0.5, now)
	if len(snap.Visible) != 0 {
		t.Fatal("reset must clear the appear counters")
	}
}
