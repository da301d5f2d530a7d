// Package stability debounces raw per-tick feedback so the UI never flickers.
// An item must be proposed on N consecutive ticks before it shows and absent
// on M consecutive ticks before it hides; hiding emits a short-lived
// completion event.
package stability

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/stage"
)

// Config tunes the hysteresis windows.
type Config struct {
	AppearFrames     int
	DisappearFrames  int
	MaxVisible       int
	PerfectScore     float64
	PerfectFrames    int
	CompletedDisplay time.Duration
}

// DefaultConfig matches a 10 Hz analysis loop.
func DefaultConfig() Config {
	return Config{
		AppearFrames:     3,
		DisappearFrames:  5,
		MaxVisible:       5,
		PerfectScore:     0.95,
		PerfectFrames:    10,
		CompletedDisplay: 2 * time.Second,
	}
}

// stickyFactor multiplies the disappear window for sticky categories, which
// describe corrections the subject performs slowly.
const stickyFactor = 2

// Completed is a correction that was just achieved, kept briefly for the UI
// to celebrate.
type Completed struct {
	ID        string         `json:"id"`
	Category  stage.Category `json:"category"`
	Message   string         `json:"message"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// Snapshot is the filtered guidance state for one tick.
type Snapshot struct {
	Stage      stage.Stage            `json:"stage"`
	Visible    []stage.FeedbackItem   `json:"visible"`
	Categories []stage.CategoryStatus `json:"categories,omitempty"`
	Completed  []Completed            `json:"completed"`
	Score      float64                `json:"score"`
	IsPerfect  bool                   `json:"is_perfect"`
}

type categoryState struct {
	present int
	absent  int
	visible bool
	last    stage.FeedbackItem
}

// Filter holds the per-category hysteresis counters. Not safe for concurrent
// use; the session engine serializes ticks.
type Filter struct {
	cfg        Config
	states     map[stage.Category]*categoryState
	completed  []Completed
	perfectRun int
}

func New(cfg Config) *Filter {
	return &Filter{cfg: cfg, states: make(map[stage.Category]*categoryState)}
}

// Apply advances every counter by one tick and returns the filtered snapshot.
func (f *Filter) Apply(out stage.Output, score float64, now time.Time) Snapshot {
	seen := make(map[stage.Category]bool, len(out.Items))
	for _, item := range out.Items {
		seen[item.Category] = true
		st := f.states[item.Category]
		if st == nil {
			st = &categoryState{}
			f.states[item.Category] = st
		}
		st.present++
		st.absent = 0
		st.last = item
		if st.present >= f.cfg.AppearFrames {
			st.visible = true
		}
	}

	for cat, st := range f.states {
		if seen[cat] {
			continue
		}
		st.absent++
		st.present = 0
		if st.absent < f.disappearFrames(cat) {
			continue
		}
		if st.visible {
			f.completed = append(f.completed, Completed{
				ID:        uuid.NewString(),
				Category:  cat,
				Message:   st.last.Message,
				ExpiresAt: now.Add(f.cfg.CompletedDisplay),
			})
		}
		delete(f.states, cat)
	}

	f.pruneCompleted(now)

	snap := Snapshot{
		Stage:      out.Stage,
		Visible:    f.visibleItems(),
		Categories: f.categoryStatuses(out.Satisfied),
		Completed:  f.completedEvents(),
		Score:      score,
	}
	snap.IsPerfect = f.advancePerfect(len(snap.Visible) == 0, score)
	return snap
}

// Bypass emits an urgent item immediately, freezing the hysteresis counters
// and the perfect streak. Used while the live frame has no subject.
func (f *Filter) Bypass(item stage.FeedbackItem, score float64, now time.Time) Snapshot {
	f.perfectRun = 0
	f.pruneCompleted(now)
	return Snapshot{
		Visible:   []stage.FeedbackItem{item},
		Completed: f.completedEvents(),
		Score:     score,
	}
}

// Reset drops all counters and pending completion events.
func (f *Filter) Reset() {
	f.states = make(map[stage.Category]*categoryState)
	f.completed = nil
	f.perfectRun = 0
}

func (f *Filter) disappearFrames(cat stage.Category) int {
	if cat.Sticky() {
		return f.cfg.DisappearFrames * stickyFactor
	}
	return f.cfg.DisappearFrames
}

func (f *Filter) visibleItems() []stage.FeedbackItem {
	var items []stage.FeedbackItem
	for _, st := range f.states {
		if st.visible {
			items = append(items, st.last)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority < items[j].Priority
		}
		return items[i].ID < items[j].ID
	})
	if len(items) > f.cfg.MaxVisible {
		items = items[:f.cfg.MaxVisible]
	}
	return items
}

// categoryStatuses builds the per-category progress report: the raw
// satisfaction verdict for this tick paired with the category's stable
// on-screen item, if it has one.
func (f *Filter) categoryStatuses(satisfied map[stage.Category]bool) []stage.CategoryStatus {
	if satisfied == nil {
		return nil
	}
	cats := stage.TrackedCategories()
	statuses := make([]stage.CategoryStatus, 0, len(cats))
	for _, cat := range cats {
		status := stage.CategoryStatus{Category: cat, Satisfied: satisfied[cat]}
		if st := f.states[cat]; st != nil && st.visible {
			status.Active = []stage.FeedbackItem{st.last}
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// completedEvents copies the pending events. Snapshots outlive the tick that
// produced them (subscribers hold them), so they must not alias the filter's
// backing array, which pruneCompleted compacts in place.
func (f *Filter) completedEvents() []Completed {
	if len(f.completed) == 0 {
		return nil
	}
	events := make([]Completed, len(f.completed))
	copy(events, f.completed)
	return events
}

func (f *Filter) pruneCompleted(now time.Time) {
	kept := f.completed[:0]
	for _, c := range f.completed {
		if now.Before(c.ExpiresAt) {
			kept = append(kept, c)
		}
	}
	f.completed = kept
	if len(f.completed) == 0 {
		f.completed = nil
	}
}

// advancePerfect requires a clean screen and a near-perfect score to hold for
// a full debounce window before declaring the shot ready.
func (f *Filter) advancePerfect(clean bool, score float64) bool {
	if clean && score > f.cfg.PerfectScore {
		f.perfectRun++
	} else {
		f.perfectRun = 0
	}
	return f.perfectRun >= f.cfg.PerfectFrames
}
