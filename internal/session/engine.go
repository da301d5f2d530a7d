// Package session owns the per-session guidance loop: it holds the reference,
// runs the analyzers on every live measurement, and serializes the whole tick
// so concurrent producers always observe a consistent snapshot.
package session

import (
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/framing"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/gap"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/messages"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/pose"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/refstore"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/stability"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/stage"
)

// Options configures an engine.
type Options struct {
	Visibility      float64
	Mirror          bool
	Language        string
	DistanceScaling bool
	Stability       stability.Config
	Logger          *slog.Logger
}

// Snapshot is the per-tick guidance state pushed to clients.
type Snapshot struct {
	stability.Snapshot
	HasReference bool      `json:"has_reference"`
	HasSubject   bool      `json:"has_subject"`
	State        string    `json:"state"`
	Timestamp    time.Time `json:"timestamp"`
}

// Engine runs the guidance pipeline for one session.
type Engine struct {
	mu sync.Mutex

	refs       *refstore.Store
	gaps       *gap.Analyzer
	poses      *pose.Comparator
	framings   *framing.Analyzer
	classifier *stage.Classifier
	filter     *stability.Filter
	lifecycle  *Lifecycle
	logger     *slog.Logger
	visibility float64

	// Framing of the active reference, computed once at set time.
	refFraming framing.Result

	subs   map[chan Snapshot]struct{}
	subsMu sync.Mutex

	now func() time.Time
}

func NewEngine(opts Options) (*Engine, error) {
	lifecycle, err := NewLifecycle()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	catalog := messages.NewCatalog(opts.Language)
	return &Engine{
		refs:       refstore.New(),
		gaps:       gap.NewAnalyzer(opts.Visibility),
		poses:      pose.NewComparator(opts.Visibility),
		framings:   framing.NewAnalyzer(opts.Visibility, opts.DistanceScaling),
		classifier: stage.NewClassifier(catalog, opts.Visibility, opts.Mirror),
		filter:     stability.New(opts.Stability),
		lifecycle:  lifecycle,
		logger:     logger,
		visibility: opts.Visibility,
		subs:       make(map[chan Snapshot]struct{}),
		now:        time.Now,
	}, nil
}

// SetReference installs a reference measurement. A perceptual-hash duplicate
// of the current reference keeps all in-flight guidance state; anything else
// resets the stability filter so stale feedback cannot leak across
// references.
func (e *Engine) SetReference(m *measure.FrameMeasurement, img image.Image) *refstore.Reference {
	e.mu.Lock()
	defer e.mu.Unlock()

	ref, changed := e.refs.Set(m, img)
	if changed {
		e.refFraming = e.framings.Analyze(m)
		e.filter.Reset()
		e.lifecycle.Signal(eventSetReference)
		e.logger.Info("reference set", "id", ref.ID, "shot", e.refFraming.ShotType.String())
	} else {
		e.logger.Info("reference unchanged, duplicate upload", "id", ref.ID)
	}
	return ref
}

// ClearReference drops the reference and every derived counter in one step.
func (e *Engine) ClearReference() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	had := e.refs.Clear()
	e.refFraming = framing.Result{}
	e.filter.Reset()
	e.lifecycle.Signal(eventClearReference)
	if had {
		e.logger.Info("reference cleared")
	}
	return had
}

// State returns the lifecycle state name.
func (e *Engine) State() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lifecycle.Current()
}

// Tick processes one live measurement and returns the filtered snapshot.
// Ticks are fully serialized.
func (e *Engine) Tick(m *measure.FrameMeasurement) Snapshot {
	e.mu.Lock()
	snap := e.tick(m)
	e.mu.Unlock()

	e.publish(snap)
	return snap
}

func (e *Engine) tick(m *measure.FrameMeasurement) Snapshot {
	now := e.now()

	ref, ok := e.refs.Get()
	if !ok {
		return Snapshot{
			Snapshot:  stability.Snapshot{Stage: stage.StageComplete},
			State:     e.lifecycle.Current(),
			Timestamp: now,
		}
	}

	if !m.HasSubject(e.visibility) {
		e.lifecycle.Signal(eventSubjectLost)
		return Snapshot{
			Snapshot:     e.filter.Bypass(e.classifier.NoSubjectItem(), 0, now),
			HasReference: true,
			State:        e.lifecycle.Current(),
			Timestamp:    now,
		}
	}

	curFraming := e.framings.Analyze(m)
	poseResult := e.poses.Compare(ref.Measurement.Keypoints, m.Keypoints)
	gapList := e.gaps.Analyze(ref.Measurement, m)
	score := e.gaps.Score(ref.Measurement, m)

	out := e.classifier.Classify(stage.Input{
		Ref:        ref.Measurement,
		Cur:        m,
		RefFraming: e.refFraming,
		CurFraming: curFraming,
		Pose:       poseResult,
		Gaps:       gapList,
	})

	filtered := e.filter.Apply(out, score, now)

	e.lifecycle.Signal(eventSubjectTracked)
	if filtered.IsPerfect {
		e.lifecycle.Signal(eventPerfect)
	} else {
		e.lifecycle.Signal(eventImperfect)
	}

	return Snapshot{
		Snapshot:     filtered,
		HasReference: true,
		HasSubject:   true,
		State:        e.lifecycle.Current(),
		Timestamp:    now,
	}
}

// Subscribe registers a snapshot stream. Slow consumers drop snapshots rather
// than stalling the tick loop.
func (e *Engine) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 16)
	e.subsMu.Lock()
	e.subs[ch] = struct{}{}
	e.subsMu.Unlock()

	cancel := func() {
		e.subsMu.Lock()
		if _, ok := e.subs[ch]; ok {
			delete(e.subs, ch)
			close(ch)
		}
		e.subsMu.Unlock()
	}
	return ch, cancel
}

func (e *Engine) publish(snap Snapshot) {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	for ch := range e.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
