// Package refstore holds the active reference measurement. Setting the same
// photo twice is detected by perceptual hash so an accidental re-upload does
// not reset in-flight guidance state.
package refstore

import (
	"image"
	"sync"
	"time"

	"github.com/corona10/goimagehash"
	"github.com/google/uuid"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
)

// dedupeMaxDistance is the perception-hash Hamming distance under which two
// uploads count as the same photo. Zero: the 64-bit hash can place visibly
// different compositions within a few bits of each other, so only an exact
// match is treated as a re-upload.
const dedupeMaxDistance = 0

// Reference is an analyzed reference photo.
type Reference struct {
	ID          string                    `json:"id"`
	Measurement *measure.FrameMeasurement `json:"measurement"`
	SetAt       time.Time                 `json:"set_at"`

	hash *goimagehash.ImageHash
}

// Store is the mutable reference slot. Safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	ref *Reference
}

func New() *Store {
	return &Store{}
}

// Set installs a reference. When img matches the current reference's
// perceptual hash the existing reference is kept and changed is false, so
// callers know not to reset dependent state. img may be nil when only the
// measurement is available; that always replaces.
func (s *Store) Set(m *measure.FrameMeasurement, img image.Image) (ref *Reference, changed bool) {
	var hash *goimagehash.ImageHash
	if img != nil {
		if h, err := goimagehash.PerceptionHash(img); err == nil {
			hash = h
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ref != nil && s.ref.hash != nil && hash != nil {
		if dist, err := s.ref.hash.Distance(hash); err == nil && dist <= dedupeMaxDistance {
			return s.ref, false
		}
	}

	s.ref = &Reference{
		ID:          uuid.NewString(),
		Measurement: m,
		SetAt:       time.Now(),
		hash:        hash,
	}
	return s.ref, true
}

// Get returns the current reference, reporting false when none is set.
func (s *Store) Get() (*Reference, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ref, s.ref != nil
}

// Clear drops the reference, reporting whether one was set.
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.ref != nil
	s.ref = nil
	return had
}
