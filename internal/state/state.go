package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"blogspace/internal/models"
	"blogspace/internal/utils"
	"blogspace/internal/view"
)

const (
	DefaultCapacity = 10000
	DefaultTTL      = 24 * time.Hour
)

var ErrNoSelection = errors.New("no post selected")

// UIState is everything one visitor has on screen.
type UIState struct {
	View       view.View
	SelectedID int64
	SearchTerm string
	Draft      models.Draft
}

// Apply moves to the view reached on ev. SelectPost needs a non-zero
// selected id; the selection is dropped whenever the post view is left.
// On error the state is unchanged.
func (s *UIState) Apply(ev view.Event, selected int64) error {
	if ev == view.SelectPost && selected <= 0 {
		return fmt.Errorf("%w: %s", ErrNoSelection, ev)
	}

	next, err := view.Transition(s.View, ev)
	if err != nil {
		return err
	}

	s.View = next
	switch {
	case ev == view.SelectPost:
		s.SelectedID = selected
	case next != view.Post:
		s.SelectedID = 0
	}
	return nil
}

// Registry keeps one UIState per visitor id. Idle visitors expire and the
// least recently seen are evicted once capacity is reached.
type Registry struct {
	mu     sync.Mutex
	states *utils.Cache[string, *UIState]
}

func NewRegistry(capacity int, ttl time.Duration) (*Registry, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	states, err := utils.NewCache[string, *UIState](capacity, ttl)
	if err != nil {
		return nil, fmt.Errorf("visitor registry: %w", err)
	}
	return &Registry{states: states}, nil
}

// Update runs fn on the visitor's state. Changes made by fn are kept even
// when it returns an error; fn is expected to leave the state alone on failure.
func (r *Registry) Update(visitorID string, fn func(*UIState) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.load(visitorID)
	err := fn(st)
	r.states.Set(visitorID, st)
	return err
}

// Snapshot returns a copy of the visitor's state.
func (r *Registry) Snapshot(visitorID string) UIState {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.states.Get(visitorID)
	if !ok {
		return UIState{View: view.Home}
	}
	return *st
}

func (r *Registry) Len() int {
	return r.states.Len()
}

func (r *Registry) load(visitorID string) *UIState {
	if st, ok := r.states.Get(visitorID); ok {
		return st
	}
	return &UIState{View: view.Home}
}
