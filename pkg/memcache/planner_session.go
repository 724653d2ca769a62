// pkg/memcache/planner_session.go
package mem

import (
	"sync"

	"cruisy/internal/models/trip_models"
)

// PlannerSession is the single session-scoped view state machine. There is
// exactly one logical actor (the visitor), so one session per process; the
// mutex only guards against concurrent HTTP handlers.
//
// The search generation counter resolves the stale-response question: every
// dispatched search gets a generation, and a completion carrying an old
// generation is discarded instead of clobbering newer state.
type PlannerSession struct {
	mu                 sync.RWMutex
	view               trip_models.ViewState
	destination        string
	selectedActivityID string
	generation         uint64
	searching          bool
}

func NewPlannerSession() *PlannerSession {
	return &PlannerSession{view: trip_models.ViewSearch}
}

func (s *PlannerSession) View() trip_models.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *PlannerSession) Destination() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destination
}

func (s *PlannerSession) SelectedActivityID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedActivityID
}

// BeginSearch transitions to the loading state and hands the caller a
// generation token. It refuses a second dispatch while one is in flight.
func (s *PlannerSession) BeginSearch(destination string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.searching {
		return 0, false
	}
	s.searching = true
	s.generation++
	s.destination = destination
	s.view = trip_models.ViewLoading
	return s.generation, true
}

// CompleteSearch applies a search outcome. Success moves to the list view,
// failure and empty results revert to the search view. A stale generation
// is reported as false and leaves the session untouched.
func (s *PlannerSession) CompleteSearch(generation uint64, success bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return false
	}
	s.searching = false
	if success {
		s.view = trip_models.ViewList
	} else {
		s.view = trip_models.ViewSearch
	}
	return true
}

// Transition applies an explicit user navigation.
func (s *PlannerSession) Transition(view trip_models.ViewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// SelectActivity records the activity opened in the detail view.
func (s *PlannerSession) SelectActivity(activityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedActivityID = activityID
	s.view = trip_models.ViewDetail
}
