package analysis

import (
	"sync"

	"github.com/campuswell/mindline/internal/models"
)

// Session is a caller-owned, prepend-only assessment history, most
// recent first. The core never mutates or removes recorded results;
// deletion and export are collaborator concerns.
type Session struct {
	mu      sync.RWMutex
	results []*models.AssessmentResult
}

// NewSession returns an empty history accumulator.
func NewSession() *Session {
	return &Session{}
}

// Record prepends a result. Completion order determines position; the
// authoritative ordering key is the result timestamp.
func (s *Session) Record(res *models.AssessmentResult) {
	if res == nil {
		return
	}
	s.mu.Lock()
	s.results = append([]*models.AssessmentResult{res}, s.results...)
	s.mu.Unlock()
}

// History returns a read-only snapshot, most recent first.
func (s *Session) History() []*models.AssessmentResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.AssessmentResult, len(s.results))
	copy(out, s.results)
	return out
}

// Len reports the number of recorded results.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
