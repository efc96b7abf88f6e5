package api

import (
	"sync"

	"github.com/campuswell/mindline/internal/models"
)

// memoryStore keeps everything in process. It backs tests and
// deployments that do not configure sqlite.
type memoryStore struct {
	mu           sync.RWMutex
	usersByEmail map[string]*models.User
	assessments  map[string][]*models.AssessmentResult // newest first
	order        []*AssessmentRecord                   // insertion order, oldest first
	referrals    map[string][]*models.Referral
}

func NewMemoryStore() Store { return newMemoryStore() }

func newMemoryStore() *memoryStore {
	return &memoryStore{
		usersByEmail: map[string]*models.User{},
		assessments:  map[string][]*models.AssessmentResult{},
		referrals:    map[string][]*models.Referral{},
	}
}

func (s *memoryStore) AddUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersByEmail[u.Email] = u
	return nil
}

func (s *memoryStore) FindUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByEmail[email], nil
}

func (s *memoryStore) AddAssessment(userID string, a *models.AssessmentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments[userID] = append([]*models.AssessmentResult{a}, s.assessments[userID]...)
	s.order = append(s.order, &AssessmentRecord{UserID: userID, Result: a})
	return nil
}

func (s *memoryStore) ListAssessmentsByUser(userID string) ([]*models.AssessmentResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.assessments[userID]
	out := make([]*models.AssessmentResult, len(list))
	copy(out, list)
	return out, nil
}

func (s *memoryStore) ListAssessmentRecords() ([]*AssessmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*AssessmentRecord, len(s.order))
	copy(out, s.order)
	return out, nil
}

func (s *memoryStore) AddReferral(r *models.Referral) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.referrals[r.Category] = append(s.referrals[r.Category], r)
	return nil
}

func (s *memoryStore) ListReferralsByCategory(category string) ([]*models.Referral, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.referrals[category]
	out := make([]*models.Referral, len(list))
	copy(out, list)
	return out, nil
}
