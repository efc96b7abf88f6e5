package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/campuswell/mindline/internal/analysis"
	"github.com/campuswell/mindline/internal/models"
)

// AssessmentStore abstracts persistence for submitted assessments.
// Listing is most-recent-first.
type AssessmentStore interface {
	AddAssessment(userID string, a *models.AssessmentResult) error
	ListAssessmentsByUser(userID string) ([]*models.AssessmentResult, error)
}

// Delegate is a remote scoring attempt with a typed failure. The local
// pipeline is the fallback, never a partial substitute mid-pipeline.
type Delegate interface {
	Analyze(ctx context.Context, text string) (*models.AssessmentResult, error)
}

// fallbackConfidenceScale marks local results produced only because a
// delegation attempt failed as less certain than either a delegated
// result or a deliberately local one.
const fallbackConfidenceScale = 0.85

// AssessmentService runs the submission workflow: score (remote first
// when configured, local otherwise), persist best-effort, return the
// fully populated result.
type AssessmentService struct {
	store    AssessmentStore
	local    *analysis.Analyzer
	delegate Delegate
	now      func() time.Time
	newID    func() string
}

func NewAssessmentService(store AssessmentStore, local *analysis.Analyzer, delegate Delegate) *AssessmentService {
	if local == nil {
		local = analysis.NewAnalyzer(nil)
	}
	return &AssessmentService{
		store:    store,
		local:    local,
		delegate: delegate,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Submit analyzes one check-in for a user. It always returns a complete
// result; a failing store is logged, not surfaced, because scoring and
// persistence are independent concerns.
func (s *AssessmentService) Submit(ctx context.Context, userID, text string) (*models.AssessmentResult, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("user required")
	}

	var res *models.AssessmentResult
	if s.delegate != nil {
		remote, err := s.delegate.Analyze(ctx, text)
		if err != nil {
			log.Printf("assessment: delegation failed, falling back to local pipeline: %v", err)
			res = s.local.Analyze(text)
			res.Confidence *= fallbackConfidenceScale
		} else {
			res = remote
		}
	} else {
		res = s.local.Analyze(text)
	}
	s.ensureEnvelope(res, text)

	if s.store != nil {
		if err := s.store.AddAssessment(userID, res); err != nil {
			log.Printf("assessment: store failed for user %s, result still returned: %v", userID, err)
		}
	}
	return res, nil
}

// History returns the caller's stored assessments, most recent first.
func (s *AssessmentService) History(userID string) ([]*models.AssessmentResult, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("user required")
	}
	if s.store == nil {
		return []*models.AssessmentResult{}, nil
	}
	list, err := s.store.ListAssessmentsByUser(userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*models.AssessmentResult{}
	}
	return list, nil
}

// ensureEnvelope fills identity fields a delegated payload may omit so
// callers never observe a result with missing fields.
func (s *AssessmentService) ensureEnvelope(res *models.AssessmentResult, text string) {
	if res.ID == "" {
		res.ID = s.newID()
	}
	if res.Text == "" {
		res.Text = text
	}
	if res.Timestamp.IsZero() {
		res.Timestamp = s.now()
	}
	if res.RiskFactors == nil {
		res.RiskFactors = []string{}
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
}
