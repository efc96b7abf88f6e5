package api

import (
	"github.com/campuswell/mindline/internal/models"
	"github.com/campuswell/mindline/internal/services"
)

type assessmentStoreAdapter struct {
	store Store
}

func newAssessmentStoreAdapter(store Store) services.AssessmentStore {
	return &assessmentStoreAdapter{store: store}
}

func (a *assessmentStoreAdapter) AddAssessment(userID string, res *models.AssessmentResult) error {
	if res == nil {
		return services.NewInvalidError("assessment required")
	}
	return a.store.AddAssessment(userID, res)
}

func (a *assessmentStoreAdapter) ListAssessmentsByUser(userID string) ([]*models.AssessmentResult, error) {
	return a.store.ListAssessmentsByUser(userID)
}

var _ services.AssessmentStore = (*assessmentStoreAdapter)(nil)
