package api

import (
	"github.com/campuswell/mindline/internal/models"
	"github.com/campuswell/mindline/internal/services"
)

type analyticsStoreAdapter struct {
	store Store
}

func newAnalyticsStoreAdapter(store Store) services.AnalyticsStore {
	return &analyticsStoreAdapter{store: store}
}

func (a *analyticsStoreAdapter) ListAllAssessments() ([]*models.AssessmentResult, error) {
	records, err := a.store.ListAssessmentRecords()
	if err != nil {
		return nil, err
	}
	out := make([]*models.AssessmentResult, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Result)
	}
	return out, nil
}

var _ services.AnalyticsStore = (*analyticsStoreAdapter)(nil)
