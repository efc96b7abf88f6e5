package services

import (
	"sort"

	"github.com/campuswell/mindline/internal/models"
)

type AnalyticsStore interface {
	ListAllAssessments() ([]*models.AssessmentResult, error)
}

type AnalyticsService struct {
	store AnalyticsStore
}

type RiskDistribution struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
}

type AnalyticsTimeseries struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type AnalyticsSummary struct {
	TotalAssessments int                   `json:"totalAssessments"`
	Risk             RiskDistribution      `json:"riskDistribution"`
	TagDistribution  map[string]int        `json:"tagDistribution"`
	Timeseries       []AnalyticsTimeseries `json:"timeseries"`
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Summary aggregates every stored assessment into the admin dashboard
// payload: risk level counts, tag frequencies, and submissions per day.
func (s *AnalyticsService) Summary() (*AnalyticsSummary, error) {
	assessments, err := s.store.ListAllAssessments()
	if err != nil {
		return nil, err
	}
	out := &AnalyticsSummary{
		TotalAssessments: len(assessments),
		TagDistribution:  map[string]int{},
	}
	countsByDay := map[string]int{}
	for _, a := range assessments {
		switch a.RiskLevel {
		case models.RiskLow:
			out.Risk.Low++
		case models.RiskModerate:
			out.Risk.Moderate++
		case models.RiskHigh:
			out.Risk.High++
		}
		for _, tag := range a.Tags {
			out.TagDistribution[tag]++
		}
		countsByDay[a.Timestamp.UTC().Format("2006-01-02")]++
	}
	out.Timeseries = buildTimeseries(countsByDay)
	return out, nil
}

func buildTimeseries(counts map[string]int) []AnalyticsTimeseries {
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)
	out := make([]AnalyticsTimeseries, 0, len(days))
	for _, d := range days {
		out = append(out, AnalyticsTimeseries{Date: d, Count: counts[d]})
	}
	return out
}
