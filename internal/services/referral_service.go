package services

import (
	"log"

	"github.com/campuswell/mindline/internal/models"
)

type ReferralStore interface {
	ListReferralsByCategory(category string) ([]*models.Referral, error)
}

// ReferralService suggests support services for a risk level. The store
// is authoritative; built-in entries keep the listing non-empty when the
// store has no rows or fails.
type ReferralService struct {
	store ReferralStore
}

func NewReferralService(store ReferralStore) *ReferralService {
	return &ReferralService{store: store}
}

func (s *ReferralService) ForRiskLevel(level models.RiskLevel) ([]*models.Referral, error) {
	if !level.Valid() {
		return nil, NewInvalidError("unknown risk level")
	}
	if s.store != nil {
		list, err := s.store.ListReferralsByCategory(string(level))
		if err != nil {
			log.Printf("referrals: store failed, serving fallback entries: %v", err)
		} else if len(list) > 0 {
			return list, nil
		}
	}
	return fallbackReferrals(level), nil
}

func fallbackReferrals(level models.RiskLevel) []*models.Referral {
	switch level {
	case models.RiskHigh:
		return []*models.Referral{{
			ID:          "fallback-high",
			Name:        "University Counseling and Mental Health Centre",
			Type:        "urgent_care",
			Contact:     "+250 788 123 456",
			Description: "Immediate professional mental health support",
			Category:    string(models.RiskHigh),
		}}
	case models.RiskModerate:
		return []*models.Referral{{
			ID:          "fallback-moderate",
			Name:        "Student Counseling Services",
			Type:        "counseling",
			Contact:     "+250 788 654 321",
			Description: "Professional counseling and support",
			Category:    string(models.RiskModerate),
		}}
	default:
		return []*models.Referral{{
			ID:          "fallback-low",
			Name:        "Self-Care Resources",
			Type:        "self_help",
			Contact:     "Available online",
			Description: "Wellness tips and stress management",
			Category:    string(models.RiskLow),
		}}
	}
}
