package api

import "github.com/campuswell/mindline/internal/models"

// AssessmentRecord pairs a stored result with its owner for admin views.
type AssessmentRecord struct {
	UserID string
	Result *models.AssessmentResult
}

// Store is the persistence surface the router needs. Both the in-memory
// store and the sqlite store implement it; service-facing adapters
// narrow it per service.
type Store interface {
	AddUser(u *models.User) error
	FindUserByEmail(email string) (*models.User, error)

	AddAssessment(userID string, a *models.AssessmentResult) error
	ListAssessmentsByUser(userID string) ([]*models.AssessmentResult, error)
	ListAssessmentRecords() ([]*AssessmentRecord, error)

	AddReferral(r *models.Referral) error
	ListReferralsByCategory(category string) ([]*models.Referral, error)
}

var _ Store = (*memoryStore)(nil)
