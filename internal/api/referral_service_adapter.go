package api

import (
	"github.com/campuswell/mindline/internal/models"
	"github.com/campuswell/mindline/internal/services"
)

type referralStoreAdapter struct {
	store Store
}

func newReferralStoreAdapter(store Store) services.ReferralStore {
	return &referralStoreAdapter{store: store}
}

func (a *referralStoreAdapter) ListReferralsByCategory(category string) ([]*models.Referral, error) {
	return a.store.ListReferralsByCategory(category)
}

var _ services.ReferralStore = (*referralStoreAdapter)(nil)
