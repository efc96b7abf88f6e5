package api

import (
	"github.com/campuswell/mindline/internal/models"
	"github.com/campuswell/mindline/internal/services"
)

type authStoreAdapter struct {
	store Store
}

func newAuthStoreAdapter(store Store) services.AuthStore {
	return &authStoreAdapter{store: store}
}

func (a *authStoreAdapter) FindUserByEmail(email string) (*models.User, error) {
	return a.store.FindUserByEmail(email)
}

func (a *authStoreAdapter) AddUser(u *models.User) error {
	if u == nil {
		return services.NewInvalidError("user required")
	}
	return a.store.AddUser(u)
}

var _ services.AuthStore = (*authStoreAdapter)(nil)
