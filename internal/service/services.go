package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
)

type Services struct {
	AuthService AuthService
	PostService PostService
	UserService UserService
}

// NewServices wires the services over storages. Every service is wrapped by
// its validation layer, so handlers never reach a store with unchecked input.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)

	return &Services{
		AuthService: NewAuthValidationService().Wrap(
			NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		),
		PostService: NewPostValidationService().Wrap(
			NewPostService(storages.PostRepository, storages.UserRepository, cfg.App, logger),
		),
		UserService: NewUserValidationService().Wrap(
			NewUserService(storages.UserRepository, logger),
		),
	}
}
