package store

import "github.com/MKhiriev/go-blog/internal/logger"

// Storages bundles every repository built on one database connection.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
	}
}
