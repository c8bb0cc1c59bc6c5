package store

import "github.com/MKhiriev/resource-service/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	ResourceRepository ResourceRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ResourceRepository: NewResourceRepository(db, log),
	}
}
