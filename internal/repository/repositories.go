package repository

import (
	"fmt"

	"github.com/deppfellow/travel-api/internal/config"
	"github.com/deppfellow/travel-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Destination DestinationRepository
}

// NewRepositories picks the repository implementations matching the
// store opened by the server.
func NewRepositories(s *server.Server) (*Repositories, error) {
	switch s.DB.Driver {
	case config.DriverPostgres:
		return &Repositories{
			Destination: NewPostgresDestinationRepository(s.DB.Pool),
		}, nil
	case config.DriverSQLite:
		return &Repositories{
			Destination: NewSQLiteDestinationRepository(s.DB.SQLite),
		}, nil
	default:
		return nil, fmt.Errorf("no repositories for database driver %q", s.DB.Driver)
	}
}
