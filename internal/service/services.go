package service

import (
	"github.com/deppfellow/travel-api/internal/repository"
	"github.com/deppfellow/travel-api/internal/server"
)

type Services struct {
	Destination *DestinationService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Destination: NewDestinationService(s, repos.Destination),
	}, nil
}
