package service

import (
	"context"
	"errors"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/middleware"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/repository"
	"github.com/deppfellow/travel-api/internal/server"
)

const (
	// The get route has always answered with an exclamation mark, the
	// update and delete routes without. Clients match on these strings.
	msgGetNotFound = "Destination not found!"
	msgNotFound    = "Destination not found"
	msgDeleted     = "Destination was deleted"
)

// DestinationService implements the five destination operations on top
// of a DestinationRepository.
type DestinationService struct {
	server *server.Server
	repo   repository.DestinationRepository
}

func NewDestinationService(s *server.Server, repo repository.DestinationRepository) *DestinationService {
	return &DestinationService{
		server: s,
		repo:   repo,
	}
}

// List returns every destination; an empty store gives an empty slice.
func (s *DestinationService) List(ctx context.Context) ([]model.Destination, error) {
	return s.repo.List(ctx)
}

// Get returns the destination with the given id.
func (s *DestinationService) Get(ctx context.Context, id int64) (*model.Destination, error) {
	destination, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrDestinationNotFound) {
		return nil, errs.NewNotFoundError(msgGetNotFound, true, nil)
	}
	if err != nil {
		return nil, err
	}
	return destination, nil
}

// Create stores a new destination. The request must have been validated:
// every field is required and missing ones are never defaulted.
func (s *DestinationService) Create(ctx context.Context, req *model.CreateDestinationRequest) (*model.Destination, error) {
	if req.Destination == nil || req.Country == nil || req.Rating == nil {
		return nil, errs.NewBadRequestError("Validation failed", true, nil, missingFields(req))
	}

	destination, err := s.repo.Create(ctx, *req.Destination, *req.Country, *req.Rating)
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromContext(ctx).Info().
		Int64("destination_id", destination.ID).
		Msg("destination created")

	return destination, nil
}

// Update applies a partial update: fields absent from req keep their
// stored value.
func (s *DestinationService) Update(ctx context.Context, req *model.UpdateDestinationRequest) (*model.Destination, error) {
	destination, err := s.repo.Update(ctx, req.ID, repository.DestinationUpdate{
		Destination: req.Destination,
		Country:     req.Country,
		Rating:      req.Rating,
	})
	if errors.Is(err, repository.ErrDestinationNotFound) {
		return nil, errs.NewNotFoundError(msgNotFound, true, nil)
	}
	if err != nil {
		return nil, err
	}
	return destination, nil
}

// Delete removes the destination and returns the acknowledgement.
func (s *DestinationService) Delete(ctx context.Context, id int64) (*model.MessageResponse, error) {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrDestinationNotFound) {
		return nil, errs.NewNotFoundError(msgNotFound, true, nil)
	}
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromContext(ctx).Info().
		Int64("destination_id", id).
		Msg("destination deleted")

	return &model.MessageResponse{Message: msgDeleted}, nil
}

func missingFields(req *model.CreateDestinationRequest) []errs.FieldError {
	var fieldErrors []errs.FieldError
	if req.Destination == nil {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "destination", Error: "is required"})
	}
	if req.Country == nil {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "country", Error: "is required"})
	}
	if req.Rating == nil {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "rating", Error: "is required"})
	}
	return fieldErrors
}
