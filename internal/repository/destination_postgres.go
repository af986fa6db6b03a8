package repository

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/deppfellow/travel-api/internal/model"
)

// PostgresDestinationRepository stores destinations through a pgx pool.
type PostgresDestinationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresDestinationRepository(pool *pgxpool.Pool) *PostgresDestinationRepository {
	return &PostgresDestinationRepository{pool: pool}
}

func (r *PostgresDestinationRepository) List(ctx context.Context) ([]model.Destination, error) {
	rows, err := r.pool.Query(ctx, listDestinationsQuery)
	if err != nil {
		return nil, errors.Wrap(err, "listing destinations")
	}
	defer rows.Close()

	destinations := []model.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning destination")
		}
		destinations = append(destinations, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "listing destinations")
	}

	return destinations, nil
}

func (r *PostgresDestinationRepository) GetByID(ctx context.Context, id int64) (*model.Destination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx, pgGetDestinationQuery, id))
	if stderrors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDestinationNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "getting destination %d", id)
	}
	return d, nil
}

func (r *PostgresDestinationRepository) Create(ctx context.Context, destination, country string, rating float64) (*model.Destination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx, pgCreateDestinationQuery, destination, country, rating))
	if err != nil {
		return nil, errors.Wrap(err, "inserting destination")
	}
	return d, nil
}

func (r *PostgresDestinationRepository) Update(ctx context.Context, id int64, update DestinationUpdate) (*model.Destination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx, pgUpdateDestinationQuery,
		id, update.Destination, update.Country, update.Rating))
	if stderrors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDestinationNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "updating destination %d", id)
	}
	return d, nil
}

func (r *PostgresDestinationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, pgDeleteDestinationQuery, id)
	if err != nil {
		return errors.Wrapf(err, "deleting destination %d", id)
	}
	if tag.RowsAffected() == 0 {
		return ErrDestinationNotFound
	}
	return nil
}
