package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/pkg/errors"

	"github.com/deppfellow/travel-api/internal/model"
)

// SQLiteDestinationRepository stores destinations in a sqlite database,
// file-backed or in-memory.
type SQLiteDestinationRepository struct {
	db *sql.DB
}

func NewSQLiteDestinationRepository(db *sql.DB) *SQLiteDestinationRepository {
	return &SQLiteDestinationRepository{db: db}
}

func (r *SQLiteDestinationRepository) List(ctx context.Context) ([]model.Destination, error) {
	rows, err := r.db.QueryContext(ctx, listDestinationsQuery)
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

func (r *SQLiteDestinationRepository) GetByID(ctx context.Context, id int64) (*model.Destination, error) {
	d, err := scanDestination(r.db.QueryRowContext(ctx, liteGetDestinationQuery, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, ErrDestinationNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "getting destination %d", id)
	}
	return d, nil
}

func (r *SQLiteDestinationRepository) Create(ctx context.Context, destination, country string, rating float64) (*model.Destination, error) {
	d, err := scanDestination(r.db.QueryRowContext(ctx, liteCreateDestinationQuery, destination, country, rating))
	if err != nil {
		return nil, errors.Wrap(err, "inserting destination")
	}
	return d, nil
}

func (r *SQLiteDestinationRepository) Update(ctx context.Context, id int64, update DestinationUpdate) (*model.Destination, error) {
	d, err := scanDestination(r.db.QueryRowContext(ctx, liteUpdateDestinationQuery,
		update.Destination, update.Country, update.Rating, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, ErrDestinationNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "updating destination %d", id)
	}
	return d, nil
}

func (r *SQLiteDestinationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, liteDeleteDestinationQuery, id)
	if err != nil {
		return errors.Wrapf(err, "deleting destination %d", id)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "deleting destination %d", id)
	}
	if affected == 0 {
		return ErrDestinationNotFound
	}
	return nil
}
