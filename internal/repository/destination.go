package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/travel-api/internal/model"
)

// ErrDestinationNotFound is returned when no row has the requested id.
var ErrDestinationNotFound = errors.New("destination not found")

// DestinationUpdate holds the fields of a partial update. Nil fields keep
// their stored value.
type DestinationUpdate struct {
	Destination *string
	Country     *string
	Rating      *float64
}

// DestinationRepository is the storage contract of the destinations table.
// Implementations exist for PostgreSQL and SQLite.
type DestinationRepository interface {
	// List returns every destination ordered by id. It returns an empty,
	// non-nil slice when the table is empty.
	List(ctx context.Context) ([]model.Destination, error)
	GetByID(ctx context.Context, id int64) (*model.Destination, error)
	Create(ctx context.Context, destination, country string, rating float64) (*model.Destination, error)
	Update(ctx context.Context, id int64, update DestinationUpdate) (*model.Destination, error)
	Delete(ctx context.Context, id int64) error
}

const (
	listDestinationsQuery = `SELECT id, destination, country, rating FROM destinations ORDER BY id`

	// The update is a single statement, so the read-modify-write of a
	// partial update is atomic at the storage level.
	pgGetDestinationQuery    = `SELECT id, destination, country, rating FROM destinations WHERE id = $1`
	pgCreateDestinationQuery = `INSERT INTO destinations (destination, country, rating) VALUES ($1, $2, $3)
		RETURNING id, destination, country, rating`
	pgUpdateDestinationQuery = `UPDATE destinations SET
			destination = COALESCE($2, destination),
			country = COALESCE($3, country),
			rating = COALESCE($4, rating)
		WHERE id = $1
		RETURNING id, destination, country, rating`
	pgDeleteDestinationQuery = `DELETE FROM destinations WHERE id = $1`

	liteGetDestinationQuery    = `SELECT id, destination, country, rating FROM destinations WHERE id = ?`
	liteCreateDestinationQuery = `INSERT INTO destinations (destination, country, rating) VALUES (?, ?, ?)
		RETURNING id, destination, country, rating`
	liteUpdateDestinationQuery = `UPDATE destinations SET
			destination = COALESCE(?, destination),
			country = COALESCE(?, country),
			rating = COALESCE(?, rating)
		WHERE id = ?
		RETURNING id, destination, country, rating`
	liteDeleteDestinationQuery = `DELETE FROM destinations WHERE id = ?`
)

// rowScanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDestination(row rowScanner) (*model.Destination, error) {
	var d model.Destination
	if err := row.Scan(&d.ID, &d.Destination, &d.Country, &d.Rating); err != nil {
		return nil, err
	}
	return &d, nil
}
