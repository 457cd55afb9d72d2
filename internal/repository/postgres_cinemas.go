package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

// PostgresCinemaRoomRepository stores room locations as PostGIS geography
// points, so listing and lookups project latitude/longitude back out and the
// generic select from CrudRepository is overridden.
type PostgresCinemaRoomRepository struct {
	*CrudRepository[domain.CinemaRoom]
	db *pgxpool.Pool
}

func NewPostgresCinemaRoomRepository(db *pgxpool.Pool) *PostgresCinemaRoomRepository {
	return &PostgresCinemaRoomRepository{
		CrudRepository: NewCrudRepository(db, Table[domain.CinemaRoom]{
			Name:    "cinema_rooms",
			Columns: []string{"name"},
			Values:  func(c *domain.CinemaRoom) []any { return []any{c.Name} },
			ID:      func(c *domain.CinemaRoom) *int { return &c.ID },
		}),
		db: db,
	}
}

const cinemaRoomColumns = `
	id,
	name,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude`

func (p *PostgresCinemaRoomRepository) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.CinemaRoom, *domain.Metadata, error) {
	var totalRecords int
	if err := p.db.QueryRow(ctx, "SELECT count(*) FROM cinema_rooms").Scan(&totalRecords); err != nil {
		return nil, nil, err
	}

	rows, err := p.db.Query(ctx,
		"SELECT "+cinemaRoomColumns+" FROM cinema_rooms ORDER BY id LIMIT $1 OFFSET $2",
		pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}

	rooms, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.CinemaRoom])
	if err != nil {
		return nil, nil, err
	}

	return rooms, domain.NewMetadata(totalRecords, pagination), nil
}

func (p *PostgresCinemaRoomRepository) GetByID(ctx context.Context, id int) (*domain.CinemaRoom, error) {
	rows, err := p.db.Query(ctx,
		"SELECT "+cinemaRoomColumns+" FROM cinema_rooms WHERE id = $1", id)
	if err != nil {
		return nil, err
	}

	room, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.CinemaRoom])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &room, nil
}

func (p *PostgresCinemaRoomRepository) Insert(ctx context.Context, room *domain.CinemaRoom) error {
	return p.db.QueryRow(ctx, `
		INSERT INTO cinema_rooms (name, location)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography)
		RETURNING id`,
		room.Name, room.Longitude, room.Latitude,
	).Scan(&room.ID)
}

func (p *PostgresCinemaRoomRepository) Update(ctx context.Context, room *domain.CinemaRoom) error {
	tag, err := p.db.Exec(ctx, `
		UPDATE cinema_rooms
		SET name = $1, location = ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography
		WHERE id = $4`,
		room.Name, room.Longitude, room.Latitude, room.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// GetNearby returns the rooms within the filter radius ordered by
// great-circle distance from the caller point, nearest first.
func (p *PostgresCinemaRoomRepository) GetNearby(ctx context.Context, filter domain.NearbyFilter) ([]domain.NearbyCinemaRoom, error) {
	rows, err := p.db.Query(ctx, `
		SELECT
			id,
			name,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			round(ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)) AS distance
		FROM cinema_rooms
		WHERE ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY distance`,
		filter.Longitude, filter.Latitude, filter.RadiusMeters())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []domain.NearbyCinemaRoom{}

	for rows.Next() {
		var room domain.NearbyCinemaRoom

		err := rows.Scan(&room.ID, &room.Name, &room.Latitude, &room.Longitude, &room.DistanceMeters)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}
