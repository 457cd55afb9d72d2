package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

type PostgresMovieRepository struct {
	*CrudRepository[domain.Movie]
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresMovieRepository(db *pgxpool.Pool, logger *slog.Logger) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		CrudRepository: NewCrudRepository(db, movieTable),
		db:             db,
		logger:         logger,
	}
}

var movieTable = Table[domain.Movie]{
	Name:    "movies",
	Columns: []string{"title", "in_theaters", "release_date", "poster_url"},
	Values: func(m *domain.Movie) []any {
		return []any{m.Title, m.InTheaters, m.ReleaseDate, m.PosterURL}
	},
	ID: func(m *domain.Movie) *int { return &m.ID },
}

// movieFilterQuery assembles the dynamic listing query. Each non-zero
// criterion adds an AND predicate; zero-valued criteria are skipped. The
// returned flag reports whether a requested sort field was outside the
// sortable set, in which case the query runs in id order.
func movieFilterQuery(f domain.MovieFilters, now time.Time) (string, []any, bool, error) {
	builder := psql.Select(
		"count(*) OVER() AS total_records",
		"id", "title", "in_theaters", "release_date", "poster_url",
	).From("movies")

	if f.Title != "" {
		builder = builder.Where(squirrel.ILike{"title": "%" + f.Title + "%"})
	}
	if f.InTheaters {
		builder = builder.Where(squirrel.Eq{"in_theaters": true})
	}
	if f.UpcomingReleases {
		builder = builder.Where(squirrel.Gt{"release_date": now})
	}
	if f.GenreID != 0 {
		builder = builder.Where(
			squirrel.Expr("id IN (SELECT movie_id FROM movie_genres WHERE genre_id = ?)", f.GenreID),
		)
	}

	sortUnknown := false
	if f.SortField != "" {
		if column, ok := f.SortColumn(); ok {
			builder = builder.OrderBy(column + " " + f.SortDirection())
		} else {
			sortUnknown = true
		}
	}
	builder = builder.OrderBy("id")

	query, args, err := builder.
		Limit(uint64(f.Pagination.Limit())).
		Offset(uint64(f.Pagination.Offset())).
		ToSql()

	return query, args, sortUnknown, err
}

func (p *PostgresMovieRepository) GetFiltered(ctx context.Context, filters domain.MovieFilters) ([]domain.Movie, *domain.Metadata, error) {
	today := time.Now().Truncate(24 * time.Hour)

	query, args, sortUnknown, err := movieFilterQuery(filters, today)
	if err != nil {
		return nil, nil, err
	}

	if sortUnknown {
		p.logger.Warn("ignoring unknown sort field", "field", filters.SortField)
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.InTheaters,
			&movie.ReleaseDate,
			&movie.PosterURL,
		)
		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return movies, domain.NewMetadata(totalRecords, filters.Pagination), nil
}

func (p *PostgresMovieRepository) GetDetails(ctx context.Context, id int) (*domain.MovieDetails, error) {
	movie, err := p.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := domain.MovieDetails{
		Movie:  *movie,
		Genres: []domain.Genre{},
		Cast:   []domain.CastMember{},
	}

	genreRows, err := p.db.Query(ctx, `
		SELECT g.id, g.name
		FROM genres g
		INNER JOIN movie_genres mg ON mg.genre_id = g.id
		WHERE mg.movie_id = $1
		ORDER BY g.id`, id)
	if err != nil {
		return nil, err
	}

	details.Genres, err = pgx.CollectRows(genreRows, pgx.RowToStructByName[domain.Genre])
	if err != nil {
		return nil, err
	}

	castRows, err := p.db.Query(ctx, `
		SELECT mc.actor_id, a.name, mc.character_name, mc.position
		FROM movie_cast mc
		INNER JOIN actors a ON a.id = mc.actor_id
		WHERE mc.movie_id = $1
		ORDER BY mc.position`, id)
	if err != nil {
		return nil, err
	}
	defer castRows.Close()

	for castRows.Next() {
		var member domain.CastMember

		err := castRows.Scan(&member.ActorID, &member.ActorName, &member.Character, &member.Position)
		if err != nil {
			return nil, err
		}

		details.Cast = append(details.Cast, member)
	}

	if err = castRows.Err(); err != nil {
		return nil, err
	}

	return &details, nil
}

func (p *PostgresMovieRepository) GetShowcase(ctx context.Context, top int) (*domain.MovieShowcase, error) {
	today := time.Now().Truncate(24 * time.Hour)

	upcomingRows, err := p.db.Query(ctx, `
		SELECT id, title, in_theaters, release_date, poster_url
		FROM movies
		WHERE release_date > $1
		ORDER BY release_date
		LIMIT $2`, today, top)
	if err != nil {
		return nil, err
	}

	upcoming, err := pgx.CollectRows(upcomingRows, pgx.RowToStructByName[domain.Movie])
	if err != nil {
		return nil, err
	}

	inTheatersRows, err := p.db.Query(ctx, `
		SELECT id, title, in_theaters, release_date, poster_url
		FROM movies
		WHERE in_theaters = true
		ORDER BY id
		LIMIT $1`, top)
	if err != nil {
		return nil, err
	}

	inTheaters, err := pgx.CollectRows(inTheatersRows, pgx.RowToStructByName[domain.Movie])
	if err != nil {
		return nil, err
	}

	return &domain.MovieShowcase{Upcoming: upcoming, InTheaters: inTheaters}, nil
}

// InsertWithRelations persists the movie together with its genre links and
// cast in one transaction. Cast positions are stamped from submission order.
func (p *PostgresMovieRepository) InsertWithRelations(ctx context.Context, movie *domain.Movie, genreIDs []int, cast []domain.CastMember) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO movies (title, in_theaters, release_date, poster_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		movie.Title, movie.InTheaters, movie.ReleaseDate, movie.PosterURL,
	).Scan(&movie.ID)
	if err != nil {
		return err
	}

	if err := insertMovieRelations(ctx, tx, movie.ID, genreIDs, cast); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// UpdateWithRelations performs the full-replace update: every movie column is
// overwritten and the child collections are rebuilt from the payload.
func (p *PostgresMovieRepository) UpdateWithRelations(ctx context.Context, movie *domain.Movie, genreIDs []int, cast []domain.CastMember) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE movies
		SET title = $1, in_theaters = $2, release_date = $3, poster_url = $4
		WHERE id = $5`,
		movie.Title, movie.InTheaters, movie.ReleaseDate, movie.PosterURL, movie.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	_, err = tx.Exec(ctx, "DELETE FROM movie_genres WHERE movie_id = $1", movie.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, "DELETE FROM movie_cast WHERE movie_id = $1", movie.ID)
	if err != nil {
		return err
	}

	if err := insertMovieRelations(ctx, tx, movie.ID, genreIDs, cast); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertMovieRelations(ctx context.Context, tx pgx.Tx, movieID int, genreIDs []int, cast []domain.CastMember) error {
	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)", movieID, genreID)
		if err != nil {
			return err
		}
	}

	for i, member := range cast {
		_, err := tx.Exec(ctx, `
			INSERT INTO movie_cast (movie_id, actor_id, character_name, position)
			VALUES ($1, $2, $3, $4)`,
			movieID, member.ActorID, member.Character, i)
		if err != nil {
			return err
		}
	}

	return nil
}
