package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

type PostgresReviewRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReviewRepository(db *pgxpool.Pool) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (p *PostgresReviewRepository) GetAllByMovie(ctx context.Context, movieID int, pagination domain.Pagination) ([]domain.Review, *domain.Metadata, error) {
	rows, err := p.db.Query(ctx, `
		SELECT count(*) OVER(), r.id, r.movie_id, r.user_id, u.name, r.comment, r.score
		FROM reviews r
		INNER JOIN users u ON u.id = r.user_id
		WHERE r.movie_id = $1
		ORDER BY r.id
		LIMIT $2 OFFSET $3`,
		movieID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	reviews := []domain.Review{}

	for rows.Next() {
		var review domain.Review

		err := rows.Scan(
			&totalRecords,
			&review.ID,
			&review.MovieID,
			&review.UserID,
			&review.UserName,
			&review.Comment,
			&review.Score,
		)
		if err != nil {
			return nil, nil, err
		}

		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return reviews, domain.NewMetadata(totalRecords, pagination), nil
}

func (p *PostgresReviewRepository) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	var review domain.Review

	err := p.db.QueryRow(ctx, `
		SELECT r.id, r.movie_id, r.user_id, u.name, r.comment, r.score
		FROM reviews r
		INNER JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`, id,
	).Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.UserName,
		&review.Comment,
		&review.Score,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &review, nil
}

func (p *PostgresReviewRepository) ExistsByMovieAndUser(ctx context.Context, movieID, userID int) (bool, error) {
	var exists bool

	err := p.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM reviews WHERE movie_id = $1 AND user_id = $2)",
		movieID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Insert maps the (movie, user) unique index violation to ErrDuplicateReview
// so a race past the handler's existence pre-check still surfaces cleanly.
func (p *PostgresReviewRepository) Insert(ctx context.Context, review *domain.Review) error {
	err := p.db.QueryRow(ctx, `
		INSERT INTO reviews (movie_id, user_id, comment, score)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		review.MovieID, review.UserID, review.Comment, review.Score,
	).Scan(&review.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateReview
		}
		return err
	}

	return nil
}

func (p *PostgresReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	tag, err := p.db.Exec(ctx,
		"UPDATE reviews SET comment = $1, score = $2 WHERE id = $3",
		review.Comment, review.Score, review.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresReviewRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
