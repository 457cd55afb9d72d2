package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

type PostgresGenreRepository struct {
	*CrudRepository[domain.Genre]
}

func NewPostgresGenreRepository(db *pgxpool.Pool) *PostgresGenreRepository {
	return &PostgresGenreRepository{
		CrudRepository: NewCrudRepository(db, Table[domain.Genre]{
			Name:    "genres",
			Columns: []string{"name"},
			Values:  func(g *domain.Genre) []any { return []any{g.Name} },
			ID:      func(g *domain.Genre) *int { return &g.ID },
		}),
	}
}
