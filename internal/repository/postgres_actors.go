package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

type PostgresActorRepository struct {
	*CrudRepository[domain.Actor]
}

func NewPostgresActorRepository(db *pgxpool.Pool) *PostgresActorRepository {
	return &PostgresActorRepository{
		CrudRepository: NewCrudRepository(db, Table[domain.Actor]{
			Name:    "actors",
			Columns: []string{"name", "birth_date", "photo_url"},
			Values:  func(a *domain.Actor) []any { return []any{a.Name, a.BirthDate, a.PhotoURL} },
			ID:      func(a *domain.Actor) *int { return &a.ID },
		}),
	}
}
