package mocks

import "github.com/movieverse/movie-catalog-api/internal/domain"

type MockGenreRepo struct {
	MockCrudRepo[domain.Genre]
}

var _ domain.GenreRepository = (*MockGenreRepo)(nil)
