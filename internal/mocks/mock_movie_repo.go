package mocks

import (
	"context"

	"github.com/movieverse/movie-catalog-api/internal/domain"
)

type MockMovieRepo struct {
	MockCrudRepo[domain.Movie]
	GetFilteredFunc         func(ctx context.Context, filters domain.MovieFilters) ([]domain.Movie, *domain.Metadata, error)
	GetDetailsFunc          func(ctx context.Context, id int) (*domain.MovieDetails, error)
	GetShowcaseFunc         func(ctx context.Context, top int) (*domain.MovieShowcase, error)
	InsertWithRelationsFunc func(ctx context.Context, movie *domain.Movie, genreIDs []int, cast []domain.CastMember) error
	UpdateWithRelationsFunc func(ctx context.Context, movie *domain.Movie, genreIDs []int, cast []domain.CastMember) error
}

var _ domain.MovieRepository = (*MockMovieRepo)(nil)

func (m *MockMovieRepo) GetFiltered(ctx context.Context, filters domain.MovieFilters) ([]domain.Movie, *domain.Metadata, error) {
	return m.GetFilteredFunc(ctx, filters)
}

func (m *MockMovieRepo) GetDetails(ctx context.Context, id int) (*domain.MovieDetails, error) {
	return m.GetDetailsFunc(ctx, id)
}

func (m *MockMovieRepo) GetShowcase(ctx context.Context, top int) (*domain.MovieShowcase, error) {
	return m.GetShowcaseFunc(ctx, top)
}

func (m *MockMovieRepo) InsertWithRelations(ctx context.Context, movie *domain.Movie, genreIDs []int, cast []domain.CastMember) error {
	return m.InsertWithRelationsFunc(ctx, movie, genreIDs, cast)
}

func (m *MockMovieRepo) UpdateWithRelations(ctx context.Context, movie *domain.Movie, genreIDs []int, cast []domain.CastMember) error {
	return m.UpdateWithRelationsFunc(ctx, movie, genreIDs, cast)
}
