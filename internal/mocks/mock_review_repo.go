package mocks

import (
	"context"

	"github.com/movieverse/movie-catalog-api/internal/domain"
)

type MockReviewRepo struct {
	GetAllByMovieFunc        func(ctx context.Context, movieID int, p domain.Pagination) ([]domain.Review, *domain.Metadata, error)
	GetByIDFunc              func(ctx context.Context, id int) (*domain.Review, error)
	ExistsByMovieAndUserFunc func(ctx context.Context, movieID, userID int) (bool, error)
	InsertFunc               func(ctx context.Context, review *domain.Review) error
	UpdateFunc               func(ctx context.Context, review *domain.Review) error
	DeleteFunc               func(ctx context.Context, id int) error
}

var _ domain.ReviewRepository = (*MockReviewRepo)(nil)

func (m *MockReviewRepo) GetAllByMovie(ctx context.Context, movieID int, p domain.Pagination) ([]domain.Review, *domain.Metadata, error) {
	return m.GetAllByMovieFunc(ctx, movieID, p)
}

func (m *MockReviewRepo) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockReviewRepo) ExistsByMovieAndUser(ctx context.Context, movieID, userID int) (bool, error) {
	return m.ExistsByMovieAndUserFunc(ctx, movieID, userID)
}

func (m *MockReviewRepo) Insert(ctx context.Context, review *domain.Review) error {
	return m.InsertFunc(ctx, review)
}

func (m *MockReviewRepo) Update(ctx context.Context, review *domain.Review) error {
	return m.UpdateFunc(ctx, review)
}

func (m *MockReviewRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
