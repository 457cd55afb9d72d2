package mocks

import (
	"context"

	"github.com/movieverse/movie-catalog-api/internal/domain"
)

type MockUserRepo struct {
	InsertFunc     func(ctx context.Context, user *domain.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc    func(ctx context.Context, id int) (*domain.User, error)
}

var _ domain.UserRepository = (*MockUserRepo)(nil)

func (m *MockUserRepo) Insert(ctx context.Context, user *domain.User) error {
	return m.InsertFunc(ctx, user)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}
