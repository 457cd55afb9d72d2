// Package mocks provides func-field test doubles for the repository
// interfaces. A method whose func field is left nil panics, which surfaces
// unexpected repository calls in tests.
package mocks

import (
	"context"

	"github.com/movieverse/movie-catalog-api/internal/domain"
)

type MockCrudRepo[E any] struct {
	GetAllFunc  func(ctx context.Context, p domain.Pagination) ([]E, *domain.Metadata, error)
	GetByIDFunc func(ctx context.Context, id int) (*E, error)
	ExistsFunc  func(ctx context.Context, id int) (bool, error)
	InsertFunc  func(ctx context.Context, entity *E) error
	UpdateFunc  func(ctx context.Context, entity *E) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockCrudRepo[E]) GetAll(ctx context.Context, p domain.Pagination) ([]E, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, p)
}

func (m *MockCrudRepo[E]) GetByID(ctx context.Context, id int) (*E, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockCrudRepo[E]) Exists(ctx context.Context, id int) (bool, error) {
	return m.ExistsFunc(ctx, id)
}

func (m *MockCrudRepo[E]) Insert(ctx context.Context, entity *E) error {
	return m.InsertFunc(ctx, entity)
}

func (m *MockCrudRepo[E]) Update(ctx context.Context, entity *E) error {
	return m.UpdateFunc(ctx, entity)
}

func (m *MockCrudRepo[E]) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
