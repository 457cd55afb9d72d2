package mocks

import (
	"context"

	"github.com/movieverse/movie-catalog-api/internal/domain"
)

type MockCinemaRoomRepo struct {
	MockCrudRepo[domain.CinemaRoom]
	GetNearbyFunc func(ctx context.Context, filter domain.NearbyFilter) ([]domain.NearbyCinemaRoom, error)
}

var _ domain.CinemaRoomRepository = (*MockCinemaRoomRepo)(nil)

func (m *MockCinemaRoomRepo) GetNearby(ctx context.Context, filter domain.NearbyFilter) ([]domain.NearbyCinemaRoom, error) {
	return m.GetNearbyFunc(ctx, filter)
}
