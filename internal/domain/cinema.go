package domain

import "context"

type CinemaRoom struct {
	ID        int     `db:"id"`
	Name      string  `db:"name"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
}

type NearbyCinemaRoom struct {
	ID             int
	Name           string
	Latitude       float64
	Longitude      float64
	DistanceMeters float64
}

const (
	DefaultNearbyRadiusKm = 10
	MaxNearbyRadiusKm     = 50
)

// NearbyFilter is clamped at construction like Pagination: a zero radius
// falls back to the default, anything above the ceiling is capped.
type NearbyFilter struct {
	Latitude  float64
	Longitude float64
	radiusKm  int
}

func NewNearbyFilter(lat, long float64, radiusKm int) NearbyFilter {
	if radiusKm < 1 {
		radiusKm = DefaultNearbyRadiusKm
	}
	if radiusKm > MaxNearbyRadiusKm {
		radiusKm = MaxNearbyRadiusKm
	}

	return NearbyFilter{Latitude: lat, Longitude: long, radiusKm: radiusKm}
}

func (f NearbyFilter) RadiusMeters() int {
	return f.radiusKm * 1000
}

type CinemaRoomRepository interface {
	CrudRepository[CinemaRoom]
	GetNearby(ctx context.Context, filter NearbyFilter) ([]NearbyCinemaRoom, error)
}
