package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/movieverse/movie-catalog-api/api"
	"github.com/movieverse/movie-catalog-api/internal/domain"
	"github.com/movieverse/movie-catalog-api/internal/mocks"
	appvalidator "github.com/movieverse/movie-catalog-api/internal/validator"
)

func TestGetNearbyCinemaRooms(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		getNearbyFunc  func(ctx context.Context, filter domain.NearbyFilter) ([]domain.NearbyCinemaRoom, error)
		wantStatus     int
		wantResponse   []api.NearbyCinemaRoomResponse
		wantErrMessage string
	}{
		{
			name: "rooms come back closest first",
			url:  "/cinema-rooms/nearby?latitude=18.48&longitude=-69.94",
			getNearbyFunc: func(ctx context.Context, filter domain.NearbyFilter) ([]domain.NearbyCinemaRoom, error) {
				if filter.RadiusMeters() != domain.DefaultNearbyRadiusKm*1000 {
					return nil, fmt.Errorf("radius = %d, want default", filter.RadiusMeters())
				}
				return []domain.NearbyCinemaRoom{
					{ID: 2, Name: "Close Room", Latitude: 18.481, Longitude: -69.941, DistanceMeters: 120},
					{ID: 1, Name: "Far Room", Latitude: 18.5, Longitude: -69.9, DistanceMeters: 4800},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: []api.NearbyCinemaRoomResponse{
				{Id: 2, Name: "Close Room", Latitude: 18.481, Longitude: -69.941, DistanceMeters: 120},
				{Id: 1, Name: "Far Room", Latitude: 18.5, Longitude: -69.9, DistanceMeters: 4800},
			},
		},
		{
			name: "oversized radius is capped",
			url:  "/cinema-rooms/nearby?latitude=18.48&longitude=-69.94&radiusKm=500",
			getNearbyFunc: func(ctx context.Context, filter domain.NearbyFilter) ([]domain.NearbyCinemaRoom, error) {
				if filter.RadiusMeters() != domain.MaxNearbyRadiusKm*1000 {
					return nil, fmt.Errorf("radius = %d, want cap", filter.RadiusMeters())
				}
				return []domain.NearbyCinemaRoom{}, nil
			},
			wantStatus:   http.StatusOK,
			wantResponse: []api.NearbyCinemaRoomResponse{},
		},
		{
			name:           "latitude out of range",
			url:            "/cinema-rooms/nearby?latitude=123.0&longitude=-69.94",
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: appvalidator.ErrLatitude,
		},
		{
			name:           "longitude out of range",
			url:            "/cinema-rooms/nearby?latitude=18.48&longitude=-190.0",
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: appvalidator.ErrLongitude,
		},
		{
			name:       "missing coordinates",
			url:        "/cinema-rooms/nearby",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(app *Application) {
				app.cinemaRepo = &mocks.MockCinemaRoomRepo{GetNearbyFunc: tt.getNearbyFunc}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)
			app.Routes().ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			checkErrorMessage(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus != http.StatusOK {
				return
			}

			var got []api.NearbyCinemaRoomResponse
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.wantResponse, got); diff != "" {
				t.Errorf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateCinemaRoom(t *testing.T) {
	tests := []struct {
		name           string
		body           api.CinemaRoomRequest
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "valid room",
			body:       api.CinemaRoomRequest{Name: "Sala Capitolio", Latitude: 18.48, Longitude: -69.94},
			wantStatus: http.StatusCreated,
		},
		{
			name:           "latitude out of range",
			body:           api.CinemaRoomRequest{Name: "Sala Capitolio", Latitude: 99.9, Longitude: -69.94},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: appvalidator.ErrLatitude,
		},
		{
			name:           "missing name",
			body:           api.CinemaRoomRequest{Latitude: 18.48, Longitude: -69.94},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: appvalidator.ErrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(app *Application) {
				app.cinemaRepo = &mocks.MockCinemaRoomRepo{
					MockCrudRepo: mocks.MockCrudRepo[domain.CinemaRoom]{
						InsertFunc: func(ctx context.Context, room *domain.CinemaRoom) error {
							room.ID = 5
							return nil
						},
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/cinema-rooms", tt.body)
			app.Routes().ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			checkErrorMessage(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus == http.StatusCreated {
				if got := w.Header().Get("Location"); got != "/cinema-rooms/5" {
					t.Errorf("Location = %q, want %q", got, "/cinema-rooms/5")
				}
			}
		})
	}
}
