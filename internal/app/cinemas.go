package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/movieverse/movie-catalog-api/api"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

func toCinemaRoomResponse(room *domain.CinemaRoom) api.CinemaRoomResponse {
	return api.CinemaRoomResponse{
		Id:        room.ID,
		Name:      room.Name,
		Latitude:  room.Latitude,
		Longitude: room.Longitude,
	}
}

func (app *Application) readCinemaRoomRequest(w http.ResponseWriter, r *http.Request) (api.CinemaRoomRequest, bool) {
	var req api.CinemaRoomRequest

	if err := app.readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return req, false
	}

	if err := app.validator.Struct(req); err != nil {
		app.failedValidationResponse(w, r, err)
		return req, false
	}

	return req, true
}

func (app *Application) ListCinemaRooms(w http.ResponseWriter, r *http.Request) {
	listResource(app, w, r, app.cinemaRepo, toCinemaRoomResponse)
}

func (app *Application) GetCinemaRoom(w http.ResponseWriter, r *http.Request) {
	getResourceByID(app, w, r, app.cinemaRepo, toCinemaRoomResponse)
}

func (app *Application) CreateCinemaRoom(w http.ResponseWriter, r *http.Request) {
	req, ok := app.readCinemaRoomRequest(w, r)
	if !ok {
		return
	}

	room := domain.CinemaRoom{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	createResource(app, w, r, app.cinemaRepo, &room, toCinemaRoomResponse, func(c *domain.CinemaRoom) string {
		return fmt.Sprintf("/cinema-rooms/%d", c.ID)
	})
}

func (app *Application) ReplaceCinemaRoom(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	req, ok := app.readCinemaRoomRequest(w, r)
	if !ok {
		return
	}

	room := domain.CinemaRoom{
		ID:        id,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	replaceResource(app, w, r, app.cinemaRepo, &room)
}

func (app *Application) DeleteCinemaRoom(w http.ResponseWriter, r *http.Request) {
	deleteResource(app, w, r, app.cinemaRepo)
}

// GetNearbyCinemaRooms returns the rooms within the requested radius of a
// coordinate, closest first. The radius falls back to a default and is
// capped, so a client can never widen the search past the ceiling.
func (app *Application) GetNearbyCinemaRooms(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	latitude, err := strconv.ParseFloat(qs.Get("latitude"), 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("latitude must be a number"))
		return
	}

	longitude, err := strconv.ParseFloat(qs.Get("longitude"), 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("longitude must be a number"))
		return
	}

	radiusKm, _ := strconv.Atoi(qs.Get("radiusKm"))

	params := api.NearbyCinemaRoomsParams{
		Latitude:  latitude,
		Longitude: longitude,
		RadiusKm:  radiusKm,
	}
	if err := app.validator.Struct(params); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	rooms, err := app.cinemaRepo.GetNearby(r.Context(), domain.NewNearbyFilter(latitude, longitude, radiusKm))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	dtos := make([]api.NearbyCinemaRoomResponse, 0, len(rooms))
	for _, room := range rooms {
		dtos = append(dtos, api.NearbyCinemaRoomResponse{
			Id:             room.ID,
			Name:           room.Name,
			Latitude:       room.Latitude,
			Longitude:      room.Longitude,
			DistanceMeters: room.DistanceMeters,
		})
	}

	if err := app.writeJSON(w, http.StatusOK, dtos, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
