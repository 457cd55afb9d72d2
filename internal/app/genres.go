package app

import (
	"fmt"
	"net/http"

	"github.com/movieverse/movie-catalog-api/api"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

func toGenreResponse(genre *domain.Genre) api.GenreResponse {
	return api.GenreResponse{
		Id:   genre.ID,
		Name: genre.Name,
	}
}

func (app *Application) ListGenres(w http.ResponseWriter, r *http.Request) {
	listResource(app, w, r, app.genreRepo, toGenreResponse)
}

func (app *Application) GetGenre(w http.ResponseWriter, r *http.Request) {
	getResourceByID(app, w, r, app.genreRepo, toGenreResponse)
}

func (app *Application) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req api.GenreRequest

	if err := app.readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.validator.Struct(req); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	genre := domain.Genre{Name: req.Name}

	createResource(app, w, r, app.genreRepo, &genre, toGenreResponse, func(g *domain.Genre) string {
		return fmt.Sprintf("/genres/%d", g.ID)
	})
}

func (app *Application) ReplaceGenre(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.GenreRequest

	if err := app.readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.validator.Struct(req); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	genre := domain.Genre{ID: id, Name: req.Name}

	replaceResource(app, w, r, app.genreRepo, &genre)
}

func (app *Application) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	deleteResource(app, w, r, app.genreRepo)
}
