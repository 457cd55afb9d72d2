package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/movieverse/movie-catalog-api/api"
	"github.com/movieverse/movie-catalog-api/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const (
	moviePosterContainer = "movies"
	defaultShowcaseSize  = 6
	maxShowcaseSize      = 20
)

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:          movie.ID,
		Title:       movie.Title,
		InTheaters:  movie.InTheaters,
		ReleaseDate: types.Date{Time: movie.ReleaseDate},
		PosterUrl:   movie.PosterURL,
	}
}

func toMoviePatch(movie *domain.Movie) api.MoviePatch {
	return api.MoviePatch{
		Title:       movie.Title,
		InTheaters:  movie.InTheaters,
		ReleaseDate: types.Date{Time: movie.ReleaseDate},
	}
}

func toMovieDetailsResponse(details *domain.MovieDetails) api.MovieDetailsResponse {
	resp := api.MovieDetailsResponse{
		MovieResponse: toMovieResponse(&details.Movie),
		Genres:        make([]api.GenreResponse, 0, len(details.Genres)),
		Cast:          make([]api.CastMemberResponse, 0, len(details.Cast)),
	}

	for i := range details.Genres {
		resp.Genres = append(resp.Genres, toGenreResponse(&details.Genres[i]))
	}
	for _, member := range details.Cast {
		resp.Cast = append(resp.Cast, api.CastMemberResponse{
			ActorId:   member.ActorID,
			Name:      member.ActorName,
			Character: member.Character,
		})
	}

	return resp
}

// readMovieForm binds the multipart fields of movie create/replace. The cast
// list travels as a JSON array in the "cast" field so character names and
// ordering survive the form encoding.
func (app *Application) readMovieForm(r *http.Request) (api.MovieRequest, *imageUpload, error) {
	var req api.MovieRequest

	if err := r.ParseMultipartForm(maxMultipartParse); err != nil {
		return req, nil, err
	}

	req.Title = r.FormValue("title")

	if raw := r.FormValue("inTheaters"); raw != "" {
		inTheaters, err := strconv.ParseBool(raw)
		if err != nil {
			return req, nil, errors.New("inTheaters must be a boolean")
		}
		req.InTheaters = inTheaters
	}

	if raw := r.FormValue("releaseDate"); raw != "" {
		releaseDate, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return req, nil, fmt.Errorf("releaseDate must be a date in the form %s", time.DateOnly)
		}
		req.ReleaseDate = types.Date{Time: releaseDate}
	}

	for _, raw := range r.PostForm["genreIds"] {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return req, nil, errors.New("genreIds must be integers")
		}
		req.GenreIds = append(req.GenreIds, id)
	}

	if raw := r.FormValue("cast"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Cast); err != nil {
			return req, nil, errors.New("cast must be a JSON array of {actorId, character}")
		}
	}

	poster, err := app.readImageFile(r, "poster")
	if err != nil {
		return req, nil, err
	}

	return req, poster, nil
}

func castFromRequest(cast []api.CastMemberRequest) []domain.CastMember {
	members := make([]domain.CastMember, 0, len(cast))
	for _, member := range cast {
		members = append(members, domain.CastMember{
			ActorID:   member.ActorId,
			Character: member.Character,
		})
	}

	return members
}

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	listResource(app, w, r, app.movieRepo, toMovieResponse)
}

// FilterMovies runs the criteria-driven listing. Every criterion is
// optional; an unparsable sortDescending or inTheaters simply stays off.
func (app *Application) FilterMovies(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	inTheaters, _ := strconv.ParseBool(qs.Get("inTheaters"))
	upcoming, _ := strconv.ParseBool(qs.Get("upcomingReleases"))
	genreID, _ := strconv.Atoi(qs.Get("genreId"))
	sortDescending, _ := strconv.ParseBool(qs.Get("sortDescending"))

	filters := domain.MovieFilters{
		Title:            qs.Get("title"),
		InTheaters:       inTheaters,
		UpcomingReleases: upcoming,
		GenreID:          genreID,
		SortField:        qs.Get("sortField"),
		SortDescending:   sortDescending,
		Pagination:       app.readPagination(r),
	}

	movies, metadata, err := app.movieRepo.GetFiltered(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	dtos := make([]api.MovieResponse, 0, len(movies))
	for i := range movies {
		dtos = append(dtos, toMovieResponse(&movies[i]))
	}

	if err := app.writeJSON(w, http.StatusOK, dtos, paginationHeaders(metadata)); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieShowcase(w http.ResponseWriter, r *http.Request) {
	top, _ := strconv.Atoi(r.URL.Query().Get("top"))
	if top < 1 {
		top = defaultShowcaseSize
	}
	if top > maxShowcaseSize {
		top = maxShowcaseSize
	}

	showcase, err := app.movieRepo.GetShowcase(r.Context(), top)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieShowcaseResponse{
		Upcoming:   make([]api.MovieResponse, 0, len(showcase.Upcoming)),
		InTheaters: make([]api.MovieResponse, 0, len(showcase.InTheaters)),
	}
	for i := range showcase.Upcoming {
		resp.Upcoming = append(resp.Upcoming, toMovieResponse(&showcase.Upcoming[i]))
	}
	for i := range showcase.InTheaters {
		resp.InTheaters = append(resp.InTheaters, toMovieResponse(&showcase.InTheaters[i]))
	}

	if err := app.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	details, err := app.movieRepo.GetDetails(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, toMovieDetailsResponse(details), nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	req, poster, err := app.readMovieForm(r)
	if err != nil {
		switch {
		case errors.Is(err, errImageTooLarge), errors.Is(err, errImageWrongFormat):
			app.fieldValidationResponse(w, r, "poster", err.Error())
		default:
			app.badRequestResponse(w, r, err)
		}
		return
	}

	if err := app.validator.Struct(req); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := domain.Movie{
		Title:       req.Title,
		InTheaters:  req.InTheaters,
		ReleaseDate: req.ReleaseDate.Time,
	}

	if poster != nil {
		url, err := app.blobStore.Save(r.Context(), poster.content, poster.extension, moviePosterContainer, poster.contentType)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		movie.PosterURL = url
	}

	err = app.movieRepo.InsertWithRelations(r.Context(), &movie, req.GenreIds, castFromRequest(req.Cast))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/movies/%d", movie.ID))

	if err := app.writeJSON(w, http.StatusCreated, toMovieResponse(&movie), headers); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ReplaceMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	req, poster, err := app.readMovieForm(r)
	if err != nil {
		switch {
		case errors.Is(err, errImageTooLarge), errors.Is(err, errImageWrongFormat):
			app.fieldValidationResponse(w, r, "poster", err.Error())
		default:
			app.badRequestResponse(w, r, err)
		}
		return
	}

	if err := app.validator.Struct(req); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	existing, err := app.movieRepo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	movie := domain.Movie{
		ID:          id,
		Title:       req.Title,
		InTheaters:  req.InTheaters,
		ReleaseDate: req.ReleaseDate.Time,
		PosterURL:   existing.PosterURL,
	}

	if poster != nil {
		url, err := app.blobStore.Replace(r.Context(), poster.content, poster.extension, moviePosterContainer, existing.PosterURL, poster.contentType)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		movie.PosterURL = url
	}

	err = app.movieRepo.UpdateWithRelations(r.Context(), &movie, req.GenreIds, castFromRequest(req.Cast))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) PatchMovie(w http.ResponseWriter, r *http.Request) {
	patchResource(app, w, r, app.movieRepo, toMoviePatch, func(patch api.MoviePatch, movie *domain.Movie) {
		movie.Title = patch.Title
		movie.InTheaters = patch.InTheaters
		movie.ReleaseDate = patch.ReleaseDate.Time
	})
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.movieRepo.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.blobStore.Delete(r.Context(), movie.PosterURL, moviePosterContainer); err != nil {
		app.logger.Warn("failed to delete movie poster", "movieID", id, "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}
