package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/movieverse/movie-catalog-api/api"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

// The helpers below carry the handler flow shared by every flat catalog
// resource: parse, delegate to the repository, map entity to DTO, render.
// They are package-level functions because methods cannot introduce type
// parameters.

func listResource[E, DTO any](app *Application, w http.ResponseWriter, r *http.Request, repo domain.CrudRepository[E], toDTO func(*E) DTO) {
	pagination := app.readPagination(r)

	entities, metadata, err := repo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	dtos := make([]DTO, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, toDTO(&entities[i]))
	}

	if err := app.writeJSON(w, http.StatusOK, dtos, paginationHeaders(metadata)); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func getResourceByID[E, DTO any](app *Application, w http.ResponseWriter, r *http.Request, repo domain.CrudRepository[E], toDTO func(*E) DTO) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	entity, err := repo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, toDTO(entity), nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func createResource[E, DTO any](app *Application, w http.ResponseWriter, r *http.Request, repo domain.CrudRepository[E], entity *E, toDTO func(*E) DTO, location func(*E) string) {
	if err := repo.Insert(r.Context(), entity); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", location(entity))

	if err := app.writeJSON(w, http.StatusCreated, toDTO(entity), headers); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// replaceResource persists a fully-formed entity whose ID is already
// stamped. The row must exist; replacement never creates.
func replaceResource[E any](app *Application, w http.ResponseWriter, r *http.Request, repo domain.CrudRepository[E], entity *E) {
	if err := repo.Update(r.Context(), entity); err != nil {
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

func deleteResource[E any](app *Application, w http.ResponseWriter, r *http.Request, repo domain.CrudRepository[E]) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	if err := repo.Delete(r.Context(), id); err != nil {
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

// patchResource loads the entity, projects it to its patchable DTO, applies
// the operation list, re-validates and writes the merged entity back. An
// invalid document never reaches the repository.
func patchResource[E, DTO any](app *Application, w http.ResponseWriter, r *http.Request, repo domain.CrudRepository[E], toDTO func(*E) DTO, applyTo func(DTO, *E)) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var ops []api.PatchOperation
	if err := app.readJSON(w, r, &ops); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if len(ops) == 0 {
		app.badRequestResponse(w, r, errors.New("patch document must contain at least one operation"))
		return
	}

	for i := range ops {
		if err := app.validator.Struct(ops[i]); err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("operation %d is invalid", i))
			return
		}
	}

	entity, err := repo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	patched, err := applyPatch(toDTO(entity), ops)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.validator.Struct(patched); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	applyTo(patched, entity)

	if err := repo.Update(r.Context(), entity); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
