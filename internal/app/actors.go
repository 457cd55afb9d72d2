package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/movieverse/movie-catalog-api/api"
	"github.com/movieverse/movie-catalog-api/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const actorPhotoContainer = "actors"

func toActorResponse(actor *domain.Actor) api.ActorResponse {
	return api.ActorResponse{
		Id:        actor.ID,
		Name:      actor.Name,
		BirthDate: types.Date{Time: actor.BirthDate},
		PhotoUrl:  actor.PhotoURL,
	}
}

func toActorPatch(actor *domain.Actor) api.ActorPatch {
	return api.ActorPatch{
		Name:      actor.Name,
		BirthDate: types.Date{Time: actor.BirthDate},
	}
}

// readActorForm binds the multipart fields of actor create/replace. The
// photo is optional on both.
func (app *Application) readActorForm(r *http.Request) (api.ActorRequest, *imageUpload, error) {
	var req api.ActorRequest

	if err := r.ParseMultipartForm(maxMultipartParse); err != nil {
		return req, nil, err
	}

	req.Name = r.FormValue("name")

	if raw := r.FormValue("birthDate"); raw != "" {
		birthDate, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return req, nil, fmt.Errorf("birthDate must be a date in the form %s", time.DateOnly)
		}
		req.BirthDate = types.Date{Time: birthDate}
	}

	photo, err := app.readImageFile(r, "photo")
	if err != nil {
		return req, nil, err
	}

	return req, photo, nil
}

func (app *Application) ListActors(w http.ResponseWriter, r *http.Request) {
	listResource(app, w, r, app.actorRepo, toActorResponse)
}

func (app *Application) GetActor(w http.ResponseWriter, r *http.Request) {
	getResourceByID(app, w, r, app.actorRepo, toActorResponse)
}

func (app *Application) CreateActor(w http.ResponseWriter, r *http.Request) {
	req, photo, err := app.readActorForm(r)
	if err != nil {
		switch {
		case errors.Is(err, errImageTooLarge), errors.Is(err, errImageWrongFormat):
			app.fieldValidationResponse(w, r, "photo", err.Error())
		default:
			app.badRequestResponse(w, r, err)
		}
		return
	}

	if err := app.validator.Struct(req); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	actor := domain.Actor{
		Name:      req.Name,
		BirthDate: req.BirthDate.Time,
	}

	if photo != nil {
		url, err := app.blobStore.Save(r.Context(), photo.content, photo.extension, actorPhotoContainer, photo.contentType)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		actor.PhotoURL = url
	}

	createResource(app, w, r, app.actorRepo, &actor, toActorResponse, func(a *domain.Actor) string {
		return fmt.Sprintf("/actors/%d", a.ID)
	})
}

func (app *Application) ReplaceActor(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	req, photo, err := app.readActorForm(r)
	if err != nil {
		switch {
		case errors.Is(err, errImageTooLarge), errors.Is(err, errImageWrongFormat):
			app.fieldValidationResponse(w, r, "photo", err.Error())
		default:
			app.badRequestResponse(w, r, err)
		}
		return
	}

	if err := app.validator.Struct(req); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	existing, err := app.actorRepo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	actor := domain.Actor{
		ID:        id,
		Name:      req.Name,
		BirthDate: req.BirthDate.Time,
		PhotoURL:  existing.PhotoURL,
	}

	// A replacement without a photo keeps the stored one.
	if photo != nil {
		url, err := app.blobStore.Replace(r.Context(), photo.content, photo.extension, actorPhotoContainer, existing.PhotoURL, photo.contentType)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		actor.PhotoURL = url
	}

	replaceResource(app, w, r, app.actorRepo, &actor)
}

func (app *Application) PatchActor(w http.ResponseWriter, r *http.Request) {
	patchResource(app, w, r, app.actorRepo, toActorPatch, func(patch api.ActorPatch, actor *domain.Actor) {
		actor.Name = patch.Name
		actor.BirthDate = patch.BirthDate.Time
	})
}

func (app *Application) DeleteActor(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	actor, err := app.actorRepo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.actorRepo.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.blobStore.Delete(r.Context(), actor.PhotoURL, actorPhotoContainer); err != nil {
		app.logger.Warn("failed to delete actor photo", "actorID", id, "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}
