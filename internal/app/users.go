package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/movieverse/movie-catalog-api/api"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

func toUserResponse(user *domain.User) api.UserResponse {
	return api.UserResponse{
		Id:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func (app *Application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := app.readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.validator.Struct(req); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user := domain.User{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := user.Password.Set(req.Password); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.userRepo.Insert(r.Context(), &user); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			app.errorResponse(w, r, http.StatusConflict, "a user with this email address already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/users/%d", user.ID))

	if err := app.writeJSON(w, http.StatusCreated, toUserResponse(&user), headers); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := app.readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.validator.Struct(req); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetByEmail(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusUnauthorized, "invalid credentials")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	match, err := user.Password.Matches(req.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !match {
		app.errorResponse(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}

	// Rotate the session token on privilege change.
	if err := app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), sessionKeyUserID, user.ID)
	app.sessionManager.Put(r.Context(), sessionKeyUserName, user.Name)

	if err := app.writeJSON(w, http.StatusOK, toUserResponse(user), nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	if err := app.sessionManager.Destroy(r.Context()); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
