package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/movieverse/movie-catalog-api/api"
	appvalidator "github.com/movieverse/movie-catalog-api/internal/validator"
)

const (
	ErrInternalServer = "the server encountered a problem and could not process your request"
	ErrNotFound       = "the requested resource could not be found"
	ErrUnauthorized   = "you must be authenticated to access this resource"
	ErrForbidden      = "you do not have permission to access this resource"
	ErrValidation     = "one or more fields failed validation"
)

func (app *Application) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(), "method", r.Method, "uri", r.URL.RequestURI())
}

func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now().UTC(),
	}

	if err := app.writeJSON(w, status, resp, nil); err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) unauthorizedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorized)
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrForbidden)
}

// failedValidationResponse renders validator errors as a field/issue list.
// Anything that is not a validator.ValidationErrors is a programming error
// and becomes a 500.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.serverErrorResponse(w, r, err)
		return
	}

	issues := make([]api.ValidationIssue, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		issues = append(issues, api.ValidationIssue{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now().UTC(),
		ValidationErrors: issues,
	}

	if err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil); err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// fieldValidationResponse reports a single hand-checked field, for inputs
// that never pass through the struct validator (query params, form files).
func (app *Application) fieldValidationResponse(w http.ResponseWriter, r *http.Request, field, issue string) {
	resp := api.ValidationErrorResponse{
		Message:          ErrValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now().UTC(),
		ValidationErrors: []api.ValidationIssue{{Field: field, Issue: issue}},
	}

	if err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil); err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
