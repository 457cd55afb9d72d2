package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/movieverse/movie-catalog-api/api"
	"github.com/movieverse/movie-catalog-api/internal/blob"
	"github.com/movieverse/movie-catalog-api/internal/mocks"
	appvalidator "github.com/movieverse/movie-catalog-api/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator:      appvalidator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		blobStore:      &blob.MockStore{},
		genreRepo:      &mocks.MockGenreRepo{},
		actorRepo:      &mocks.MockActorRepo{},
		movieRepo:      &mocks.MockMovieRepo{},
		cinemaRepo:     &mocks.MockCinemaRoomRepo{},
		reviewRepo:     &mocks.MockReviewRepo{},
		userRepo:       &mocks.MockUserRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// withRouteParams attaches a chi route context so handlers invoked outside
// the router can still resolve their path parameters.
func withRouteParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// setupTestSession loads a fresh session onto the request and signs the
// given user in.
func setupTestSession(t *testing.T, app *Application, r *http.Request, userID int, userName string) *http.Request {
	t.Helper()

	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, sessionKeyUserID, userID)
	app.sessionManager.Put(ctx, sessionKeyUserName, userName)

	return r.WithContext(ctx)
}

func checkErrorMessage(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		for _, vErr := range validationResp.ValidationErrors {
			if vErr.Issue == wantMessage {
				return
			}
		}
		t.Errorf("Expected validation error message %q not found in response", wantMessage)

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantMessage != "" && errorResp.Message != wantMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
