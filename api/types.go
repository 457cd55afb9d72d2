// Package api holds the request and response shapes exposed on the HTTP
// boundary, kept separate from the storage entities in internal/domain.
package api

import (
	"encoding/json"
	"time"

	"github.com/oapi-codegen/runtime/types"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationIssue `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

// PatchOperation is one entry of a JSON-Patch style document. Supported ops:
// add, remove, replace, move.
type PatchOperation struct {
	Op    string          `json:"op" validate:"required,oneof=add remove replace move"`
	Path  string          `json:"path" validate:"required"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

type GenreResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type ActorResponse struct {
	Id        int        `json:"id"`
	Name      string     `json:"name"`
	BirthDate types.Date `json:"birthDate"`
	PhotoUrl  string     `json:"photoUrl,omitempty"`
}

// ActorRequest carries the multipart form fields of actor create/replace.
// The photo file itself travels beside it and is validated separately.
type ActorRequest struct {
	Name      string     `validate:"required,max=120"`
	BirthDate types.Date `validate:"required"`
}

type ActorPatch struct {
	Name      string     `json:"name" validate:"required,max=120"`
	BirthDate types.Date `json:"birthDate" validate:"required"`
}

type MovieResponse struct {
	Id          int        `json:"id"`
	Title       string     `json:"title"`
	InTheaters  bool       `json:"inTheaters"`
	ReleaseDate types.Date `json:"releaseDate"`
	PosterUrl   string     `json:"posterUrl,omitempty"`
}

type CastMemberResponse struct {
	ActorId   int    `json:"actorId"`
	Name      string `json:"name"`
	Character string `json:"character"`
}

type MovieDetailsResponse struct {
	MovieResponse
	Genres []GenreResponse      `json:"genres"`
	Cast   []CastMemberResponse `json:"cast"`
}

type MovieShowcaseResponse struct {
	Upcoming   []MovieResponse `json:"upcoming"`
	InTheaters []MovieResponse `json:"inTheaters"`
}

type CastMemberRequest struct {
	ActorId   int    `json:"actorId" validate:"required,min=1"`
	Character string `json:"character" validate:"max=120"`
}

// MovieRequest carries the multipart form fields of movie create/replace.
type MovieRequest struct {
	Title       string              `validate:"required,max=200"`
	InTheaters  bool
	ReleaseDate types.Date          `validate:"required"`
	GenreIds    []int               `validate:"dive,min=1"`
	Cast        []CastMemberRequest `validate:"dive"`
}

type MoviePatch struct {
	Title       string     `json:"title" validate:"required,max=200"`
	InTheaters  bool       `json:"inTheaters"`
	ReleaseDate types.Date `json:"releaseDate" validate:"required"`
}

type CinemaRoomResponse struct {
	Id        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CinemaRoomRequest struct {
	Name      string  `json:"name" validate:"required,max=120"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

type NearbyCinemaRoomResponse struct {
	Id             int     `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distanceInMeters"`
}

type NearbyCinemaRoomsParams struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
	RadiusKm  int
}

type ReviewResponse struct {
	Id       int    `json:"id"`
	MovieId  int    `json:"movieId"`
	UserId   int    `json:"userId"`
	UserName string `json:"userName"`
	Comment  string `json:"comment"`
	Score    int    `json:"score"`
}

type ReviewRequest struct {
	Comment string `json:"comment" validate:"max=500"`
	Score   int    `json:"score" validate:"required,min=1,max=5"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
