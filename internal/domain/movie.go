package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          int       `db:"id"`
	Title       string    `db:"title"`
	InTheaters  bool      `db:"in_theaters"`
	ReleaseDate time.Time `db:"release_date"`
	PosterURL   string    `db:"poster_url"`
}

// CastMember links an actor to a movie. Position records the submission
// order of the cast list and is the only ordering guarantee for it.
type CastMember struct {
	ActorID   int
	ActorName string
	Character string
	Position  int
}

type MovieDetails struct {
	Movie
	Genres []Genre
	Cast   []CastMember
}

type MovieShowcase struct {
	Upcoming   []Movie
	InTheaters []Movie
}

// MovieFilters carries the optional search criteria for the movie listing.
// Zero-valued criteria mean "no constraint".
type MovieFilters struct {
	Title            string
	InTheaters       bool
	UpcomingReleases bool
	GenreID          int
	SortField        string
	SortDescending   bool
	Pagination       Pagination
}

// movieSortColumns is the closed set of sortable fields. Anything outside it
// is reported by SortColumn as unknown and the query falls back to id order.
var movieSortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"releaseDate": "release_date",
	"inTheaters":  "in_theaters",
}

func (f MovieFilters) SortColumn() (string, bool) {
	column, ok := movieSortColumns[f.SortField]
	return column, ok
}

func (f MovieFilters) SortDirection() string {
	if f.SortDescending {
		return "DESC"
	}

	return "ASC"
}

type MovieRepository interface {
	CrudRepository[Movie]
	GetFiltered(ctx context.Context, filters MovieFilters) ([]Movie, *Metadata, error)
	GetDetails(ctx context.Context, id int) (*MovieDetails, error)
	GetShowcase(ctx context.Context, top int) (*MovieShowcase, error)
	InsertWithRelations(ctx context.Context, movie *Movie, genreIDs []int, cast []CastMember) error
	UpdateWithRelations(ctx context.Context, movie *Movie, genreIDs []int, cast []CastMember) error
}
