package domain

import "testing"

func TestMovieFiltersSortColumn(t *testing.T) {
	tests := []struct {
		field      string
		wantColumn string
		wantOK     bool
	}{
		{field: "title", wantColumn: "title", wantOK: true},
		{field: "releaseDate", wantColumn: "release_date", wantOK: true},
		{field: "inTheaters", wantColumn: "in_theaters", wantOK: true},
		{field: "id", wantColumn: "id", wantOK: true},
		{field: "boxOffice", wantColumn: "", wantOK: false},
		{field: "title; DROP TABLE movies", wantColumn: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			column, ok := MovieFilters{SortField: tt.field}.SortColumn()

			if column != tt.wantColumn || ok != tt.wantOK {
				t.Errorf("SortColumn() = (%q, %v), want (%q, %v)", column, ok, tt.wantColumn, tt.wantOK)
			}
		})
	}
}

func TestMovieFiltersSortDirection(t *testing.T) {
	if got := (MovieFilters{}).SortDirection(); got != "ASC" {
		t.Errorf("SortDirection() = %q, want ASC", got)
	}
	if got := (MovieFilters{SortDescending: true}).SortDirection(); got != "DESC" {
		t.Errorf("SortDirection() = %q, want DESC", got)
	}
}
