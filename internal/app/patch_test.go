package app

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/movieverse/movie-catalog-api/api"
)

type patchDoc struct {
	Title      string `json:"title"`
	InTheaters bool   `json:"inTheaters"`
	Note       string `json:"note,omitempty"`
}

func TestApplyPatch(t *testing.T) {
	tests := []struct {
		name    string
		doc     patchDoc
		ops     []api.PatchOperation
		want    patchDoc
		wantErr bool
	}{
		{
			name: "replace existing field",
			doc:  patchDoc{Title: "Old", InTheaters: true},
			ops: []api.PatchOperation{
				{Op: "replace", Path: "/title", Value: json.RawMessage(`"New"`)},
			},
			want: patchDoc{Title: "New", InTheaters: true},
		},
		{
			name: "add then move",
			doc:  patchDoc{Title: "Old"},
			ops: []api.PatchOperation{
				{Op: "add", Path: "/note", Value: json.RawMessage(`"Remastered"`)},
				{Op: "move", From: "/note", Path: "/title"},
			},
			want: patchDoc{Title: "Remastered"},
		},
		{
			name: "remove resets to zero value",
			doc:  patchDoc{Title: "Old", InTheaters: true},
			ops: []api.PatchOperation{
				{Op: "remove", Path: "/inTheaters"},
			},
			want: patchDoc{Title: "Old"},
		},
		{
			name: "operations apply in order",
			doc:  patchDoc{Title: "One"},
			ops: []api.PatchOperation{
				{Op: "replace", Path: "/title", Value: json.RawMessage(`"Two"`)},
				{Op: "replace", Path: "/title", Value: json.RawMessage(`"Three"`)},
			},
			want: patchDoc{Title: "Three"},
		},
		{
			name: "replace of a missing field fails",
			doc:  patchDoc{Title: "Old"},
			ops: []api.PatchOperation{
				{Op: "replace", Path: "/note", Value: json.RawMessage(`"x"`)},
			},
			wantErr: true,
		},
		{
			name: "unknown field fails",
			doc:  patchDoc{Title: "Old"},
			ops: []api.PatchOperation{
				{Op: "add", Path: "/budget", Value: json.RawMessage(`100`)},
			},
			wantErr: true,
		},
		{
			name: "nested path fails",
			doc:  patchDoc{Title: "Old"},
			ops: []api.PatchOperation{
				{Op: "replace", Path: "/title/0", Value: json.RawMessage(`"x"`)},
			},
			wantErr: true,
		},
		{
			name: "wrong value type fails",
			doc:  patchDoc{Title: "Old"},
			ops: []api.PatchOperation{
				{Op: "replace", Path: "/title", Value: json.RawMessage(`123`)},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyPatch(tt.doc, tt.ops)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("patched document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
