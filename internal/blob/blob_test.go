package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:3000/static")

	ref, err := store.Save(context.Background(), []byte("poster bytes"), ".jpg", "movies", "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(ref, "http://localhost:3000/static/movies/") {
		t.Errorf("ref = %q, want it under the public URL", ref)
	}
	if !strings.HasSuffix(ref, ".jpg") {
		t.Errorf("ref = %q, want a .jpg name", ref)
	}

	name := filepath.Base(ref)
	content, err := os.ReadFile(filepath.Join(dir, "movies", name))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "poster bytes" {
		t.Errorf("stored content = %q", content)
	}
}

func TestDiskStoreSaveGeneratesUniqueNames(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "http://localhost:3000/static")

	first, err := store.Save(context.Background(), []byte("a"), ".png", "movies", "image/png")
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Save(context.Background(), []byte("b"), ".png", "movies", "image/png")
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Errorf("both saves produced %q", first)
	}
}

func TestDiskStoreReplace(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:3000/static")

	oldRef, err := store.Save(context.Background(), []byte("old"), ".jpg", "actors", "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}

	newRef, err := store.Replace(context.Background(), []byte("new"), ".jpg", "actors", oldRef, "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}

	oldPath := filepath.Join(dir, "actors", filepath.Base(oldRef))
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Errorf("old file still exists at %s", oldPath)
	}

	content, err := os.ReadFile(filepath.Join(dir, "actors", filepath.Base(newRef)))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "new" {
		t.Errorf("stored content = %q", content)
	}
}

func TestDiskStoreReplaceFailedDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:3000/static")

	// "%zz" is an invalid URL escape, so deleting the old reference fails.
	badRef := "http://localhost:3000/static/actors/a%zz.jpg"

	_, err := store.Replace(context.Background(), []byte("new"), ".jpg", "actors", badRef, "image/jpeg")
	if err == nil {
		t.Fatal("Replace with an unparsable old reference succeeded, want error")
	}

	entries, err := os.ReadDir(filepath.Join(dir, "actors"))
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("new file stored despite failed delete: %v", entries)
	}
}

func TestDiskStoreDelete(t *testing.T) {
	t.Run("empty reference is a no-op", func(t *testing.T) {
		store := NewDiskStore(t.TempDir(), "http://localhost:3000/static")

		if err := store.Delete(context.Background(), "", "movies"); err != nil {
			t.Errorf("Delete(\"\") = %v, want nil", err)
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		store := NewDiskStore(t.TempDir(), "http://localhost:3000/static")

		err := store.Delete(context.Background(), "http://localhost:3000/static/movies/ghost.jpg", "movies")
		if err != nil {
			t.Errorf("Delete(missing) = %v, want nil", err)
		}
	})

	t.Run("stored file is removed", func(t *testing.T) {
		dir := t.TempDir()
		store := NewDiskStore(dir, "http://localhost:3000/static")

		ref, err := store.Save(context.Background(), []byte("x"), ".gif", "movies", "image/gif")
		if err != nil {
			t.Fatal(err)
		}

		if err := store.Delete(context.Background(), ref, "movies"); err != nil {
			t.Fatal(err)
		}

		path := filepath.Join(dir, "movies", filepath.Base(ref))
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("file still exists at %s", path)
		}
	})
}
