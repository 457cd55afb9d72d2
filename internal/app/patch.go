package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/movieverse/movie-catalog-api/api"
)

// applyPatch applies a JSON-Patch style operation list to a DTO by round-
// tripping it through its JSON form. The patched document is decoded
// strictly, so an op targeting an unknown field fails rather than being
// silently dropped. The caller re-validates the result before persisting.
func applyPatch[DTO any](doc DTO, ops []api.PatchOperation) (DTO, error) {
	var patched DTO

	raw, err := json.Marshal(doc)
	if err != nil {
		return patched, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return patched, err
	}

	for _, op := range ops {
		if err := applyOperation(fields, op); err != nil {
			return patched, err
		}
	}

	raw, err = json.Marshal(fields)
	if err != nil {
		return patched, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patched); err != nil {
		return patched, err
	}

	return patched, nil
}

func applyOperation(fields map[string]json.RawMessage, op api.PatchOperation) error {
	path, err := patchKey(op.Path)
	if err != nil {
		return err
	}

	switch op.Op {
	case "add":
		if op.Value == nil {
			return fmt.Errorf("%q operation requires a value", op.Op)
		}
		fields[path] = op.Value
	case "replace":
		if op.Value == nil {
			return fmt.Errorf("%q operation requires a value", op.Op)
		}
		if _, ok := fields[path]; !ok {
			return fmt.Errorf("path %q does not exist", op.Path)
		}
		fields[path] = op.Value
	case "remove":
		if _, ok := fields[path]; !ok {
			return fmt.Errorf("path %q does not exist", op.Path)
		}
		delete(fields, path)
	case "move":
		from, err := patchKey(op.From)
		if err != nil {
			return err
		}
		value, ok := fields[from]
		if !ok {
			return fmt.Errorf("path %q does not exist", op.From)
		}
		delete(fields, from)
		fields[path] = value
	default:
		return fmt.Errorf("unsupported operation %q", op.Op)
	}

	return nil
}

// patchKey maps a JSON pointer like "/name" onto a top-level document key.
// Nested pointers are rejected; the patchable DTOs are flat.
func patchKey(pointer string) (string, error) {
	key := strings.TrimPrefix(pointer, "/")
	if key == "" {
		return "", errors.New("path must not be empty")
	}
	if strings.Contains(key, "/") {
		return "", fmt.Errorf("path %q is nested; only top-level fields can be patched", pointer)
	}

	return key, nil
}
