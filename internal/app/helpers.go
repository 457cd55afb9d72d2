package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

const (
	maxImageBytes     = 4 << 20
	maxMultipartParse = 8 << 20
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

var (
	errImageTooLarge    = fmt.Errorf("must be at most %d bytes", maxImageBytes)
	errImageWrongFormat = errors.New("must be a jpeg, png or gif image")
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	maxBytes := 1 << 20
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func (app *Application) readIDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, errors.New("invalid id parameter")
	}

	return id, nil
}

// readPagination pulls page/pageSize from the query string. A missing or
// non-numeric pageSize falls back to the default page size; explicit values
// are clamped by the constructor.
func (app *Application) readPagination(r *http.Request) domain.Pagination {
	qs := r.URL.Query()

	page, _ := strconv.Atoi(qs.Get("page"))

	pageSize := domain.DefaultPageSize
	if raw := qs.Get("pageSize"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			pageSize = parsed
		}
	}

	return domain.NewPagination(page, pageSize)
}

// writePaginationHeaders exposes the page window on response headers, keeping
// the body a plain resource array.
func paginationHeaders(metadata *domain.Metadata) http.Header {
	headers := make(http.Header)
	headers.Set("X-Page-Count", strconv.Itoa(metadata.LastPage))
	headers.Set("X-Total-Records", strconv.Itoa(metadata.TotalRecords))

	return headers
}

type imageUpload struct {
	content     []byte
	extension   string
	contentType string
}

// readImageFile reads an optional image from the multipart form. A missing
// file yields (nil, nil); a present file is size-checked and content-sniffed
// rather than trusting the client's declared type.
func (app *Application) readImageFile(r *http.Request, field string) (*imageUpload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		return nil, errImageTooLarge
	}

	content, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(content) > maxImageBytes {
		return nil, errImageTooLarge
	}

	detected := mimetype.Detect(content)
	ext, ok := allowedImageTypes[detected.String()]
	if !ok {
		return nil, errImageWrongFormat
	}

	return &imageUpload{content: content, extension: ext, contentType: detected.String()}, nil
}
