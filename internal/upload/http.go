// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package upload

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"

	"github.com/taibuivan/ratings/internal/platform/apperr"
	"github.com/taibuivan/ratings/internal/platform/constants"
	"github.com/taibuivan/ratings/internal/platform/ctxutil"
	"github.com/taibuivan/ratings/internal/platform/middleware"
	"github.com/taibuivan/ratings/internal/platform/respond"
)

// Result is the body returned for a stored upload.
type Result struct {
	Success     bool   `json:"success"`
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
}

// Handler exposes the [Store] over HTTP.
type Handler struct {
	store    *Store
	maxBytes int64
}

// NewHandler constructs a [Handler]. Bodies above maxBytes are rejected.
func NewHandler(store *Store, maxBytes int64) *Handler {
	return &Handler{store: store, maxBytes: maxBytes}
}

// Routes returns a [chi.Router] for the /api/upload prefix.
//
// # Endpoints
//   - POST / : Store the multipart field "file" (owner).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.With(middleware.RequireOwner).Post("/", handler.upload)
	return router
}

// Files returns the handler serving stored assets. Mount it under
// [constants.UploadURLPrefix]. Directories answer 404 rather than a listing.
func (handler *Handler) Files() http.Handler {
	root := afero.NewHttpFs(handler.store.FS()).Dir(handler.store.Dir())
	files := http.FileServer(filesOnly{root})
	return http.StripPrefix(constants.UploadURLPrefix, files)
}

// filesOnly hides directories from [http.FileServer].
type filesOnly struct {
	http.FileSystem
}

func (root filesOnly) Open(name string) (http.File, error) {
	file, err := root.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}

	return file, nil
}

/*
Upload stores a single asset.

POST /api/upload

Response:
  - 200: {success: true, path: "/uploads/<name>", contentType}
  - 400: No file in the "file" field
  - 500: The asset could not be written
*/
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	logger := ctxutil.GetLogger(request.Context())

	if handler.maxBytes > 0 {
		request.Body = http.MaxBytesReader(writer, request.Body, handler.maxBytes)
	}

	file, header, err := request.FormFile(constants.UploadFormField)
	if err != nil {
		logger.Warn("upload_rejected", slog.String("reason", err.Error()))
		respond.Error(writer, request, apperr.BadRequest("No file uploaded"))
		return
	}
	defer file.Close()

	asset, err := handler.store.Save(header.Filename, file)
	if err != nil {
		respond.Error(writer, request, apperr.UploadFailed(err))
		return
	}

	logger.Info("upload_stored",
		slog.String("name", asset.Name),
		slog.String("content_type", asset.ContentType),
		slog.Int("size", asset.Size),
	)
	respond.Document(writer, Result{Success: true, Path: asset.Path, ContentType: asset.ContentType})
}
