package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-circuit-records/internal/app"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/go-chi/chi/v5"
)

const (
	// multipartMemory is the part of an upload kept in memory; the rest is
	// buffered in temporary files by mime/multipart.
	multipartMemory = 8 << 20

	defaultContentType = "application/octet-stream"
)

var errMissingFile = errors.New("multipart field `file` is required")

// uploadFile accepts a multipart form with the fields "file" and "category".
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytesErr.Limit))
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.FromRequest(r).Err(err).Msg("failed to remove multipart temp files")
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, errMissingFile))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	record, err := h.services.FileService.Upload(r.Context(), currentUser(r), models.FileUpload{
		Category:     r.FormValue("category"),
		OriginalName: header.Filename,
		ContentType:  contentType,
		Size:         header.Size,
		Content:      file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.UploadResponse{Message: app.MsgFileUploaded, FileID: record.ID}, http.StatusOK)
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.services.FileService.List(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, files, http.StatusOK)
}

// downloadFile streams the stored content as an attachment under its
// original name.
func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	record, content, err := h.services.FileService.Open(r.Context(), chi.URLParam(r, "category"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer content.Close()

	contentType := record.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": record.OriginalName})
	if disposition == "" {
		disposition = "attachment"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Length", strconv.FormatInt(record.Size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content); err != nil {
		log.Err(err).Str("file_id", record.ID).Msg("file streaming interrupted")
	}
}
