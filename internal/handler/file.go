package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"tenderdesk/internal/config"
	"tenderdesk/internal/httputil"
	"tenderdesk/internal/service"
)

// FileHandler handles file upload and download requests
type FileHandler struct {
	fileService *service.FileService
	logger      *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService *service.FileService, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		logger:      logger,
	}
}

// UploadFile attaches an uploaded file to a folder
// POST /api/files (multipart: file, name, folderId, optional subFolder)
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ident := httputil.GetIdentity(r)
	if ident == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, "uploaded file is too large")
			return
		}
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	folderID, err := strconv.ParseInt(r.FormValue("folderId"), 10, 64)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "folderId is required and must be an integer")
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer part.Close()

	payload, err := io.ReadAll(part)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	req := &service.AttachFileRequest{
		FolderID:     folderID,
		SubFolder:    r.FormValue("subFolder"),
		Name:         r.FormValue("name"),
		OriginalName: header.Filename,
		Payload:      payload,
	}

	file, err := h.fileService.AttachFile(r.Context(), ident, req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, file)
}

// GetFileContent streams a file's payload
// GET /api/files/{id}/content
func (h *FileHandler) GetFileContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid file ID")
		return
	}

	file, payload, err := h.fileService.FileContent(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	contentType := mime.TypeByExtension("." + file.FileType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.OriginalName))
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
