package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"tenderdesk/internal/config"
	"tenderdesk/internal/domain"
	"tenderdesk/internal/domain/models"
	"tenderdesk/internal/domain/repositories"
	"tenderdesk/internal/storage"
)

// AttachFileRequest is the payload for attaching an uploaded file to a
// folder. Name is the display name; when blank it defaults to
// OriginalName. SubFolder optionally targets (creating if missing) a
// child folder of FolderID by name.
type AttachFileRequest struct {
	FolderID     int64
	SubFolder    string
	Name         string
	OriginalName string
	Payload      []byte
}

// FileService stores uploaded payloads in the object store and their
// metadata in the file repository.
type FileService struct {
	fileRepo   repositories.FileRepository
	folderRepo repositories.FolderRepository
	blobs      storage.ObjectStore
	logger     *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(
	fileRepo repositories.FileRepository,
	folderRepo repositories.FolderRepository,
	blobs storage.ObjectStore,
	logger *slog.Logger,
) *FileService {
	return &FileService{
		fileRepo:   fileRepo,
		folderRepo: folderRepo,
		blobs:      blobs,
		logger:     logger,
	}
}

// AttachFile uploads the payload and creates the file record inside the
// target folder. The payload must be non-empty and the folder must
// exist; both are checked before anything is written.
func (s *FileService) AttachFile(ctx context.Context, ident *models.Identity, req *AttachFileRequest) (*models.FileRecord, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.SubFolder = strings.TrimSpace(req.SubFolder)
	if err := s.validateAttachRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	folderID, err := s.resolveTargetFolder(ctx, ident, req)
	if err != nil {
		return nil, err
	}

	displayName := req.Name
	if displayName == "" {
		displayName = req.OriginalName
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(req.OriginalName), "."))
	key := uuid.NewString()
	if ext != "" {
		key += "." + ext
	}

	if err := s.blobs.Put(ctx, key, req.Payload); err != nil {
		return nil, fmt.Errorf("store file payload: %w", err)
	}

	file := &models.FileRecord{
		FolderID:     folderID,
		Name:         displayName,
		OriginalName: req.OriginalName,
		FileType:     ext,
		StorageKey:   key,
	}
	if ident != nil {
		file.CreatedBy = ident.Username
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		// The payload is orphaned if the record insert fails; remove it.
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to clean up orphaned payload", "key", key, "error", delErr)
		}
		return nil, err
	}

	s.logger.Info("file attached",
		"id", file.ID,
		"name", file.Name,
		"folder_id", file.FolderID,
		"file_type", file.FileType,
		"size_bytes", len(req.Payload),
	)

	return file, nil
}

// FileContent returns a file record together with its payload.
func (s *FileService) FileContent(ctx context.Context, id int64) (*models.FileRecord, []byte, error) {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	payload, err := s.blobs.Get(ctx, file.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("load file payload: %w", err)
	}

	return file, payload, nil
}

// resolveTargetFolder verifies the folder exists and, when SubFolder is
// set, resolves or creates the named child under it.
func (s *FileService) resolveTargetFolder(ctx context.Context, ident *models.Identity, req *AttachFileRequest) (int64, error) {
	if _, err := s.folderRepo.GetByID(ctx, req.FolderID); err != nil {
		return 0, err
	}

	if req.SubFolder == "" {
		return req.FolderID, nil
	}

	child, err := s.folderRepo.FindChild(ctx, req.FolderID, req.SubFolder)
	if err == nil {
		return child.ID, nil
	}
	if !isNotFound(err) {
		return 0, err
	}

	parentID := req.FolderID
	folder := &models.Folder{Name: req.SubFolder, ParentID: &parentID}
	if ident != nil {
		folder.CreatedBy = ident.Username
	}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return 0, err
	}

	s.logger.Info("subfolder created for upload",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", parentID,
	)

	return folder.ID, nil
}

// validateAttachRequest validates a file attach request
func (s *FileService) validateAttachRequest(req *AttachFileRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.FolderID, validation.Required),
		validation.Field(&req.OriginalName, validation.Required, validation.Length(1, config.MaxFileNameLength)),
		validation.Field(&req.Name, validation.Length(0, config.MaxFileNameLength)),
		validation.Field(&req.Payload, validation.Required.Error("file payload cannot be empty")),
	)
}
