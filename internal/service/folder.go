package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tenderdesk/internal/briefcase"
	"tenderdesk/internal/config"
	"tenderdesk/internal/domain"
	"tenderdesk/internal/domain/models"
	"tenderdesk/internal/domain/repositories"
)

// CreateFolderRequest is the payload for folder creation. A nil
// ParentID creates a root-level folder.
type CreateFolderRequest struct {
	Name     string `json:"name"`
	ParentID *int64 `json:"parentId"`
}

var folderNamePattern = regexp.MustCompile(`^[^/]+$`)

// FolderService owns folder creation and hierarchy reads. Folders are
// never renamed or moved; the write surface is create-only and clients
// refetch the hierarchy after every mutation.
type FolderService struct {
	folderRepo repositories.FolderRepository
	fileRepo   repositories.FileRepository
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	fileRepo repositories.FileRepository,
	logger *slog.Logger,
) *FolderService {
	return &FolderService{
		folderRepo: folderRepo,
		fileRepo:   fileRepo,
		logger:     logger,
	}
}

// CreateFolder creates a folder at root level or under an existing
// parent. A name blank after trimming is rejected before any repository
// call.
func (s *FolderService) CreateFolder(ctx context.Context, ident *models.Identity, req *CreateFolderRequest) (*models.Folder, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if req.ParentID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	folder := &models.Folder{
		Name:     req.Name,
		ParentID: req.ParentID,
	}
	if ident != nil {
		folder.CreatedBy = ident.Username
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
		"created_by", folder.CreatedBy,
	)

	return folder, nil
}

// List returns the flat folder collection.
func (s *FolderService) List(ctx context.Context) ([]models.Folder, error) {
	folders, err := s.folderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if folders == nil {
		folders = []models.Folder{}
	}
	return folders, nil
}

// Hierarchy rebuilds the nested folder forest from the flat collection.
func (s *FolderService) Hierarchy(ctx context.Context) ([]*models.FolderNode, error) {
	folders, err := s.folderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	roots, err := briefcase.BuildHierarchy(folders)
	if err != nil {
		return nil, fmt.Errorf("build folder hierarchy: %w", err)
	}
	return roots, nil
}

// Get retrieves one folder.
func (s *FolderService) Get(ctx context.Context, id int64) (*models.Folder, error) {
	return s.folderRepo.GetByID(ctx, id)
}

// Files lists the files directly inside a folder.
func (s *FolderService) Files(ctx context.Context, folderID int64) ([]models.FileRecord, error) {
	if _, err := s.folderRepo.GetByID(ctx, folderID); err != nil {
		return nil, err
	}

	files, err := s.fileRepo.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []models.FileRecord{}
	}
	return files, nil
}

// validateCreateRequest validates a folder creation request
func (s *FolderService) validateCreateRequest(req *CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
			validation.Match(folderNamePattern).Error("folder name cannot contain slashes"),
		),
	)
}
