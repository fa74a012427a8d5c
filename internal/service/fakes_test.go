package service

import (
	"context"
	"fmt"
	"time"

	"tenderdesk/internal/domain"
	"tenderdesk/internal/domain/models"
)

// fakeFolderRepo is an in-memory FolderRepository tracking call counts.
type fakeFolderRepo struct {
	folders     map[int64]*models.Folder
	nextID      int64
	createCalls int
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: make(map[int64]*models.Folder), nextID: 1}
}

func (r *fakeFolderRepo) Create(_ context.Context, folder *models.Folder) error {
	r.createCalls++
	for _, existing := range r.folders {
		if existing.Name == folder.Name && equalParent(existing.ParentID, folder.ParentID) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("a folder named %q already exists in this location", folder.Name),
				ResourceType: "folder",
				ResourceID:   fmt.Sprint(existing.ID),
			}
		}
	}
	folder.ID = r.nextID
	folder.CreatedAt = time.Now()
	r.nextID++
	stored := *folder
	r.folders[folder.ID] = &stored
	return nil
}

func (r *fakeFolderRepo) GetByID(_ context.Context, id int64) (*models.Folder, error) {
	folder, ok := r.folders[id]
	if !ok {
		return nil, fmt.Errorf("folder %d: %w", id, domain.ErrNotFound)
	}
	out := *folder
	return &out, nil
}

func (r *fakeFolderRepo) ListAll(_ context.Context) ([]models.Folder, error) {
	out := make([]models.Folder, 0, len(r.folders))
	for id := int64(1); id < r.nextID; id++ {
		if folder, ok := r.folders[id]; ok {
			out = append(out, *folder)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) FindChild(_ context.Context, parentID int64, name string) (*models.Folder, error) {
	for _, folder := range r.folders {
		if folder.Name == name && folder.ParentID != nil && *folder.ParentID == parentID {
			out := *folder
			return &out, nil
		}
	}
	return nil, fmt.Errorf("folder %q: %w", name, domain.ErrNotFound)
}

func equalParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// fakeFileRepo is an in-memory FileRepository.
type fakeFileRepo struct {
	files       map[int64]*models.FileRecord
	nextID      int64
	createCalls int
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[int64]*models.FileRecord), nextID: 1}
}

func (r *fakeFileRepo) Create(_ context.Context, file *models.FileRecord) error {
	r.createCalls++
	file.ID = r.nextID
	file.CreatedAt = time.Now()
	r.nextID++
	stored := *file
	r.files[file.ID] = &stored
	return nil
}

func (r *fakeFileRepo) GetByID(_ context.Context, id int64) (*models.FileRecord, error) {
	file, ok := r.files[id]
	if !ok {
		return nil, fmt.Errorf("file %d: %w", id, domain.ErrNotFound)
	}
	out := *file
	return &out, nil
}

func (r *fakeFileRepo) ListByFolder(_ context.Context, folderID int64) ([]models.FileRecord, error) {
	var out []models.FileRecord
	for id := int64(1); id < r.nextID; id++ {
		if file, ok := r.files[id]; ok && file.FolderID == folderID {
			out = append(out, *file)
		}
	}
	return out, nil
}

// fakeMenuRepo is an in-memory MenuRepository.
type fakeMenuRepo struct {
	raw       []byte
	getCalls  int
	saveCalls int
}

func (r *fakeMenuRepo) Get(_ context.Context) ([]byte, error) {
	r.getCalls++
	if r.raw == nil {
		return nil, fmt.Errorf("menu structure: %w", domain.ErrNotFound)
	}
	return r.raw, nil
}

func (r *fakeMenuRepo) Save(_ context.Context, raw []byte, _ string) error {
	r.saveCalls++
	r.raw = raw
	return nil
}
