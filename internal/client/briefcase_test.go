package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"tenderdesk/internal/domain"
	"tenderdesk/internal/domain/models"
)

// briefcaseBackend is a minimal in-memory stand-in for the folder and
// file endpoints, counting requests per route.
type briefcaseBackend struct {
	mu       sync.Mutex
	folders  []models.Folder
	nextID   int64
	requests map[string]int
}

func newBriefcaseBackend() *briefcaseBackend {
	return &briefcaseBackend{nextID: 1, requests: make(map[string]int)}
}

func (b *briefcaseBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/folders/hierarchy", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.requests["hierarchy"]++

		byID := make(map[int64]*models.FolderNode)
		var roots []*models.FolderNode
		for i := range b.folders {
			byID[b.folders[i].ID] = &models.FolderNode{Folder: b.folders[i]}
		}
		for _, folder := range b.folders {
			node := byID[folder.ID]
			if folder.ParentID == nil {
				roots = append(roots, node)
				continue
			}
			parent := byID[*folder.ParentID]
			parent.Subfolders = append(parent.Subfolders, node)
		}
		json.NewEncoder(w).Encode(roots)
	})

	mux.HandleFunc("POST /api/folders", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.requests["create"]++

		var req struct {
			Name     string `json:"name"`
			ParentID *int64 `json:"parentId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, folder := range b.folders {
			if folder.Name == req.Name && sameParent(folder.ParentID, req.ParentID) {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"detail": "folder already exists"})
				return
			}
		}
		folder := models.Folder{ID: b.nextID, Name: req.Name, ParentID: req.ParentID}
		b.nextID++
		b.folders = append(b.folders, folder)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(folder)
	})

	mux.HandleFunc("POST /api/files", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.requests["upload"]++

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		name := r.FormValue("name")
		if name == "" {
			name = header.Filename
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.FileRecord{ID: 1, Name: name, OriginalName: header.Filename})
	})

	return mux
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (b *briefcaseBackend) count(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[route]
}

func newTestBriefcase(t *testing.T) (*Briefcase, *briefcaseBackend) {
	t.Helper()
	backend := newBriefcaseBackend()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return NewBriefcase(New(srv.URL, "test-token")), backend
}

func TestBriefcaseCreateFolderRefetches(t *testing.T) {
	bc, backend := newTestBriefcase(t)
	ctx := context.Background()

	folder, err := bc.CreateFolder(ctx, "Contracts", nil)
	if err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	if folder.ID == 0 {
		t.Error("CreateFolder() returned no ID")
	}
	if backend.count("hierarchy") != 1 {
		t.Errorf("hierarchy fetched %d times after create, want 1", backend.count("hierarchy"))
	}
	roots := bc.Roots()
	if len(roots) != 1 || roots[0].Name != "Contracts" {
		t.Errorf("Roots() = %+v, want the refetched folder", roots)
	}
}

func TestBriefcaseBlankNameIssuesNoRequest(t *testing.T) {
	bc, backend := newTestBriefcase(t)

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := bc.CreateFolder(context.Background(), name, nil); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateFolder(%q) error = %v, want ErrValidation", name, err)
		}
	}
	if backend.count("create") != 0 {
		t.Errorf("backend received %d create requests, want 0", backend.count("create"))
	}
}

func TestBriefcaseFailedCreateLeavesStateUnchanged(t *testing.T) {
	bc, backend := newTestBriefcase(t)
	ctx := context.Background()

	if _, err := bc.CreateFolder(ctx, "Contracts", nil); err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	before := len(bc.Roots())

	_, err := bc.CreateFolder(ctx, "Contracts", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("duplicate CreateFolder() error = %v, want APIError", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("Status = %d, want %d", apiErr.Status, http.StatusConflict)
	}
	if apiErr.Detail == "" {
		t.Error("APIError.Detail is empty, want the server message")
	}
	if len(bc.Roots()) != before {
		t.Error("local hierarchy changed after a failed create")
	}
	if backend.count("hierarchy") != 1 {
		t.Errorf("hierarchy fetched %d times, want no refetch after failure", backend.count("hierarchy"))
	}
}

func TestBriefcaseAttachFile(t *testing.T) {
	bc, backend := newTestBriefcase(t)
	ctx := context.Background()

	folder, err := bc.CreateFolder(ctx, "Contracts", nil)
	if err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}

	file, err := bc.AttachFile(ctx, folder.ID, []byte("data"), "scan.pdf", "")
	if err != nil {
		t.Fatalf("AttachFile() error = %v", err)
	}
	if file.Name != "scan.pdf" {
		t.Errorf("Name = %q, want server default to original name", file.Name)
	}
	if backend.count("hierarchy") != 2 {
		t.Errorf("hierarchy fetched %d times, want refetch after upload", backend.count("hierarchy"))
	}
}

func TestBriefcaseAttachFileLocalValidation(t *testing.T) {
	bc, backend := newTestBriefcase(t)
	ctx := context.Background()

	if _, err := bc.AttachFile(ctx, 1, nil, "scan.pdf", ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("AttachFile() with empty payload error = %v, want ErrValidation", err)
	}
	if _, err := bc.AttachFile(ctx, 1, []byte("data"), "  ", ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("AttachFile() with blank name error = %v, want ErrValidation", err)
	}
	if backend.count("upload") != 0 {
		t.Errorf("backend received %d uploads, want 0", backend.count("upload"))
	}
}

func TestBriefcaseToggleAndRows(t *testing.T) {
	bc, _ := newTestBriefcase(t)
	ctx := context.Background()

	parent, err := bc.CreateFolder(ctx, "Tenders", nil)
	if err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	if _, err := bc.CreateFolder(ctx, "2026", &parent.ID); err != nil {
		t.Fatalf("CreateFolder() child error = %v", err)
	}

	if rows := bc.Rows(); len(rows) != 1 {
		t.Fatalf("Rows() collapsed = %d rows, want 1", len(rows))
	}

	bc.Toggle(parent.ID)
	rows := bc.Rows()
	if len(rows) != 2 {
		t.Fatalf("Rows() expanded = %d rows, want 2", len(rows))
	}
	if rows[1].Depth != 1 {
		t.Errorf("child depth = %d, want 1", rows[1].Depth)
	}

	bc.Toggle(parent.ID)
	if rows := bc.Rows(); len(rows) != 1 {
		t.Errorf("Rows() re-collapsed = %d rows, want 1", len(rows))
	}
}
