package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"tenderdesk/internal/briefcase"
	"tenderdesk/internal/domain"
	"tenderdesk/internal/domain/models"
)

// Briefcase is the client-side state of the document briefcase: the
// last fetched folder hierarchy plus the local expansion set. Every
// mutation writes to the server and then refetches the hierarchy; the
// local tree is never patched in place, so a failed request leaves
// state exactly as it was.
type Briefcase struct {
	api      *Client
	roots    []*models.FolderNode
	expanded briefcase.ExpansionSet
}

// NewBriefcase creates an empty briefcase over the API client. Call
// Refresh to load the hierarchy.
func NewBriefcase(api *Client) *Briefcase {
	return &Briefcase{
		api:      api,
		expanded: briefcase.NewExpansionSet(),
	}
}

// Refresh refetches the folder hierarchy from the server.
func (b *Briefcase) Refresh(ctx context.Context) error {
	var roots []*models.FolderNode
	if err := b.api.get(ctx, "/api/folders/hierarchy", &roots); err != nil {
		return err
	}
	b.roots = roots
	return nil
}

// CreateFolder creates a folder at root level (nil parentID) or under a
// parent, then refetches the hierarchy. A name blank after trimming is
// rejected locally; no request is issued.
func (b *Briefcase) CreateFolder(ctx context.Context, name string, parentID *int64) (*models.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: folder name cannot be blank", domain.ErrValidation)
	}

	body := map[string]interface{}{"name": strings.TrimSpace(name)}
	if parentID != nil {
		body["parentId"] = *parentID
	}

	var folder models.Folder
	if err := b.api.postJSON(ctx, "/api/folders", body, &folder); err != nil {
		return nil, err
	}

	if err := b.Refresh(ctx); err != nil {
		return &folder, err
	}
	return &folder, nil
}

// AttachFile uploads a file into a folder, then refetches the
// hierarchy. An empty displayName lets the server default it to the
// file's original name. The payload must be non-empty.
func (b *Briefcase) AttachFile(ctx context.Context, folderID int64, payload []byte, originalName, displayName string) (*models.FileRecord, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: file payload cannot be empty", domain.ErrValidation)
	}
	if strings.TrimSpace(originalName) == "" {
		return nil, fmt.Errorf("%w: file name cannot be blank", domain.ErrValidation)
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", originalName)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, err
	}
	if err := form.WriteField("folderId", strconv.FormatInt(folderID, 10)); err != nil {
		return nil, err
	}
	if err := form.WriteField("name", displayName); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.api.baseURL+"/api/files", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var file models.FileRecord
	if err := b.api.do(req, &file); err != nil {
		return nil, err
	}

	if err := b.Refresh(ctx); err != nil {
		return &file, err
	}
	return &file, nil
}

// Toggle flips the expansion state of one folder.
func (b *Briefcase) Toggle(folderID int64) {
	b.expanded.Toggle(folderID)
}

// Rows flattens the current hierarchy for rendering, honoring the
// expansion set.
func (b *Briefcase) Rows() []briefcase.Row {
	return briefcase.RenderTree(b.roots, b.expanded)
}

// Roots returns the last fetched hierarchy.
func (b *Briefcase) Roots() []*models.FolderNode {
	return b.roots
}
