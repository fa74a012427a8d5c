package models

import "time"

// Folder is one node of the document briefcase. ParentID nil means root
// level. FileCount counts files directly inside the folder, not
// recursively.
type Folder struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ParentID  *int64    `json:"parentId" db:"parent_id"`
	FileCount int       `json:"fileCount"`
	CreatedBy string    `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FolderNode is a folder in the hierarchy view with nested children.
// Subfolders keep the append order returned by the repository.
type FolderNode struct {
	Folder
	Subfolders []*FolderNode `json:"subfolders"`
}

// FileRecord is a file stored inside exactly one folder. The folder does
// not own the record; FolderID is a back-reference.
type FileRecord struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	OriginalName string    `json:"originalName" db:"original_name"`
	FileType     string    `json:"fileType" db:"file_type"`
	FolderID     int64     `json:"folderId" db:"folder_id"`
	StorageKey   string    `json:"-" db:"storage_key"`
	CreatedBy    string    `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
