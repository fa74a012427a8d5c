package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (names should be short and descriptive).
	MaxFolderNameLength = 255

	// MaxFileNameLength is the maximum length for file display names.
	// Same as folder names for consistency.
	MaxFileNameLength = 255

	// MaxUploadBytes is the maximum size of an uploaded file payload.
	MaxUploadBytes = 25 << 20

	// MaxJSONBytes is the maximum size of a JSON request body.
	MaxJSONBytes = 1 << 20
)
