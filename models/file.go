package models

import (
	"io"
	"time"
)

// StoredFile is the record of an uploaded file. The content itself lives in
// the file storage under FilePath.
type StoredFile struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"original_name"`
	StoredName   string    `json:"stored_name"`
	Category     string    `json:"category"`
	FilePath     string    `json:"file_path"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	UploadedBy   string    `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// TableName returns the name of the database table
// associated with the StoredFile model.
func (f StoredFile) TableName() string {
	return "files"
}

// FileUpload is an incoming file before it is stored. Content is read once.
type FileUpload struct {
	Category     string
	OriginalName string
	ContentType  string
	Size         int64
	Content      io.Reader
}
