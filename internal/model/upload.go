package model

import (
	"strings"
	"time"
)

// UploadedFile is a picture added by the user during the current session
type UploadedFile struct {
	ID       string
	Name     string
	URI      string // storage locator as returned by the file picker
	MimeType string // declared type, metadata only
	Size     int64  // size in bytes, 0 if unknown
	AddedAt  time.Time
}

// IsImage returns true if the declared MIME type is an image type
func (f *UploadedFile) IsImage() bool {
	return strings.HasPrefix(f.MimeType, "image/")
}

// GetDisplayName returns the name, the last URI segment, or the ID in order of preference
func (f *UploadedFile) GetDisplayName() string {
	if name := strings.TrimSpace(f.Name); name != "" {
		return name
	}

	if f.URI != "" {
		parts := strings.FieldsFunc(f.URI, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	return f.ID
}
