package upload

import (
	"github.com/colorandlearn/color-and-learn/internal/model"
)

// Descriptor is what the file picker returns for one selected file
type Descriptor struct {
	Name     string
	URI      string
	MimeType string
	Size     int64
}

// Uploader defines the interface for the upload list service.
type Uploader interface {
	SetUpdateCallback(func([]*model.UploadedFile))
	AddFile(desc Descriptor) (*model.UploadedFile, error)
	RemoveFile(id string) bool
	GetFile(id string) (*model.UploadedFile, bool)
	Files() []*model.UploadedFile
	Len() int
}
