package upload

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/colorandlearn/color-and-learn/internal/model"
)

// Service holds uploaded files in insertion order
type Service struct {
	files      []*model.UploadedFile
	filesMutex sync.RWMutex
	onUpdate   func([]*model.UploadedFile) // callback for UI updates
	now        func() time.Time
}

// NewService creates an empty upload list
func NewService() *Service {
	return &Service{now: time.Now}
}

// SetUpdateCallback sets the callback fired after every add or remove
func (s *Service) SetUpdateCallback(callback func([]*model.UploadedFile)) {
	s.onUpdate = callback
}

// AddFile appends a new entry for desc. Duplicate names are allowed.
func (s *Service) AddFile(desc Descriptor) (*model.UploadedFile, error) {
	id, err := generateFileID()
	if err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", desc.Name, err)
	}

	file := &model.UploadedFile{
		ID:       id,
		Name:     desc.Name,
		URI:      desc.URI,
		MimeType: desc.MimeType,
		Size:     desc.Size,
		AddedAt:  s.now(),
	}

	s.filesMutex.Lock()
	s.files = append(s.files, file)
	s.filesMutex.Unlock()

	log.Printf("Upload added: id=%s name=%s type=%s size=%d", file.ID, file.Name, file.MimeType, file.Size)
	s.notifyUpdate()
	return file, nil
}

// RemoveFile removes the entry with id. It returns false if no entry matched.
func (s *Service) RemoveFile(id string) bool {
	s.filesMutex.Lock()
	removed := false
	for i, file := range s.files {
		if file.ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			removed = true
			break
		}
	}
	s.filesMutex.Unlock()

	if !removed {
		return false
	}

	log.Printf("Upload removed: id=%s", id)
	s.notifyUpdate()
	return true
}

// GetFile returns an entry by ID
func (s *Service) GetFile(id string) (*model.UploadedFile, bool) {
	s.filesMutex.RLock()
	defer s.filesMutex.RUnlock()

	for _, file := range s.files {
		if file.ID == id {
			return file, true
		}
	}
	return nil, false
}

// Files returns a snapshot of all entries in insertion order
func (s *Service) Files() []*model.UploadedFile {
	s.filesMutex.RLock()
	defer s.filesMutex.RUnlock()

	files := make([]*model.UploadedFile, len(s.files))
	copy(files, s.files)
	return files
}

// Len returns the number of entries
func (s *Service) Len() int {
	s.filesMutex.RLock()
	defer s.filesMutex.RUnlock()
	return len(s.files)
}

// notifyUpdate sends the current list to the UI callback
func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate(s.Files())
	}
}

// generateFileID generates a unique file ID using UUID v7 so IDs sort by creation time
func generateFileID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
