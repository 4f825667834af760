package upload

import (
	"reflect"
	"testing"

	"github.com/colorandlearn/color-and-learn/internal/model"
)

func catPicture() Descriptor {
	return Descriptor{Name: "cat.png", URI: "file:///pictures/cat.png", MimeType: "image/png", Size: 2048}
}

func TestNewService(t *testing.T) {
	service := NewService()

	if service.Len() != 0 {
		t.Errorf("Expected empty list, got %d items", service.Len())
	}
	if len(service.Files()) != 0 {
		t.Errorf("Expected no files, got %v", service.Files())
	}
}

func TestAddFile(t *testing.T) {
	service := NewService()

	file, err := service.AddFile(catPicture())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if file.ID == "" {
		t.Error("Expected a generated ID")
	}
	if file.Name != "cat.png" || file.MimeType != "image/png" || file.Size != 2048 {
		t.Errorf("Unexpected file metadata: %+v", file)
	}
	if file.AddedAt.IsZero() {
		t.Error("Expected AddedAt to be set")
	}

	got, ok := service.GetFile(file.ID)
	if !ok || got != file {
		t.Errorf("GetFile(%s) = %v, %v", file.ID, got, ok)
	}
}

func TestAddFile_DuplicateNames(t *testing.T) {
	service := NewService()

	first, _ := service.AddFile(catPicture())
	second, _ := service.AddFile(catPicture())

	if service.Len() != 2 {
		t.Fatalf("Expected 2 files, got %d", service.Len())
	}
	if first.ID == second.ID {
		t.Error("Expected distinct IDs for duplicate names")
	}
}

func TestFiles_InsertionOrder(t *testing.T) {
	service := NewService()

	names := []string{"a.png", "b.pdf", "c.jpg"}
	for _, name := range names {
		if _, err := service.AddFile(Descriptor{Name: name}); err != nil {
			t.Fatalf("AddFile(%s) returned error: %v", name, err)
		}
	}

	files := service.Files()
	for i, name := range names {
		if files[i].Name != name {
			t.Errorf("File %d: expected %s, got %s", i, name, files[i].Name)
		}
	}

	// IDs are time ordered
	for i := 1; i < len(files); i++ {
		if files[i-1].ID >= files[i].ID {
			t.Errorf("Expected increasing IDs, got %s then %s", files[i-1].ID, files[i].ID)
		}
	}
}

func TestAddThenRemove_RestoresList(t *testing.T) {
	service := NewService()
	service.AddFile(Descriptor{Name: "existing.pdf", MimeType: "application/pdf"})

	before := service.Files()

	file, err := service.AddFile(catPicture())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !service.RemoveFile(file.ID) {
		t.Fatal("Expected RemoveFile to succeed")
	}

	if after := service.Files(); !reflect.DeepEqual(before, after) {
		t.Errorf("Expected list %v after add+remove, got %v", before, after)
	}

	empty := NewService()
	f, _ := empty.AddFile(catPicture())
	empty.RemoveFile(f.ID)
	if empty.Len() != 0 {
		t.Errorf("Expected empty list, got %d", empty.Len())
	}
}

func TestRemoveFile_Absent(t *testing.T) {
	service := NewService()
	service.AddFile(catPicture())

	updates := 0
	service.SetUpdateCallback(func([]*model.UploadedFile) { updates++ })

	if service.RemoveFile("non-existing-id") {
		t.Error("Expected RemoveFile of unknown id to return false")
	}
	if service.Len() != 1 {
		t.Errorf("Expected list unchanged, got %d files", service.Len())
	}
	if updates != 0 {
		t.Errorf("Expected no update callback, got %d", updates)
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService()

	var lengths []int
	service.SetUpdateCallback(func(files []*model.UploadedFile) {
		lengths = append(lengths, len(files))
	})

	file, _ := service.AddFile(catPicture())
	service.AddFile(catPicture())
	service.RemoveFile(file.ID)

	expected := []int{1, 2, 1}
	if !reflect.DeepEqual(lengths, expected) {
		t.Errorf("Callback lengths = %v, expected %v", lengths, expected)
	}
}

func TestGenerateFileID(t *testing.T) {
	id1, err := generateFileID()
	if err != nil {
		t.Fatalf("generateFileID returned error: %v", err)
	}
	id2, _ := generateFileID()

	if id1 == id2 {
		t.Error("Expected unique IDs")
	}
	if len(id1) != 36 {
		t.Errorf("Expected UUID string length 36, got %d", len(id1))
	}
}

func TestService_ImplementsUploader(t *testing.T) {
	var _ Uploader = NewService()
}
