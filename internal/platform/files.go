package platform

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/colorandlearn/color-and-learn/internal/upload"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
	AndroidAM      = "am"
)

// FileScheme is the URI scheme of local files
const FileScheme = "file"

// AcceptedMimeTypes are the types offered by the picker
var AcceptedMimeTypes = []string{"image/*", "application/pdf"}

// PickedFile is the part of fyne.URIReadCloser needed to describe a selection
type PickedFile interface {
	io.Reader
	URI() fyne.URI
}

// NewPickerFilter returns the file filter for the upload picker. Any image
// type matches, not only a fixed list of extensions.
func NewPickerFilter() storage.FileFilter {
	return storage.NewMimeTypeFileFilter(AcceptedMimeTypes)
}

// IsAccepted reports whether a declared MIME type is one the picker offers
func IsAccepted(mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	for _, accepted := range AcceptedMimeTypes {
		if prefix, ok := strings.CutSuffix(accepted, "/*"); ok {
			if strings.HasPrefix(mimeType, prefix+"/") {
				return true
			}
			continue
		}
		if mimeType == accepted {
			return true
		}
	}
	return false
}

// Describe turns a picked file into an upload descriptor. The size comes
// from the filesystem for local files and from reading the stream otherwise.
func Describe(file PickedFile) (upload.Descriptor, error) {
	if file == nil || file.URI() == nil {
		return upload.Descriptor{}, fmt.Errorf("no file selected")
	}

	uri := file.URI()
	desc := upload.Descriptor{
		Name:     uri.Name(),
		URI:      uri.String(),
		MimeType: uri.MimeType(),
	}

	size, err := probeSize(uri, file)
	if err != nil {
		return upload.Descriptor{}, fmt.Errorf("failed to read %s: %w", desc.Name, err)
	}
	desc.Size = size
	return desc, nil
}

// probeSize returns the byte size of the picked file
func probeSize(uri fyne.URI, r io.Reader) (int64, error) {
	if uri.Scheme() == FileScheme {
		if info, err := os.Stat(uri.Path()); err == nil && !info.IsDir() {
			return info.Size(), nil
		}
	}
	return io.Copy(io.Discard, r)
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	case OSAndroid:
		return openFileWithDefaultAppAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileWithDefaultAppAndroid opens a picture or PDF with a VIEW intent
func openFileWithDefaultAppAndroid(filePath string) error {
	mimeType := "image/*"
	if strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		mimeType = "application/pdf"
	}

	cmd := exec.Command(AndroidAM, "start", "-a", "android.intent.action.VIEW", "-d", "file://"+filePath, "-t", mimeType)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Let the system decide
	cmd = exec.Command(AndroidAM, "start", "-a", "android.intent.action.VIEW", "-d", "file://"+filePath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open file: no suitable app found")
	}
	return nil
}

// LocalPath returns the filesystem path of a file URI string
func LocalPath(uriString string) (string, error) {
	uri, err := storage.ParseURI(uriString)
	if err != nil {
		return "", fmt.Errorf("invalid uri %q: %w", uriString, err)
	}
	if uri.Scheme() != FileScheme {
		return "", fmt.Errorf("not a local file: %s", uriString)
	}
	return uri.Path(), nil
}
