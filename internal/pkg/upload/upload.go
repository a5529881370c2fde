package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MB

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidMimeType = errors.New("invalid mime type")
)

// AllowedMimeTypes lists the image types accepted for portfolio and post
// uploads.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// Saver writes uploaded files to local disk. Stored paths are relative to
// the directory the static route serves, so they can go straight into the
// database and back out to the frontend.
type Saver struct {
	baseDir string
}

func NewSaver(baseDir string) *Saver {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	return &Saver{baseDir: baseDir}
}

// Save stores one multipart file and returns its public relative path,
// e.g. "uploads/3f1c..._portrait.jpg".
func (s *Saver) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	// Detect MIME type from the first 512 bytes, not the client header.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !AllowedMimeTypes[mimeType] {
		return "", ErrInvalidMimeType
	}
	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeName(fileHeader.Filename))
	dst, err := os.Create(filepath.Join(s.baseDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filepath.Join("uploads", filename), nil
}

// Exists reports whether a previously stored relative path still resolves
// to a file on disk.
func (s *Saver) Exists(relPath string) bool {
	name := filepath.Base(relPath)
	_, err := os.Stat(filepath.Join(s.baseDir, name))
	return err == nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" || out == "." {
		out = "file"
	}
	return out
}
