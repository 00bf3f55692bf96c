package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/atelierhq/atelier/pkg/metrics"
	"github.com/atelierhq/atelier/pkg/storage"
)

// MaxUploadBytes caps accepted image uploads at 5 MB.
const MaxUploadBytes = 5 << 20

var (
	// ErrNoFile is returned when the request carries no file part.
	ErrNoFile = errors.New("No file received.")
	// ErrUnsupportedType is returned for files outside the image allowlist.
	ErrUnsupportedType = errors.New("Invalid file type. Only JPEG, PNG, WebP, and GIF images are allowed.")
	// ErrFileTooLarge is returned for files over MaxUploadBytes.
	ErrFileTooLarge = errors.New("File too large. Maximum size is 5MB.")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadResult describes a stored image.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadService validates incoming images and writes them to storage.
type UploadService struct{}

func NewUploadService() *UploadService {
	return &UploadService{}
}

// Store validates and persists one uploaded image. originalName only
// contributes its extension; the stored name is a random token so uploads
// can never collide or traverse paths.
func (s *UploadService) Store(originalName, contentType string, size int64, r io.Reader) (UploadResult, error) {
	if !allowedImageTypes[strings.ToLower(contentType)] {
		metrics.UploadRejected()
		return UploadResult{}, ErrUnsupportedType
	}
	if size > MaxUploadBytes {
		metrics.UploadRejected()
		return UploadResult{}, ErrFileTooLarge
	}

	// Re-check while reading in case the declared size was wrong.
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		metrics.UploadFailed()
		return UploadResult{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > MaxUploadBytes {
		metrics.UploadRejected()
		return UploadResult{}, ErrFileTooLarge
	}

	filename := randomToken() + strings.ToLower(filepath.Ext(originalName))
	if err := storage.Put(filename, data); err != nil {
		metrics.UploadFailed()
		return UploadResult{}, fmt.Errorf("store upload: %w", err)
	}

	metrics.UploadAccepted()
	return UploadResult{
		URL:      storage.URL(filename),
		Filename: filename,
	}, nil
}

func randomToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return hex.EncodeToString(b)
}
