package services_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStorage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	storage.RegisterDisk("test", storage.NewLocalDisk(dir, "/uploads"))
	storage.SetDefault("test")
	return dir
}

func TestUploadStoresFileUnderRandomName(t *testing.T) {
	dir := setupStorage(t)
	svc := services.NewUploadService()

	content := bytes.Repeat([]byte{0x89}, 1024)
	result, err := svc.Store("photo.PNG", "image/png", int64(len(content)), bytes.NewReader(content))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}\.png$`), result.Filename)
	assert.Equal(t, "/uploads/"+result.Filename, result.URL)

	stored, err := os.ReadFile(filepath.Join(dir, result.Filename))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestUploadFilenamesNeverCollide(t *testing.T) {
	setupStorage(t)
	svc := services.NewUploadService()

	a, err := svc.Store("x.png", "image/png", 4, bytes.NewReader([]byte("aaaa")))
	require.NoError(t, err)
	b, err := svc.Store("x.png", "image/png", 4, bytes.NewReader([]byte("bbbb")))
	require.NoError(t, err)

	assert.NotEqual(t, a.Filename, b.Filename)
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	setupStorage(t)
	svc := services.NewUploadService()

	_, err := svc.Store("notes.txt", "text/plain", 10, bytes.NewReader([]byte("0123456789")))
	assert.ErrorIs(t, err, services.ErrUnsupportedType)

	_, err = svc.Store("clip.mp4", "video/mp4", 10, bytes.NewReader([]byte("0123456789")))
	assert.ErrorIs(t, err, services.ErrUnsupportedType)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	setupStorage(t)
	svc := services.NewUploadService()

	// Declared size over the cap fails before reading.
	_, err := svc.Store("big.png", "image/png", services.MaxUploadBytes+1, bytes.NewReader(nil))
	assert.ErrorIs(t, err, services.ErrFileTooLarge)

	// A lying Content-Length is caught while reading.
	big := bytes.Repeat([]byte{0x1}, services.MaxUploadBytes+1)
	_, err = svc.Store("big.png", "image/png", 100, bytes.NewReader(big))
	assert.ErrorIs(t, err, services.ErrFileTooLarge)
}

func TestUploadAcceptsEveryAllowedType(t *testing.T) {
	setupStorage(t)
	svc := services.NewUploadService()

	for _, ct := range []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif"} {
		_, err := svc.Store("f.img", ct, 4, bytes.NewReader([]byte("data")))
		assert.NoError(t, err, "content type %s should be accepted", ct)
	}
}
