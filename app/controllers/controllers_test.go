package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/routes"
	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/pkg/database"
	"github.com/atelierhq/atelier/pkg/router"
	"github.com/atelierhq/atelier/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().DropTable(
		&models.OrderItem{}, &models.Order{}, &models.Product{}, &models.User{},
	))
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{},
	))

	database.DB = db
	return db
}

// newAPIServer mounts the JSON API on a fresh router.
func newAPIServer() http.Handler {
	r := router.New()
	routes.RegisterAPI(r)
	return r.Handler()
}

func TestProductAPIShow(t *testing.T) {
	db := setupDB(t)
	p := models.Product{Name: "Tote", Price: 38, Stock: 5, SKU: "AT-1"}
	require.NoError(t, db.Create(&p).Error)

	srv := newAPIServer()

	req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Tote", got.Name)
	assert.InDelta(t, 38, got.Price, 1e-9)
}

func TestProductAPIShowNotFound(t *testing.T) {
	setupDB(t)
	srv := newAPIServer()

	for _, path := range []string{"/api/products/999", "/api/products/abc"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code, "path %s", path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Product not found", body["error"])
	}
}

// multipartBody builds a multipart form with a single "file" part carrying
// an explicit Content-Type.
func multipartBody(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func setupStorage(t *testing.T) {
	t.Helper()
	storage.RegisterDisk("test", storage.NewLocalDisk(t.TempDir(), "/uploads"))
	storage.SetDefault("test")
}

func TestUploadEndpoint(t *testing.T) {
	setupDB(t)
	setupStorage(t)
	srv := newAPIServer()

	body, ct := multipartBody(t, "photo.png", "image/png", bytes.Repeat([]byte{0x89}, 1<<20))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got struct {
		Success  bool   `json:"success"`
		URL      string `json:"url"`
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Regexp(t, `^[0-9a-f]{32}\.png$`, got.Filename)
	assert.Equal(t, "/uploads/"+got.Filename, got.URL)
}

func TestUploadEndpointRejectsBadType(t *testing.T) {
	setupDB(t)
	setupStorage(t)
	srv := newAPIServer()

	body, ct := multipartBody(t, "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "file type")
}

func TestUploadEndpointRejectsOversizedFile(t *testing.T) {
	setupDB(t)
	setupStorage(t)
	srv := newAPIServer()

	body, ct := multipartBody(t, "big.png", "image/png", bytes.Repeat([]byte{0x1}, services.MaxUploadBytes+1))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "too large")
}

func TestUploadEndpointWithoutFile(t *testing.T) {
	setupDB(t)
	setupStorage(t)
	srv := newAPIServer()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "no file here"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No file received.", resp["error"])
}

func TestUploadPreflight(t *testing.T) {
	srv := newAPIServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/upload", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrdersAPIRequiresToken(t *testing.T) {
	setupDB(t)
	srv := newAPIServer()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
