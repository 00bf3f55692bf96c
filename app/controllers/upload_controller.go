package controllers

import (
	"errors"
	"net/http"

	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/pkg/logger"
	"github.com/atelierhq/atelier/pkg/response"
)

type UploadController struct {
	uploads *services.UploadService
}

func NewUploadController() *UploadController {
	return &UploadController{uploads: services.NewUploadService()}
}

// Store accepts one multipart image under the "file" field, stores it
// under a random name and returns its public URL.
func (c *UploadController) Store(w http.ResponseWriter, r *http.Request) {
	// Spill anything bigger than the cap to disk; size enforcement
	// happens in the service.
	if err := r.ParseMultipartForm(services.MaxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, services.ErrNoFile.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, services.ErrNoFile.Error())
		return
	}
	defer file.Close()

	result, err := c.uploads.Store(
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	switch {
	case errors.Is(err, services.ErrUnsupportedType):
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrFileTooLarge):
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.Error("api: upload failed", "filename", header.Filename, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to upload image. Please try again.")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"url":      result.URL,
		"filename": result.Filename,
	})
}

// Preflight answers CORS preflight checks for the upload endpoint.
func (c *UploadController) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
