package controllers

import (
	"errors"
	"net/http"

	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/pkg/bind"
	"github.com/atelierhq/atelier/pkg/logger"
	"github.com/atelierhq/atelier/pkg/response"
)

type AuthAPIController struct {
	auth *services.AuthService
}

func NewAuthAPIController() *AuthAPIController {
	return &AuthAPIController{auth: services.NewAuthService()}
}

// Login checks credentials and returns a bearer token for API clients.
func (c *AuthAPIController) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.auth.LoginToken(in)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.Unauthorized(w)
		return
	}
	if err != nil {
		logger.Error("api: login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}
