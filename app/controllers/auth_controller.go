package controllers

import (
	"errors"
	"net/http"

	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/app/views"
	"github.com/atelierhq/atelier/pkg/logger"
	"github.com/atelierhq/atelier/pkg/session"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{auth: services.NewAuthService()}
}

// ShowLogin renders the sign-in form.
func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "login", map[string]interface{}{})
}

// Login checks the submitted credentials and opens a session.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := services.LoginInput{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := c.auth.Login(in)
	if errors.Is(err, services.ErrInvalidCredentials) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		views.Render(w, "login", map[string]interface{}{
			"Error": "Invalid email or password.",
		})
		return
	}
	if err != nil {
		logger.Error("auth: login failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sess := session.FromCtx(r)
	sess.Set("user_id", user.ID)
	sess.Set("user_name", user.Name)
	if err := sess.Save(w); err != nil {
		logger.Error("auth: session save failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout clears the session and returns to the storefront.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Invalidate()
	if err := sess.Save(w); err != nil {
		logger.Error("auth: session save failed", "error", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
