package routes

import (
	"github.com/atelierhq/atelier/app/controllers"
	"github.com/atelierhq/atelier/pkg/middleware"
	"github.com/atelierhq/atelier/pkg/router"
)

// RegisterAPI mounts the JSON endpoints under /api.
func RegisterAPI(r *router.Router) {
	authAPI := controllers.NewAuthAPIController()
	productAPI := controllers.NewProductAPIController()
	orderAPI := controllers.NewOrderAPIController()
	upload := controllers.NewUploadController()

	api := r.Group("/api")
	api.Post("/auth/login", "api.auth.login", authAPI.Login)
	api.Get("/products/{id}", "api.products.show", productAPI.Show)

	api.Post("/upload", "api.upload", upload.Store)
	api.Options("/upload", "", upload.Preflight)

	protected := api.Group("", middleware.RequireToken)
	protected.Get("/orders", "api.orders", orderAPI.Index)
}
