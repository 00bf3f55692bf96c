// Package routes wires controllers onto the router.
package routes

import (
	"github.com/atelierhq/atelier/app/controllers"
	"github.com/atelierhq/atelier/pkg/middleware"
	"github.com/atelierhq/atelier/pkg/router"
)

// RegisterWeb mounts the storefront and the session-guarded back office.
func RegisterWeb(r *router.Router) {
	storefront := controllers.NewStorefrontController()
	auth := controllers.NewAuthController()
	dashboard := controllers.NewDashboardController()
	orders := controllers.NewOrderController()
	products := controllers.NewProductController()
	customers := controllers.NewCustomerController()
	analytics := controllers.NewAnalyticsController()

	r.Get("/", "storefront.home", storefront.Home)
	r.Get("/products/{id}", "storefront.product", storefront.Product)

	r.Get("/login", "auth.login", auth.ShowLogin)
	r.Post("/login", "auth.attempt", auth.Login)
	r.Post("/logout", "auth.logout", auth.Logout)

	admin := r.Group("/admin", middleware.RequireSession)
	admin.Get("", "admin.dashboard", dashboard.Show)

	admin.Get("/orders", "admin.orders", orders.Index)
	admin.Get("/orders/{id}", "admin.orders.show", orders.Show)
	admin.Post("/orders/{id}/status", "admin.orders.status", orders.UpdateStatus)

	admin.Get("/products", "admin.products", products.Index)
	admin.Get("/products/new", "admin.products.new", products.New)
	admin.Post("/products", "admin.products.create", products.Create)
	admin.Get("/products/{id}/edit", "admin.products.edit", products.Edit)
	admin.Post("/products/{id}", "admin.products.update", products.Update)
	admin.Post("/products/{id}/delete", "admin.products.delete", products.Delete)

	admin.Get("/customers", "admin.customers", customers.Index)
	admin.Get("/analytics", "admin.analytics", analytics.Show)
}
