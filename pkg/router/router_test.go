package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelierhq/atelier/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	r.Get("/admin/orders/{id}", "admin.orders.show", ok)

	url, err := r.URL("admin.orders.show", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/orders/42", url)

	_, err = r.URL("admin.orders.show", nil)
	assert.Error(t, err, "missing params must error")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	admin := r.Group("/admin", mw("outer"))
	nested := admin.Group("/reports", mw("inner"))
	nested.Get("/sales", "admin.reports.sales", ok)

	req := httptest.NewRequest(http.MethodGet, "/admin/reports/sales", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Get("/a", "a", ok)
	r.Post("/b", "b", ok)
	r.Options("/c", "", ok) // unnamed routes stay out of the listing

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].Name)
	assert.Equal(t, http.MethodPost, infos[1].Method)
}
