// Package resource shapes API output with per-model transformers.
//
// A transformer is a plain function from model to Map:
//
//	func orderResource(o models.Order) resource.Map {
//	    return resource.Map{"id": o.ID, "status": o.Status}
//	}
//
// Respond:
//
//	resource.Item(w, orderResource, order)
//	resource.List(w, orderResource, orders, &page)
package resource

import (
	"encoding/json"
	"net/http"

	"github.com/atelierhq/atelier/pkg/orm"
)

// Map is the output shape of a transformer.
type Map = map[string]interface{}

// Item writes a single transformed model as {"data": ...} with status 200.
func Item[T any](w http.ResponseWriter, transform func(T) Map, v T) {
	writeJSON(w, http.StatusOK, Map{"data": transform(v)})
}

// List writes a transformed slice as {"data": [...]}, attaching pagination
// metadata when p is non-nil. A nil or empty slice yields "data": [].
func List[T any](w http.ResponseWriter, transform func(T) Map, items []T, p *orm.Pagination) {
	data := make([]Map, 0, len(items))
	for _, item := range items {
		data = append(data, transform(item))
	}

	out := Map{"data": data}
	if p != nil {
		out["pagination"] = p
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
