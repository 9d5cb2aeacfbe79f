package layouts

import (
	"encoding/json"
	"net/http"
)

// CustomerOption is one entry of the customer-type dropdown.
type CustomerOption struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ListCustomersHandler returns the selectable customer types.
func ListCustomersHandler(rg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options := make([]CustomerOption, 0)
		for _, key := range rg.Keys() {
			layout, _ := rg.Lookup(key)
			options = append(options, CustomerOption{Key: key, Name: layout.Name})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(options)
	}
}
