package catalog

import (
	"encoding/json"
	"log"
	"net/http"

	"podorder/config"
	"podorder/metrics"
)

// ReloadHandler re-reads the catalog document and swaps the index in place.
func ReloadHandler(ix *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		cfg := config.GetConfig()
		if err := ix.LoadFile(cfg.CatalogPath); err != nil {
			log.Printf("ERROR: catalog reload: %v", err)
			http.Error(w, "Failed to reload catalog: "+err.Error(), http.StatusInternalServerError)
			return
		}
		metrics.CatalogEntries.Set(float64(ix.Size()))
		log.Printf("Catalog reloaded: %d entries.", ix.Size())
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Catalog reloaded.",
			"entries": ix.Size(),
		})
	}
}
