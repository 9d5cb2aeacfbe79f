package orders

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"podorder/catalog"
	"podorder/layouts"
	"podorder/metrics"
	"podorder/parsers"
)

func respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func respondJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// UploadOrderHandler accepts the order spreadsheet upload and replaces the
// current batch with the reconciled lines. On any failure the previous
// batch is left untouched.
func UploadOrderHandler(store *Store, index *catalog.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		log.Println("Received order upload request...")

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			respondJSONError(w, "File upload error: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		orderRef := strings.TrimSpace(r.FormValue("orderRef"))
		if orderRef == "" {
			respondJSONError(w, "Please enter an order reference before uploading a file", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			respondJSONError(w, "Order file is required: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		raw, err := parsers.ParseOrderFile(header.Filename, file)
		if err != nil {
			log.Printf("Failed to parse order file %s: %v", header.Filename, err)
			respondJSONError(w, "Error processing file. Please check the format and try again.", http.StatusBadRequest)
			return
		}

		lines := Reconcile(parsers.RowsFromCells(raw), index, orderRef)
		batch := store.Replace(orderRef, lines)

		metrics.OrdersUploaded.Inc()
		metrics.LinesReconciled.Add(float64(len(lines)))
		log.Printf("Reconciled %d line(s) from %s (batch %s)", len(lines), header.Filename, batch.ID)

		respondJSON(w, map[string]interface{}{
			"batchId": batch.ID,
			"count":   len(batch.Lines),
			"lines":   batch.Lines,
		})
	}
}

// GetOrdersHandler returns the current batch snapshot for the preview table.
func GetOrdersHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, store.Snapshot())
	}
}

// DeleteLineHandler removes a single line by index and returns the
// renumbered batch.
func DeleteLineHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSONError(w, "Invalid request body.", http.StatusBadRequest)
			return
		}
		if req.Index < 0 || req.Index >= store.Len() {
			respondJSONError(w, "Row index out of range.", http.StatusBadRequest)
			return
		}
		store.DeleteAt(req.Index)
		log.Printf("Deleted order line at index %d", req.Index)
		respondJSON(w, store.Snapshot())
	}
}

// DeleteManyHandler removes a set of lines by index.
func DeleteManyHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Indices []int `json:"indices"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSONError(w, "Invalid request body.", http.StatusBadRequest)
			return
		}
		removed := store.DeleteMany(req.Indices)
		log.Printf("Deleted %d order line(s)", removed)
		respondJSON(w, map[string]interface{}{
			"removed": removed,
			"batch":   store.Snapshot(),
		})
	}
}

// ClearOrdersHandler empties the batch.
func ClearOrdersHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		store.Clear()
		log.Println("Order batch cleared.")
		respondJSON(w, map[string]string{"message": "All data cleared"})
	}
}

// SelectCustomerHandler records the customer type used by the CSV export.
func SelectCustomerHandler(store *Store, registry *layouts.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			CustomerType string `json:"customerType"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSONError(w, "Invalid request body.", http.StatusBadRequest)
			return
		}
		if req.CustomerType != "" {
			if _, ok := registry.Lookup(req.CustomerType); !ok {
				respondJSONError(w, "Unknown customer type: "+req.CustomerType, http.StatusBadRequest)
				return
			}
		}
		store.SetCustomerType(req.CustomerType)
		respondJSON(w, map[string]string{"customerType": req.CustomerType})
	}
}
