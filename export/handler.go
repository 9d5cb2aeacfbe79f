package export

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"podorder/layouts"
	"podorder/metrics"
	"podorder/orders"
)

func respondJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// DownloadCSVHandler renders the current batch through the selected
// customer layout and serves the flat file.
func DownloadCSVHandler(store *orders.Store, registry *layouts.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		batch := store.Snapshot()
		if len(batch.Lines) == 0 {
			respondJSONError(w, "No data to download", http.StatusBadRequest)
			return
		}
		if batch.CustomerType == "" {
			respondJSONError(w, "Please select a customer type before exporting", http.StatusBadRequest)
			return
		}
		layout, ok := registry.Lookup(batch.CustomerType)
		if !ok {
			respondJSONError(w, "Unknown customer type: "+batch.CustomerType, http.StatusBadRequest)
			return
		}

		now := time.Now()
		data, err := BuildCSV(batch, layout, now)
		if err != nil {
			log.Printf("ERROR: csv export: %v", err)
			respondJSONError(w, "Error creating CSV file", http.StatusInternalServerError)
			return
		}
		metrics.ExportsGenerated.WithLabelValues("csv").Inc()
		log.Printf("CSV export: %d line(s) for customer type %s", len(batch.Lines), batch.CustomerType)

		filename := CSVFilename(now)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
		w.Write(data)
	}
}

// DownloadPDFHandler serves the presentation PDF of the current batch.
func DownloadPDFHandler(store *orders.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		batch := store.Snapshot()
		if len(batch.Lines) == 0 {
			respondJSONError(w, "No data to download", http.StatusBadRequest)
			return
		}

		now := time.Now()
		data, err := BuildPDF(batch, now)
		if err != nil {
			log.Printf("ERROR: pdf export: %v", err)
			respondJSONError(w, "Error creating PDF file", http.StatusInternalServerError)
			return
		}
		metrics.ExportsGenerated.WithLabelValues("pdf").Inc()
		log.Printf("PDF export: %d line(s)", len(batch.Lines))

		filename := PDFFilename(now)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
		w.Write(data)
	}
}
