package main

import (
	"log"
	"net/http"
	"os/exec"
	"path/filepath"
	"runtime"

	"podorder/catalog"
	"podorder/config"
	"podorder/layouts"
	"podorder/metrics"
	"podorder/orders"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
		cfg = config.GetConfig()
	}

	catalogIndex := catalog.NewIndex()
	if err := catalogIndex.LoadFile(cfg.CatalogPath); err != nil {
		log.Printf("WARN: Failed to load catalog %s: %v. All lookups will miss until a reload.", cfg.CatalogPath, err)
	} else {
		log.Printf("Catalog loaded: %d entries.", catalogIndex.Size())
	}
	metrics.CatalogEntries.Set(float64(catalogIndex.Size()))

	layoutRegistry := layouts.NewRegistry()
	if err := layoutRegistry.LoadFile(cfg.CustomersPath); err != nil {
		log.Printf("WARN: Failed to load customer layouts %s: %v. CSV export will be unavailable.", cfg.CustomersPath, err)
	} else {
		log.Printf("Customer layouts loaded: %v", layoutRegistry.Keys())
	}

	store := orders.NewStore()

	mux := http.NewServeMux()

	mux.Handle("/static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir(cfg.StaticDir))))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
	})

	SetupRoutes(mux, store, catalogIndex, layoutRegistry)

	log.Printf("Starting server on http://localhost%s", cfg.ListenAddr)

	openBrowser("http://localhost" + cfg.ListenAddr)

	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatalf("server start error: %v", err)
	}
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Printf("failed to open browser: %v", err)
	}
}
