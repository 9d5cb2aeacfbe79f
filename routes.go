package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"podorder/catalog"
	"podorder/export"
	"podorder/layouts"
	"podorder/orders"
)

func SetupRoutes(mux *http.ServeMux, store *orders.Store, index *catalog.Index, registry *layouts.Registry) {

	mux.HandleFunc("/api/orders/upload", orders.UploadOrderHandler(store, index))
	mux.HandleFunc("/api/orders", orders.GetOrdersHandler(store))
	mux.HandleFunc("/api/orders/delete", orders.DeleteLineHandler(store))
	mux.HandleFunc("/api/orders/delete_many", orders.DeleteManyHandler(store))
	mux.HandleFunc("/api/orders/clear", orders.ClearOrdersHandler(store))
	mux.HandleFunc("/api/orders/customer", orders.SelectCustomerHandler(store, registry))

	mux.HandleFunc("/api/customers", layouts.ListCustomersHandler(registry))

	mux.HandleFunc("/api/export/csv", export.DownloadCSVHandler(store, registry))
	mux.HandleFunc("/api/export/pdf", export.DownloadPDFHandler(store))

	mux.HandleFunc("/api/template", TemplateHandler())

	mux.HandleFunc("/api/catalog/reload", catalog.ReloadHandler(index))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.Handle("/metrics", promhttp.Handler())
}
