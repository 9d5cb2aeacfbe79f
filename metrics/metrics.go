package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "podorder_uploads_total",
		Help: "Successfully reconciled order uploads.",
	})

	LinesReconciled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "podorder_lines_reconciled_total",
		Help: "Order lines produced by reconciliation.",
	})

	ExportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "podorder_exports_total",
		Help: "Generated export files by format.",
	}, []string{"format"})

	CatalogEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "podorder_catalog_entries",
		Help: "Entries in the loaded catalog index.",
	})
)
