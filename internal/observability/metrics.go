// internal/observability/metrics.go
package observability

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ImportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pim_imports_total",
			Help: "Product imports by outcome (success or error kind)",
		},
		[]string{"outcome"},
	)

	ImportedRowsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pim_imported_rows_total",
			Help: "Rows upserted by committed imports",
		},
	)

	ImportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pim_import_duration_seconds",
			Help:    "Wall time of product imports",
			Buckets: prometheus.DefBuckets,
		},
	)

	TaggedProductsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pim_tagged_products_total",
			Help: "Products processed by auto-tagging by result (tagged, skipped, error)",
		},
		[]string{"result"},
	)

	ScrapesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pim_scrapes_total",
			Help: "Product page scrapes by source (cache or remote) and outcome",
		},
		[]string{"source", "outcome"},
	)

	registerOnce sync.Once
)

// Register adds the collectors to the default registry. Safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ImportsTotal,
			ImportedRowsTotal,
			ImportDuration,
			TaggedProductsTotal,
			ScrapesTotal,
		)
	})
}

// Handler serves the default registry for gin.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
