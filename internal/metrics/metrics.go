package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector expõe as métricas Prometheus do pipeline
type Collector struct {
	runsTotal   *prometheus.CounterVec
	runDuration prometheus.Histogram
	martRows    prometheus.Gauge
}

func NewCollector() *Collector {
	return &Collector{
		runsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kpi_pipeline",
			Name:      "runs_total",
			Help:      "Total de execuções do pipeline por status final",
		}, []string{"status"}),
		runDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kpi_pipeline",
			Name:      "run_duration_seconds",
			Help:      "Duração das execuções do pipeline",
			Buckets:   prometheus.DefBuckets,
		}),
		martRows: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "kpi_pipeline",
			Name:      "mart_rows",
			Help:      "Linhas gravadas em mart.daily_campaign_kpi na última execução com sucesso",
		}),
	}
}

// ObserveRun registra o resultado de uma execução do pipeline
func (c *Collector) ObserveRun(status string, duration time.Duration, rowsWritten int) {
	c.runsTotal.WithLabelValues(status).Inc()
	c.runDuration.Observe(duration.Seconds())

	if status == "success" {
		c.martRows.Set(float64(rowsWritten))
	}
}
