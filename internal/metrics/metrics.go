package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "connectk"

// Metrics holds the collectors of one process. Each instance has its own
// prometheus registry so that tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	GamesCreated  prometheus.Counter
	GamesStored   prometheus.Gauge
	MovesAccepted prometheus.Counter
	MovesRejected *prometheus.CounterVec
	GamesFinished *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GamesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_created_total",
			Help:      "Number of games created through the API",
		}),
		GamesStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "games_stored",
			Help:      "Number of games held in the registry",
		}),
		MovesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_accepted_total",
			Help:      "Number of accepted moves",
		}),
		MovesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_rejected_total",
			Help:      "Number of rejected moves by reason",
		}, []string{"reason"}),
		GamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Number of finished games by outcome",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.GamesCreated,
		m.GamesStored,
		m.MovesAccepted,
		m.MovesRejected,
		m.GamesFinished,
	)

	return m
}

// Handler serves the exposition format for this instance's registry.
func (that *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(that.registry, promhttp.HandlerOpts{Registry: that.registry})
}
