package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector - набор метрик Prometheus для дашборда
type Collector struct {
	gatherer prometheus.Gatherer

	Selections     *prometheus.CounterVec
	CameraCommands *prometheus.CounterVec
	Misses         *prometheus.CounterVec
}

// NewCollector регистрирует метрики в переданном реестре.
// При nil используется глобальный реестр Prometheus.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	selections, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sar_initial_view_selections_total",
		Help: "Number of initial view evaluations, labeled by the selected view type.",
	}, []string{"type"}), "sar_initial_view_selections_total")
	if err != nil {
		return nil, err
	}

	commands, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sar_camera_commands_total",
		Help: "Number of camera commands issued, labeled by command kind.",
	}, []string{"kind"}), "sar_camera_commands_total")
	if err != nil {
		return nil, err
	}

	misses, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sar_backend_not_found_total",
		Help: "Number of mock backend lookups that did not find a record, labeled by collection.",
	}, []string{"collection"}), "sar_backend_not_found_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:       gatherer,
		Selections:     selections,
		CameraCommands: commands,
		Misses:         misses,
	}, nil
}

// Handler отдает метрики для /metrics
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveSelection учитывает результат выбора начального вида
func (c *Collector) ObserveSelection(viewType string) {
	if c == nil || c.Selections == nil {
		return
	}
	c.Selections.WithLabelValues(viewType).Inc()
}

// ObserveCameraCommand учитывает отданную камере команду
func (c *Collector) ObserveCameraCommand(kind string) {
	if c == nil || c.CameraCommands == nil {
		return
	}
	c.CameraCommands.WithLabelValues(kind).Inc()
}

// ObserveMiss учитывает промах по id в коллекции
func (c *Collector) ObserveMiss(collection string) {
	if c == nil || c.Misses == nil {
		return
	}
	c.Misses.WithLabelValues(collection).Inc()
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metrics: collector %s already registered with incompatible type", name)
		}
		return nil, fmt.Errorf("metrics: register %s: %w", name, err)
	}
	return vec, nil
}
