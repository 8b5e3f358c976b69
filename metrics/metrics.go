// Package metrics exposes the layout engine's running state as Prometheus
// collectors, for the bench/CLI driver to register and optionally serve via
// promhttp.Handler. Nothing in package layout or package graph imports
// this: a Recorder is wired from the outside, once per run, by whatever
// collaborator cares about observability.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the Prometheus collectors for one layout run. Construct
// with NewRecorder and register the result with a prometheus.Registerer;
// Observe* methods are called once per Step from the driving loop.
type Recorder struct {
	temperature   prometheus.Gauge
	kineticEnergy prometheus.Gauge
	stepsTotal    prometheus.Counter
	stepDuration  prometheus.Histogram
}

// NewRecorder builds a Recorder whose metric names are namespaced under
// "frlayout".
func NewRecorder() *Recorder {
	return &Recorder{
		temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "frlayout",
			Name:      "temperature",
			Help:      "Current Fruchterman-Reingold annealing temperature.",
		}),
		kineticEnergy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "frlayout",
			Name:      "kinetic_energy",
			Help:      "Kinetic energy recorded by the most recent step.",
		}),
		stepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frlayout",
			Name:      "steps_total",
			Help:      "Number of layout steps executed.",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "frlayout",
			Name:      "step_duration_seconds",
			Help:      "Wall-clock duration of a single layout step.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Collectors returns every collector this Recorder owns, for bulk
// registration: registry.MustRegister(recorder.Collectors()...).
func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.temperature, r.kineticEnergy, r.stepsTotal, r.stepDuration}
}

// ObserveStep records one completed step's temperature, kinetic energy, and
// wall-clock duration, and increments the step counter.
func (r *Recorder) ObserveStep(temperature, kineticEnergy float64, duration time.Duration) {
	r.temperature.Set(temperature)
	r.kineticEnergy.Set(kineticEnergy)
	r.stepsTotal.Inc()
	r.stepDuration.Observe(duration.Seconds())
}
