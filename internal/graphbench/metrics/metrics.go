package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
	"github.com/armadaproject/graphbench/internal/graphbench/configuration"
)

const MetricPrefix = "graphbench_"

// Metrics records the outcome of resolving a configuration, for node_exporter's textfile collector.
type Metrics struct {
	registry *prometheus.Registry

	scenarios          prometheus.Gauge
	randomNodes        prometheus.Gauge
	cacheValues        prometheus.Gauge
	selectedBackends   *prometheus.GaugeVec
	requestedBenchmark *prometheus.GaugeVec
	reporterEnabled    *prometheus.GaugeVec
	resolutionFailures *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scenarios: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricPrefix + "scenarios",
			Help: "Number of backend orderings the benchmarks run in",
		}),
		randomNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricPrefix + "shortest_path_random_nodes",
			Help: "Number of random start nodes used by shortest path benchmarks",
		}),
		cacheValues: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricPrefix + "clustering_cache_values",
			Help: "Number of cache sizes the clustering benchmark runs with",
		}),
		selectedBackends: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricPrefix + "backend_selected",
			Help: "1 for every backend selected for benchmarking",
		}, []string{"backend"}),
		requestedBenchmark: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricPrefix + "benchmark_requested",
			Help: "Number of times each benchmark kind was requested",
		}, []string{"benchmark"}),
		reporterEnabled: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricPrefix + "metrics_reporter_enabled",
			Help: "1 if the metrics reporter is enabled, 0 otherwise",
		}, []string{"reporter"}),
		resolutionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricPrefix + "configuration_failures_total",
			Help: "Number of configuration resolution failures by error kind",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(
		m.scenarios,
		m.randomNodes,
		m.cacheValues,
		m.selectedBackends,
		m.requestedBenchmark,
		m.reporterEnabled,
		m.resolutionFailures,
	)
	return m
}

// Registry exposes the registry so other collectors, e.g. the log hook, can be added to the same output.
func (m *Metrics) Registry() prometheus.Registerer {
	return m.registry
}

func (m *Metrics) RecordConfiguration(cfg *configuration.Configuration) {
	m.scenarios.Set(float64(cfg.Scenarios()))
	m.randomNodes.Set(float64(cfg.RandomNodes()))
	for _, id := range cfg.SelectedBackends() {
		m.selectedBackends.WithLabelValues(id.Name()).Set(1)
	}
	for _, kind := range cfg.BenchmarkKinds() {
		m.requestedBenchmark.WithLabelValues(string(kind)).Inc()
	}
	m.reporterEnabled.WithLabelValues("csv").Set(boolToFloat(cfg.CSVMetricsEnabled()))
	m.reporterEnabled.WithLabelValues("graphite").Set(boolToFloat(cfg.RemoteMetricsEnabled()))
	if clustering := cfg.Clustering(); clustering != nil {
		m.cacheValues.Set(float64(len(clustering.CacheValues)))
	}
}

func (m *Metrics) RecordFailure(err error) {
	m.resolutionFailures.WithLabelValues(benchmarkerrors.KindFromError(err).String()).Inc()
}

// WriteToTextfile atomically writes every registered metric to path in the text exposition format.
func (m *Metrics) WriteToTextfile(path string) error {
	return errors.WithStack(prometheus.WriteToTextfile(path, m.registry))
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
