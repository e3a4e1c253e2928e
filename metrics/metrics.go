// Package metrics exports the size and shape of a core.Graph as Prometheus
// gauges.
//
// # Description
//
// Collector samples the graph at scrape time, so registered values never go
// stale between mutations. Metrics:
//   - <ns>_graph_vertices: number of vertices
//   - <ns>_graph_edges: number of edges, parallel edges counted
//   - <ns>_graph_components: number of connected components
//
// The Collector is never registered globally; callers register it with the
// registry of their choice.
//
// # Thread Safety
//
// Collect only takes the graph's read lock, through the core query methods.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/ugraph/connectivity"
	"github.com/katalvlaran/ugraph/core"
)

const subsystem = "graph"

// Collector implements prometheus.Collector for a single graph.
type Collector struct {
	g   *core.Graph
	log *zap.Logger

	vertices   *prometheus.Desc
	edges      *prometheus.Desc
	components *prometheus.Desc
}

// NewCollector returns a Collector reporting on g under the given namespace.
// Sampling failures are logged on g's logger.
func NewCollector(g *core.Graph, namespace string) *Collector {
	log := zap.NewNop()
	if g != nil {
		log = g.Logger()
	}

	return &Collector{
		g:   g,
		log: log,
		vertices: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "vertices"),
			"Number of vertices in the graph.",
			nil, nil,
		),
		edges: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "edges"),
			"Number of edges in the graph, parallel edges counted individually.",
			nil, nil,
		),
		components: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "components"),
			"Number of connected components in the graph.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.vertices
	ch <- c.edges
	ch <- c.components
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.g == nil {
		err := connectivity.ErrGraphNil
		ch <- prometheus.NewInvalidMetric(c.vertices, err)
		ch <- prometheus.NewInvalidMetric(c.edges, err)
		ch <- prometheus.NewInvalidMetric(c.components, err)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.vertices, prometheus.GaugeValue, float64(c.g.VertexCount()))
	ch <- prometheus.MustNewConstMetric(c.edges, prometheus.GaugeValue, float64(c.g.EdgeCount()))

	n, err := connectivity.Count(c.g)
	if err != nil {
		c.log.Warn("metrics: component count failed", zap.Error(err))
		ch <- prometheus.NewInvalidMetric(c.components, err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.components, prometheus.GaugeValue, float64(n))
}
