package configuration

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/armadaproject/graphbench/internal/common/pointer"
	"github.com/armadaproject/graphbench/internal/graphbench/cachesize"
)

// SummaryFileName is the name the summary is written under in the results directory.
const SummaryFileName = "configuration.yaml"

type summary struct {
	Dataset           string             `yaml:"dataset"`
	Benchmarks        []string           `yaml:"benchmarks"`
	Databases         []string           `yaml:"databases"`
	ResultsPath       string             `yaml:"resultsPath"`
	StorageDirectory  string             `yaml:"storageDirectory"`
	PermuteBenchmarks bool               `yaml:"permuteBenchmarks"`
	Scenarios         int                `yaml:"scenarios"`
	RandomNodes       int                `yaml:"randomNodes"`
	Metrics           metricsSummary     `yaml:"metrics"`
	Orient            *orientSummary     `yaml:"orient,omitempty"`
	Sparksee          *sparkseeSummary   `yaml:"sparksee,omitempty"`
	Titan             *titanSummary      `yaml:"titan,omitempty"`
	Clustering        *clusteringSummary `yaml:"clustering,omitempty"`
}

type metricsSummary struct {
	CSVEnabled       bool   `yaml:"csvEnabled"`
	CSVInterval      string `yaml:"csvInterval,omitempty"`
	CSVDirectory     string `yaml:"csvDirectory,omitempty"`
	RemoteEnabled    bool   `yaml:"remoteEnabled"`
	GraphiteHostname string `yaml:"graphiteHostname,omitempty"`
	GraphiteInterval string `yaml:"graphiteInterval,omitempty"`
}

type orientSummary struct {
	LightweightEdges bool `yaml:"lightweightEdges"`
}

type sparkseeSummary struct {
	LicenseKey string `yaml:"licenseKey"`
}

type titanSummary struct {
	BufferSize  *int `yaml:"bufferSize,omitempty"`
	IDBlockSize *int `yaml:"idBlockSize,omitempty"`
	PageSize    *int `yaml:"pageSize,omitempty"`
}

type clusteringSummary struct {
	NodesCount           int      `yaml:"nodesCount"`
	Randomize            bool     `yaml:"randomize"`
	ActualCommunities    string   `yaml:"actualCommunities"`
	CacheValuesCount     int      `yaml:"cacheValuesCount,omitempty"`
	CacheIncrementFactor *float64 `yaml:"cacheIncrementFactor,omitempty"`
	CacheValues          []int    `yaml:"cacheValues"`
}

// WriteSummary writes c to w as YAML. Settings that are absent are omitted.
func WriteSummary(w io.Writer, c *Configuration) error {
	out, err := yaml.Marshal(newSummary(c))
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = w.Write(out)
	return errors.WithStack(err)
}

func newSummary(c *Configuration) summary {
	s := summary{
		Dataset:           c.dataset,
		ResultsPath:       c.resultsPath,
		StorageDirectory:  c.storageDirectory,
		PermuteBenchmarks: c.permuteBenchmarks,
		Scenarios:         c.scenarios,
		RandomNodes:       c.randomNodes,
	}
	for _, k := range c.benchmarkKinds {
		s.Benchmarks = append(s.Benchmarks, string(k))
	}
	for _, id := range c.selectedBackends {
		s.Databases = append(s.Databases, id.Name())
	}

	s.Metrics.CSVEnabled = c.CSVMetricsEnabled()
	s.Metrics.CSVDirectory, _ = c.CSVDirectory()
	if interval, ok := c.CSVInterval(); ok {
		s.Metrics.CSVInterval = interval.String()
	}
	s.Metrics.RemoteEnabled = c.RemoteMetricsEnabled()
	s.Metrics.GraphiteHostname, _ = c.GraphiteHostname()
	if interval, ok := c.GraphiteInterval(); ok {
		s.Metrics.GraphiteInterval = interval.String()
	}

	if edges, ok := c.LightweightEdges(); ok {
		s.Orient = &orientSummary{LightweightEdges: edges}
	}
	if key, ok := c.LicenseKey(); ok {
		s.Sparksee = &sparkseeSummary{LicenseKey: key}
	}
	if c.bufferSize != nil || c.idBlockSize != nil || c.pageSize != nil {
		s.Titan = &titanSummary{
			BufferSize:  pointer.Clone(c.bufferSize),
			IDBlockSize: pointer.Clone(c.idBlockSize),
			PageSize:    pointer.Clone(c.pageSize),
		}
	}

	if cl := c.clustering; cl != nil {
		s.Clustering = &clusteringSummary{
			NodesCount:        cl.NodesCount,
			Randomize:         cl.Randomize,
			ActualCommunities: cl.ActualCommunities,
			CacheValues:       cl.CacheValues,
		}
		if generated, ok := cl.CacheSpec.(cachesize.Generated); ok {
			s.Clustering.CacheValuesCount = generated.Count
			s.Clustering.CacheIncrementFactor = &generated.IncrementFactor
		}
	}
	return s
}
