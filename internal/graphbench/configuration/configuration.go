package configuration

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/armadaproject/graphbench/internal/common/pointer"
	"github.com/armadaproject/graphbench/internal/graphbench/backend"
	"github.com/armadaproject/graphbench/internal/graphbench/benchmark"
	"github.com/armadaproject/graphbench/internal/graphbench/cachesize"
	"github.com/armadaproject/graphbench/internal/graphbench/permutation"
)

// Configuration is the validated run configuration of a benchmark.
// It is only built by FromHierarchy or FromSettings and cannot be changed afterwards;
// getters returning slices return copies.
type Configuration struct {
	dataset           string
	benchmarkKinds    []benchmark.Kind
	selectedBackends  []backend.ID
	resultsPath       string
	storageDirectory  string
	permuteBenchmarks bool
	scenarios         int
	randomNodes       int

	lightweightEdges *bool
	licenseKey       *string
	bufferSize       *int
	idBlockSize      *int
	pageSize         *int

	csvInterval      *time.Duration
	csvDirectory     *string
	graphiteHostname *string
	graphiteInterval *time.Duration

	clustering *Clustering
}

// Clustering holds the settings only present when the CLUSTERING benchmark is requested.
type Clustering struct {
	NodesCount        int
	Randomize         bool
	ActualCommunities string
	// CacheSpec is the form the cache sizes were given in; CacheValues is the sequence it resolves to.
	CacheSpec   cachesize.Spec
	CacheValues []int
}

func (c *Clustering) clone() *Clustering {
	if c == nil {
		return nil
	}
	copied := *c
	copied.CacheValues = slices.Clone(c.CacheValues)
	if explicit, ok := c.CacheSpec.(cachesize.Explicit); ok {
		copied.CacheSpec = cachesize.Explicit{Values: slices.Clone(explicit.Values)}
	}
	return &copied
}

func (c *Configuration) Dataset() string {
	return c.dataset
}

func (c *Configuration) BenchmarkKinds() []benchmark.Kind {
	return slices.Clone(c.benchmarkKinds)
}

// SelectedBackends returns the unique selected backends in registry order.
func (c *Configuration) SelectedBackends() []backend.ID {
	return slices.Clone(c.selectedBackends)
}

func (c *Configuration) ResultsPath() string {
	return c.resultsPath
}

func (c *Configuration) StorageDirectory() string {
	return c.storageDirectory
}

func (c *Configuration) PermuteBenchmarks() bool {
	return c.permuteBenchmarks
}

// Scenarios is the number of backend orderings the benchmarks are run in.
func (c *Configuration) Scenarios() int {
	return c.scenarios
}

// RandomNodes is the number of random start nodes used by shortest path benchmarks.
func (c *Configuration) RandomNodes() int {
	return c.randomNodes
}

// BackendOrderings returns the orderings of the selected backends, one per scenario.
// Without permutation the only ordering is registry order.
func (c *Configuration) BackendOrderings() [][]backend.ID {
	if !c.permuteBenchmarks {
		return [][]backend.ID{c.SelectedBackends()}
	}
	return permutation.Enumerate(c.selectedBackends)
}

func (c *Configuration) LightweightEdges() (bool, bool) {
	return deref(c.lightweightEdges)
}

func (c *Configuration) LicenseKey() (string, bool) {
	return deref(c.licenseKey)
}

func (c *Configuration) BufferSize() (int, bool) {
	return deref(c.bufferSize)
}

func (c *Configuration) IDBlockSize() (int, bool) {
	return deref(c.idBlockSize)
}

func (c *Configuration) PageSize() (int, bool) {
	return deref(c.pageSize)
}

func (c *Configuration) CSVInterval() (time.Duration, bool) {
	return deref(c.csvInterval)
}

func (c *Configuration) CSVDirectory() (string, bool) {
	return deref(c.csvDirectory)
}

func (c *Configuration) GraphiteHostname() (string, bool) {
	return deref(c.graphiteHostname)
}

func (c *Configuration) GraphiteInterval() (time.Duration, bool) {
	return deref(c.graphiteInterval)
}

// CSVMetricsEnabled is true iff a CSV metrics directory was given.
func (c *Configuration) CSVMetricsEnabled() bool {
	return c.csvDirectory != nil
}

// RemoteMetricsEnabled is true iff a non-empty graphite hostname was given.
func (c *Configuration) RemoteMetricsEnabled() bool {
	return pointer.ValueOr(c.graphiteHostname, "") != ""
}

// Clustering returns a copy of the clustering settings, or nil if CLUSTERING was not requested.
func (c *Configuration) Clustering() *Clustering {
	return c.clustering.clone()
}

func deref[T any](p *T) (T, bool) {
	var zero T
	return pointer.ValueOr(p, zero), p != nil
}
