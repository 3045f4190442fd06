package configuration

import "github.com/armadaproject/graphbench/internal/graphbench/cachesize"

// RootNamespace is the prefix of every hierarchical key.
const RootNamespace = "eu.socialsensor"

const (
	defaultResultsPath      = "results"
	defaultStorageDirectory = "storage"
	defaultRandomNodes      = 100
	defaultIntervalMillis   = 1000
)

// keySet names the settings one construction path reads. Hierarchical keys are relative to RootNamespace.
type keySet struct {
	namespace         string
	dataset           string
	storageDirectory  string
	permute           string
	benchmarks        string
	databases         string
	resultsPath       string
	randomNodes       string
	csvInterval       string
	csvDirectory      string
	graphiteHostname  string
	graphiteInterval  string
	lightweightEdges  string
	licenseKey        string
	bufferSize        string
	blockSize         string
	pageSize          string
	nodesCount        string
	randomize         string
	actualCommunities string
	cache             cachesize.Keys
	// titanTuningRequired is set when the path always supplies the titan tuning sizes.
	titanTuningRequired bool
}

var hierarchicalKeys = keySet{
	namespace:         RootNamespace,
	dataset:           "dataset",
	storageDirectory:  "database-storage-directory",
	permute:           "permute-benchmarks",
	benchmarks:        "benchmarks",
	databases:         "databases",
	resultsPath:       "results-path",
	randomNodes:       "shortest-path-random-nodes",
	csvInterval:       "metrics.csv.interval",
	csvDirectory:      "metrics.csv.directory",
	graphiteHostname:  "metrics.graphite.hostname",
	graphiteInterval:  "metrics.graphite.interval",
	lightweightEdges:  "orient.lightweight-edges",
	licenseKey:        "sparksee.license-key",
	bufferSize:        "titan.buffer-size",
	blockSize:         "titan.block-size",
	pageSize:          "titan.page-size",
	nodesCount:        "nodes-count",
	randomize:         "randomize-clustering",
	actualCommunities: "actual-communities",
	cache:             cachesize.DefaultKeys,
}

var flatKeys = keySet{
	dataset:           "dataset",
	permute:           "permuteBenchmark",
	benchmarks:        "benchmark",
	databases:         "system",
	randomNodes:       "shortestPathRandomNodes",
	csvInterval:       "titan.csvReportingInterval",
	csvDirectory:      "titan.metrics",
	graphiteHostname:  "titan.hostname",
	graphiteInterval:  "titan.reportingInterval",
	lightweightEdges:  "orient.lightweightEdges",
	licenseKey:        "sparksee.licenseKey",
	bufferSize:        "titan.bufferSize",
	blockSize:         "titan.blockSize",
	pageSize:          "titan.pageSize",
	nodesCount:        "nodesCount",
	randomize:         "randomizeClustering",
	actualCommunities: "actualCommunities",
	cache: cachesize.Keys{
		Values:          "cacheValue",
		Count:           "cacheValuesCount",
		IncrementFactor: "cacheIncrementFactor",
	},
	titanTuningRequired: true,
}

// qualify returns the fully qualified name of key, as reported in errors.
func (k keySet) qualify(key string) string {
	if k.namespace == "" {
		return key
	}
	return k.namespace + "." + key
}

func (k keySet) qualifiedCache() cachesize.Keys {
	return cachesize.Keys{
		Values:          k.qualify(k.cache.Values),
		Count:           k.qualify(k.cache.Count),
		IncrementFactor: k.qualify(k.cache.IncrementFactor),
	}
}

// byField maps the `key` tag of a limits field to the qualified settings key it was read from.
func (k keySet) byField(field string) string {
	return k.qualify(k.relative(field))
}

func (k keySet) relative(field string) string {
	switch field {
	case "randomNodes":
		return k.randomNodes
	case "csvInterval":
		return k.csvInterval
	case "graphiteInterval":
		return k.graphiteInterval
	case "bufferSize":
		return k.bufferSize
	case "blockSize":
		return k.blockSize
	case "pageSize":
		return k.pageSize
	case "nodesCount":
		return k.nodesCount
	default:
		return field
	}
}

// clustering lists the clustering keys in reporting order.
func (k keySet) clustering() []string {
	return []string{k.nodesCount, k.randomize, k.actualCommunities, k.cache.Values, k.cache.Count, k.cache.IncrementFactor}
}
