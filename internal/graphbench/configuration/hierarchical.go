package configuration

import (
	"github.com/spf13/viper"
)

// FromHierarchy builds a Configuration from the keys under RootNamespace in v.
//
// Most settings are optional: the results path defaults to "results", shortest path random nodes to 100,
// and both metrics intervals to 1000ms. Metrics reporters and backend specific settings are absent unless set.
// The dataset, storage directory, permute flag, benchmarks and databases are required.
func FromHierarchy(v *viper.Viper, opts ...Option) (*Configuration, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	root := NewHierarchicalSource(v).Sub(RootNamespace)
	d, err := readHierarchy(root)
	if err != nil {
		return nil, err
	}
	return build(root, d, o)
}

func readHierarchy(src HierarchicalSource) (*draft, error) {
	keys := hierarchicalKeys
	d := &draft{keys: keys}
	var err error

	if d.storageDirectory, err = src.String(keys.storageDirectory); err != nil {
		return nil, err
	}
	if d.dataset, err = src.String(keys.dataset); err != nil {
		return nil, err
	}
	if d.permute, err = src.Bool(keys.permute); err != nil {
		return nil, err
	}
	if d.benchmarks, err = src.StringSlice(keys.benchmarks); err != nil {
		return nil, err
	}
	if d.databases, err = src.StringSlice(keys.databases); err != nil {
		return nil, err
	}
	if d.resultsPath, err = valueOr(src, keys.resultsPath, defaultResultsPath, src.String); err != nil {
		return nil, err
	}
	if d.limits.RandomNodes, err = valueOr(src, keys.randomNodes, defaultRandomNodes, src.Int); err != nil {
		return nil, err
	}

	metrics := src.Sub("metrics")
	csv := metrics.Sub("csv")
	if d.limits.CSVInterval, err = intervalOrDefault(csv, "interval"); err != nil {
		return nil, err
	}
	if d.csvDirectory, err = optional(csv, "directory", csv.String); err != nil {
		return nil, err
	}
	graphite := metrics.Sub("graphite")
	if d.graphiteHostname, err = optional(graphite, "hostname", graphite.String); err != nil {
		return nil, err
	}
	if d.limits.GraphiteInterval, err = intervalOrDefault(graphite, "interval"); err != nil {
		return nil, err
	}

	if d.lightweightEdges, err = optional(src, keys.lightweightEdges, src.Bool); err != nil {
		return nil, err
	}
	if d.licenseKey, err = optional(src, keys.licenseKey, src.String); err != nil {
		return nil, err
	}
	if d.limits.BufferSize, err = optional(src, keys.bufferSize, src.Int); err != nil {
		return nil, err
	}
	if d.limits.BlockSize, err = optional(src, keys.blockSize, src.Int); err != nil {
		return nil, err
	}
	if d.limits.PageSize, err = optional(src, keys.pageSize, src.Int); err != nil {
		return nil, err
	}
	return d, nil
}

func intervalOrDefault(src HierarchicalSource, key string) (*int64, error) {
	interval, err := valueOr(src, key, int64(defaultIntervalMillis), src.Int64)
	if err != nil {
		return nil, err
	}
	return &interval, nil
}
