package configuration

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
	"github.com/armadaproject/graphbench/internal/common/config"
	"github.com/armadaproject/graphbench/internal/graphbench/backend"
	"github.com/armadaproject/graphbench/internal/graphbench/benchmark"
	"github.com/armadaproject/graphbench/internal/graphbench/cachesize"
	"github.com/armadaproject/graphbench/internal/graphbench/fileutil"
	"github.com/armadaproject/graphbench/internal/graphbench/permutation"
)

// draft holds what one construction path read from its source, before the shared rules are applied.
// Paths are as given; they are resolved against the working directory by build.
type draft struct {
	keys             keySet
	dataset          string
	storageDirectory string
	resultsPath      string
	permute          bool
	benchmarks       []string
	databases        []string
	limits           limits

	lightweightEdges *bool
	licenseKey       *string
	csvDirectory     *string
	graphiteHostname *string
}

// limits are the numeric settings with range rules. The key tags are resolved to settings keys by keySet.byField.
type limits struct {
	RandomNodes      int    `key:"randomNodes" validate:"gt=0"`
	CSVInterval      *int64 `key:"csvInterval" validate:"omitempty,gt=0"`
	GraphiteInterval *int64 `key:"graphiteInterval" validate:"omitempty,gt=0"`
	BufferSize       *int   `key:"bufferSize" validate:"omitempty,gt=0"`
	BlockSize        *int   `key:"blockSize" validate:"omitempty,gt=0"`
	PageSize         *int   `key:"pageSize" validate:"omitempty,gt=0"`
	NodesCount       *int   `key:"nodesCount" validate:"omitempty,gt=0"`
}

// build applies the rules shared by both construction paths. src is scoped so that d.keys are relative to it.
func build(src Source, d *draft, o *options) (*Configuration, error) {
	keys := d.keys
	logger := o.logger

	kinds, err := benchmark.ParseAll(keys.qualify(keys.benchmarks), d.benchmarks)
	if err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		return nil, errors.WithStack(&benchmarkerrors.ErrInvalidValue{
			Field: keys.qualify(keys.benchmarks), Value: "", Message: "must list at least one benchmark",
		})
	}

	selected, err := selectBackends(keys, d.databases)
	if err != nil {
		return nil, err
	}
	scenarios, err := permutation.ScenarioCount(len(selected), d.permute)
	if err != nil {
		return nil, err
	}
	logger.WithField("backends", len(selected)).WithField("permute", d.permute).Debugf("%d benchmark scenarios", scenarios)

	var clustering *Clustering
	if benchmark.Contains(kinds, benchmark.Clustering) {
		if clustering, err = readClustering(src, keys, o); err != nil {
			return nil, err
		}
		d.limits.NodesCount = &clustering.NodesCount
	} else {
		logIgnoredClusteringKeys(src, keys, logger)
	}

	if err := validateLimits(keys, d.limits); err != nil {
		return nil, err
	}

	datasetPath, err := fileutil.ValidateReadableFile(fileutil.ResolvePath(o.workingDirectory, d.dataset), "dataset")
	if err != nil {
		return nil, err
	}
	if err := o.loader.Load(datasetPath); err != nil {
		return nil, errors.WithStack(&benchmarkerrors.ErrDatasetUnloadable{Path: datasetPath, Cause: err})
	}
	logger.WithField("dataset", datasetPath).Debug("dataset loaded")

	resultsPath := fileutil.ResolvePath(o.workingDirectory, d.resultsPath)
	if err := fileutil.EnsureWritableDirectory(resultsPath); err != nil {
		return nil, err
	}

	warnUnusedBackendSettings(keys, selected, d, logger)

	c := &Configuration{
		dataset:           datasetPath,
		benchmarkKinds:    kinds,
		selectedBackends:  selected,
		resultsPath:       resultsPath,
		storageDirectory:  fileutil.ResolvePath(o.workingDirectory, d.storageDirectory),
		permuteBenchmarks: d.permute,
		scenarios:         scenarios,
		randomNodes:       d.limits.RandomNodes,
		lightweightEdges:  d.lightweightEdges,
		licenseKey:        d.licenseKey,
		bufferSize:        d.limits.BufferSize,
		idBlockSize:       d.limits.BlockSize,
		pageSize:          d.limits.PageSize,
		csvInterval:       millis(d.limits.CSVInterval),
		csvDirectory:      d.csvDirectory,
		graphiteHostname:  d.graphiteHostname,
		graphiteInterval:  millis(d.limits.GraphiteInterval),
		clustering:        clustering,
	}
	logger.WithFields(logrus.Fields{
		"dataset":    c.dataset,
		"benchmarks": len(kinds),
		"backends":   len(selected),
		"scenarios":  scenarios,
		"results":    resultsPath,
	}).Info("Resolved benchmark configuration")
	return c, nil
}

func selectBackends(keys keySet, names []string) ([]backend.ID, error) {
	if len(names) == 0 {
		return nil, errors.WithStack(&benchmarkerrors.ErrInvalidValue{
			Field: keys.qualify(keys.databases), Value: "", Message: "must select at least one database",
		})
	}
	return backend.Select(names)
}

// readClustering reads the clustering group, which is all-or-nothing.
func readClustering(src Source, keys keySet, o *options) (*Clustering, error) {
	var missing []string
	for _, key := range []string{keys.nodesCount, keys.randomize, keys.actualCommunities} {
		if !src.Contains(key) {
			missing = append(missing, keys.qualify(key))
		}
	}
	if len(missing) > 0 {
		cause := &benchmarkerrors.ErrMissingRequiredField{Field: missing[0], Message: "required by the CLUSTERING benchmark"}
		present := presentKeys(src, keys, keys.clustering())
		if len(present) == 0 {
			return nil, errors.WithStack(cause)
		}
		return nil, errors.WithStack(&benchmarkerrors.ErrInconsistentClusteringFields{Present: present, Missing: missing, Cause: cause})
	}

	nodesCount, err := src.Int(keys.nodesCount)
	if err != nil {
		return nil, err
	}
	randomize, err := src.Bool(keys.randomize)
	if err != nil {
		return nil, err
	}
	communities, err := src.String(keys.actualCommunities)
	if err != nil {
		return nil, err
	}
	communities, err = fileutil.ValidateReadableFile(fileutil.ResolvePath(o.workingDirectory, communities), "actual communities file")
	if err != nil {
		return nil, err
	}

	spec, err := readCacheSpec(src, keys)
	if err != nil {
		return nil, err
	}
	values, err := spec.Generate(keys.qualifiedCache(), o.cacheBase)
	if err != nil {
		return nil, err
	}
	o.logger.WithField("values", len(values)).Debugf("resolved %T cache specification", spec)

	return &Clustering{
		NodesCount:        nodesCount,
		Randomize:         randomize,
		ActualCommunities: communities,
		CacheSpec:         spec,
		CacheValues:       values,
	}, nil
}

func readCacheSpec(src Source, keys keySet) (cachesize.Spec, error) {
	var explicit []int
	if src.Contains(keys.cache.Values) {
		names, err := src.StringSlice(keys.cache.Values)
		if err != nil {
			return nil, err
		}
		explicit = make([]int, 0, len(names))
		for _, name := range names {
			v, err := cast.ToIntE(name)
			if err != nil {
				return nil, errors.WithStack(&benchmarkerrors.ErrInvalidValue{Field: keys.qualify(keys.cache.Values), Value: name, Message: err.Error()})
			}
			explicit = append(explicit, v)
		}
	}
	count, err := optional(src, keys.cache.Count, src.Int)
	if err != nil {
		return nil, err
	}
	factor, err := optional(src, keys.cache.IncrementFactor, src.Float64)
	if err != nil {
		return nil, err
	}
	return cachesize.NewSpec(keys.qualifiedCache(), explicit, count, factor)
}

func logIgnoredClusteringKeys(src Source, keys keySet, logger logrus.FieldLogger) {
	if ignored := presentKeys(src, keys, keys.clustering()); len(ignored) > 0 {
		logger.WithField("keys", ignored).Debug("CLUSTERING not requested; ignoring clustering settings")
	}
}

func presentKeys(src Source, keys keySet, candidates []string) []string {
	var present []string
	for _, key := range candidates {
		if src.Contains(key) {
			present = append(present, keys.qualify(key))
		}
	}
	return present
}

func validateLimits(keys keySet, l limits) error {
	err := config.Validate(l)
	if err == nil {
		return nil
	}
	fieldErrors := config.FieldErrors(err)
	if len(fieldErrors) == 0 {
		return errors.WithStack(err)
	}
	config.LogValidationErrors(err)
	first := fieldErrors[0]
	return errors.WithStack(&benchmarkerrors.ErrInvalidValue{
		Field:   keys.byField(first.Field()),
		Value:   first.Value(),
		Message: config.Describe(first),
	})
}

// warnUnusedBackendSettings reports backend specific settings given for backends that are not selected.
func warnUnusedBackendSettings(keys keySet, selected []backend.ID, d *draft, logger logrus.FieldLogger) {
	warn := func(set bool, family backend.Family, key string) {
		if set && !backend.ContainsFamily(selected, family) {
			logger.WithField("key", keys.qualify(key)).Warnf("no %s backend selected; setting has no effect", family)
		}
	}
	warn(d.lightweightEdges != nil, backend.FamilyOrient, keys.lightweightEdges)
	warn(d.licenseKey != nil, backend.FamilySparksee, keys.licenseKey)
	if !keys.titanTuningRequired {
		warn(d.limits.BufferSize != nil, backend.FamilyTitan, keys.bufferSize)
		warn(d.limits.BlockSize != nil, backend.FamilyTitan, keys.blockSize)
		warn(d.limits.PageSize != nil, backend.FamilyTitan, keys.pageSize)
	}
}

// optional returns nil when key is absent, otherwise the converted value.
func optional[T any](src Source, key string, get func(string) (T, error)) (*T, error) {
	if !src.Contains(key) {
		return nil, nil
	}
	v, err := get(key)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// valueOr returns fallback when key is absent, otherwise the converted value.
func valueOr[T any](src Source, key string, fallback T, get func(string) (T, error)) (T, error) {
	if !src.Contains(key) {
		return fallback, nil
	}
	return get(key)
}

func millis(ms *int64) *time.Duration {
	if ms == nil {
		return nil
	}
	d := time.Duration(*ms) * time.Millisecond
	return &d
}
