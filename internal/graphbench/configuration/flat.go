package configuration

// FromSettings builds a Configuration from the flat settings map supplied by an external orchestrator.
//
// The orchestrator is expected to supply every value: only shortestPathRandomNodes (100), titan.hostname,
// orient.lightweightEdges and sparksee.licenseKey may be omitted. A single benchmark and a single system are
// selected. The storage and results directories are always "storage" and "results" under the working directory.
func FromSettings(settings map[string]string, opts ...Option) (*Configuration, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	src := NewFlatSource(settings)
	d, err := readFlat(src)
	if err != nil {
		return nil, err
	}
	return build(src, d, o)
}

func readFlat(src FlatSource) (*draft, error) {
	keys := flatKeys
	d := &draft{
		keys:             keys,
		storageDirectory: defaultStorageDirectory,
		resultsPath:      defaultResultsPath,
	}

	benchmarkName, err := src.String(keys.benchmarks)
	if err != nil {
		return nil, err
	}
	d.benchmarks = []string{benchmarkName}
	if d.dataset, err = src.String(keys.dataset); err != nil {
		return nil, err
	}
	if d.permute, err = src.Bool(keys.permute); err != nil {
		return nil, err
	}
	system, err := src.String(keys.databases)
	if err != nil {
		return nil, err
	}
	d.databases = []string{system}
	if d.limits.RandomNodes, err = valueOr(src, keys.randomNodes, defaultRandomNodes, src.Int); err != nil {
		return nil, err
	}

	csvInterval, err := src.Int64(keys.csvInterval)
	if err != nil {
		return nil, err
	}
	d.limits.CSVInterval = &csvInterval
	csvDirectory, err := src.String(keys.csvDirectory)
	if err != nil {
		return nil, err
	}
	d.csvDirectory = &csvDirectory
	if d.graphiteHostname, err = optional(src, keys.graphiteHostname, src.String); err != nil {
		return nil, err
	}
	graphiteInterval, err := src.Int64(keys.graphiteInterval)
	if err != nil {
		return nil, err
	}
	d.limits.GraphiteInterval = &graphiteInterval

	if d.lightweightEdges, err = optional(src, keys.lightweightEdges, src.Bool); err != nil {
		return nil, err
	}
	if d.licenseKey, err = optional(src, keys.licenseKey, src.String); err != nil {
		return nil, err
	}
	for _, tuning := range []struct {
		key  string
		dest **int
	}{
		{keys.bufferSize, &d.limits.BufferSize},
		{keys.blockSize, &d.limits.BlockSize},
		{keys.pageSize, &d.limits.PageSize},
	} {
		v, err := src.Int(tuning.key)
		if err != nil {
			return nil, err
		}
		*tuning.dest = &v
	}
	return d, nil
}
