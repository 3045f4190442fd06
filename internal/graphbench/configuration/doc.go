/*
Package configuration resolves the run configuration of a graph database benchmark.

Settings arrive either as a hierarchical property tree (FromHierarchy, keys under eu.socialsensor)
or as a flat map of strings handed over by an external orchestrator (FromSettings). Both paths read
their settings through the Source interface and then apply the same rules:

  - the requested benchmarks and databases must be known; databases are kept unique and in registry order
  - the number of scenarios is 1, or the factorial of the number of databases when benchmarks are permuted
  - when CLUSTERING is requested the clustering settings are required together, and the cache sizes
    must be given either as an explicit list or as a (count, increment factor) pair, never both
  - the dataset must be a readable file that the DatasetLoader accepts
  - the results directory is created if needed and must be writable

The first failure aborts construction. Errors are the types in package benchmarkerrors and name
the settings key at fault, e.g.

	cfg, err := configuration.FromHierarchy(v)
	if err != nil {
	    log.Errorf("%s: %s", benchmarkerrors.KindFromError(err), err)
	    os.Exit(1)
	}

# Hierarchical keys

	eu.socialsensor.dataset                    required
	eu.socialsensor.database-storage-directory required
	eu.socialsensor.permute-benchmarks         required
	eu.socialsensor.benchmarks                 required, list or comma separated
	eu.socialsensor.databases                  required, list or comma separated
	eu.socialsensor.results-path               default "results"
	eu.socialsensor.shortest-path-random-nodes default 100
	eu.socialsensor.metrics.csv.interval       default 1000 (ms)
	eu.socialsensor.metrics.csv.directory      enables CSV metrics
	eu.socialsensor.metrics.graphite.hostname  enables remote metrics
	eu.socialsensor.metrics.graphite.interval  default 1000 (ms)
	eu.socialsensor.orient.lightweight-edges
	eu.socialsensor.sparksee.license-key
	eu.socialsensor.titan.buffer-size
	eu.socialsensor.titan.block-size
	eu.socialsensor.titan.page-size
	eu.socialsensor.nodes-count                CLUSTERING only
	eu.socialsensor.randomize-clustering       CLUSTERING only
	eu.socialsensor.actual-communities         CLUSTERING only
	eu.socialsensor.cache-values               CLUSTERING only, or:
	eu.socialsensor.cache-values-count
	eu.socialsensor.cache-increment-factor

Relative paths are resolved against the working directory (see WithWorkingDirectory).
*/
package configuration
