package configuration

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/armadaproject/graphbench/internal/graphbench/cachesize"
	"github.com/armadaproject/graphbench/internal/graphbench/dataset"
)

// DatasetLoader confirms a dataset can be loaded. *dataset.Factory satisfies it.
type DatasetLoader interface {
	Load(path string) error
}

// Option customises how a Configuration is built.
type Option func(*options)

type options struct {
	workingDirectory string
	loader           DatasetLoader
	logger           logrus.FieldLogger
	cacheBase        int
}

// WithWorkingDirectory sets the directory relative paths are resolved against. Defaults to the process working directory.
func WithWorkingDirectory(dir string) Option {
	return func(o *options) {
		o.workingDirectory = dir
	}
}

// WithDatasetLoader replaces the shared dataset cache.
func WithDatasetLoader(loader DatasetLoader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCacheBase sets the first value of generated cache size sequences.
func WithCacheBase(base int) Option {
	return func(o *options) {
		o.cacheBase = base
	}
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		loader:    dataset.Shared(),
		logger:    logrus.StandardLogger(),
		cacheBase: cachesize.DefaultBase,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.workingDirectory == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "determining working directory")
		}
		o.workingDirectory = wd
	}
	return o, nil
}
