// Package dataset confirms that a benchmark dataset can be loaded.
//
// Datasets are edge lists: one edge per line given as two whitespace-separated node identifiers,
// with blank lines and lines starting with '#' or '%' ignored (the SNAP and KONECT conventions).
// Loaded datasets are kept in an LRU so that a file is parsed at most once per process.
package dataset

import (
	"bufio"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// DefaultCacheSize is the number of datasets the shared Factory keeps.
const DefaultCacheSize = 16

// Dataset summarises a loaded edge list.
type Dataset struct {
	Path  string
	Nodes int
	Edges int
}

// Factory loads datasets, caching them by path.
type Factory struct {
	cache *lru.Cache
}

// NewFactory returns a new *Factory backed by a LRU of the given size.
func NewFactory(cacheSize int) *Factory {
	cache, err := lru.New(cacheSize)
	if err != nil {
		panic(errors.WithStack(err).Error())
	}
	return &Factory{cache: cache}
}

var shared = NewFactory(DefaultCacheSize)

// Shared returns the process-wide Factory.
func Shared() *Factory {
	return shared
}

// Load parses the dataset at path, discarding the result. It exists so that a *Factory can be
// used wherever only loadability matters.
func (f *Factory) Load(path string) error {
	_, err := f.Get(path)
	return err
}

// Get returns the dataset at path, parsing it on first use.
func (f *Factory) Get(path string) (*Dataset, error) {
	if cached, ok := f.cache.Get(path); ok {
		return cached.(*Dataset), nil
	}
	ds, err := parse(path)
	if err != nil {
		return nil, err
	}
	f.cache.Add(path, ds)
	return ds, nil
}

func parse(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	nodes := map[string]struct{}{}
	edges := 0
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "%") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, errors.Errorf("%s:%d: expected an edge of two node identifiers, got %q", path, line, text)
		}
		nodes[fields[0]] = struct{}{}
		nodes[fields[1]] = struct{}{}
		edges++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if edges == 0 {
		return nil, errors.Errorf("%s contains no edges", path)
	}
	return &Dataset{Path: path, Nodes: len(nodes), Edges: edges}, nil
}
