package benchmark

import (
	"github.com/pkg/errors"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
)

// Kind is a benchmark workload the harness can run against each selected backend.
type Kind string

const (
	MassiveInsertion  Kind = "MASSIVE_INSERTION"
	SingleInsertion   Kind = "SINGLE_INSERTION"
	Deletion          Kind = "DELETION"
	FindNeighbours    Kind = "FIND_NEIGHBOURS"
	FindAdjacentNodes Kind = "FIND_ADJACENT_NODES"
	FindShortestPath  Kind = "FIND_SHORTEST_PATH"
	Clustering        Kind = "CLUSTERING"
)

var kinds = []Kind{
	MassiveInsertion,
	SingleInsertion,
	Deletion,
	FindNeighbours,
	FindAdjacentNodes,
	FindShortestPath,
	Clustering,
}

// Kinds returns every known benchmark kind.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// Parse returns the Kind whose name exactly matches name.
// field is the settings key the name was read from and is used in error messages.
func Parse(field string, name string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", errors.WithStack(&benchmarkerrors.ErrInvalidValue{
		Field:   field,
		Value:   name,
		Message: "unknown benchmark type",
	})
}

// ParseAll parses every name, preserving order and duplicates.
func ParseAll(field string, names []string) ([]Kind, error) {
	result := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := Parse(field, name)
		if err != nil {
			return nil, err
		}
		result = append(result, k)
	}
	return result, nil
}

func Contains(list []Kind, k Kind) bool {
	for _, elem := range list {
		if elem == k {
			return true
		}
	}
	return false
}
