// Package backend holds the closed catalogue of graph database backends the harness can benchmark.
//
// The order of the catalogue is significant: selected backends are always kept in registry order,
// which is what makes the enumeration of benchmark orderings deterministic.
package backend

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
)

// ID is the canonical identifier of a backend. IDs compare in registry order.
type ID int

const (
	TitanBerkeleyDB ID = iota
	TitanDynamoDB
	TitanCassandra
	TitanCassandraEmbedded
	TitanHBase
	TitanPersistit
	OrientDB
	Neo4j
	Sparksee
)

// Family groups backends sharing backend-specific settings.
type Family string

const (
	FamilyTitan    Family = "titan"
	FamilyOrient   Family = "orient"
	FamilyNeo4j    Family = "neo4j"
	FamilySparksee Family = "sparksee"
)

type entry struct {
	id          ID
	name        string
	displayName string
	family      Family
}

// registry is ordered by ID.
var registry = []entry{
	{TitanBerkeleyDB, "tbdb", "Titan-BerkeleyDB", FamilyTitan},
	{TitanDynamoDB, "tddb", "Titan-DynamoDB", FamilyTitan},
	{TitanCassandra, "tc", "Titan-Cassandra", FamilyTitan},
	{TitanCassandraEmbedded, "tce", "Titan-Cassandra-Embedded", FamilyTitan},
	{TitanHBase, "thb", "Titan-HBase", FamilyTitan},
	{TitanPersistit, "tp", "Titan-Persistit", FamilyTitan},
	{OrientDB, "orient", "OrientDB", FamilyOrient},
	{Neo4j, "neo4j", "Neo4j", FamilyNeo4j},
	{Sparksee, "sparksee", "Sparksee", FamilySparksee},
}

var byName = func() map[string]ID {
	m := make(map[string]ID, len(registry))
	for _, e := range registry {
		m[e.name] = e.id
	}
	return m
}()

// Names returns the registry keys in canonical order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// All returns every registered backend in canonical order.
func All() []ID {
	ids := make([]ID, len(registry))
	for i, e := range registry {
		ids[i] = e.id
	}
	return ids
}

// Canonicalize maps a registry key to its ID. Lookups are case-sensitive.
func Canonicalize(name string) (ID, error) {
	id, ok := byName[name]
	if !ok {
		return 0, errors.WithStack(&benchmarkerrors.ErrUnsupportedBackend{Name: name, Supported: Names()})
	}
	return id, nil
}

// Select canonicalizes names into a set of unique IDs sorted in registry order.
// Fails on the first unsupported name.
func Select(names []string) ([]ID, error) {
	seen := make(map[ID]bool, len(names))
	ids := make([]ID, 0, len(names))
	for _, name := range names {
		id, err := Canonicalize(name)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// ContainsFamily reports whether any of ids belongs to family.
func ContainsFamily(ids []ID, family Family) bool {
	for _, id := range ids {
		if id.Family() == family {
			return true
		}
	}
	return false
}

func (id ID) valid() bool {
	return id >= 0 && int(id) < len(registry)
}

// Name returns the registry key of the backend, e.g. "tbdb".
func (id ID) Name() string {
	if !id.valid() {
		return ""
	}
	return registry[id].name
}

// String returns the human-readable backend name, e.g. "Titan-BerkeleyDB".
func (id ID) String() string {
	if !id.valid() {
		return "Unknown"
	}
	return registry[id].displayName
}

func (id ID) Family() Family {
	if !id.valid() {
		return ""
	}
	return registry[id].family
}
