package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
)

func TestCanonicalize(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    ID
		wantErr bool
	}{
		"titan berkeley": {name: "tbdb", want: TitanBerkeleyDB},
		"orient":         {name: "orient", want: OrientDB},
		"neo4j":          {name: "neo4j", want: Neo4j},
		"sparksee":       {name: "sparksee", want: Sparksee},
		"unknown":        {name: "nonexistent-db", wantErr: true},
		"case sensitive": {name: "Neo4j", wantErr: true},
		"display name":   {name: "Titan-BerkeleyDB", wantErr: true},
		"empty":          {name: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Canonicalize(tc.name)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, benchmarkerrors.UnsupportedBackend, benchmarkerrors.KindFromError(err))
				assert.Contains(t, err.Error(), tc.name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelect_UniqueAndOrdered(t *testing.T) {
	got, err := Select([]string{"sparksee", "neo4j", "tbdb", "neo4j", "orient"})
	require.NoError(t, err)
	assert.Equal(t, []ID{TitanBerkeleyDB, OrientDB, Neo4j, Sparksee}, got)
}

func TestSelect_Empty(t *testing.T) {
	got, err := Select(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelect_Unsupported(t *testing.T) {
	_, err := Select([]string{"neo4j", "nonexistent-db"})
	assert.Equal(t, benchmarkerrors.UnsupportedBackend, benchmarkerrors.KindFromError(err))
}

func TestRegistryOrder(t *testing.T) {
	assert.Equal(t, []string{"tbdb", "tddb", "tc", "tce", "thb", "tp", "orient", "neo4j", "sparksee"}, Names())
	for i, id := range All() {
		assert.Equal(t, ID(i), id)
		assert.Equal(t, Names()[i], id.Name())
	}
}

func TestIDAccessors(t *testing.T) {
	assert.Equal(t, "Titan-Cassandra-Embedded", TitanCassandraEmbedded.String())
	assert.Equal(t, FamilyTitan, TitanHBase.Family())
	assert.Equal(t, FamilySparksee, Sparksee.Family())
	assert.Equal(t, "Unknown", ID(42).String())
	assert.Equal(t, "", ID(-1).Name())
}

func TestContainsFamily(t *testing.T) {
	assert.True(t, ContainsFamily([]ID{Neo4j, TitanPersistit}, FamilyTitan))
	assert.False(t, ContainsFamily([]ID{Neo4j}, FamilyOrient))
	assert.False(t, ContainsFamily(nil, FamilyNeo4j))
}
