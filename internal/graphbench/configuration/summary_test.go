package configuration

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestWriteSummary(t *testing.T) {
	f := newFixture(t)
	settings := withClustering(hierarchicalSettings())
	delete(settings, "cache-values")
	settings["cache-values-count"] = 2
	settings["cache-increment-factor"] = 2.5
	settings["databases"] = []interface{}{"orient", "neo4j"}
	settings["orient.lightweight-edges"] = true

	cfg, err := FromHierarchy(hierarchy(settings), f.options()...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, cfg))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, f.path("data/graph.txt"), got["dataset"])
	assert.Equal(t, []interface{}{"CLUSTERING"}, got["benchmarks"])
	assert.Equal(t, []interface{}{"orient", "neo4j"}, got["databases"])
	assert.Equal(t, 1, got["scenarios"])
	assert.Contains(t, got, "orient")
	assert.NotContains(t, got, "sparksee")
	assert.NotContains(t, got, "titan")

	metrics := got["metrics"].(map[interface{}]interface{})
	assert.Equal(t, false, metrics["csvEnabled"])
	assert.Equal(t, "1s", metrics["csvInterval"])
	assert.NotContains(t, metrics, "csvDirectory")

	clustering := got["clustering"].(map[interface{}]interface{})
	assert.Equal(t, 2, clustering["cacheValuesCount"])
	assert.Equal(t, 2.5, clustering["cacheIncrementFactor"])
	assert.Equal(t, []interface{}{1000, 2500}, clustering["cacheValues"])
}

func TestWriteSummary_NoClustering(t *testing.T) {
	f := newFixture(t)
	cfg, err := FromHierarchy(hierarchy(hierarchicalSettings()), f.options()...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, cfg))
	assert.NotContains(t, buf.String(), "clustering")
	assert.Contains(t, buf.String(), "randomNodes: 100")
}

func TestFromHierarchy_WarnsAboutUnusedBackendSettings(t *testing.T) {
	f := newFixture(t)
	logger, hook := test.NewNullLogger()
	settings := hierarchicalSettings()
	settings["sparksee.license-key"] = "KEY"
	settings["titan.page-size"] = 100

	_, err := FromHierarchy(hierarchy(settings), f.options(WithLogger(logger))...)
	require.NoError(t, err)

	var warned []interface{}
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = append(warned, entry.Data["key"])
		}
	}
	assert.ElementsMatch(t, []interface{}{"eu.socialsensor.sparksee.license-key", "eu.socialsensor.titan.page-size"}, warned)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}

func TestFromSettings_DoesNotWarnAboutRequiredTitanSettings(t *testing.T) {
	f := newFixture(t)
	logger, hook := test.NewNullLogger()
	settings := flatSettings(f)
	settings["system"] = "neo4j"

	_, err := FromSettings(settings, f.options(WithLogger(logger))...)
	require.NoError(t, err)
	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, entry.Level, entry.Message)
	}
}
