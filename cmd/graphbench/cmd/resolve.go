package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/armadaproject/graphbench/internal/common"
	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
	"github.com/armadaproject/graphbench/internal/common/logging"
	"github.com/armadaproject/graphbench/internal/graphbench/configuration"
	"github.com/armadaproject/graphbench/internal/graphbench/metrics"
)

type resolveParams struct {
	defaultConfigDir string
	configs          []string
	settings         string
	workingDir       string
	writeSummary     bool
	metricsFile      string
}

func resolveCmd() *cobra.Command {
	p := &resolveParams{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve and validate a benchmark configuration",
		Long: `Resolve and validate a benchmark configuration, printing the result as YAML.

By default settings are read from the hierarchical configuration (keys under eu.socialsensor),
i.e. config.* in --default-config-dir with every --config file merged over it in order and
GRAPHBENCH_* environment variables applied last.

With --settings the flat key/value map handed over by an orchestrator is read instead, e.g.

	benchmark: FIND_NEIGHBOURS
	dataset: data/email-Enron.txt
	permuteBenchmark: "false"
	system: neo4j
	...
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, p)
		},
	}

	p.addFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("config", "settings")

	return cmd
}

func (p *resolveParams) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&p.defaultConfigDir, "default-config-dir", "./config/graphbench", "Directory holding the default config.* file")
	flags.StringSliceVar(&p.configs, "config", nil, "Configuration files merged over the defaults, in order")
	flags.StringVar(&p.settings, "settings", "", "YAML or JSON file of flat orchestrator settings")
	flags.StringVar(&p.workingDir, "working-dir", "", "Directory relative paths are resolved against (default: current directory)")
	flags.BoolVar(&p.writeSummary, "write-summary", false, "Also write the resolved configuration to the results directory")
	flags.StringVar(&p.metricsFile, "metrics-file", "", "Write Prometheus metrics about the resolution to this file")
}

func runResolve(cmd *cobra.Command, p *resolveParams) error {
	m := metrics.New()
	if p.metricsFile != "" {
		hook, err := logging.NewPrometheusHook(m.Registry())
		if err != nil {
			return errors.WithStack(err)
		}
		log.AddHook(hook)
	}

	cfg, err := resolve(p)
	if err != nil {
		m.RecordFailure(err)
		logging.WithStacktrace(log.StandardLogger(), err).
			WithField("kind", benchmarkerrors.KindFromError(err).String()).
			Error("invalid benchmark configuration")
		writeMetrics(m, p.metricsFile)
		return err
	}
	m.RecordConfiguration(cfg)
	defer writeMetrics(m, p.metricsFile)

	if err := configuration.WriteSummary(cmd.OutOrStdout(), cfg); err != nil {
		return err
	}
	if p.writeSummary {
		path := filepath.Join(cfg.ResultsPath(), configuration.SummaryFileName)
		if err := writeSummaryFile(path, cfg); err != nil {
			return err
		}
		log.Infof("Wrote configuration summary to %s", path)
	}
	return nil
}

func resolve(p *resolveParams) (*configuration.Configuration, error) {
	opts := []configuration.Option{configuration.WithLogger(log.StandardLogger())}
	if p.workingDir != "" {
		opts = append(opts, configuration.WithWorkingDirectory(p.workingDir))
	}

	if p.settings != "" {
		settings, err := readSettings(p.settings)
		if err != nil {
			return nil, err
		}
		return configuration.FromSettings(settings, opts...)
	}

	v, err := common.LoadConfig(p.defaultConfigDir, p.configs)
	if err != nil {
		return nil, err
	}
	return configuration.FromHierarchy(v, opts...)
}

// readSettings reads a flat YAML or JSON object, converting scalar values to strings.
func readSettings(path string) (map[string]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(contents, &raw); err != nil {
		return nil, errors.Wrapf(err, "parsing settings file %s", path)
	}
	settings := make(map[string]string, len(raw))
	for key, value := range raw {
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, errors.WithStack(&benchmarkerrors.ErrInvalidValue{Field: key, Value: value, Message: "settings values must be scalars"})
		}
		settings[key] = s
	}
	return settings, nil
}

func writeSummaryFile(path string, cfg *configuration.Configuration) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := configuration.WriteSummary(f, cfg); err != nil {
		_ = f.Close()
		return err
	}
	return errors.WithStack(f.Close())
}

func writeMetrics(m *metrics.Metrics, path string) {
	if path == "" {
		return
	}
	if err := m.WriteToTextfile(path); err != nil {
		logging.WithStacktrace(log.StandardLogger(), err).Warn("unable to write metrics")
	}
}
