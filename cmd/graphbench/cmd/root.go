package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/armadaproject/graphbench/internal/common"
)

const (
	logFormatFlag = "log-format"
	logLevelFlag  = "log-level"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "graphbench",
		Short:         "graphbench resolves and validates graph database benchmark runs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return common.ConfigureLogging(v.GetString(logFormatFlag), v.GetString(logLevelFlag))
		},
	}

	cmd.PersistentFlags().String(logFormatFlag, "text", "Log format: text, json or plain")
	cmd.PersistentFlags().String(logLevelFlag, "info", "Log level: debug, info, warn or error")
	_ = v.BindPFlag(logFormatFlag, cmd.PersistentFlags().Lookup(logFormatFlag))
	_ = v.BindPFlag(logLevelFlag, cmd.PersistentFlags().Lookup(logLevelFlag))
	v.SetEnvPrefix(common.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(
		resolveCmd(),
		backendsCmd(),
	)

	return cmd
}
