package setup

import (
	"fmt"
	"os"

	"github.com/cordialsys/addrconv/config"
	"github.com/cordialsys/addrconv/config/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Args struct {
	ConfigPath     string
	VerbosityCount int
	Output         string
}

var OutputFormats = []string{"text", "json", "yaml"}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", os.Getenv(constants.ConfigEnv), fmt.Sprintf("Path to a configuration file (may set %s).", constants.ConfigEnv))
	cmd.PersistentFlags().CountP("verbose", "v", "Set verbosity.")
	cmd.PersistentFlags().StringP("output", "o", "text", fmt.Sprintf("Output format, one of %v.", OutputFormats))
}

func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	configPath, _ := cmd.Flags().GetString("config")
	count, _ := cmd.Flags().GetCount("verbose")
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	valid := false
	for _, option := range OutputFormats {
		if option == output {
			valid = true
		}
	}
	if !valid {
		return nil, fmt.Errorf("invalid --output '%s', options: %v", output, OutputFormats)
	}
	return &Args{
		ConfigPath:     configPath,
		VerbosityCount: count,
		Output:         output,
	}, nil
}

// ConfigureLogger applies the config file settings, -v flags take precedence over the level.
func ConfigureLogger(args *Args, cfg *config.Config) {
	config.ConfigureLogger(cfg.Log)
	if args.VerbosityCount == 1 {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if args.VerbosityCount == 2 {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if args.VerbosityCount >= 3 {
		logrus.SetLevel(logrus.TraceLevel)
	}
}
