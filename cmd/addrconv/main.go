package main

import (
	"os"

	"github.com/cordialsys/addrconv/cmd/addrconv/commands"
	"github.com/cordialsys/addrconv/cmd/addrconv/setup"
	"github.com/cordialsys/addrconv/config"
	"github.com/cordialsys/addrconv/convert"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdAddrconv() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "addrconv",
		Short:        "Convert and validate EVM and TRON addresses",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(args.ConfigPath)
			if err != nil {
				return err
			}
			setup.ConfigureLogger(args, cfg)

			converter, err := convert.NewConverter(append(
				cfg.ConverterOptions(),
				convert.OptionLogger(logrus.WithField("component", "converter")),
			)...)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"default_format": cfg.OutputFormat(),
				"checksum":       cfg.Checksum,
				"output":         args.Output,
			}).Debug("config")

			cmd.SetContext(setup.CreateContext(args, cfg, converter))
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(commands.CmdToTron())
	cmd.AddCommand(commands.CmdToEvm())
	cmd.AddCommand(commands.CmdType())
	cmd.AddCommand(commands.CmdValidate())
	cmd.AddCommand(commands.CmdInspect())
	cmd.AddCommand(commands.CmdDerive())
	cmd.AddCommand(commands.CmdDemo())

	return cmd
}

func main() {
	rootCmd := CmdAddrconv()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
