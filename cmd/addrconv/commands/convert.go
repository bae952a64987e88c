package commands

import (
	ac "github.com/cordialsys/addrconv"
	"github.com/cordialsys/addrconv/cmd/addrconv/setup"
	"github.com/cordialsys/addrconv/convert"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type conversion struct {
	Input  string          `json:"input" yaml:"input"`
	Output string          `json:"output" yaml:"output"`
	Format ac.OutputFormat `json:"format,omitempty" yaml:"format,omitempty"`
}

func CmdToTron() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "to-tron <evm-address>",
		Short: "Convert an EVM address to a TRON address.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			converter := setup.UnwrapConverter(cmd.Context())

			outputFormat := cfg.OutputFormat()
			if format != "" {
				outputFormat = ac.OutputFormat(format)
			}
			logrus.WithFields(logrus.Fields{
				"address": args[0],
				"format":  outputFormat,
			}).Debug("converting to tron")

			tronAddress, err := converter.EvmToTron(args[0], outputFormat)
			if err != nil {
				return err
			}
			return printResult(cmd, tronAddress, conversion{
				Input:  args[0],
				Output: tronAddress,
				Format: outputFormat,
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "TRON format, base58 or hex (default from config, base58)")
	return cmd
}

func CmdToEvm() *cobra.Command {
	var noPrefix bool
	var checksum bool
	cmd := &cobra.Command{
		Use:   "to-evm <tron-address>",
		Short: "Convert a TRON base58 or hex address to an EVM address.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			converter := setup.UnwrapConverter(cmd.Context())

			if checksum && !cfg.Checksum {
				var err error
				converter, err = convert.NewConverter(convert.OptionChecksum(true))
				if err != nil {
					return err
				}
			}
			addPrefix := !(noPrefix || cfg.NoPrefix)
			logrus.WithFields(logrus.Fields{
				"address":    args[0],
				"add_prefix": addPrefix,
			}).Debug("converting to evm")

			evm, err := converter.TronToEvm(args[0], addPrefix)
			if err != nil {
				return err
			}
			return printResult(cmd, evm, conversion{
				Input:  args[0],
				Output: evm,
			})
		},
	}
	cmd.Flags().BoolVar(&noPrefix, "no-prefix", false, "Omit the 0x prefix")
	cmd.Flags().BoolVar(&checksum, "checksum", false, "Output the EIP-55 mixed case address")
	return cmd
}
