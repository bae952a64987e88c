package commands

import (
	"fmt"
	"io"

	ac "github.com/cordialsys/addrconv"
	"github.com/cordialsys/addrconv/cmd/addrconv/setup"
	"github.com/cordialsys/addrconv/convert"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var DemoAddresses = []string{
	"0x123456789abcdef123456789abcdef123456789a",
	"123456789ABCDEF123456789ABCDEF123456789A",
	"TJCnKsPa7y5okkXvQAidZBzqx3QyQ6sxMW",
	"4154fdaf1515acfd32744cc33935817ff4d383e31f",
	"0x4154fdaf1515acfd32744cc33935817ff4d383e31f",
	"invalid_address",
	"",
}

func CmdDemo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run detection and conversions over a fixed set of sample addresses.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter := setup.UnwrapConverter(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Testing address type detection and conversions:")
			for _, address := range DemoAddresses {
				if err := demoAddress(out, converter, address); err != nil {
					logrus.WithError(err).WithField("address", address).Warn("conversion failed")
					fmt.Fprintf(out, "Error: %v\n", err)
				}
			}
			return nil
		},
	}
	return cmd
}

func demoAddress(out io.Writer, converter *convert.Converter, address string) error {
	fmt.Fprintf(out, "\nTesting address: %s\n", address)
	addressType := converter.GetAddressType(address)
	fmt.Fprintf(out, "Address type: %s\n", typeName(addressType))

	switch {
	case addressType == ac.AddressTypeEvm:
		tronBase58, err := converter.EvmToTron(address, ac.FormatBase58)
		if err != nil {
			return err
		}
		tronHex, err := converter.EvmToTron(address, ac.FormatHex)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "EVM -> TRON Base58: %s\n", tronBase58)
		fmt.Fprintf(out, "EVM -> TRON Hex: %s\n", tronHex)

		back, err := converter.TronToEvm(tronBase58, true)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "TRON -> EVM: %s\n", back)

	case addressType.IsTron():
		evm, err := converter.TronToEvm(address, true)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "TRON -> EVM: %s\n", evm)

		back, err := converter.EvmToTron(evm, ac.FormatBase58)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "EVM -> TRON: %s\n", back)
	}
	return nil
}
