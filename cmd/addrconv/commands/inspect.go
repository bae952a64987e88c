package commands

import (
	"fmt"
	"strings"

	ac "github.com/cordialsys/addrconv"
	"github.com/cordialsys/addrconv/chain/tron"
	"github.com/cordialsys/addrconv/cmd/addrconv/setup"
	"github.com/cordialsys/addrconv/convert"
	"github.com/spf13/cobra"
)

type classification struct {
	Address string         `json:"address" yaml:"address"`
	Type    ac.AddressType `json:"type" yaml:"type"`
}

func typeName(addressType ac.AddressType) string {
	if addressType == ac.AddressTypeUnknown {
		return "none"
	}
	return string(addressType)
}

func CmdType() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type <address>...",
		Short: "Detect whether addresses are EVM, TRON base58 or TRON hex.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter := setup.UnwrapConverter(cmd.Context())
			results := []classification{}
			lines := []string{}
			for _, address := range args {
				addressType := converter.GetAddressType(address)
				results = append(results, classification{Address: address, Type: addressType})
				lines = append(lines, fmt.Sprintf("%s\t%s", address, typeName(addressType)))
			}
			return printResult(cmd, strings.Join(lines, "\n"), results)
		},
	}
	return cmd
}

type validation struct {
	Address    string `json:"address" yaml:"address"`
	Evm        bool   `json:"evm" yaml:"evm"`
	TronBase58 bool   `json:"tron_base58" yaml:"tron_base58"`
	TronHex    bool   `json:"tron_hex" yaml:"tron_hex"`
}

func CmdValidate() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "validate <address>",
		Short: "Check an address against every supported format.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]
			_, evmErr := convert.NormalizeEvmAddress(address)
			result := validation{
				Address:    address,
				Evm:        evmErr == nil,
				TronBase58: convert.ValidateTronBase58Address(address),
				TronHex:    convert.ValidateTronHexAddress(address),
			}
			if explain && !result.Evm && !result.TronBase58 && !result.TronHex {
				tronErr := tron.ValidateAddress(ac.Address(address))
				return fmt.Errorf("not a valid address\n  evm: %v\n  tron: %v", evmErr, tronErr)
			}
			text := fmt.Sprintf("evm: %t\ntron_base58: %t\ntron_hex: %t", result.Evm, result.TronBase58, result.TronHex)
			return printResult(cmd, text, result)
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "Fail with the reasons when no format matches")
	return cmd
}

func CmdInspect() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <address>",
		Short: "Show an address in every supported format.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter := setup.UnwrapConverter(cmd.Context())
			inspection, err := converter.Inspect(args[0])
			if err != nil {
				return err
			}
			text := strings.Join([]string{
				fmt.Sprintf("type:         %s", inspection.Type),
				fmt.Sprintf("payload:      %s", inspection.Payload),
				fmt.Sprintf("evm:          %s", inspection.Evm),
				fmt.Sprintf("evm_checksum: %s", inspection.EvmChecksum),
				fmt.Sprintf("tron_hex:     %s", inspection.TronHex),
				fmt.Sprintf("tron_base58:  %s", inspection.TronBase58),
			}, "\n")
			return printResult(cmd, text, inspection)
		},
	}
	return cmd
}
