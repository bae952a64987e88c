package commands

import (
	"fmt"

	ac "github.com/cordialsys/addrconv"
	evmaddress "github.com/cordialsys/addrconv/chain/evm/address"
	"github.com/cordialsys/addrconv/chain/tron"
	"github.com/cordialsys/addrconv/pkg/hex"
	"github.com/spf13/cobra"
)

type derived struct {
	PublicKey hex.Hex    `json:"public_key" yaml:"public_key"`
	Evm       ac.Address `json:"evm" yaml:"evm"`
	Tron      ac.Address `json:"tron" yaml:"tron"`
}

func CmdDerive() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive <public-key-hex>",
		Short: "Derive the EVM and TRON addresses of a secp256k1 public key.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			publicKey, err := hex.DecodeString(evmaddress.TrimPrefixes(args[0]))
			if err != nil {
				return fmt.Errorf("public key is not hex: %v", err)
			}
			evm, err := evmaddress.NewAddressBuilder().GetAddressFromPublicKey(publicKey)
			if err != nil {
				return fmt.Errorf("could not derive evm address: %v", err)
			}
			tronAddress, err := tron.NewAddressBuilder().GetAddressFromPublicKey(publicKey)
			if err != nil {
				return fmt.Errorf("could not derive tron address: %v", err)
			}
			text := fmt.Sprintf("evm:  %s\ntron: %s", evm, tronAddress)
			return printResult(cmd, text, derived{
				PublicKey: publicKey,
				Evm:       evm,
				Tron:      tronAddress,
			})
		},
	}
	return cmd
}
