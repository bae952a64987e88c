package convert

import (
	ac "github.com/cordialsys/addrconv"
	evmaddress "github.com/cordialsys/addrconv/chain/evm/address"
	"github.com/cordialsys/addrconv/chain/tron"
	"github.com/cordialsys/addrconv/pkg/hex"
)

// Inspection renders one account in every supported format.
type Inspection struct {
	Input       string         `json:"input" yaml:"input"`
	Type        ac.AddressType `json:"type" yaml:"type"`
	Payload     hex.Hex        `json:"payload" yaml:"payload"`
	Evm         string         `json:"evm" yaml:"evm"`
	EvmChecksum string         `json:"evm_checksum" yaml:"evm_checksum"`
	TronHex     string         `json:"tron_hex" yaml:"tron_hex"`
	TronBase58  string         `json:"tron_base58" yaml:"tron_base58"`
}

func (c *Converter) Inspect(address string) (*Inspection, error) {
	payload, addressType, err := c.ToPayload(address)
	if err != nil {
		return nil, err
	}
	evm := evmaddress.Encode(payload, true)
	checksum, err := evmaddress.ToChecksum(evm)
	if err != nil {
		return nil, err
	}
	base58, err := c.tron.EncodeBase58(payload)
	if err != nil {
		return nil, err
	}
	return &Inspection{
		Input:       address,
		Type:        addressType,
		Payload:     hex.FromPayload(payload),
		Evm:         evm,
		EvmChecksum: checksum,
		TronHex:     tron.EncodeHex(payload),
		TronBase58:  base58,
	}, nil
}

func Inspect(address string) (*Inspection, error) {
	return defaultConverter.Inspect(address)
}
