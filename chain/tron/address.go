package tron

import (
	ac "github.com/cordialsys/addrconv"
	evmaddress "github.com/cordialsys/addrconv/chain/evm/address"
	"github.com/fbsobreira/gotron-sdk/pkg/address"
)

// AddressBuilder for TRON
type AddressBuilder struct {
}

var _ ac.AddressBuilder = AddressBuilder{}

// NewAddressBuilder creates a new TRON AddressBuilder
func NewAddressBuilder() AddressBuilder {
	return AddressBuilder{}
}

// GetAddressFromPublicKey returns a base58 Address given a public key
func (ab AddressBuilder) GetAddressFromPublicKey(publicKeyBytes []byte) (ac.Address, error) {
	publicKey, err := evmaddress.ParsePublicKey(publicKeyBytes)
	if err != nil {
		return ac.Address(""), err
	}

	address := address.PubkeyToAddress(*publicKey).String()
	return ac.Address(address), nil
}
