package address

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"strings"

	ac "github.com/cordialsys/addrconv"
	converrors "github.com/cordialsys/addrconv/errors"
	"github.com/cordialsys/addrconv/normalize"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Normalize returns the 40 character lowercase hex form of an EVM address, without prefix.
// Hex characters are checked before the length, so garbage of the right length
// still reports a hex error.
func Normalize(address string) (string, error) {
	if normalize.IsBlank(address) {
		return "", converrors.InvalidAddressf("empty address")
	}
	norm := normalize.Hex(address)
	if !normalize.IsHex(norm) {
		return "", converrors.InvalidAddressf("invalid hex characters in EVM address")
	}
	if len(norm) != ac.EvmHexLength {
		return "", converrors.InvalidAddressf("invalid EVM address length: %d, expected %d", len(norm), ac.EvmHexLength)
	}
	return norm, nil
}

// Decode normalizes an EVM address and returns its payload.
func Decode(address string) (ac.Payload, error) {
	norm, err := Normalize(address)
	if err != nil {
		return ac.Payload{}, err
	}
	var payload ac.Payload
	// cannot fail, Normalize guarantees 40 hex characters
	_, _ = hex.Decode(payload[:], []byte(norm))
	return payload, nil
}

func Encode(payload ac.Payload, withPrefix bool) string {
	if withPrefix {
		return payload.String()
	}
	return payload.Hex()
}

// ToChecksum returns the EIP-55 mixed case rendering of an EVM address.
func ToChecksum(address string) (string, error) {
	payload, err := Decode(address)
	if err != nil {
		return "", err
	}
	return common.BytesToAddress(payload.Bytes()).Hex(), nil
}

// AddressBuilder for EVM
type AddressBuilder struct {
}

var _ ac.AddressBuilder = AddressBuilder{}

// NewAddressBuilder creates a new EVM AddressBuilder
func NewAddressBuilder() AddressBuilder {
	return AddressBuilder{}
}

// GetAddressFromPublicKey returns an Address given a public key
func (ab AddressBuilder) GetAddressFromPublicKey(publicKeyBytes []byte) (ac.Address, error) {
	publicKey, err := ParsePublicKey(publicKeyBytes)
	if err != nil {
		return ac.Address(""), err
	}

	address := crypto.PubkeyToAddress(*publicKey).Hex()
	// Lowercase the address is our normalized format
	return ac.Address(strings.ToLower(address)), nil
}

// ParsePublicKey accepts compressed (33 byte) or uncompressed (65 byte) secp256k1 keys.
func ParsePublicKey(publicKeyBytes []byte) (*ecdsa.PublicKey, error) {
	if len(publicKeyBytes) == 33 {
		publicKey, err := crypto.DecompressPubkey(publicKeyBytes)
		if err != nil {
			return nil, errors.New("invalid k256 public key")
		}
		return publicKey, nil
	}
	return crypto.UnmarshalPubkey(publicKeyBytes)
}

// FromHex returns a go-ethereum Address decoded from a hex string.
func FromHex(address ac.Address) (common.Address, error) {
	payload, err := Decode(string(address))
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(payload.Bytes()), nil
}

func TrimPrefixes(address string) string {
	str := strings.TrimPrefix(address, "0x")
	str = strings.TrimPrefix(str, "0X")
	return str
}

func Ensure0x(val string) string {
	if !strings.HasPrefix(val, "0x") {
		return "0x" + val
	}
	return val
}
