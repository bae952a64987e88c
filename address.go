package addrconv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Address is an address on either chain, in any of the supported renderings
type Address string

// AddressBuilder derives an address from a secp256k1 public key
type AddressBuilder interface {
	GetAddressFromPublicKey(publicKeyBytes []byte) (Address, error)
}

// AddressType is the kind of rendering an address string was classified as.
type AddressType string

const (
	AddressTypeEvm        AddressType = "evm"
	AddressTypeTronBase58 AddressType = "tron_base58"
	AddressTypeTronHex    AddressType = "tron_hex"
	// No supported rendering matched
	AddressTypeUnknown AddressType = ""
)

var AddressTypeList = []AddressType{
	AddressTypeEvm,
	AddressTypeTronBase58,
	AddressTypeTronHex,
}

func (t AddressType) IsTron() bool {
	return t == AddressTypeTronBase58 || t == AddressTypeTronHex
}

func (t AddressType) Valid() bool {
	for _, known := range AddressTypeList {
		if t == known {
			return true
		}
	}
	return false
}

// OutputFormat selects the TRON rendering produced when converting from EVM.
type OutputFormat string

const (
	FormatBase58 OutputFormat = "base58"
	FormatHex    OutputFormat = "hex"
)

const DefaultFormat = FormatBase58

var OutputFormatList = []OutputFormat{FormatBase58, FormatHex}

func (f OutputFormat) Valid() bool {
	return f == FormatBase58 || f == FormatHex
}

// ParseOutputFormat resolves a user supplied format. The empty string selects DefaultFormat.
func ParseOutputFormat(format string) (OutputFormat, error) {
	if format == "" {
		return DefaultFormat, nil
	}
	f := OutputFormat(format)
	if !f.Valid() {
		return "", fmt.Errorf("output format must be '%s' or '%s', got '%s'", FormatBase58, FormatHex, format)
	}
	return f, nil
}

const (
	// TRON mainnet address namespace
	TronVersionByte byte = 0x41

	PayloadLength     = 20
	TronPayloadLength = PayloadLength + 1

	EvmHexLength  = PayloadLength * 2
	TronHexLength = TronPayloadLength * 2

	EvmHexPrefix     = "0x"
	TronHexPrefix    = "41"
	TronBase58Prefix = "T"
)

// Payload is the 20 byte account identifier shared by both chains.
type Payload [PayloadLength]byte

func PayloadFromBytes(bz []byte) (Payload, error) {
	var p Payload
	if len(bz) != PayloadLength {
		return p, fmt.Errorf("payload must be %d bytes (got %d)", PayloadLength, len(bz))
	}
	copy(p[:], bz)
	return p, nil
}

func (p Payload) Bytes() []byte {
	return p[:]
}

// TronBytes returns the payload prefixed with the TRON version byte.
func (p Payload) TronBytes() [TronPayloadLength]byte {
	var out [TronPayloadLength]byte
	out[0] = TronVersionByte
	copy(out[1:], p[:])
	return out
}

// Hex is the 40 character lowercase rendering without prefix.
func (p Payload) Hex() string {
	return hex.EncodeToString(p[:])
}

func (p Payload) String() string {
	return EvmHexPrefix + p.Hex()
}

func (p Payload) IsZero() bool {
	return p == Payload{}
}

func (p Payload) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Payload) UnmarshalText(data []byte) error {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(string(data))), EvmHexPrefix)
	bz, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	decoded, err := PayloadFromBytes(bz)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}
