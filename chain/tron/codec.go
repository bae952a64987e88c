package tron

import (
	"encoding/hex"
	"strings"

	ac "github.com/cordialsys/addrconv"
	converrors "github.com/cordialsys/addrconv/errors"
	"github.com/cordialsys/addrconv/normalize"
)

// Codec maps payloads to and from the two TRON renderings.
type Codec struct {
	base58 Base58Codec
}

// NewCodec uses DefaultCodec when base58 is nil.
func NewCodec(base58 Base58Codec) *Codec {
	if base58 == nil {
		base58 = DefaultCodec
	}
	return &Codec{base58: base58}
}

var defaultCodec = NewCodec(DefaultCodec)

// EncodeHex returns the 42 character lowercase "41..." rendering.
func EncodeHex(payload ac.Payload) string {
	return ac.TronHexPrefix + payload.Hex()
}

// DecodeHex returns the payload of a TRON hex address.
func DecodeHex(address string) (ac.Payload, error) {
	if !IsValidHex(address) {
		return ac.Payload{}, converrors.InvalidAddressf("invalid TRON hex address")
	}
	var raw [ac.TronPayloadLength]byte
	if _, err := hex.Decode(raw[:], []byte(normalize.Hex(address))); err != nil {
		return ac.Payload{}, converrors.ConversionFailedf(err, "failed to decode TRON hex address")
	}
	return ac.PayloadFromBytes(raw[1:])
}

func (c *Codec) EncodeBase58(payload ac.Payload) (string, error) {
	encoded, err := c.base58.Encode(ac.TronVersionByte, payload.Bytes())
	if err != nil {
		return "", converrors.ConversionFailedf(err, "failed to convert to Base58Check format")
	}
	return encoded, nil
}

func (c *Codec) DecodeBase58(address string) (ac.Payload, error) {
	if !c.IsValidBase58(address) {
		return ac.Payload{}, converrors.InvalidAddressf("invalid TRON Base58Check address")
	}
	version, decoded, err := c.base58.Decode(address)
	if err != nil {
		return ac.Payload{}, converrors.ConversionFailedf(err, "failed to decode Base58Check address")
	}
	if version != ac.TronVersionByte {
		return ac.Payload{}, converrors.ConversionFailedf(nil, "failed to decode Base58Check address: unexpected version byte 0x%02x", version)
	}
	payload, err := ac.PayloadFromBytes(decoded)
	if err != nil {
		return ac.Payload{}, converrors.ConversionFailedf(err, "failed to decode Base58Check address")
	}
	return payload, nil
}

// Decode dispatches on the leading character: "T" is base58, anything else is hex.
func (c *Codec) Decode(address string) (ac.Payload, error) {
	if normalize.IsBlank(address) {
		return ac.Payload{}, converrors.InvalidAddressf("empty address")
	}
	if strings.HasPrefix(address, ac.TronBase58Prefix) {
		return c.DecodeBase58(address)
	}
	return DecodeHex(address)
}

func EncodeBase58(payload ac.Payload) (string, error) {
	return defaultCodec.EncodeBase58(payload)
}

func DecodeBase58(address string) (ac.Payload, error) {
	return defaultCodec.DecodeBase58(address)
}

func Decode(address string) (ac.Payload, error) {
	return defaultCodec.Decode(address)
}
