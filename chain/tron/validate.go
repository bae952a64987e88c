package tron

import (
	"fmt"
	"strings"

	ac "github.com/cordialsys/addrconv"
	converrors "github.com/cordialsys/addrconv/errors"
	"github.com/cordialsys/addrconv/normalize"
)

// IsValidHex reports whether the address is 42 hex characters starting with "41",
// after lowercasing, dropping "0x" occurrences and trimming.
func IsValidHex(address string) bool {
	norm := normalize.Hex(address)
	if !strings.HasPrefix(norm, ac.TronHexPrefix) {
		return false
	}
	if len(norm) != ac.TronHexLength {
		return false
	}
	return normalize.IsHex(norm)
}

// IsValidBase58 reports whether the address is a Base58Check string starting with "T"
// that decodes to 21 bytes with the 0x41 version byte.
func (c *Codec) IsValidBase58(address string) bool {
	if !strings.HasPrefix(address, ac.TronBase58Prefix) {
		return false
	}
	version, payload, err := c.base58.Decode(address)
	if err != nil {
		return false
	}
	return 1+len(payload) == ac.TronPayloadLength && version == ac.TronVersionByte
}

func IsValidBase58(address string) bool {
	return defaultCodec.IsValidBase58(address)
}

// ValidateAddress performs the same checks as IsValidBase58/IsValidHex, explaining the failure.
// Addresses starting with "T" are checked as base58, anything else as hex.
func (c *Codec) ValidateAddress(address ac.Address) error {
	addrStr := string(address)
	if normalize.IsBlank(addrStr) {
		return converrors.InvalidAddressf("empty address")
	}
	if strings.HasPrefix(addrStr, ac.TronBase58Prefix) {
		version, payload, err := c.base58.Decode(addrStr)
		if err != nil {
			return &converrors.Error{
				Status:  converrors.InvalidAddress,
				Message: fmt.Sprintf("invalid tron address %s: invalid base58check encoding", address),
				Cause:   err,
			}
		}
		if 1+len(payload) != ac.TronPayloadLength {
			return converrors.InvalidAddressf("invalid tron address %s: decoded address must be %d bytes (got %d)", address, ac.TronPayloadLength, 1+len(payload))
		}
		if version != ac.TronVersionByte {
			return converrors.InvalidAddressf("invalid tron address %s: version byte must be 0x%02x (got 0x%02x)", address, ac.TronVersionByte, version)
		}
		return nil
	}

	norm := normalize.Hex(addrStr)
	if !strings.HasPrefix(norm, ac.TronHexPrefix) {
		return converrors.InvalidAddressf("invalid tron address %s: hex address must start with %s", address, ac.TronHexPrefix)
	}
	if len(norm) != ac.TronHexLength {
		return converrors.InvalidAddressf("invalid tron address %s: hex address must be %d characters (got %d)", address, ac.TronHexLength, len(norm))
	}
	if !normalize.IsHex(norm) {
		return converrors.InvalidAddressf("invalid tron address %s: invalid hex characters", address)
	}
	return nil
}

func ValidateAddress(address ac.Address) error {
	return defaultCodec.ValidateAddress(address)
}
