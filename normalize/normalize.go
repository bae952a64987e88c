package normalize

import (
	"strings"

	ac "github.com/cordialsys/addrconv"
)

// Hex normalizes loosely formatted hex text.
// Order matters: lowercase first so that "0X" is also removed, then every "0x"
// occurrence (not only a leading one) is dropped, then surrounding whitespace is trimmed.
func Hex(address string) string {
	address = strings.ToLower(address)
	address = strings.ReplaceAll(address, ac.EvmHexPrefix, "")
	return strings.TrimSpace(address)
}

// IsHex reports whether s is non-empty and only contains [0-9a-fA-F].
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsBlank is true for the empty string or whitespace-only input.
func IsBlank(address string) bool {
	return strings.TrimSpace(address) == ""
}

// Normalize returns the canonical display form of an address of a known kind.
// It does not validate; use the chain packages for that.
func Normalize(address string, addressType ac.AddressType) string {
	if address == "" {
		return ""
	}
	switch addressType {
	case ac.AddressTypeEvm:
		return ac.EvmHexPrefix + Hex(address)
	case ac.AddressTypeTronHex:
		return Hex(address)
	case ac.AddressTypeTronBase58:
		// base58 is case sensitive
		return strings.TrimSpace(address)
	default:
		return strings.TrimSpace(address)
	}
}

func AddressEqual(address1 string, address2 string, addressType ac.AddressType) bool {
	return Normalize(address1, addressType) == Normalize(address2, addressType)
}
