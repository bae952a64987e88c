package convert

import (
	"strings"

	ac "github.com/cordialsys/addrconv"
	evmaddress "github.com/cordialsys/addrconv/chain/evm/address"
	"github.com/cordialsys/addrconv/chain/tron"
	converrors "github.com/cordialsys/addrconv/errors"
	"github.com/cordialsys/addrconv/normalize"
	"github.com/sirupsen/logrus"
)

// Converter maps addresses between the EVM and TRON renderings.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	tron     *tron.Codec
	checksum bool
	log      *logrus.Entry
}

func NewConverter(opts ...Option) (*Converter, error) {
	options, err := newConverterOptions(opts...)
	if err != nil {
		return nil, err
	}
	checksum, _ := get(options.checksum)
	logger := options.logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Converter{
		tron:     tron.NewCodec(options.codec),
		checksum: checksum,
		log:      logger,
	}, nil
}

// EvmToTron converts an EVM address to TRON. The format is checked before the address.
func (c *Converter) EvmToTron(address string, format ac.OutputFormat) (string, error) {
	format, err := ac.ParseOutputFormat(string(format))
	if err != nil {
		return "", converrors.InvalidArgumentf("output format must be '%s' or '%s'", ac.FormatBase58, ac.FormatHex)
	}

	payload, err := evmaddress.Decode(address)
	if err != nil {
		return "", err
	}

	if format == ac.FormatHex {
		return tron.EncodeHex(payload), nil
	}
	encoded, err := c.tron.EncodeBase58(payload)
	if err != nil {
		c.log.WithError(err).WithField("address", address).Debug("base58check encoding failed")
		return "", err
	}
	return encoded, nil
}

// TronToEvm converts a TRON address to a lowercase EVM address, with a "0x" prefix iff addPrefix.
// Input starting with "T" is treated as base58, anything else as hex.
func (c *Converter) TronToEvm(address string, addPrefix bool) (string, error) {
	payload, err := c.tron.Decode(address)
	if err != nil {
		if converrors.Is(err, converrors.ConversionFailed) {
			c.log.WithError(err).WithField("address", address).Debug("base58check decoding failed")
		}
		return "", err
	}

	evm := evmaddress.Encode(payload, true)
	if c.checksum {
		evm, err = evmaddress.ToChecksum(evm)
		if err != nil {
			return "", err
		}
	}
	if !addPrefix {
		evm = evmaddress.TrimPrefixes(evm)
	}
	return evm, nil
}

// GetAddressType classifies the address. The first matching check wins:
// TRON hex, then TRON base58, then EVM. It never fails; no match is AddressTypeUnknown.
func (c *Converter) GetAddressType(address string) ac.AddressType {
	if normalize.IsBlank(address) {
		return ac.AddressTypeUnknown
	}
	trimmed := strings.TrimSpace(address)
	norm := normalize.Hex(address)
	log := c.log.WithField("address", address)

	if strings.HasPrefix(norm, ac.TronHexPrefix) && len(norm) == ac.TronHexLength && tron.IsValidHex(address) {
		log.Trace("classified as tron hex")
		return ac.AddressTypeTronHex
	}
	if c.tron.IsValidBase58(trimmed) {
		log.Trace("classified as tron base58")
		return ac.AddressTypeTronBase58
	}
	if len(norm) == ac.EvmHexLength {
		if _, err := evmaddress.Normalize(address); err == nil {
			log.Trace("classified as evm")
			return ac.AddressTypeEvm
		}
	}
	log.Trace("no address type matched")
	return ac.AddressTypeUnknown
}

// ToPayload classifies the address and decodes its 20 byte payload.
func (c *Converter) ToPayload(address string) (ac.Payload, ac.AddressType, error) {
	addressType := c.GetAddressType(address)
	var payload ac.Payload
	var err error
	switch addressType {
	case ac.AddressTypeEvm:
		payload, err = evmaddress.Decode(address)
	case ac.AddressTypeTronHex:
		payload, err = tron.DecodeHex(address)
	case ac.AddressTypeTronBase58:
		payload, err = c.tron.DecodeBase58(strings.TrimSpace(address))
	default:
		if normalize.IsBlank(address) {
			return payload, addressType, converrors.InvalidAddressf("empty address")
		}
		return payload, addressType, converrors.InvalidAddressf("unrecognized address: %s", strings.TrimSpace(address))
	}
	return payload, addressType, err
}

// Equal is true when both addresses, in any supported rendering, denote the same account.
func (c *Converter) Equal(address1 string, address2 string) bool {
	p1, _, err := c.ToPayload(address1)
	if err != nil {
		return false
	}
	p2, _, err := c.ToPayload(address2)
	if err != nil {
		return false
	}
	return p1 == p2
}

var defaultConverter = mustConverter()

func mustConverter() *Converter {
	c, err := NewConverter()
	if err != nil {
		panic(err)
	}
	return c
}

// EvmToTron converts with the default converter. An empty format selects base58.
func EvmToTron(address string, format ac.OutputFormat) (string, error) {
	return defaultConverter.EvmToTron(address, format)
}

func TronToEvm(address string, addPrefix bool) (string, error) {
	return defaultConverter.TronToEvm(address, addPrefix)
}

func GetAddressType(address string) ac.AddressType {
	return defaultConverter.GetAddressType(address)
}

func Equal(address1 string, address2 string) bool {
	return defaultConverter.Equal(address1, address2)
}

var (
	NormalizeEvmAddress       = evmaddress.Normalize
	ValidateTronBase58Address = tron.IsValidBase58
	ValidateTronHexAddress    = tron.IsValidHex
)
