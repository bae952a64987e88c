package convert

import (
	"github.com/cordialsys/addrconv/chain/tron"
	"github.com/sirupsen/logrus"
)

type converterOptions struct {
	codec    tron.Base58Codec
	checksum *bool
	logger   *logrus.Entry
}

type Option func(opts *converterOptions) error

func get[T any](arg *T) (T, bool) {
	if arg == nil {
		var zero T
		return zero, false
	}
	return *arg, true
}

// OptionCodec replaces the Base58Check implementation.
func OptionCodec(codec tron.Base58Codec) Option {
	return func(opts *converterOptions) error {
		if codec != nil {
			opts.codec = codec
		}
		return nil
	}
}

// OptionChecksum makes TronToEvm return EIP-55 mixed case addresses instead of lowercase.
func OptionChecksum(checksum bool) Option {
	return func(opts *converterOptions) error {
		opts.checksum = &checksum
		return nil
	}
}

func OptionLogger(logger *logrus.Entry) Option {
	return func(opts *converterOptions) error {
		if logger != nil {
			opts.logger = logger
		}
		return nil
	}
}

func newConverterOptions(opts ...Option) (converterOptions, error) {
	options := converterOptions{}
	for _, opt := range opts {
		err := opt(&options)
		if err != nil {
			return options, err
		}
	}
	return options, nil
}
