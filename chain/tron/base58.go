package tron

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	mrbase58 "github.com/mr-tron/base58"
)

// Decoding errors shared by the codecs.
var (
	ErrChecksum      = base58.ErrChecksum
	ErrInvalidFormat = base58.ErrInvalidFormat
)

// Base58Codec is a Base58Check encoder/decoder.
// Decode must fail on a checksum mismatch or on input outside of the alphabet.
type Base58Codec interface {
	Encode(version byte, payload []byte) (string, error)
	Decode(address string) (version byte, payload []byte, err error)
}

// BtcutilCodec implements Base58Check with the bitcoin alphabet and a double sha256 checksum.
type BtcutilCodec struct{}

var _ Base58Codec = BtcutilCodec{}

func (BtcutilCodec) Encode(version byte, payload []byte) (string, error) {
	return base58.CheckEncode(payload, version), nil
}

func (BtcutilCodec) Decode(address string) (byte, []byte, error) {
	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return 0, nil, err
	}
	return version, payload, nil
}

// MrTronCodec does the same as BtcutilCodec, using mr-tron/base58 for the alphabet
// and computing the checksum here.
type MrTronCodec struct{}

var _ Base58Codec = MrTronCodec{}

const checksumLength = 4

func checksum(input []byte) []byte {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	return h2[:checksumLength]
}

func (MrTronCodec) Encode(version byte, payload []byte) (string, error) {
	buf := make([]byte, 0, 1+len(payload)+checksumLength)
	buf = append(buf, version)
	buf = append(buf, payload...)
	buf = append(buf, checksum(buf)...)
	return mrbase58.Encode(buf), nil
}

func (MrTronCodec) Decode(address string) (byte, []byte, error) {
	decoded, err := mrbase58.Decode(address)
	if err != nil || len(decoded) < 1+checksumLength {
		return 0, nil, ErrInvalidFormat
	}
	body := decoded[:len(decoded)-checksumLength]
	if !bytes.Equal(checksum(body), decoded[len(decoded)-checksumLength:]) {
		return 0, nil, ErrChecksum
	}
	return body[0], body[1:], nil
}

var DefaultCodec Base58Codec = BtcutilCodec{}

const (
	CodecBtcutil = "btcutil"
	CodecMrTron  = "mr-tron"
)

var CodecNames = []string{CodecBtcutil, CodecMrTron}

// CodecByName returns the named codec, "" is the default.
func CodecByName(name string) (Base58Codec, error) {
	switch name {
	case "":
		return DefaultCodec, nil
	case CodecBtcutil:
		return BtcutilCodec{}, nil
	case CodecMrTron:
		return MrTronCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown base58 codec '%s', options: %v", name, CodecNames)
	}
}
