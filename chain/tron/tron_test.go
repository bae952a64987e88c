package tron

import (
	"errors"
	"strings"
	"testing"

	ac "github.com/cordialsys/addrconv"
	converrors "github.com/cordialsys/addrconv/errors"
	"github.com/fbsobreira/gotron-sdk/pkg/address"
	"github.com/stretchr/testify/suite"
)

const (
	evmHex       = "123456789abcdef123456789abcdef123456789a"
	tronHex      = "41123456789abcdef123456789abcdef123456789a"
	tronBase58   = "TBdTs1DPTc8RXpQ7yUe1Z6TNxHrs1neusQ"
	tronBase58V2 = "TJCnKsPa7y5okkXvQAidZBzqx3QyQ6sxMW"
	// valid checksum, version byte 0x42
	wrongVersion = "TaxMoBoNq39RxBNADbCKKdwzSgYLYEWi5x"
)

type TronTestSuite struct {
	suite.Suite
	payload ac.Payload
}

func (s *TronTestSuite) SetupTest() {
	var err error
	s.payload, err = DecodeHex(tronHex)
	s.Require().NoError(err)
}

func TestTronTestSuite(t *testing.T) {
	suite.Run(t, new(TronTestSuite))
}

// fakeCodec lets tests inject failures of the Base58Check collaborator
type fakeCodec struct {
	encodeErr error
	decodeErr error
	version   byte
	payload   []byte
	// when set, Decode fails only after this many successful calls
	failDecodeAfter int
	decodeCalls     int
}

func (f *fakeCodec) Encode(version byte, payload []byte) (string, error) {
	if f.encodeErr != nil {
		return "", f.encodeErr
	}
	return DefaultCodec.Encode(version, payload)
}

func (f *fakeCodec) Decode(addr string) (byte, []byte, error) {
	f.decodeCalls++
	if f.decodeErr != nil && f.decodeCalls > f.failDecodeAfter {
		return 0, nil, f.decodeErr
	}
	if f.payload != nil {
		return f.version, f.payload, nil
	}
	return DefaultCodec.Decode(addr)
}

func (s *TronTestSuite) TestEncodeHex() {
	require := s.Require()
	require.Equal(tronHex, EncodeHex(s.payload))
	require.Equal(evmHex, s.payload.Hex())
}

func (s *TronTestSuite) TestDecodeHex() {
	require := s.Require()

	for _, input := range []string{
		tronHex,
		"0x" + tronHex,
		strings.ToUpper(tronHex),
		"0X" + strings.ToUpper(tronHex),
		"  " + tronHex + "\n",
	} {
		payload, err := DecodeHex(input)
		require.NoError(err, input)
		require.Equal(s.payload, payload, input)
	}

	for _, input := range []string{
		"",
		"42" + evmHex,
		"41" + evmHex[:39],
		"41" + evmHex + "0",
		"41" + strings.Repeat("g", 40),
		evmHex,
	} {
		_, err := DecodeHex(input)
		require.ErrorContains(err, "invalid TRON hex address", input)
		require.True(converrors.Is(err, converrors.InvalidAddress))
	}
}

func (s *TronTestSuite) TestEncodeBase58() {
	require := s.Require()
	encoded, err := EncodeBase58(s.payload)
	require.NoError(err)
	require.Equal(tronBase58, encoded)
	require.True(strings.HasPrefix(encoded, "T"))

	// independent decoder
	decoded, err := address.Base58ToAddress(encoded)
	require.NoError(err)
	tronBytes := s.payload.TronBytes()
	require.Equal(tronBytes[:], decoded.Bytes())
}

func (s *TronTestSuite) TestEncodeBase58Failure() {
	require := s.Require()
	cause := errors.New("encoder exploded")
	codec := NewCodec(&fakeCodec{encodeErr: cause})
	_, err := codec.EncodeBase58(s.payload)
	require.ErrorContains(err, "failed to convert to Base58Check format")
	require.ErrorIs(err, cause)
	require.True(converrors.Is(err, converrors.ConversionFailed))
}

func (s *TronTestSuite) TestDecodeBase58() {
	require := s.Require()
	payload, err := DecodeBase58(tronBase58)
	require.NoError(err)
	require.Equal(s.payload, payload)

	payload, err = DecodeBase58(tronBase58V2)
	require.NoError(err)
	require.Equal("5a523b449890854c8fc460ab602df9f31fe4293f", payload.Hex())

	for _, input := range []string{
		"",
		"T" + strings.Repeat("1", 33),
		wrongVersion,
		tronBase58[:len(tronBase58)-1],
		tronBase58 + "1",
		"t" + tronBase58[1:],
		" " + tronBase58,
	} {
		_, err := DecodeBase58(input)
		require.ErrorContains(err, "invalid TRON Base58Check address", input)
		require.True(converrors.Is(err, converrors.InvalidAddress))
	}
}

func (s *TronTestSuite) TestDecodeBase58Failure() {
	require := s.Require()
	cause := errors.New("decoder exploded")
	// validation passes, the second decode fails
	codec := NewCodec(&fakeCodec{decodeErr: cause, failDecodeAfter: 1})
	_, err := codec.DecodeBase58(tronBase58)
	require.ErrorContains(err, "failed to decode Base58Check address")
	require.ErrorIs(err, cause)
	require.True(converrors.Is(err, converrors.ConversionFailed))
}

func (s *TronTestSuite) TestFakeCodecLength() {
	require := s.Require()
	codec := NewCodec(&fakeCodec{version: 0x41, payload: make([]byte, 19)})
	require.False(codec.IsValidBase58(tronBase58))
	err := codec.ValidateAddress(tronBase58)
	require.ErrorContains(err, "decoded address must be 21 bytes (got 20)")

	codec = NewCodec(&fakeCodec{version: 0x41, payload: make([]byte, 20)})
	require.True(codec.IsValidBase58(tronBase58))
	payload, err := codec.DecodeBase58(tronBase58)
	require.NoError(err)
	require.True(payload.IsZero())
}

func (s *TronTestSuite) TestDecode() {
	require := s.Require()
	for _, input := range []string{tronBase58, tronHex, "0x" + tronHex} {
		payload, err := Decode(input)
		require.NoError(err)
		require.Equal(s.payload, payload)
	}

	_, err := Decode(" ")
	require.ErrorContains(err, "empty address")

	_, err = Decode("T" + tronHex)
	require.ErrorContains(err, "invalid TRON Base58Check address")

	_, err = Decode("xyz")
	require.ErrorContains(err, "invalid TRON hex address")
}

func (s *TronTestSuite) TestNilCodecUsesDefault() {
	require := s.Require()
	codec := NewCodec(nil)
	require.True(codec.IsValidBase58(tronBase58))
}
