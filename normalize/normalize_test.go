package normalize_test

import (
	"testing"

	ac "github.com/cordialsys/addrconv"
	n "github.com/cordialsys/addrconv/normalize"
	"github.com/stretchr/testify/suite"
)

type NormalizeTestSuite struct {
	suite.Suite
}

func (s *NormalizeTestSuite) SetupTest() {
}

func TestNormalizeTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}

func (s *NormalizeTestSuite) TestHex() {
	require := s.Require()

	require.Equal("0ece", n.Hex("0x0ECE"))
	require.Equal("0ece", n.Hex("0X0ECE"))
	require.Equal("0ece", n.Hex("  0x0ece\n"))
	require.Equal("0ece", n.Hex("0ECE"))

	// every occurrence is removed, not only the leading one
	require.Equal("abcd", n.Hex("ab0xcd"))
	require.Equal("abcd", n.Hex("0xab0Xcd"))

	// whitespace between a prefix and the digits is trimmed after the prefix is dropped
	require.Equal("41ab", n.Hex("0x 41ab "))

	require.Equal("", n.Hex("0x"))
	require.Equal("", n.Hex(""))
}

func (s *NormalizeTestSuite) TestIsHex() {
	require := s.Require()
	require.True(n.IsHex("0123456789abcdefABCDEF"))
	require.False(n.IsHex(""))
	require.False(n.IsHex("gggg"))
	require.False(n.IsHex("12 34"))
	require.False(n.IsHex("12_34"))
	require.False(n.IsHex("-1234"))
	require.False(n.IsHex("0x1234"))
}

func (s *NormalizeTestSuite) TestIsBlank() {
	require := s.Require()
	require.True(n.IsBlank(""))
	require.True(n.IsBlank(" "))
	require.True(n.IsBlank("\t\n "))
	require.False(n.IsBlank(" a "))
}

func (s *NormalizeTestSuite) TestNormalize() {
	require := s.Require()

	require.Equal("", n.Normalize("", ac.AddressTypeEvm))

	address := n.Normalize("0x123456789ABCDEF123456789ABCDEF123456789A", ac.AddressTypeEvm)
	require.Equal("0x123456789abcdef123456789abcdef123456789a", address)

	// add the prefix back
	address = n.Normalize("123456789ABCDEF123456789ABCDEF123456789A", ac.AddressTypeEvm)
	require.Equal("0x123456789abcdef123456789abcdef123456789a", address)

	address = n.Normalize("0x41123456789ABCDEF123456789ABCDEF123456789A", ac.AddressTypeTronHex)
	require.Equal("41123456789abcdef123456789abcdef123456789a", address)

	address = n.Normalize(" TBdTs1DPTc8RXpQ7yUe1Z6TNxHrs1neusQ ", ac.AddressTypeTronBase58)
	require.Equal("TBdTs1DPTc8RXpQ7yUe1Z6TNxHrs1neusQ", address)

	address = n.Normalize(" whatever ", ac.AddressTypeUnknown)
	require.Equal("whatever", address)
}

func (s *NormalizeTestSuite) TestAddressEqual() {
	require := s.Require()
	require.True(n.AddressEqual("0xABCD", "abcd", ac.AddressTypeEvm))
	require.True(n.AddressEqual("41AB", "0x41ab", ac.AddressTypeTronHex))
	require.False(n.AddressEqual("TBdTs1DPTc8RXpQ7yUe1Z6TNxHrs1neusQ", "tbdts1dptc8rxpq7yue1z6tnxhrs1neusq", ac.AddressTypeTronBase58))
}
