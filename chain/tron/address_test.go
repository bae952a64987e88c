package tron

import (
	"encoding/hex"

	ac "github.com/cordialsys/addrconv"
)

func (s *TronTestSuite) TestNewAddressBuilder() {
	require := s.Require()
	builder := NewAddressBuilder()
	require.NotNil(builder)
}

func (s *TronTestSuite) TestGetAddressFromPublicKey() {
	require := s.Require()
	builder := NewAddressBuilder()
	bytes, _ := hex.DecodeString("0404B604296010A55D40000B798EE8454ECCC1F8900E70B1ADF47C9887625D8BAE3866351A6FA0B5370623268410D33D345F63344121455849C9C28F9389ED9731")
	address, err := builder.GetAddressFromPublicKey(bytes)
	require.NoError(err)
	require.Equal(ac.Address("TDpBe64DqirkKWj6HWuR1pWgmnhw2wDacE"), address)

	compressed, _ := hex.DecodeString("0304B604296010A55D40000B798EE8454ECCC1F8900E70B1ADF47C9887625D8BAE")
	address, err = builder.GetAddressFromPublicKey(compressed)
	require.NoError(err)
	require.Equal(ac.Address("TDpBe64DqirkKWj6HWuR1pWgmnhw2wDacE"), address)
	require.True(IsValidBase58(string(address)))
}

func (s *TronTestSuite) TestGetAddressFromPublicKeyErr() {
	require := s.Require()
	builder := NewAddressBuilder()

	address, err := builder.GetAddressFromPublicKey([]byte{})
	require.Equal(ac.Address(""), address)
	require.EqualError(err, "invalid secp256k1 public key")

	address, err = builder.GetAddressFromPublicKey([]byte{1, 2, 3})
	require.Equal(ac.Address(""), address)
	require.EqualError(err, "invalid secp256k1 public key")
}
