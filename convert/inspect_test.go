package convert_test

import (
	"encoding/json"

	ac "github.com/cordialsys/addrconv"
	"github.com/cordialsys/addrconv/convert"
	converrors "github.com/cordialsys/addrconv/errors"
	"gopkg.in/yaml.v3"
)

func (s *ConvertTestSuite) TestInspect() {
	require := s.Require()

	for _, input := range []string{checksumTron, checksumEvm, "41" + checksumEvm[2:]} {
		inspection, err := convert.Inspect(input)
		require.NoError(err, input)
		require.Equal(input, inspection.Input)
		require.Equal("5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", inspection.Payload.String())
		require.Equal("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", inspection.Evm)
		require.Equal(checksumEvm, inspection.EvmChecksum)
		require.Equal("415aaeb6053f3e94c9b9a09f33669435e7ef1beaed", inspection.TronHex)
		require.Equal(checksumTron, inspection.TronBase58)
	}

	inspection, err := convert.Inspect(checksumTron)
	require.NoError(err)
	require.Equal(ac.AddressTypeTronBase58, inspection.Type)

	bz, err := json.Marshal(inspection)
	require.NoError(err)
	require.JSONEq(`{
		"input": "TJEh7TX8sNj5uq4hXKyYdTrnGmeeG48top",
		"type": "tron_base58",
		"payload": "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"evm": "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"evm_checksum": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"tron_hex": "415aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"tron_base58": "TJEh7TX8sNj5uq4hXKyYdTrnGmeeG48top"
	}`, string(bz))

	bz, err = yaml.Marshal(inspection)
	require.NoError(err)
	require.Contains(string(bz), "type: tron_base58")
	require.Contains(string(bz), "tron_base58: TJEh7TX8sNj5uq4hXKyYdTrnGmeeG48top")
}

func (s *ConvertTestSuite) TestInspectInvalid() {
	require := s.Require()
	_, err := convert.Inspect("invalid_address")
	require.True(converrors.Is(err, converrors.InvalidAddress))

	_, err = convert.Inspect("")
	require.ErrorContains(err, "empty address")
}
