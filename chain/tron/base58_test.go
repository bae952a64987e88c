package tron

import (
	"math/rand"
)

func (s *TronTestSuite) TestCodecByName() {
	require := s.Require()
	codec, err := CodecByName("")
	require.NoError(err)
	require.Equal(DefaultCodec, codec)

	codec, err = CodecByName(CodecMrTron)
	require.NoError(err)
	require.IsType(MrTronCodec{}, codec)

	_, err = CodecByName("base64")
	require.ErrorContains(err, "unknown base58 codec 'base64'")
}

func (s *TronTestSuite) TestMrTronCodec() {
	require := s.Require()
	codec := MrTronCodec{}

	encoded, err := codec.Encode(0x41, s.payload.Bytes())
	require.NoError(err)
	require.Equal(tronBase58, encoded)

	version, payload, err := codec.Decode(tronBase58V2)
	require.NoError(err)
	require.EqualValues(0x41, version)
	require.Len(payload, 20)

	version, _, err = codec.Decode(wrongVersion)
	require.NoError(err)
	require.EqualValues(0x42, version)

	for _, bad := range []string{"", "T", "0OIl", "TBdTs1DPTc8RXpQ7yUe1Z6TNxHrs1neus0"} {
		_, _, err = codec.Decode(bad)
		require.ErrorIs(err, ErrInvalidFormat, bad)
	}
	_, _, err = codec.Decode("TBdTs1DPTc8RXpQ7yUe1Z6TNxHrs1neusR")
	require.ErrorIs(err, ErrChecksum)
}

func (s *TronTestSuite) TestCodecsAgree() {
	require := s.Require()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		payload := make([]byte, 20)
		rng.Read(payload)

		a, err := BtcutilCodec{}.Encode(0x41, payload)
		require.NoError(err)
		b, err := MrTronCodec{}.Encode(0x41, payload)
		require.NoError(err)
		require.Equal(a, b)

		version, decoded, err := MrTronCodec{}.Decode(a)
		require.NoError(err)
		require.EqualValues(0x41, version)
		require.Equal(payload, decoded)
	}
}

func (s *TronTestSuite) TestCodecWithMrTron() {
	require := s.Require()
	codec := NewCodec(MrTronCodec{})
	encoded, err := codec.EncodeBase58(s.payload)
	require.NoError(err)
	require.Equal(tronBase58, encoded)
	require.True(codec.IsValidBase58(tronBase58V2))
	require.False(codec.IsValidBase58(wrongVersion))
	require.NoError(codec.ValidateAddress(tronBase58))
}
