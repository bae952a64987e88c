package hex

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	ac "github.com/cordialsys/addrconv"
)

var EncodeToString = hex.EncodeToString
var DecodeString = hex.DecodeString

// Hex is a byte string that (de)serializes as lowercase hex text.
type Hex []byte

func FromPayload(payload ac.Payload) Hex {
	return Hex(payload.Bytes())
}

func (h Hex) String() string {
	return hex.EncodeToString(h)
}

func (h Hex) Bytes() []byte {
	return []byte(h)
}

func (h Hex) Payload() (ac.Payload, error) {
	return ac.PayloadFromBytes(h)
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func decodeHex(bz []byte) (Hex, error) {
	// drop quotes
	s := strings.Trim(string(bz), "\"")
	s = strings.Trim(s, "'")
	s = strings.TrimPrefix(strings.ToLower(s), ac.EvmHexPrefix)
	return hex.DecodeString(s)
}

func (h *Hex) UnmarshalJSON(data []byte) error {
	bz, err := decodeHex(data)
	if err != nil {
		return err
	}
	*h = bz
	return nil
}

func (h *Hex) UnmarshalText(data []byte) error {
	bz, err := decodeHex(data)
	if err != nil {
		return err
	}
	*h = bz
	return nil
}

func (h Hex) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
