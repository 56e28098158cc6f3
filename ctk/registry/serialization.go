package registry

import (
	"encoding/binary"

	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/keys"
)

// KeySerialization is ctk's canonical binary form for a Key: enough to
// round-trip through Marshal/Unmarshal and, via Parse, rebuild the typed
// Key it came from. It stands in for the protobuf KeyData + OutputPrefixType
// pair a real Tink keyset entry carries; full protobuf wire framing is out
// of scope per spec.md §1.
type KeySerialization struct {
	TypeURL          string
	OutputPrefixType keys.Variant
	IDRequirement    *uint32
	KeyMaterial      []byte
}

// Marshal encodes ks into a self-contained byte slice: a 2-byte
// big-endian type URL length and the type URL itself, one byte for
// OutputPrefixType, one byte for whether an id requirement is present
// followed by its 4 big-endian bytes when it is, and a 4-byte big-endian
// key material length followed by the material itself.
func Marshal(ks *KeySerialization) []byte {
	out := make([]byte, 0, 2+len(ks.TypeURL)+1+1+4+4+len(ks.KeyMaterial))

	out = appendUint16(out, uint16(len(ks.TypeURL)))
	out = append(out, ks.TypeURL...)
	out = append(out, byte(ks.OutputPrefixType))

	if ks.IDRequirement != nil {
		out = append(out, 1)
		out = appendUint32(out, *ks.IDRequirement)
	} else {
		out = append(out, 0)
	}

	out = appendUint32(out, uint32(len(ks.KeyMaterial)))
	out = append(out, ks.KeyMaterial...)
	return out
}

// Unmarshal decodes a byte slice produced by Marshal, returning
// ctkerr.ErrSerializationError if b is truncated or malformed.
func Unmarshal(b []byte) (*KeySerialization, error) {
	urlLen, b, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	if len(b) < int(urlLen)+1+1 {
		return nil, ctkerr.ErrSerializationError
	}
	typeURL := string(b[:urlLen])
	b = b[urlLen:]

	variant := keys.Variant(b[0])
	hasID := b[1]
	b = b[2:]

	var idReq *uint32
	if hasID == 1 {
		id, rest, err := readUint32(b)
		if err != nil {
			return nil, err
		}
		idReq = &id
		b = rest
	} else if hasID != 0 {
		return nil, ctkerr.ErrSerializationError
	}

	matLen, b, err := readUint32(b)
	if err != nil {
		return nil, err
	}
	if uint32(len(b)) != matLen {
		return nil, ctkerr.ErrSerializationError
	}

	return &KeySerialization{
		TypeURL:          typeURL,
		OutputPrefixType: variant,
		IDRequirement:    idReq,
		KeyMaterial:      append([]byte(nil), b...),
	}, nil
}

func appendUint16(dst []byte, v uint16) []byte {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return append(dst, buf[:]...)
}

func appendUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

func readUint16(b []byte) (uint16, []byte, error) {
	if len(b) < 2 {
		return 0, nil, ctkerr.ErrSerializationError
	}
	return binary.BigEndian.Uint16(b[:2]), b[2:], nil
}

func readUint32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, ctkerr.ErrSerializationError
	}
	return binary.BigEndian.Uint32(b[:4]), b[4:], nil
}
