package wire

import (
	"encoding/binary"
	"math"
)

// Value is a decoded field value of unknown semantic type until the
// per-family decoder interprets it. It replaces the "Buffer | number"
// duck-typed field value of the source protocol with a small closed enum.
type Value struct {
	Kind  WireType
	Num   uint64 // populated for Varint, Fixed32, Fixed64
	Bytes []byte // populated for Bytes
}

// Fields is the decoded multimap field_number -> list of values, exactly as
// produced by Decode. Repeated fields (and any field seen more than once,
// which the wire format never forbids) simply accumulate.
type Fields map[int][]Value

// Decode parses a sequence of tag-prefixed fields from b. Unknown wire
// types cause decoding to stop and return the fields seen so far along with
// nil error, matching the "log and keep going" error policy of §4.1 (the
// caller is expected to log that truncation; Decode itself stays silent).
func Decode(b []byte) (Fields, error) {
	out := make(Fields)
	pos := 0
	for pos < len(b) {
		tagVal, n, err := DecodeVarint(b[pos:])
		if err != nil {
			return out, err
		}
		pos += n
		fieldNum, wt := DecodeTag(tagVal)

		switch wt {
		case WireVarint:
			v, n, err := DecodeVarint(b[pos:])
			if err != nil {
				return out, err
			}
			pos += n
			out[fieldNum] = append(out[fieldNum], Value{Kind: WireVarint, Num: v})
		case WireFixed64:
			if pos+8 > len(b) {
				return out, ErrVarintTruncated
			}
			v := binary.LittleEndian.Uint64(b[pos : pos+8])
			pos += 8
			out[fieldNum] = append(out[fieldNum], Value{Kind: WireFixed64, Num: v})
		case WireBytes:
			length, n, err := DecodeVarint(b[pos:])
			if err != nil {
				return out, err
			}
			pos += n
			if pos+int(length) > len(b) {
				return out, ErrVarintTruncated
			}
			out[fieldNum] = append(out[fieldNum], Value{Kind: WireBytes, Bytes: b[pos : pos+int(length)]})
			pos += int(length)
		case WireFixed32:
			if pos+4 > len(b) {
				return out, ErrVarintTruncated
			}
			v := binary.LittleEndian.Uint32(b[pos : pos+4])
			pos += 4
			out[fieldNum] = append(out[fieldNum], Value{Kind: WireFixed32, Num: uint64(v)})
		default:
			// Unrecognized wire type: stop here, return what we have.
			return out, nil
		}
	}
	return out, nil
}

func (f Fields) first(n int) (Value, bool) {
	vs := f[n]
	if len(vs) == 0 {
		return Value{}, false
	}
	return vs[len(vs)-1], true
}

// GetBool reads field n as a varint boolean; false/absent if unset.
func (f Fields) GetBool(n int) bool {
	v, ok := f.first(n)
	if !ok {
		return false
	}
	return v.Num != 0
}

// GetUint32 reads field n as a varint or fixed32 unsigned integer.
func (f Fields) GetUint32(n int) uint32 {
	v, ok := f.first(n)
	if !ok {
		return 0
	}
	return uint32(v.Num)
}

// GetInt32 reads field n as a plain (non-zigzag) signed varint.
func (f Fields) GetInt32(n int) int32 {
	return int32(f.GetUint32(n))
}

// GetZigZag32 reads field n as a zigzag-encoded signed varint.
func (f Fields) GetZigZag32(n int) int32 {
	return ZigZagDecode(f.GetUint32(n))
}

// GetFloat32 reads field n as an IEEE-754 float32 carried in a fixed32.
func (f Fields) GetFloat32(n int) float32 {
	v, ok := f.first(n)
	if !ok {
		return 0
	}
	return math.Float32frombits(uint32(v.Num))
}

// GetString reads field n as a UTF-8 length-delimited string.
func (f Fields) GetString(n int) string {
	v, ok := f.first(n)
	if !ok || v.Kind != WireBytes {
		return ""
	}
	return string(v.Bytes)
}

// GetBytes reads field n as a raw length-delimited byte slice.
func (f Fields) GetBytes(n int) []byte {
	v, ok := f.first(n)
	if !ok || v.Kind != WireBytes {
		return nil
	}
	return v.Bytes
}

// Has reports whether field n was present at all.
func (f Fields) Has(n int) bool {
	_, ok := f.first(n)
	return ok
}

// --- Encoding helpers ---

// AppendUint32 appends a varint-typed field.
func AppendUint32(dst []byte, fieldNumber int, v uint32) []byte {
	dst = AppendTag(dst, fieldNumber, WireVarint)
	return AppendVarint(dst, uint64(v))
}

// AppendBool appends a varint-typed boolean field (0 or 1).
func AppendBool(dst []byte, fieldNumber int, v bool) []byte {
	n := uint32(0)
	if v {
		n = 1
	}
	return AppendUint32(dst, fieldNumber, n)
}

// AppendZigZag32 appends a zigzag-encoded signed varint field.
func AppendZigZag32(dst []byte, fieldNumber int, v int32) []byte {
	return AppendUint32(dst, fieldNumber, ZigZagEncode(v))
}

// AppendFixed32 appends a raw little-endian fixed32 field.
func AppendFixed32(dst []byte, fieldNumber int, v uint32) []byte {
	dst = AppendTag(dst, fieldNumber, WireFixed32)
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// AppendFloat32 appends an IEEE-754 float32 carried in a fixed32 field.
func AppendFloat32(dst []byte, fieldNumber int, v float32) []byte {
	return AppendFixed32(dst, fieldNumber, math.Float32bits(v))
}

// AppendString appends a length-delimited UTF-8 string field.
func AppendString(dst []byte, fieldNumber int, s string) []byte {
	dst = AppendTag(dst, fieldNumber, WireBytes)
	dst = AppendVarint(dst, uint64(len(s)))
	return append(dst, s...)
}

// AppendBytes appends a length-delimited raw byte field.
func AppendBytes(dst []byte, fieldNumber int, b []byte) []byte {
	dst = AppendTag(dst, fieldNumber, WireBytes)
	dst = AppendVarint(dst, uint64(len(b)))
	return append(dst, b...)
}
