package wire

// WireType identifies how a field's value is encoded on the wire.
type WireType uint8

const (
	WireVarint  WireType = 0
	WireFixed64 WireType = 1
	WireBytes   WireType = 2
	WireFixed32 WireType = 5
)

// EncodeTag packs a field number and wire type into a single varint-ready
// tag value: (field_number << 3) | wire_type.
func EncodeTag(fieldNumber int, wt WireType) uint64 {
	return uint64(fieldNumber)<<3 | uint64(wt)
}

// DecodeTag splits a decoded tag value back into field number and wire type.
func DecodeTag(tag uint64) (fieldNumber int, wt WireType) {
	return int(tag >> 3), WireType(tag & 0x7)
}

// AppendTag appends an encoded tag to dst.
func AppendTag(dst []byte, fieldNumber int, wt WireType) []byte {
	return AppendVarint(dst, EncodeTag(fieldNumber, wt))
}
