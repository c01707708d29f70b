package wire

import (
	"encoding/binary"
	"errors"
)

// Discriminator bytes that lead every frame on the wire.
const (
	DiscriminatorPlaintext byte = 0x00
	DiscriminatorEncrypted byte = 0x01
)

// MaxEncryptedPayload is the Noise transport-message size ceiling; an
// encrypted frame announcing a larger payload is rejected before any
// decryption is attempted.
const MaxEncryptedPayload = 65535

var (
	// ErrUnknownDiscriminator signals a byte other than 0x00/0x01 led the
	// frame; the caller must drop the entire receive buffer to resync.
	ErrUnknownDiscriminator = errors.New("wire: unknown frame discriminator")
	// ErrOversizeFrame signals an encrypted frame's declared length exceeds
	// MaxEncryptedPayload.
	ErrOversizeFrame = errors.New("wire: encrypted frame exceeds maximum length")
)

// PlaintextFrame is a decoded `[0x00][varint len][varint type][payload]` unit.
type PlaintextFrame struct {
	MessageType uint32
	Payload     []byte
}

// EncodePlaintextFrame serializes a plaintext frame.
func EncodePlaintextFrame(messageType uint32, payload []byte) []byte {
	out := make([]byte, 0, 1+10+10+len(payload))
	out = append(out, DiscriminatorPlaintext)
	out = AppendVarint(out, uint64(len(payload)))
	out = AppendVarint(out, uint64(messageType))
	return append(out, payload...)
}

// EncodeEncryptedEnvelope serializes the `[0x01][u16 be len][payload]`
// envelope. payload here is already ciphertext (or, during the Noise
// handshake prefix, raw handshake bytes); Split of inner message framing
// from encryption happens one layer up.
func EncodeEncryptedEnvelope(payload []byte) ([]byte, error) {
	if len(payload) > MaxEncryptedPayload {
		return nil, ErrOversizeFrame
	}
	out := make([]byte, 0, 3+len(payload))
	out = append(out, DiscriminatorEncrypted)
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(payload)))
	out = append(out, lenBuf[:]...)
	return append(out, payload...), nil
}

// InnerMessageHeader is the `(u16 be type, u16 be length)` header carried
// inside a decrypted encrypted-frame payload once the channel is Ready.
type InnerMessageHeader struct {
	MessageType uint16
	Length      uint16
}

// EncodeInnerMessage serializes the post-handshake inner framing that gets
// encrypted as a single Noise transport message.
func EncodeInnerMessage(messageType uint16, payload []byte) []byte {
	out := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint16(out[0:2], messageType)
	binary.BigEndian.PutUint16(out[2:4], uint16(len(payload)))
	copy(out[4:], payload)
	return out
}

// DecodeInnerMessage parses the post-handshake inner framing.
func DecodeInnerMessage(b []byte) (InnerMessageHeader, []byte, error) {
	if len(b) < 4 {
		return InnerMessageHeader{}, nil, ErrVarintTruncated
	}
	h := InnerMessageHeader{
		MessageType: binary.BigEndian.Uint16(b[0:2]),
		Length:      binary.BigEndian.Uint16(b[2:4]),
	}
	if len(b) < 4+int(h.Length) {
		return h, nil, ErrVarintTruncated
	}
	return h, b[4 : 4+int(h.Length)], nil
}

// Demux is the outcome of peeking the receive buffer's leading byte.
type Demux int

const (
	DemuxNeedMore Demux = iota
	DemuxPlaintext
	DemuxEncrypted
	DemuxUnknown
)

// Peek inspects the first unconsumed byte of buf and reports which framing
// applies, without consuming anything.
func Peek(buf []byte) Demux {
	if len(buf) == 0 {
		return DemuxNeedMore
	}
	switch buf[0] {
	case DiscriminatorPlaintext:
		return DemuxPlaintext
	case DiscriminatorEncrypted:
		return DemuxEncrypted
	default:
		return DemuxUnknown
	}
}

// TryDecodePlaintext attempts to decode one plaintext frame from the front
// of buf. It returns (frame, bytesConsumed, true) on success, or
// (zero, 0, false) if more bytes are needed. buf[0] must already be
// DiscriminatorPlaintext.
func TryDecodePlaintext(buf []byte) (PlaintextFrame, int, bool, error) {
	if len(buf) < 1 || buf[0] != DiscriminatorPlaintext {
		return PlaintextFrame{}, 0, false, nil
	}
	pos := 1
	length, n, err := DecodeVarint(buf[pos:])
	if err != nil {
		if errors.Is(err, ErrVarintTruncated) {
			return PlaintextFrame{}, 0, false, nil
		}
		return PlaintextFrame{}, 0, false, err
	}
	pos += n
	msgType, n, err := DecodeVarint(buf[pos:])
	if err != nil {
		if errors.Is(err, ErrVarintTruncated) {
			return PlaintextFrame{}, 0, false, nil
		}
		return PlaintextFrame{}, 0, false, err
	}
	pos += n
	if uint64(len(buf)-pos) < length {
		return PlaintextFrame{}, 0, false, nil
	}
	payload := buf[pos : pos+int(length)]
	pos += int(length)
	return PlaintextFrame{MessageType: uint32(msgType), Payload: payload}, pos, true, nil
}

// EncryptedEnvelope is a decoded `[0x01][u16 be len][payload]` unit, before
// any decryption.
type EncryptedEnvelope struct {
	Payload []byte
}

// TryDecodeEncrypted attempts to decode one encrypted envelope from the
// front of buf. buf[0] must already be DiscriminatorEncrypted.
func TryDecodeEncrypted(buf []byte) (EncryptedEnvelope, int, bool, error) {
	if len(buf) < 1 || buf[0] != DiscriminatorEncrypted {
		return EncryptedEnvelope{}, 0, false, nil
	}
	if len(buf) < 3 {
		return EncryptedEnvelope{}, 0, false, nil
	}
	length := binary.BigEndian.Uint16(buf[1:3])
	if int(length) > MaxEncryptedPayload {
		return EncryptedEnvelope{}, 0, false, ErrOversizeFrame
	}
	total := 3 + int(length)
	if len(buf) < total {
		return EncryptedEnvelope{}, 0, false, nil
	}
	return EncryptedEnvelope{Payload: buf[3:total]}, total, true, nil
}
