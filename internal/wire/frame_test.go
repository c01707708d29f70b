package wire

import (
	"bytes"
	"testing"
)

func TestPlaintextFrameRoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox")
	frame := EncodePlaintextFrame(17, payload)

	if got := Peek(frame); got != DemuxPlaintext {
		t.Fatalf("peek: got %v, want DemuxPlaintext", got)
	}
	decoded, n, ok, err := TryDecodePlaintext(frame)
	if err != nil || !ok {
		t.Fatalf("decode: ok=%v err=%v", ok, err)
	}
	if n != len(frame) {
		t.Errorf("consumed %d, want %d", n, len(frame))
	}
	if decoded.MessageType != 17 || !bytes.Equal(decoded.Payload, payload) {
		t.Errorf("got %+v", decoded)
	}
}

func TestPlaintextFrameNeedsMoreBytes(t *testing.T) {
	frame := EncodePlaintextFrame(1, []byte("payload"))
	for n := 1; n < len(frame); n++ {
		_, _, ok, err := TryDecodePlaintext(frame[:n])
		if err != nil {
			t.Fatalf("prefix %d: unexpected error %v", n, err)
		}
		if ok {
			t.Errorf("prefix %d: expected incomplete, got ok", n)
		}
	}
}

func TestEncryptedEnvelopeRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 100)
	env, err := EncodeEncryptedEnvelope(payload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := Peek(env); got != DemuxEncrypted {
		t.Fatalf("peek: got %v, want DemuxEncrypted", got)
	}
	decoded, n, ok, err := TryDecodeEncrypted(env)
	if err != nil || !ok {
		t.Fatalf("decode: ok=%v err=%v", ok, err)
	}
	if n != len(env) || !bytes.Equal(decoded.Payload, payload) {
		t.Errorf("got len=%d payload=%v", n, decoded.Payload)
	}
}

func TestEncryptedEnvelopeRejectsOversizePayload(t *testing.T) {
	if _, err := EncodeEncryptedEnvelope(make([]byte, MaxEncryptedPayload+1)); err != ErrOversizeFrame {
		t.Errorf("got %v, want ErrOversizeFrame", err)
	}
}

func TestPeekUnknownDiscriminator(t *testing.T) {
	if got := Peek([]byte{0x02, 0x00}); got != DemuxUnknown {
		t.Errorf("got %v, want DemuxUnknown", got)
	}
}

func TestPeekNeedsMore(t *testing.T) {
	if got := Peek(nil); got != DemuxNeedMore {
		t.Errorf("got %v, want DemuxNeedMore", got)
	}
}

func TestInnerMessageRoundTrip(t *testing.T) {
	payload := []byte("inner payload")
	b := EncodeInnerMessage(99, payload)
	hdr, body, err := DecodeInnerMessage(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if hdr.MessageType != 99 || hdr.Length != uint16(len(payload)) || !bytes.Equal(body, payload) {
		t.Errorf("got hdr=%+v body=%v", hdr, body)
	}
}

func TestInnerMessageTruncated(t *testing.T) {
	b := EncodeInnerMessage(1, []byte("abcdef"))
	if _, _, err := DecodeInnerMessage(b[:len(b)-1]); err != ErrVarintTruncated {
		t.Errorf("got %v, want ErrVarintTruncated", err)
	}
	if _, _, err := DecodeInnerMessage(b[:2]); err != ErrVarintTruncated {
		t.Errorf("short header: got %v, want ErrVarintTruncated", err)
	}
}
