package wire

import "testing"

func TestVarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<32 - 1, 1 << 40}
	for _, v := range cases {
		b := AppendVarint(nil, v)
		got, n, err := DecodeVarint(b)
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if n != len(b) {
			t.Errorf("value %d: consumed %d, want %d", v, n, len(b))
		}
		if got != v {
			t.Errorf("value %d: got %d", v, got)
		}
	}
}

func TestDecodeVarintTruncated(t *testing.T) {
	if _, _, err := DecodeVarint([]byte{0x80, 0x80}); err != ErrVarintTruncated {
		t.Errorf("got %v, want ErrVarintTruncated", err)
	}
}

func TestDecodeVarintTooLong(t *testing.T) {
	b := make([]byte, 11)
	for i := range b {
		b[i] = 0x80
	}
	if _, _, err := DecodeVarint(b); err != ErrVarintTooLong {
		t.Errorf("got %v, want ErrVarintTooLong", err)
	}
}

func TestZigZagRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, 1 << 20, -(1 << 20)} {
		if got := ZigZagDecode(ZigZagEncode(v)); got != v {
			t.Errorf("zigzag(%d) round trip got %d", v, got)
		}
	}
}

func TestTagRoundTrip(t *testing.T) {
	for _, fn := range []int{0, 1, 15, 16, 2047} {
		for _, wt := range []WireType{WireVarint, WireFixed64, WireBytes, WireFixed32} {
			tag := EncodeTag(fn, wt)
			gotFn, gotWt := DecodeTag(tag)
			if gotFn != fn || gotWt != wt {
				t.Errorf("tag(%d,%d): got (%d,%d)", fn, wt, gotFn, gotWt)
			}
		}
	}
}
