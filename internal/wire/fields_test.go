package wire

import "testing"

func TestDecodeRoundTripAllKinds(t *testing.T) {
	var dst []byte
	dst = AppendUint32(dst, 1, 42)
	dst = AppendBool(dst, 2, true)
	dst = AppendZigZag32(dst, 3, -7)
	dst = AppendFloat32(dst, 4, 3.5)
	dst = AppendString(dst, 5, "hello")
	dst = AppendBytes(dst, 6, []byte{1, 2, 3})

	f, err := Decode(dst)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := f.GetUint32(1); got != 42 {
		t.Errorf("field 1: got %d", got)
	}
	if !f.GetBool(2) {
		t.Error("field 2: want true")
	}
	if got := f.GetZigZag32(3); got != -7 {
		t.Errorf("field 3: got %d", got)
	}
	if got := f.GetFloat32(4); got != 3.5 {
		t.Errorf("field 4: got %v", got)
	}
	if got := f.GetString(5); got != "hello" {
		t.Errorf("field 5: got %q", got)
	}
	if got := f.GetBytes(6); string(got) != "\x01\x02\x03" {
		t.Errorf("field 6: got %v", got)
	}
	if f.Has(99) {
		t.Error("field 99 should be absent")
	}
}

func TestDecodeRepeatedFieldKeepsLast(t *testing.T) {
	var dst []byte
	dst = AppendString(dst, 1, "first")
	dst = AppendString(dst, 1, "second")
	f, err := Decode(dst)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := f.GetString(1); got != "second" {
		t.Errorf("got %q, want last repeated value", got)
	}
	if len(f[1]) != 2 {
		t.Errorf("expected both repeated values retained, got %d", len(f[1]))
	}
}

func TestDecodeUnknownWireTypeStopsPartial(t *testing.T) {
	var dst []byte
	dst = AppendUint32(dst, 1, 7)
	// Append a tag with wire type 3, which is unused/reserved on this wire.
	dst = AppendTag(dst, 2, WireType(3))
	dst = append(dst, 0xFF, 0xFF, 0xFF)

	f, err := Decode(dst)
	if err != nil {
		t.Fatalf("decode should return nil error on unknown wire type, got %v", err)
	}
	if got := f.GetUint32(1); got != 7 {
		t.Errorf("field preceding the unknown wire type should survive, got %d", got)
	}
	if f.Has(2) {
		t.Error("field after the unknown wire type should not be present")
	}
}

func TestGetAbsentFieldsReturnZeroValues(t *testing.T) {
	f, err := Decode(nil)
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if f.GetBool(1) || f.GetUint32(1) != 0 || f.GetString(1) != "" || f.GetBytes(1) != nil {
		t.Error("absent fields should report zero values")
	}
}
