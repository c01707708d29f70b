package haclient

import (
	"bytes"
	"testing"
)

func TestCameraReassemblyAcrossChunks(t *testing.T) {
	c := newCameraReassembly()

	if img, ready := c.addChunk(1, []byte("hello "), false); ready || img != nil {
		t.Fatalf("first chunk should not be ready, got %v", img)
	}
	img, ready := c.addChunk(1, []byte("world"), true)
	if !ready {
		t.Fatal("expected ready after done chunk")
	}
	if !bytes.Equal(img, []byte("hello world")) {
		t.Errorf("got %q", img)
	}
}

func TestCameraReassemblyKeepsKeysIndependent(t *testing.T) {
	c := newCameraReassembly()
	c.addChunk(1, []byte("a"), false)
	c.addChunk(2, []byte("b"), false)

	img1, ready1 := c.addChunk(1, []byte("1"), true)
	if !ready1 || string(img1) != "a1" {
		t.Fatalf("key 1: img=%q ready=%v", img1, ready1)
	}

	img2, ready2 := c.addChunk(2, []byte("2"), true)
	if !ready2 || string(img2) != "b2" {
		t.Fatalf("key 2: img=%q ready=%v", img2, ready2)
	}
}

func TestCameraReassemblyDropsOversizeStream(t *testing.T) {
	c := newCameraReassembly()
	big := bytes.Repeat([]byte{0x00}, maxCameraReassemblyBytes+1)
	img, ready := c.addChunk(1, big, false)
	if ready || img != nil {
		t.Fatal("oversize chunk should never be ready")
	}
	// The entry should have been dropped; a subsequent done chunk starts
	// fresh rather than returning the discarded bytes.
	img2, ready2 := c.addChunk(1, []byte("x"), true)
	if !ready2 || string(img2) != "x" {
		t.Fatalf("got img=%q ready=%v, want fresh accumulation after drop", img2, ready2)
	}
}

func TestCameraReassemblyReset(t *testing.T) {
	c := newCameraReassembly()
	c.addChunk(1, []byte("partial"), false)
	c.reset()
	img, ready := c.addChunk(1, []byte("x"), true)
	if !ready || string(img) != "x" {
		t.Fatalf("expected reset to discard partial state, got img=%q", img)
	}
}
