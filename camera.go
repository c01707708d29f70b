package haclient

// cameraReassembly accumulates multi-packet CAMERA_IMAGE_RESPONSE chunks
// per entity key until a `done` marker arrives, per spec §3's camera
// reassembly map invariant and scenario S6. A 4 MiB total cap per key
// guards against a misbehaving device exhausting memory (spec §9).
type cameraReassembly struct {
	chunks map[uint32][][]byte
	sizes  map[uint32]int
}

const maxCameraReassemblyBytes = 4 << 20

func newCameraReassembly() *cameraReassembly {
	return &cameraReassembly{chunks: make(map[uint32][][]byte), sizes: make(map[uint32]int)}
}

// addChunk appends data for key and, if done, returns the concatenated
// image and removes the entry.
func (c *cameraReassembly) addChunk(key uint32, data []byte, done bool) (image []byte, ready bool) {
	c.sizes[key] += len(data)
	if c.sizes[key] > maxCameraReassemblyBytes {
		delete(c.chunks, key)
		delete(c.sizes, key)
		return nil, false
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	c.chunks[key] = append(c.chunks[key], buf)
	if !done {
		return nil, false
	}
	parts := c.chunks[key]
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	delete(c.chunks, key)
	delete(c.sizes, key)
	return out, true
}

func (c *cameraReassembly) reset() {
	c.chunks = make(map[uint32][][]byte)
	c.sizes = make(map[uint32]int)
}
