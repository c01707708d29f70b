// Package noiseproto implements, from scratch, the subset of the Noise
// Protocol Framework needed for Noise_NNpsk0_25519_ChaChaPoly_SHA256: HKDF-
// based symmetric state mixing, the NNpsk0 message patterns, and the
// per-direction AEAD cipher states produced by Split. It deliberately does
// not depend on a Noise library: the chaining-key/handshake-hash machinery
// is the hard-engineering core this client exists to demonstrate.
package noiseproto

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
)

const (
	// ProtocolName is the exact Noise protocol name string for this pattern.
	ProtocolName = "Noise_NNpsk0_25519_ChaChaPoly_SHA256"
	// PSKLen is the required pre-shared key length.
	PSKLen = 32
	keyLen = 32
	hashLen = 32
	tagLen  = 16
)

var (
	ErrInvalidPskLength  = errors.New("noiseproto: psk must be exactly 32 bytes")
	ErrAuthFailed        = errors.New("noiseproto: AEAD authentication failed")
	ErrHandshakeComplete = errors.New("noiseproto: handshake already complete")
	ErrMessageTooLong    = errors.New("noiseproto: message exceeds maximum transport length")
	ErrTruncatedMessage  = errors.New("noiseproto: handshake message truncated")
)

// Role identifies which side of the NNpsk0 pattern this HandshakeState plays.
type Role int

const (
	Initiator Role = iota
	Responder
)

// CipherState owns one direction's symmetric key and strictly monotone
// nonce counter, per spec §3's handshake-state description.
type CipherState struct {
	k      [keyLen]byte
	hasKey bool
	n      uint64
}

func (cs *CipherState) initializeKey(k []byte) {
	copy(cs.k[:], k)
	cs.hasKey = true
	cs.n = 0
}

// HasKey reports whether a key has been installed yet.
func (cs *CipherState) HasKey() bool { return cs.hasKey }

// Nonce returns the current (not-yet-used) nonce counter.
func (cs *CipherState) Nonce() uint64 { return cs.n }

func nonceBytes(n uint64) [12]byte {
	var nb [12]byte
	// First 4 bytes zero, remaining 8 little-endian counter, per spec §4.3.
	nb[4] = byte(n)
	nb[5] = byte(n >> 8)
	nb[6] = byte(n >> 16)
	nb[7] = byte(n >> 24)
	nb[8] = byte(n >> 32)
	nb[9] = byte(n >> 40)
	nb[10] = byte(n >> 48)
	nb[11] = byte(n >> 56)
	return nb
}

// EncryptWithAd encrypts plaintext under the current key, nonce, and ad. If
// no key has been installed yet the operation is the identity, as required
// during the handshake prefix before psk/e/ee establish one.
func (cs *CipherState) EncryptWithAd(ad, plaintext []byte) ([]byte, error) {
	if !cs.hasKey {
		out := make([]byte, len(plaintext))
		copy(out, plaintext)
		return out, nil
	}
	aead, err := chacha20poly1305.New(cs.k[:])
	if err != nil {
		return nil, err
	}
	nb := nonceBytes(cs.n)
	ct := aead.Seal(nil, nb[:], plaintext, ad)
	cs.n++
	return ct, nil
}

// DecryptWithAd decrypts ciphertext under the current key, nonce, and ad.
func (cs *CipherState) DecryptWithAd(ad, ciphertext []byte) ([]byte, error) {
	if !cs.hasKey {
		out := make([]byte, len(ciphertext))
		copy(out, ciphertext)
		return out, nil
	}
	aead, err := chacha20poly1305.New(cs.k[:])
	if err != nil {
		return nil, err
	}
	nb := nonceBytes(cs.n)
	pt, err := aead.Open(nil, nb[:], ciphertext, ad)
	if err != nil {
		return nil, ErrAuthFailed
	}
	cs.n++
	return pt, nil
}

// Rekey replaces k with the first 32 bytes produced by encrypting 32 zero
// bytes under nonce 2^64-1, and resets n to 0. Defined for completeness per
// spec §4.3; unused on the client's normal connect path.
func (cs *CipherState) Rekey() error {
	if !cs.hasKey {
		return nil
	}
	aead, err := chacha20poly1305.New(cs.k[:])
	if err != nil {
		return err
	}
	nb := nonceBytes(^uint64(0))
	var zeros [32]byte
	out := aead.Seal(nil, nb[:], zeros[:], nil)
	cs.initializeKey(out[:32])
	return nil
}

// Wipe zeroes the key material; called when the state is no longer needed.
func (cs *CipherState) Wipe() {
	for i := range cs.k {
		cs.k[i] = 0
	}
	cs.hasKey = false
}

// symmetricState carries the rolling chaining key and handshake hash.
type symmetricState struct {
	ck     [hashLen]byte
	h      [hashLen]byte
	cipher CipherState
}

func newSymmetricState(protocolName string, prologue []byte) *symmetricState {
	s := &symmetricState{}
	// protocol name (36 bytes) exceeds 32, so hash it per spec §4.3.
	sum := sha256.Sum256([]byte(protocolName))
	s.h = sum
	s.ck = sum
	s.mixHash(prologue)
	return s
}

func (s *symmetricState) mixHash(data []byte) {
	h := sha256.New()
	h.Write(s.h[:])
	h.Write(data)
	copy(s.h[:], h.Sum(nil))
}

func (s *symmetricState) hkdf2(input []byte) (ck, k [32]byte) {
	r := hkdf.New(sha256.New, input, s.ck[:], nil)
	var out [64]byte
	_, _ = r.Read(out[:])
	copy(ck[:], out[:32])
	copy(k[:], out[32:])
	return
}

func (s *symmetricState) hkdf3(input []byte) (ck, tempH, k [32]byte) {
	r := hkdf.New(sha256.New, input, s.ck[:], nil)
	var out [96]byte
	_, _ = r.Read(out[:])
	copy(ck[:], out[:32])
	copy(tempH[:], out[32:64])
	copy(k[:], out[64:96])
	return
}

func (s *symmetricState) mixKey(input []byte) {
	ck, k := s.hkdf2(input)
	s.ck = ck
	s.cipher.initializeKey(k[:])
}

func (s *symmetricState) mixKeyAndHash(input []byte) {
	ck, tempH, k := s.hkdf3(input)
	s.ck = ck
	s.mixHash(tempH[:])
	s.cipher.initializeKey(k[:])
}

func (s *symmetricState) encryptAndHash(plaintext []byte) ([]byte, error) {
	ct, err := s.cipher.EncryptWithAd(s.h[:], plaintext)
	if err != nil {
		return nil, err
	}
	s.mixHash(ct)
	return ct, nil
}

func (s *symmetricState) decryptAndHash(ciphertext []byte) ([]byte, error) {
	pt, err := s.cipher.DecryptWithAd(s.h[:], ciphertext)
	if err != nil {
		return nil, err
	}
	s.mixHash(ciphertext)
	return pt, nil
}

// split derives the two transport cipher states from the final chaining key.
func (s *symmetricState) split() (k1, k2 [32]byte) {
	r := hkdf.New(sha256.New, nil, s.ck[:], nil)
	var out [64]byte
	_, _ = r.Read(out[:])
	copy(k1[:], out[:32])
	copy(k2[:], out[32:])
	return
}

// HandshakeState drives the two-message NNpsk0 pattern.
type HandshakeState struct {
	role  Role
	sym   *symmetricState
	psk   [32]byte
	epriv [32]byte
	epub  [32]byte
	hasE  bool
	rpub  [32]byte
	hasR  bool

	patternIndex int
	complete     bool

	SendCipher CipherState
	RecvCipher CipherState
}

// NewHandshakeState constructs a handshake in the given role with the
// prologue `"NoiseAPIInit\x00\x00"` plus any caller-supplied suffix, and the
// given 32-byte PSK.
func NewHandshakeState(role Role, psk []byte, extraPrologue []byte) (*HandshakeState, error) {
	if len(psk) != PSKLen {
		return nil, ErrInvalidPskLength
	}
	prologue := append([]byte("NoiseAPIInit\x00\x00"), extraPrologue...)
	hs := &HandshakeState{
		role: role,
		sym:  newSymmetricState(ProtocolName, prologue),
	}
	copy(hs.psk[:], psk)
	return hs, nil
}

// IsComplete reports whether both messages of the pattern have been
// processed and Split has run.
func (hs *HandshakeState) IsComplete() bool { return hs.complete }

// HandshakeHash returns the current running handshake hash h.
func (hs *HandshakeState) HandshakeHash() [32]byte { return hs.sym.h }

func generateKeypair() (priv, pub [32]byte, err error) {
	if _, err = readRandom(priv[:]); err != nil {
		return
	}
	curve25519.ScalarBaseMult(&pub, &priv)
	return
}

// WriteMessage produces the next handshake message (message 1 for the
// initiator, message 2 for the responder) carrying payload as the optional
// encrypted application data.
func (hs *HandshakeState) WriteMessage(payload []byte) ([]byte, error) {
	if hs.complete {
		return nil, ErrHandshakeComplete
	}
	var out []byte

	switch {
	case hs.role == Initiator && hs.patternIndex == 0:
		// tokens: psk, e
		hs.sym.mixKeyAndHash(hs.psk[:])
		priv, pub, err := generateKeypair()
		if err != nil {
			return nil, err
		}
		hs.epriv, hs.epub, hs.hasE = priv, pub, true
		out = append(out, hs.epub[:]...)
		hs.sym.mixHash(hs.epub[:])
		hs.sym.mixKey(hs.epub[:])

		ct, err := hs.sym.encryptAndHash(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, ct...)
		hs.patternIndex = 1
		return out, nil

	case hs.role == Responder && hs.patternIndex == 1:
		// tokens: e, ee
		priv, pub, err := generateKeypair()
		if err != nil {
			return nil, err
		}
		hs.epriv, hs.epub, hs.hasE = priv, pub, true
		out = append(out, hs.epub[:]...)
		hs.sym.mixHash(hs.epub[:])
		hs.sym.mixKey(hs.epub[:])

		shared, err := curve25519.X25519(hs.epriv[:], hs.rpub[:])
		if err != nil {
			return nil, err
		}
		hs.sym.mixKey(shared)

		ct, err := hs.sym.encryptAndHash(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, ct...)

		// Responder completes Split on writing the final message.
		hs.finishSplit()
		hs.patternIndex = 2
		return out, nil
	}
	return nil, errors.New("noiseproto: WriteMessage called out of sequence")
}

// ReadMessage consumes the peer's handshake message and returns the
// decrypted optional payload.
func (hs *HandshakeState) ReadMessage(msg []byte) ([]byte, error) {
	if hs.complete {
		return nil, ErrHandshakeComplete
	}

	switch {
	case hs.role == Responder && hs.patternIndex == 0:
		// tokens: psk, e
		if len(msg) < 32 {
			return nil, ErrTruncatedMessage
		}
		hs.sym.mixKeyAndHash(hs.psk[:])
		copy(hs.rpub[:], msg[:32])
		hs.hasR = true
		hs.sym.mixHash(hs.rpub[:])
		hs.sym.mixKey(hs.rpub[:])

		pt, err := hs.sym.decryptAndHash(msg[32:])
		if err != nil {
			return nil, err
		}
		hs.patternIndex = 1
		return pt, nil

	case hs.role == Initiator && hs.patternIndex == 1:
		// tokens: e, ee
		if len(msg) < 32 {
			return nil, ErrTruncatedMessage
		}
		copy(hs.rpub[:], msg[:32])
		hs.hasR = true
		hs.sym.mixHash(hs.rpub[:])
		hs.sym.mixKey(hs.rpub[:])

		shared, err := curve25519.X25519(hs.epriv[:], hs.rpub[:])
		if err != nil {
			return nil, err
		}
		hs.sym.mixKey(shared)

		pt, err := hs.sym.decryptAndHash(msg[32:])
		if err != nil {
			return nil, err
		}

		// Initiator completes Split on reading the final message.
		hs.finishSplit()
		hs.patternIndex = 2
		return pt, nil
	}
	return nil, errors.New("noiseproto: ReadMessage called out of sequence")
}

func (hs *HandshakeState) finishSplit() {
	k1, k2 := hs.sym.split()
	if hs.role == Initiator {
		hs.SendCipher.initializeKey(k1[:])
		hs.RecvCipher.initializeKey(k2[:])
	} else {
		hs.RecvCipher.initializeKey(k1[:])
		hs.SendCipher.initializeKey(k2[:])
	}
	hs.complete = true
	// Zero handshake-only secrets; cipher states outlive this struct.
	for i := range hs.psk {
		hs.psk[i] = 0
	}
	for i := range hs.epriv {
		hs.epriv[i] = 0
	}
}

// EqualKeys is a constant-time comparison, exposed for tests asserting that
// both sides of a completed handshake derived matching transport keys.
func EqualKeys(a, b [32]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
