package noiseproto

import "testing"

func zeroPSK() []byte {
	return make([]byte, PSKLen)
}

// TestHandshakeCompletesWithMatchingKeys runs both roles of NNpsk0 against
// each other in-process and asserts the split transport keys line up, the
// same "drive both sides, compare derived keys" shape as the teacher's
// TestKeyDerivation.
func TestHandshakeCompletesWithMatchingKeys(t *testing.T) {
	psk := zeroPSK()

	initiator, err := NewHandshakeState(Initiator, psk, nil)
	if err != nil {
		t.Fatalf("new initiator: %v", err)
	}
	responder, err := NewHandshakeState(Responder, psk, nil)
	if err != nil {
		t.Fatalf("new responder: %v", err)
	}

	msg1, err := initiator.WriteMessage(nil)
	if err != nil {
		t.Fatalf("initiator write message 1: %v", err)
	}
	if _, err := responder.ReadMessage(msg1); err != nil {
		t.Fatalf("responder read message 1: %v", err)
	}

	msg2, err := responder.WriteMessage(nil)
	if err != nil {
		t.Fatalf("responder write message 2: %v", err)
	}
	if _, err := initiator.ReadMessage(msg2); err != nil {
		t.Fatalf("initiator read message 2: %v", err)
	}

	if !initiator.IsComplete() || !responder.IsComplete() {
		t.Fatal("expected both sides complete after two messages")
	}

	if initiator.HandshakeHash() != responder.HandshakeHash() {
		t.Error("handshake hashes diverged")
	}

	if !EqualKeys(initiator.SendCipher.k, responder.RecvCipher.k) {
		t.Error("initiator send key != responder receive key")
	}
	if !EqualKeys(initiator.RecvCipher.k, responder.SendCipher.k) {
		t.Error("initiator receive key != responder send key")
	}

	// Transport round trip at nonce 0.
	plaintext := []byte("hello device")
	ct, err := initiator.SendCipher.EncryptWithAd(nil, plaintext)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	pt, err := responder.RecvCipher.DecryptWithAd(nil, ct)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if string(pt) != string(plaintext) {
		t.Errorf("got %q, want %q", pt, plaintext)
	}

	// Altered ciphertext must fail authentication.
	bad := append([]byte(nil), ct...)
	bad[0] ^= 0xff
	if _, err := responder.RecvCipher.DecryptWithAd(nil, bad); err == nil {
		t.Error("expected auth failure on altered ciphertext")
	}

	// Decryption at the wrong nonce (replay) must also fail — the responder
	// already consumed nonce 0 above, so no matching plaintext exists.
	if _, err := responder.RecvCipher.DecryptWithAd(nil, ct); err == nil {
		t.Error("expected auth failure on reused/incremented nonce")
	}
}

func TestInvalidPskLengthRejected(t *testing.T) {
	for _, n := range []int{0, 31, 33} {
		if _, err := NewHandshakeState(Initiator, make([]byte, n), nil); err != ErrInvalidPskLength {
			t.Errorf("psk length %d: got err %v, want ErrInvalidPskLength", n, err)
		}
	}
}

func TestHandshakeCompleteRejectsFurtherMessages(t *testing.T) {
	psk := zeroPSK()
	initiator, _ := NewHandshakeState(Initiator, psk, nil)
	responder, _ := NewHandshakeState(Responder, psk, nil)

	msg1, _ := initiator.WriteMessage(nil)
	_, _ = responder.ReadMessage(msg1)
	msg2, _ := responder.WriteMessage(nil)
	_, _ = initiator.ReadMessage(msg2)

	if _, err := initiator.WriteMessage(nil); err != ErrHandshakeComplete {
		t.Errorf("got %v, want ErrHandshakeComplete", err)
	}
	if _, err := responder.ReadMessage(msg1); err != ErrHandshakeComplete {
		t.Errorf("got %v, want ErrHandshakeComplete", err)
	}
}
