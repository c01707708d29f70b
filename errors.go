package haclient

import "errors"

// Sentinel errors. Some are returned directly to callers (SetNoiseEncryptionKey,
// sendRaw/sendMessage) and matched with errors.Is; others never reach the host
// as an error value and are instead folded into a disconnect reason string via
// Error(), per spec §7's propagation policy.
var (
	ErrInvalidPskLength    = errors.New("haclient: psk must decode to exactly 32 bytes")
	ErrAlreadyConnected    = errors.New("haclient: client already connected")
	ErrNotConnected        = errors.New("haclient: client not connected")
	ErrDestroyed           = errors.New("haclient: client has been disconnected and destroyed")
	ErrUnknownEntity       = errors.New("haclient: unknown entity id")
	ErrNoCommandOptionSet  = errors.New("haclient: command requires at least one optional field")
	ErrNoiseKeySetTimeout  = errors.New("haclient: noise encryption key set timed out")
	ErrServerNameMismatch  = errors.New("haclient: expected server name mismatch")
	ErrUnsupportedProtocol = errors.New("haclient: unsupported noise protocol version")
)
