package haclient

import (
	"encoding/base64"
	"time"
)

// ClientConfig configures a Client. Defaults apply via applyDefaults; a
// caller only needs to set Host (and PSK, for an encrypted session).
type ClientConfig struct {
	Host string
	Port int

	// ClientID is sent as client_info in HELLO_REQUEST.
	ClientID string

	// PSK is the base64-encoded pre-shared key. It decodes to exactly 32
	// bytes or the client behaves as if no PSK were supplied at all
	// (plaintext-only), per spec §3.
	PSK string

	// ExpectedServerName, if set, must match the name the device offers
	// during the Noise handshake's protocol-selection message, or the
	// handshake is aborted.
	ExpectedServerName string

	// HandshakeTimeout bounds each handshake phase and the plaintext HELLO
	// round trip (default 5s, per spec §4.4).
	HandshakeTimeout time.Duration

	// Logger receives the core's internal log lines. Defaults to a
	// zerolog-backed console logger if nil.
	Logger Logger
}

const (
	defaultClientID         = "esphome-client"
	defaultHandshakeTimeout = 5 * time.Second
)

func applyDefaults(cfg ClientConfig) ClientConfig {
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.ClientID == "" {
		cfg.ClientID = defaultClientID
	}
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = defaultHandshakeTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = NewDefaultLogger()
	}
	return cfg
}

// decodePSK returns the 32 raw PSK bytes and true if encoded is non-empty
// and decodes to exactly 32 bytes; otherwise it returns (nil, false). Connect
// treats a false result for cfg.PSK as no PSK and proceeds plaintext-only,
// per spec §3's PSK invariant.
func decodePSK(encoded string) ([]byte, bool) {
	if encoded == "" {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) != 32 {
		return nil, false
	}
	return raw, true
}
