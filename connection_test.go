package haclient

import (
	"net"
	"testing"
	"time"

	"github.com/gosuda/haclient/internal/entities"
	"github.com/gosuda/haclient/internal/wire"
)

// TestPlaintextHappyPath drives a Client against an in-process fake device
// over net.Pipe and asserts it reaches StateConnected after the HELLO/
// CONNECT round trip, without a configured PSK (scenario S1).
func TestPlaintextHappyPath(t *testing.T) {
	clientConn, deviceConn := net.Pipe()
	dial := func() (net.Conn, error) { return clientConn, nil }

	c := NewClient(ClientConfig{Host: "device", Logger: noopLogger{}}, dial)

	go runFakeDeviceHelloConnect(t, deviceConn)

	if err := c.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer c.Disconnect("test done")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-c.Events():
			if ev.Kind == EventConnect {
				if ev.Encrypted {
					t.Error("expected an unencrypted session")
				}
				if got := c.State(); got != StateConnected {
					t.Errorf("state = %v, want StateConnected", got)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for EventConnect")
		}
	}
}

// runFakeDeviceHelloConnect plays the device side of the plaintext HELLO and
// CONNECT exchange, then drains (and discards) whatever the client writes
// next so its unbuffered net.Pipe writes never block.
func runFakeDeviceHelloConnect(t *testing.T, conn net.Conn) {
	buf := make([]byte, 4096)

	n, err := conn.Read(buf)
	if err != nil {
		t.Errorf("fake device: read hello request: %v", err)
		return
	}
	frame, _, ok, err := wire.TryDecodePlaintext(buf[:n])
	if err != nil || !ok || frame.MessageType != msgHelloRequest {
		t.Errorf("fake device: unexpected hello request: ok=%v err=%v frame=%+v", ok, err, frame)
		return
	}

	resp := wire.AppendUint32(nil, 1, ProtocolVersionMajor)
	resp = wire.AppendUint32(resp, 2, ProtocolVersionMinor)
	if _, err := conn.Write(wire.EncodePlaintextFrame(msgHelloResponse, resp)); err != nil {
		t.Errorf("fake device: write hello response: %v", err)
		return
	}

	n, err = conn.Read(buf)
	if err != nil {
		t.Errorf("fake device: read connect request: %v", err)
		return
	}
	frame, _, ok, err = wire.TryDecodePlaintext(buf[:n])
	if err != nil || !ok || frame.MessageType != msgConnectRequest {
		t.Errorf("fake device: unexpected connect request: ok=%v err=%v frame=%+v", ok, err, frame)
		return
	}
	if _, err := conn.Write(wire.EncodePlaintextFrame(msgConnectResponse, nil)); err != nil {
		t.Errorf("fake device: write connect response: %v", err)
		return
	}

	for {
		if _, err := conn.Read(buf); err != nil {
			return
		}
	}
}

// TestReconnectAfterDisconnect asserts that Connect() following a prior
// Disconnect() succeeds and re-runs the full HELLO/CONNECT exchange, rather
// than being permanently rejected by a stale destroyed flag (spec §8's
// connect-after-disconnect round-trip law).
func TestReconnectAfterDisconnect(t *testing.T) {
	var deviceConns []net.Conn
	dial := func() (net.Conn, error) {
		clientConn, deviceConn := net.Pipe()
		deviceConns = append(deviceConns, deviceConn)
		// Connect writes HELLO before returning and net.Pipe is unbuffered,
		// so the fake device must already be reading when dial returns.
		go runFakeDeviceHelloConnect(t, deviceConn)
		return clientConn, nil
	}

	c := NewClient(ClientConfig{Host: "device", Logger: noopLogger{}}, dial)

	connectAndAwaitEvent := func(round int) {
		if err := c.Connect(); err != nil {
			t.Fatalf("connect #%d: %v", round, err)
		}
		if len(deviceConns) != round {
			t.Fatalf("connect #%d: dialed %d times", round, len(deviceConns))
		}

		deadline := time.After(2 * time.Second)
		for {
			select {
			case ev := <-c.Events():
				if ev.Kind == EventConnect {
					return
				}
			case <-deadline:
				t.Fatalf("connect #%d: timed out waiting for EventConnect", round)
			}
		}
	}

	connectAndAwaitEvent(1)
	if got := c.State(); got != StateConnected {
		t.Fatalf("state after first connect = %v, want StateConnected", got)
	}

	c.Disconnect("round trip test")
	if got := c.State(); got != StateFailed {
		t.Fatalf("state after disconnect = %v, want StateFailed", got)
	}

	// A second Connect() must not be rejected by a stale destroyed flag.
	connectAndAwaitEvent(2)
	if got := c.State(); got != StateConnected {
		t.Fatalf("state after reconnect = %v, want StateConnected", got)
	}
	c.Disconnect("test done")
}

// TestCoverTelemetryDispatch drives a CoverState frame through the
// dispatcher and asserts the decoded Telemetry reaches the per-type "cover"
// channel with the entity resolved from the registry (scenario S5).
func TestCoverTelemetryDispatch(t *testing.T) {
	c := newTestClient(noopLogger{})
	c.registry.Register(entities.Entity{Key: 7, ObjectID: "blinds", Type: "cover"})

	ch := c.TelemetryChannel("cover")

	payload := wire.AppendFixed32(nil, 1, 7)
	payload = wire.AppendFloat32(payload, 3, 0.5)
	payload = wire.AppendFloat32(payload, 4, 0.25)
	payload = wire.AppendUint32(payload, 5, 1)

	c.handleMessage(msgCoverState, payload)

	select {
	case tel := <-ch:
		if tel.Type != "cover" || tel.Key != 7 || tel.Cover == nil {
			t.Fatalf("got %+v", tel)
		}
		if tel.Cover.Position != 0.5 || tel.Cover.Tilt != 0.25 {
			t.Errorf("got cover state %+v", tel.Cover)
		}
		if tel.Entity.ObjectID != "blinds" {
			t.Errorf("expected resolved entity, got %+v", tel.Entity)
		}
	default:
		t.Fatal("expected telemetry on the cover channel")
	}
}
