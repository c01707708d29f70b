package haclient

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/gosuda/haclient/internal/entities"
	"github.com/gosuda/haclient/internal/noiseproto"
	"github.com/gosuda/haclient/internal/wire"
)

// ConnState is the connection's tagged-variant state, per spec §3.
type ConnState int

const (
	StateInitial ConnState = iota
	StateTryingNoise
	StateTryingPlaintext
	StateConnected
	StateFailed
)

func (s ConnState) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateTryingNoise:
		return "trying_noise"
	case StateTryingPlaintext:
		return "trying_plaintext"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// noisePhase is the orthogonal handshake phase within the Noise state.
type noisePhase int

const (
	phaseHello noisePhase = iota
	phaseHandshake
	phaseReady
	phaseClosed
)

// Client is a connection to a single device. One Client = one device; it is
// not safe to share a Client across devices (spec §1 Non-goals). All
// mutable state is guarded by mu, matching the "guard the entire client
// with a single mutex" concurrency strategy of spec §5.
type Client struct {
	cfg ClientConfig

	mu    sync.Mutex
	state ConnState
	phase noisePhase

	conn    net.Conn
	dial    func() (net.Conn, error)
	recvBuf []byte

	hs           *noiseproto.HandshakeState
	sendCipher   *noiseproto.CipherState
	recvCipher   *noiseproto.CipherState
	pskRaw       []byte
	hasPSK       bool
	encrypted    bool
	helloMinor   uint32

	registry    *entities.Registry
	services    *entities.ServiceRegistry
	camera      *cameraReassembly
	deviceInfo  *DeviceInfo
	listBuffer  []Entity

	timer   *time.Timer
	timerMu sync.Mutex

	events     chan Event
	typeChans  map[string]chan Telemetry
	destroyed  bool

	noiseKeyWait chan bool
}

// NewClient constructs a Client (not yet connected) with the given dialer.
// dial is the out-of-scope "byte-stream endpoint" collaborator: this core
// never performs its own DNS resolution, it only consumes what dial hands
// back (spec §1).
func NewClient(cfg ClientConfig, dial func() (net.Conn, error)) *Client {
	cfg = applyDefaults(cfg)
	if dial == nil {
		dial = func() (net.Conn, error) {
			return net.DialTimeout("tcp", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), cfg.HandshakeTimeout)
		}
	}
	return &Client{
		cfg:       cfg,
		dial:      dial,
		state:     StateInitial,
		registry:  entities.NewRegistry(),
		services:  entities.NewServiceRegistry(),
		camera:    newCameraReassembly(),
		events:    make(chan Event, 64),
		typeChans: make(map[string]chan Telemetry),
	}
}

// Events returns the generic tagged-union event channel.
func (c *Client) Events() <-chan Event { return c.events }

// TelemetryChannel returns (creating if necessary) the per-entity-type
// convenience projection of the telemetry channel, e.g. "switch", "light".
func (c *Client) TelemetryChannel(entityType string) <-chan Telemetry {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.typeChans[entityType]
	if !ok {
		ch = make(chan Telemetry, 32)
		c.typeChans[entityType] = ch
	}
	return ch
}

func (c *Client) emit(ev Event) {
	ev.At = time.Now()
	select {
	case c.events <- ev:
	default:
	}
}

func (c *Client) emitTelemetry(t Telemetry) {
	c.emit(Event{Kind: EventTelemetry, Telemetry: &t})
	if ch, ok := c.typeChans[t.Type]; ok {
		select {
		case ch <- t:
		default:
		}
	}
}

// Connect dials the device and runs the adaptive encryption negotiation of
// spec §4.4: if a valid PSK is configured it first attempts Noise, falling
// back to plaintext on a handful of failure signals; otherwise it goes
// straight to plaintext.
func (c *Client) Connect() error {
	c.mu.Lock()
	if c.state == StateConnected {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	// A prior disconnect only tears down that connection's state; it never
	// makes the Client permanently unusable, so connect-after-disconnect
	// re-initializes everything below exactly like a first connect (spec §8).
	c.destroyed = false
	c.registry.Reset()
	c.services.Reset()
	c.camera.reset()
	c.recvBuf = nil
	c.deviceInfo = nil
	c.listBuffer = nil

	psk, ok := decodePSK(c.cfg.PSK)
	c.hasPSK = ok
	c.pskRaw = psk
	c.mu.Unlock()

	conn, err := c.dial()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	if c.hasPSK {
		c.state = StateTryingNoise
		c.phase = phaseHello
	} else {
		c.state = StateTryingPlaintext
	}
	c.mu.Unlock()

	c.armTimer(c.cfg.HandshakeTimeout)

	if c.hasPSK {
		if err := c.sendRaw(mustEnvelope(nil)); err != nil {
			return c.fail(err)
		}
	} else {
		if err := c.sendPlaintext(msgHelloRequest, c.encodeHelloRequest()); err != nil {
			return c.fail(err)
		}
	}

	go c.readLoop()
	return nil
}

func mustEnvelope(payload []byte) []byte {
	b, err := wire.EncodeEncryptedEnvelope(payload)
	if err != nil {
		// payload is always empty or well under the 65535 ceiling here.
		panic(err)
	}
	return b
}

func (c *Client) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnectLocked(err.Error())
	return err
}

// readLoop is the sole reader goroutine; it feeds bytes into the
// mutex-guarded state machine, preserving the "bytes processed in arrival
// order" guarantee of spec §5 even though the read syscall itself runs
// off the main goroutine.
func (c *Client) readLoop() {
	buf := make([]byte, 4096)
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return
	}
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			c.mu.Lock()
			if !c.destroyed && c.conn == conn {
				c.recvBuf = append(c.recvBuf, buf[:n]...)
				func() {
					defer func() {
						if r := recover(); r != nil {
							c.cfg.Logger.Error("frame processing panicked, dropping buffer", "panic", r)
							c.recvBuf = nil
						}
					}()
					c.processBuffer()
				}()
			}
			c.mu.Unlock()
		}
		if err != nil {
			c.mu.Lock()
			// A socket already replaced by the plaintext fallback (or by a
			// later Connect) no longer speaks for the client.
			if !c.destroyed && c.conn == conn {
				c.handleSocketError(err)
			}
			c.mu.Unlock()
			return
		}
	}
}

func (c *Client) handleSocketError(err error) {
	reason := classifySocketError(err)
	switch c.state {
	case StateTryingNoise:
		c.cfg.Logger.Warn("noise attempt closed, falling back to plaintext", "err", err)
		c.fallbackToPlaintextLocked()
	default:
		c.disconnectLocked(reason)
	}
}

func classifySocketError(err error) string {
	if errors.Is(err, net.ErrClosed) {
		return "connection closed"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch {
		case opErr.Timeout():
			return "timed out"
		default:
			return "connection error: " + opErr.Err.Error()
		}
	}
	return "unexpected close: " + err.Error()
}

// fallbackToPlaintextLocked transitions TryingNoise -> TryingPlaintext on
// TcpClosed/TimerElapsed, per spec §4.4. Exactly one reconnect attempt is
// made; no extra disconnect event fires for the internal fallback itself
// (scenario S3).
func (c *Client) fallbackToPlaintextLocked() {
	c.closeConnLocked()
	c.recvBuf = nil
	c.hs = nil
	c.phase = phaseClosed

	conn, err := c.dial()
	if err != nil {
		c.disconnectLocked("connection timeout")
		return
	}
	c.conn = conn
	c.state = StateTryingPlaintext
	c.armTimer(c.cfg.HandshakeTimeout)
	go c.readLoop()

	if err := c.sendPlaintext(msgHelloRequest, c.encodeHelloRequest()); err != nil {
		c.disconnectLocked(err.Error())
	}
}

func (c *Client) armTimer(d time.Duration) {
	c.timerMu.Lock()
	defer c.timerMu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.onTimerElapsed()
	})
}

func (c *Client) disarmTimer() {
	c.timerMu.Lock()
	defer c.timerMu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Client) onTimerElapsed() {
	if c.destroyed {
		return
	}
	switch c.state {
	case StateTryingNoise:
		c.fallbackToPlaintextLocked()
	case StateTryingPlaintext:
		c.disconnectLocked("connection timeout")
	}
}

func (c *Client) closeConnLocked() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

// sendRaw writes an already-framed byte slice to the socket, logging and
// skipping writes to a closed/destroyed connection (spec §4.8 failure
// semantics for writes).
func (c *Client) sendRaw(b []byte) error {
	if c.destroyed {
		return ErrDestroyed
	}
	if c.conn == nil {
		c.cfg.Logger.Warn("write skipped: connection not open")
		return ErrNotConnected
	}
	_, err := c.conn.Write(b)
	return err
}

func (c *Client) sendPlaintext(msgType uint32, payload []byte) error {
	return c.sendRaw(wire.EncodePlaintextFrame(msgType, payload))
}

// sendMessage sends a message through whichever framing is currently
// active: plaintext once Connected(false), or the Noise-encrypted inner
// framing once Ready.
func (c *Client) sendMessage(msgType uint16, payload []byte) error {
	if c.destroyed {
		return ErrDestroyed
	}
	if c.encrypted {
		inner := wire.EncodeInnerMessage(msgType, payload)
		ct, err := c.sendCipher.EncryptWithAd(nil, inner)
		if err != nil {
			return err
		}
		env, err := wire.EncodeEncryptedEnvelope(ct)
		if err != nil {
			return err
		}
		return c.sendRaw(env)
	}
	return c.sendPlaintext(uint32(msgType), payload)
}

func (c *Client) encodeHelloRequest() []byte {
	dst := wire.AppendString(nil, 1, c.cfg.ClientID)
	dst = wire.AppendUint32(dst, 2, ProtocolVersionMajor)
	dst = wire.AppendUint32(dst, 3, ProtocolVersionMinor)
	return dst
}

// processBuffer drains as many complete frames as are available, per the
// peek-then-consume discriminator logic of spec §4.2.
func (c *Client) processBuffer() {
	for {
		if len(c.recvBuf) == 0 {
			return
		}
		switch wire.Peek(c.recvBuf) {
		case wire.DemuxNeedMore:
			return
		case wire.DemuxPlaintext:
			frame, n, ok, err := wire.TryDecodePlaintext(c.recvBuf)
			if err != nil {
				c.cfg.Logger.Error("framing error, resynchronizing", "err", err)
				c.recvBuf = nil
				return
			}
			if !ok {
				return
			}
			c.recvBuf = c.recvBuf[n:]
			c.dispatchPlaintext(frame)
		case wire.DemuxEncrypted:
			env, n, ok, err := wire.TryDecodeEncrypted(c.recvBuf)
			if err != nil {
				c.cfg.Logger.Error("oversize encrypted frame", "err", err)
				c.recvBuf = nil
				return
			}
			if !ok {
				return
			}
			c.recvBuf = c.recvBuf[n:]
			if !c.hasPSK && c.state == StateTryingPlaintext {
				c.disconnectLocked("encryption key missing")
				return
			}
			c.dispatchEncryptedEnvelope(env.Payload)
		case wire.DemuxUnknown:
			c.cfg.Logger.Error("unknown frame discriminator, dropping buffer")
			c.recvBuf = nil
			return
		}
	}
}

func (c *Client) dispatchPlaintext(frame wire.PlaintextFrame) {
	c.handleMessage(frame.MessageType, frame.Payload)
}

func (c *Client) dispatchEncryptedEnvelope(payload []byte) {
	if c.phase == phaseReady {
		pt, err := c.recvCipher.DecryptWithAd(nil, payload)
		if err != nil {
			if c.state == StateConnected {
				c.disconnectLocked("encryption failure")
			} else {
				c.disconnectLocked("encryption key invalid")
			}
			return
		}
		hdr, body, err := wire.DecodeInnerMessage(pt)
		if err != nil {
			c.cfg.Logger.Error("malformed inner message", "err", err)
			return
		}
		c.handleMessage(uint32(hdr.MessageType), body)
		return
	}
	c.handleHandshakeFrame(payload)
}

// handleHandshakeFrame processes one frame of the Noise handshake
// sub-protocol: Hello (protocol selection) then Handshake (NNpsk0
// messages), per spec §4.3's wire shape.
func (c *Client) handleHandshakeFrame(payload []byte) {
	switch c.phase {
	case phaseHello:
		if len(payload) < 1 {
			c.disconnectLocked("encryption key invalid")
			return
		}
		version := payload[0]
		if version != 1 {
			c.disconnectLocked(ErrUnsupportedProtocol.Error())
			return
		}
		rest := payload[1:]
		if idx := bytes.IndexByte(rest, 0); idx >= 0 {
			serverName := string(rest[:idx])
			if c.cfg.ExpectedServerName != "" && serverName != c.cfg.ExpectedServerName {
				c.disconnectLocked(ErrServerNameMismatch.Error())
				return
			}
		}
		hs, err := noiseproto.NewHandshakeState(noiseproto.Initiator, c.pskRaw, nil)
		if err != nil {
			c.disconnectLocked("encryption key invalid")
			return
		}
		c.hs = hs
		msg1, err := c.hs.WriteMessage(nil)
		if err != nil {
			c.disconnectLocked("encryption key invalid")
			return
		}
		out := append([]byte{0x00}, msg1...)
		if err := c.sendRaw(mustEnvelope(out)); err != nil {
			c.disconnectLocked(err.Error())
			return
		}
		c.phase = phaseHandshake

	case phaseHandshake:
		if len(payload) < 1 {
			c.disconnectLocked("encryption key invalid")
			return
		}
		status := payload[0]
		if status != 0x00 {
			c.cfg.Logger.Warn("noise handshake rejected by device", "reason", string(payload[1:]))
			c.disconnectLocked("encryption key invalid")
			return
		}
		if _, err := c.hs.ReadMessage(payload[1:]); err != nil {
			c.disconnectLocked("encryption key invalid")
			return
		}
		c.sendCipher = &c.hs.SendCipher
		c.recvCipher = &c.hs.RecvCipher
		c.encrypted = true
		c.phase = phaseReady
		c.hs = nil // handshake-only state dropped; cipher states outlive it.
		c.disarmTimer()
		if err := c.sendMessage(msgHelloRequest, c.encodeHelloRequest()); err != nil {
			c.disconnectLocked(err.Error())
		}
	}
}

// handleMessage is the protocol dispatcher of spec §4.5.
func (c *Client) handleMessage(msgType uint32, payload []byte) {
	c.emit(Event{Kind: EventMessage, MessageType: msgType, Payload: payload})

	if entityType, ok := listEntitiesMessageTypes[msgType]; ok {
		e, err := decodeListEntitiesCommon(entityType, payload)
		if err != nil {
			c.cfg.Logger.Error("malformed list-entities message", "type", msgType, "err", err)
			return
		}
		c.registry.Register(entities.Entity{Key: e.Key, Name: e.Name, ObjectID: e.ObjectID, Type: e.Type, DeviceID: e.DeviceID})
		c.listBuffer = append(c.listBuffer, e)
		return
	}

	if fn, ok := stateDecoders[msgType]; ok {
		t, err := fn(c, payload)
		if err != nil {
			c.cfg.Logger.Error("malformed state message", "type", msgType, "err", err)
			return
		}
		c.emitTelemetry(t)
		return
	}

	switch msgType {
	case msgHelloResponse:
		c.onHelloResponse(payload)
	case msgConnectResponse:
		c.onConnectResponse()
	case msgDisconnectRequest:
		_ = c.sendMessage(msgDisconnectResponse, nil)
		c.disconnectLocked("")
	case msgDisconnectResponse:
		c.disconnectLocked("")
	case msgPingRequest:
		_ = c.sendMessage(msgPingResponse, nil)
		c.emit(Event{Kind: EventHeartbeat})
	case msgPingResponse:
		c.emit(Event{Kind: EventHeartbeat})
	case msgDeviceInfoResponse:
		c.onDeviceInfoResponse(payload)
	case msgListEntitiesServices:
		svc, err := decodeService(payload)
		if err == nil {
			c.services.Register(entities.Service{Key: svc.Key, Name: svc.Name, Args: toEntitiesArgs(svc.Args)})
			c.emit(Event{Kind: EventServiceDiscovered, Service: &svc})
		}
	case msgListEntitiesDone:
		c.onListEntitiesDone()
	case msgGetTimeRequest:
		c.onGetTimeRequest()
	case msgGetTimeResponse:
		c.onGetTimeResponse(payload)
	case msgSubscribeLogsResponse:
		c.onLogMessage(payload)
	case msgCameraImageResponse:
		c.onCameraImageResponse(payload)
	case msgVoiceAssistantRequest:
		c.onVoiceAssistantRequest(payload)
	case msgVoiceAssistantConfigurationResponse:
		c.onVoiceAssistantConfiguration(payload)
	case msgVoiceAssistantAnnounceFinished:
		c.emit(Event{Kind: EventVoiceAssistantAnnounceFinished})
	case msgNoiseEncryptionSetKeyResponse:
		c.onNoiseKeySetResponse(payload)
	default:
		c.cfg.Logger.Debug("unhandled message type", "type", msgType)
	}
}

func toEntitiesArgs(args []ServiceArg) []entities.ServiceArg {
	out := make([]entities.ServiceArg, len(args))
	for i, a := range args {
		out[i] = entities.ServiceArg{Name: a.Name, Type: int(a.Type)}
	}
	return out
}

func (c *Client) onHelloResponse(payload []byte) {
	f, err := wire.Decode(payload)
	if err != nil {
		c.cfg.Logger.Error("malformed hello response", "err", err)
		return
	}
	major := f.GetUint32(1)
	minor := f.GetUint32(2)
	if major != ProtocolVersionMajor {
		c.disconnectLocked(fmt.Sprintf("%s: %d.%d", ErrUnsupportedProtocol.Error(), major, minor))
		return
	}
	if minor > ProtocolVersionMinor {
		c.cfg.Logger.Warn("device is ahead of client protocol version", "device_minor", minor)
	} else if minor < ProtocolVersionMinor {
		c.cfg.Logger.Warn("device is behind client protocol version, compatibility mode", "device_minor", minor)
	}
	c.helloMinor = minor
	c.disarmTimer()
	c.state = StateConnected
	_ = c.sendMessage(msgConnectRequest, nil)
}

func (c *Client) onConnectResponse() {
	c.emit(Event{Kind: EventConnect, Encrypted: c.encrypted})
	_ = c.sendMessage(msgListEntitiesRequest, nil)
	_ = c.sendMessage(msgDeviceInfoRequest, nil)
}

func (c *Client) onDeviceInfoResponse(payload []byte) {
	f, err := wire.Decode(payload)
	if err != nil {
		return
	}
	di := &DeviceInfo{
		UsesPassword:    f.GetBool(1),
		Name:            f.GetString(2),
		MacAddress:      f.GetString(3),
		ESPHomeVersion:  f.GetString(4),
		CompilationTime: f.GetString(5),
		Model:           f.GetString(6),
		HasDeepSleep:    f.GetBool(7),
		ProjectName:     f.GetString(8),
		ProjectVersion:  f.GetString(9),
		WebserverPort:   f.GetUint32(10),
		Manufacturer:    f.GetString(12),
		FriendlyName:    f.GetString(14),
	}
	c.deviceInfo = di
	c.emit(Event{Kind: EventDeviceInfo, DeviceInfo: di})
}

func (c *Client) onListEntitiesDone() {
	list := c.listBuffer
	c.listBuffer = nil
	c.emit(Event{Kind: EventEntities, Entities: list})
	if svcs := c.services.All(); len(svcs) > 0 {
		c.emit(Event{Kind: EventServices, Services: fromEntitiesServices(svcs)})
	}
	_ = c.sendMessage(msgSubscribeStatesRequest, nil)
}

func fromEntitiesServices(in []entities.Service) []Service {
	out := make([]Service, len(in))
	for i, s := range in {
		args := make([]ServiceArg, len(s.Args))
		for j, a := range s.Args {
			args[j] = ServiceArg{Name: a.Name, Type: ServiceArgType(a.Type)}
		}
		out[i] = Service{Key: s.Key, Name: s.Name, Args: args}
	}
	return out
}

func (c *Client) onGetTimeRequest() {
	var payload []byte
	payload = wire.AppendFixed32(payload, 1, uint32(time.Now().Unix()))
	_ = c.sendMessage(msgGetTimeResponse, payload)
}

func (c *Client) onGetTimeResponse(payload []byte) {
	f, err := wire.Decode(payload)
	if err != nil {
		return
	}
	c.emit(Event{Kind: EventTimeSync, EpochSeconds: f.GetUint32(1)})
}

func (c *Client) onLogMessage(payload []byte) {
	f, err := wire.Decode(payload)
	if err != nil {
		return
	}
	c.emit(Event{Kind: EventLog, Log: &LogMessage{Level: f.GetInt32(1), Message: f.GetString(3)}})
}

func (c *Client) onCameraImageResponse(payload []byte) {
	f, err := wire.Decode(payload)
	if err != nil {
		return
	}
	key := f.GetUint32(1)
	data := f.GetBytes(2)
	done := f.GetBool(3)
	if img, ready := c.camera.addChunk(key, data, done); ready {
		c.emit(Event{Kind: EventCamera, Camera: &CameraImage{Key: key, Data: img}})
	}
}

func (c *Client) onVoiceAssistantRequest(payload []byte) {
	f, err := wire.Decode(payload)
	if err != nil {
		return
	}
	req := &VoiceAssistantRequest{
		Start:          f.GetBool(1),
		Wakeword:       f.GetString(3),
		ConversationID: f.GetString(4),
		Flags:          f.GetUint32(5),
	}
	c.emit(Event{Kind: EventVoiceAssistantRequest, VoiceAssistantRequest: req})
}

func (c *Client) onVoiceAssistantConfiguration(payload []byte) {
	f, err := wire.Decode(payload)
	if err != nil {
		return
	}
	cfg := &VoiceAssistantConfiguration{MaxActiveWakeWords: f.GetUint32(3)}
	for _, v := range f[1] {
		if v.Kind == wire.WireBytes {
			cfg.AvailableWakeWords = append(cfg.AvailableWakeWords, string(v.Bytes))
		}
	}
	for _, v := range f[2] {
		if v.Kind == wire.WireBytes {
			cfg.ActiveWakeWords = append(cfg.ActiveWakeWords, string(v.Bytes))
		}
	}
	c.emit(Event{Kind: EventVoiceAssistantConfiguration, VoiceAssistantConfig: cfg})
}

func (c *Client) onNoiseKeySetResponse(payload []byte) {
	f, _ := wire.Decode(payload)
	ok := f.GetBool(1)
	c.emit(Event{Kind: EventNoiseKeySet, NoiseKeySetOK: ok})
	if c.noiseKeyWait != nil {
		select {
		case c.noiseKeyWait <- ok:
		default:
		}
	}
}

// disconnectLocked tears down the connection synchronously and emits a
// terminating disconnect event; no further events are emitted afterward
// and pending timers are canceled (spec §5, §8 invariant 7). Must be
// called with c.mu held.
func (c *Client) disconnectLocked(reason string) {
	if c.destroyed {
		return
	}
	c.disarmTimer()
	c.closeConnLocked()
	if c.hs != nil {
		c.hs = nil
	}
	c.sendCipher = nil
	c.recvCipher = nil
	c.camera.reset()
	c.state = StateFailed
	c.destroyed = true
	c.emit(Event{Kind: EventDisconnect, Reason: reason})
}

// Disconnect is the public, synchronous teardown of spec §5: cancels
// timers, detaches the reader, drops handshake/cipher state, closes the
// socket, clears camera buffers, and emits a terminating disconnect event.
// Subsequent API calls on this Client are no-ops until the next Connect,
// which re-initializes it.
func (c *Client) Disconnect(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnectLocked(reason)
}

// State returns the current connection state.
func (c *Client) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// GetDeviceInfo returns the most recently received device info, if any.
func (c *Client) GetDeviceInfo() *DeviceInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deviceInfo
}
