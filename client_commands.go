package haclient

import (
	"context"
	"time"

	"github.com/gosuda/haclient/internal/wire"
)

// resolve looks up an entity by its host-facing string id. Commands
// targeting an unknown id are logged and silently skipped — spec §4.8's
// non-fatal failure semantics — so every entity-targeting Send* method below
// follows this same pattern: resolve, bail quietly on miss, else encode and
// send.
func (c *Client) resolve(id string) (Entity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.registry.ByStringID(id)
	if !ok {
		c.cfg.Logger.Warn("command targets unknown entity", "id", id, "err", ErrUnknownEntity)
		return Entity{}, false
	}
	return Entity{Key: e.Key, Name: e.Name, ObjectID: e.ObjectID, Type: e.Type, DeviceID: e.DeviceID}, true
}

func (c *Client) sendLocked(msgType uint16, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.sendMessage(msgType, payload); err != nil {
		c.cfg.Logger.Warn("send failed", "type", msgType, "err", err)
	}
}

// SendPing issues PING_REQUEST.
func (c *Client) SendPing() { c.sendLocked(msgPingRequest, nil) }

// SendSwitchCommand sets a switch entity's state.
func (c *Client) SendSwitchCommand(id string, state bool) {
	e, ok := c.resolve(id)
	if !ok {
		return
	}
	c.sendLocked(msgSwitchCommand, encodeSwitchCommand(e.Key, e.DeviceID, state))
}

// SendLightCommand sends a light command; like cover/fan/climate/siren/
// media_player/valve below, opts with no Has* flag set is rejected (logged,
// nothing sent).
func (c *Client) SendLightCommand(id string, opts LightCommandOptions) {
	e, ok := c.resolve(id)
	if !ok {
		return
	}
	payload, err := encodeLightCommand(e.Key, e.DeviceID, opts)
	if err != nil {
		c.cfg.Logger.Warn("light command rejected", "id", id, "err", err)
		return
	}
	c.sendLocked(msgLightCommand, payload)
}

// SendCoverCommand sends a cover command; at least one of Position/Tilt/
// Stop must be set (spec §4.8).
func (c *Client) SendCoverCommand(id string, opts CoverCommandOptions) {
	e, ok := c.resolve(id)
	if !ok {
		return
	}
	payload, err := encodeCoverCommand(e.Key, e.DeviceID, opts)
	if err != nil {
		c.cfg.Logger.Warn("cover command rejected", "id", id, "err", err)
		return
	}
	c.sendLocked(msgCoverCommand, payload)
}

// SendFanCommand sends a fan command; at least one optional field required.
func (c *Client) SendFanCommand(id string, opts FanCommandOptions) {
	e, ok := c.resolve(id)
	if !ok {
		return
	}
	payload, err := encodeFanCommand(e.Key, e.DeviceID, opts)
	if err != nil {
		c.cfg.Logger.Warn("fan command rejected", "id", id, "err", err)
		return
	}
	c.sendLocked(msgFanCommand, payload)
}

// SendClimateCommand sends a climate command; at least one optional field
// required.
func (c *Client) SendClimateCommand(id string, opts ClimateCommandOptions) {
	e, ok := c.resolve(id)
	if !ok {
		return
	}
	payload, err := encodeClimateCommand(e.Key, e.DeviceID, opts)
	if err != nil {
		c.cfg.Logger.Warn("climate command rejected", "id", id, "err", err)
		return
	}
	c.sendLocked(msgClimateCommand, payload)
}

// SendSirenCommand sends a siren command; at least one optional field
// required.
func (c *Client) SendSirenCommand(id string, opts SirenCommandOptions) {
	e, ok := c.resolve(id)
	if !ok {
		return
	}
	payload, err := encodeSirenCommand(e.Key, e.DeviceID, opts)
	if err != nil {
		c.cfg.Logger.Warn("siren command rejected", "id", id, "err", err)
		return
	}
	c.sendLocked(msgSirenCommand, payload)
}

// SendMediaPlayerCommand sends a media_player command; at least one of
// Command/Volume/MediaURL is required.
func (c *Client) SendMediaPlayerCommand(id string, opts MediaPlayerCommandOptions) {
	e, ok := c.resolve(id)
	if !ok {
		return
	}
	payload, err := encodeMediaPlayerCommand(e.Key, e.DeviceID, opts)
	if err != nil {
		c.cfg.Logger.Warn("media_player command rejected", "id", id, "err", err)
		return
	}
	c.sendLocked(msgMediaPlayerCommand, payload)
}

// SendValveCommand sends a valve command; at least one of Position/Stop is
// required.
func (c *Client) SendValveCommand(id string, opts ValveCommandOptions) {
	e, ok := c.resolve(id)
	if !ok {
		return
	}
	payload, err := encodeValveCommand(e.Key, e.DeviceID, opts)
	if err != nil {
		c.cfg.Logger.Warn("valve command rejected", "id", id, "err", err)
		return
	}
	c.sendLocked(msgValveCommand, payload)
}

func (c *Client) SendNumberCommand(id string, state float32) {
	if e, ok := c.resolve(id); ok {
		c.sendLocked(msgNumberCommand, encodeNumberCommand(e.Key, e.DeviceID, state))
	}
}

func (c *Client) SendSelectCommand(id string, state string) {
	if e, ok := c.resolve(id); ok {
		c.sendLocked(msgSelectCommand, encodeSelectCommand(e.Key, e.DeviceID, state))
	}
}

func (c *Client) SendTextCommand(id string, state string) {
	if e, ok := c.resolve(id); ok {
		c.sendLocked(msgTextCommand, encodeTextCommand(e.Key, e.DeviceID, state))
	}
}

func (c *Client) SendDateCommand(id string, year, month, day uint32) {
	if e, ok := c.resolve(id); ok {
		c.sendLocked(msgDateCommand, encodeDateCommand(e.Key, e.DeviceID, year, month, day))
	}
}

func (c *Client) SendTimeCommand(id string, hour, minute, second uint32) {
	if e, ok := c.resolve(id); ok {
		c.sendLocked(msgTimeCommand, encodeTimeCommand(e.Key, e.DeviceID, hour, minute, second))
	}
}

func (c *Client) SendDateTimeCommand(id string, epochSeconds uint32) {
	if e, ok := c.resolve(id); ok {
		c.sendLocked(msgDatetimeCommand, encodeDateTimeCommand(e.Key, e.DeviceID, epochSeconds))
	}
}

func (c *Client) SendButtonCommand(id string) {
	if e, ok := c.resolve(id); ok {
		c.sendLocked(msgButtonCommand, encodeButtonCommand(e.Key))
	}
}

func (c *Client) SendLockCommand(id string, command int32, code string) {
	if e, ok := c.resolve(id); ok {
		c.sendLocked(msgLockCommand, encodeLockCommand(e.Key, e.DeviceID, command, code != "", code))
	}
}

func (c *Client) SendAlarmControlPanelCommand(id string, command int32, code string) {
	if e, ok := c.resolve(id); ok {
		c.sendLocked(msgAlarmControlPanelCommand, encodeAlarmControlPanelCommand(e.Key, e.DeviceID, command, code))
	}
}

// ExecuteService invokes a device-exposed service by name.
func (c *Client) ExecuteService(name string, args []ExecuteServiceArg) {
	c.mu.Lock()
	svc, ok := c.services.ByName(name)
	c.mu.Unlock()
	if !ok {
		c.cfg.Logger.Warn("execute_service targets unknown service", "name", name)
		return
	}
	c.sendLocked(msgExecuteService, encodeExecuteService(svc.Key, args))
}

// RequestCameraImage requests a single frame or, with stream=true, a
// continuous stream from a camera entity.
func (c *Client) RequestCameraImage(id string, stream bool) {
	e, ok := c.resolve(id)
	if !ok {
		return
	}
	c.sendLocked(msgCameraImageRequest, encodeCameraImageRequest(e.Key, !stream, stream))
}

// SubscribeToLogs requests SUBSCRIBE_LOGS_RESPONSE at the given level.
// dumpConfig requests the device also replay its static configuration log
// lines once on subscribe.
func (c *Client) SubscribeToLogs(level int32, dumpConfig bool) {
	dst := wire.AppendZigZag32(nil, 1, level)
	dst = wire.AppendBool(dst, 2, dumpConfig)
	c.sendLocked(msgSubscribeLogsRequest, dst)
}

// SubscribeVoiceAssistant enables or disables the voice-assistant channel.
func (c *Client) SubscribeVoiceAssistant(subscribe bool) {
	dst := wire.AppendBool(nil, 1, subscribe)
	c.sendLocked(msgSubscribeVoiceAssistant, dst)
}

// RequestVoiceAssistantConfiguration asks the device for its wake-word
// configuration.
func (c *Client) RequestVoiceAssistantConfiguration() {
	c.sendLocked(msgVoiceAssistantConfigurationRequest, nil)
}

// SetVoiceAssistantConfiguration sets the active wake words.
func (c *Client) SetVoiceAssistantConfiguration(activeWakeWords []string) {
	var dst []byte
	for _, w := range activeWakeWords {
		dst = wire.AppendString(dst, 1, w)
	}
	c.sendLocked(msgVoiceAssistantSetConfiguration, dst)
}

// SendVoiceAssistantEvent forwards a voice pipeline event back to the
// device.
func (c *Client) SendVoiceAssistantEvent(eventType int32) {
	c.sendLocked(msgVoiceAssistantEvent, wire.AppendZigZag32(nil, 1, eventType))
}

// SendVoiceAssistantResponse replies to VOICE_ASSISTANT_REQUEST.
func (c *Client) SendVoiceAssistantResponse(port uint32, errMsg string) {
	dst := wire.AppendUint32(nil, 1, port)
	if errMsg != "" {
		dst = wire.AppendBool(dst, 2, true)
	}
	c.sendLocked(msgVoiceAssistantResponse, dst)
}

// SendVoiceAssistantAudio forwards a chunk of audio.
func (c *Client) SendVoiceAssistantAudio(data []byte, end bool) {
	dst := wire.AppendBytes(nil, 1, data)
	dst = wire.AppendBool(dst, 2, end)
	c.sendLocked(msgVoiceAssistantAudio, dst)
}

// SendVoiceAssistantTimerEvent forwards a timer event.
func (c *Client) SendVoiceAssistantTimerEvent(eventType int32, timerID string, secondsLeft uint32) {
	dst := wire.AppendZigZag32(nil, 1, eventType)
	dst = wire.AppendString(dst, 2, timerID)
	dst = wire.AppendUint32(dst, 5, secondsLeft)
	c.sendLocked(msgVoiceAssistantTimerEvent, dst)
}

// SendVoiceAssistantAnnounce starts an announcement.
func (c *Client) SendVoiceAssistantAnnounce(mediaID, text string) {
	dst := wire.AppendString(nil, 1, mediaID)
	dst = wire.AppendString(dst, 2, text)
	c.sendLocked(msgVoiceAssistantAnnounceRequest, dst)
}

// SetNoiseEncryptionKey asynchronously rotates the PSK on a device that
// supports it, resolving when NOISE_ENCRYPTION_SET_KEY_RESPONSE arrives or
// after a 5 second timeout. It returns false without sending anything if
// newPSK does not decode to exactly 32 bytes, per spec §7's usage-error
// handling.
func (c *Client) SetNoiseEncryptionKey(ctx context.Context, newPSKBase64 string) (bool, error) {
	raw, ok := decodePSK(newPSKBase64)
	if !ok {
		return false, ErrInvalidPskLength
	}

	c.mu.Lock()
	wait := make(chan bool, 1)
	c.noiseKeyWait = wait
	c.mu.Unlock()

	c.sendLocked(msgNoiseEncryptionSetKeyRequest, encodeNoiseEncryptionSetKeyRequest(raw))

	select {
	case ok := <-wait:
		return ok, nil
	case <-time.After(5 * time.Second):
		return false, ErrNoiseKeySetTimeout
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// --- lookups (spec §6 host-facing surface) ---

func (c *Client) HasEntity(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.HasEntity(id)
}

func (c *Client) EntityByID(id string) (Entity, bool) {
	e, ok := c.resolveQuiet(id)
	return e, ok
}

func (c *Client) resolveQuiet(id string) (Entity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.registry.ByStringID(id)
	if !ok {
		return Entity{}, false
	}
	return Entity{Key: e.Key, Name: e.Name, ObjectID: e.ObjectID, Type: e.Type, DeviceID: e.DeviceID}, true
}

func (c *Client) EntityKey(id string) (uint32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.KeyForID(id)
}

func (c *Client) EntitiesWithIDs() map[string]Entity {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]Entity)
	for _, e := range c.registry.All() {
		out[e.StringID()] = Entity{Key: e.Key, Name: e.Name, ObjectID: e.ObjectID, Type: e.Type, DeviceID: e.DeviceID}
	}
	return out
}

func (c *Client) AvailableEntityIDs() map[string][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.AvailableIDsByType()
}

func (c *Client) GetServices() []Service {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fromEntitiesServices(c.services.All())
}
