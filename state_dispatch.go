package haclient

// stateDecoders maps each *State message type to a function that decodes
// the payload and resolves entity/device_id through the client's registry,
// producing the tagged Telemetry record of spec §4.7.
var stateDecoders = map[uint32]func(*Client, []byte) (Telemetry, error){
	msgBinarySensorState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeBinarySensorState(p)
		return c.buildTelemetry("binary_sensor", key, did, func(t *Telemetry) { t.BinarySensor = st }), err
	},
	msgSensorState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeSensorState(p)
		return c.buildTelemetry("sensor", key, did, func(t *Telemetry) { t.Sensor = st }), err
	},
	msgTextSensorState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeTextSensorState(p)
		return c.buildTelemetry("text_sensor", key, did, func(t *Telemetry) { t.TextSensor = st }), err
	},
	msgSwitchState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeSwitchState(p)
		return c.buildTelemetry("switch", key, did, func(t *Telemetry) { t.Switch = st }), err
	},
	msgCoverState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeCoverState(p)
		return c.buildTelemetry("cover", key, did, func(t *Telemetry) { t.Cover = st }), err
	},
	msgClimateState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeClimateState(p)
		return c.buildTelemetry("climate", key, did, func(t *Telemetry) { t.Climate = st }), err
	},
	msgLightState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeLightState(p)
		return c.buildTelemetry("light", key, did, func(t *Telemetry) { t.Light = st }), err
	},
	msgFanState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeFanState(p)
		return c.buildTelemetry("fan", key, did, func(t *Telemetry) { t.Fan = st }), err
	},
	msgLockState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeLockState(p)
		return c.buildTelemetry("lock", key, did, func(t *Telemetry) { t.Lock = st }), err
	},
	msgSirenState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeSirenState(p)
		return c.buildTelemetry("siren", key, did, func(t *Telemetry) { t.Siren = st }), err
	},
	msgMediaPlayerState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeMediaPlayerState(p)
		return c.buildTelemetry("media_player", key, did, func(t *Telemetry) { t.MediaPlayer = st }), err
	},
	msgNumberState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeNumberState(p)
		return c.buildTelemetry("number", key, did, func(t *Telemetry) { t.Number = st }), err
	},
	msgSelectState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeSelectState(p)
		return c.buildTelemetry("select", key, did, func(t *Telemetry) { t.Select = st }), err
	},
	msgTextState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeTextState(p)
		return c.buildTelemetry("text", key, did, func(t *Telemetry) { t.Text = st }), err
	},
	msgDateState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeDateState(p)
		return c.buildTelemetry("date", key, did, func(t *Telemetry) { t.Date = st }), err
	},
	msgTimeState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeTimeState(p)
		return c.buildTelemetry("time", key, did, func(t *Telemetry) { t.Time = st }), err
	},
	msgDatetimeState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeDateTimeState(p)
		return c.buildTelemetry("datetime", key, did, func(t *Telemetry) { t.DateTime = st }), err
	},
	msgValveState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeValveState(p)
		return c.buildTelemetry("valve", key, did, func(t *Telemetry) { t.Valve = st }), err
	},
	msgAlarmControlPanelState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeAlarmControlPanelState(p)
		return c.buildTelemetry("alarm_control_panel", key, did, func(t *Telemetry) { t.AlarmPanel = st }), err
	},
	msgEventResponse: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeEventState(p)
		return c.buildTelemetry("event", key, did, func(t *Telemetry) { t.Event = st }), err
	},
	msgUpdateState: func(c *Client, p []byte) (Telemetry, error) {
		key, did, st, err := decodeUpdateState(p)
		return c.buildTelemetry("update", key, did, func(t *Telemetry) { t.Update = st }), err
	},
}

// buildTelemetry fills the common Telemetry envelope fields and resolves
// the entity from the registry by key.
func (c *Client) buildTelemetry(entityType string, key uint32, deviceID *uint32, set func(*Telemetry)) Telemetry {
	t := Telemetry{Type: entityType, Key: key, DeviceID: deviceID}
	if e, ok := c.registry.ByKey(key); ok {
		t.Entity = Entity{Key: e.Key, Name: e.Name, ObjectID: e.ObjectID, Type: e.Type, DeviceID: e.DeviceID}
	}
	set(&t)
	return t
}
