package haclient

import "github.com/gosuda/haclient/internal/wire"

// stateKeyField is field 1 (fixed32) on every *State message.
const stateKeyField = 1

func deviceIDPtr(f wire.Fields, entityType string) *uint32 {
	n := deviceIDFor(entityType, false)
	if n == 0 || !f.Has(n) {
		return nil
	}
	v := f.GetUint32(n)
	return &v
}

func decodeBinarySensorState(payload []byte) (uint32, *uint32, *BinarySensorState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &BinarySensorState{State: f.GetBool(2), Missing: f.GetBool(3)}
	return key, deviceIDPtr(f, "binary_sensor"), st, nil
}

func decodeSensorState(payload []byte) (uint32, *uint32, *SensorState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &SensorState{State: f.GetFloat32(2), Missing: f.GetBool(3)}
	return key, deviceIDPtr(f, "sensor"), st, nil
}

func decodeTextSensorState(payload []byte) (uint32, *uint32, *TextSensorState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &TextSensorState{State: f.GetString(2), Missing: f.GetBool(3)}
	return key, deviceIDPtr(f, "text_sensor"), st, nil
}

func decodeSwitchState(payload []byte) (uint32, *uint32, *SwitchState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &SwitchState{State: f.GetBool(2)}
	return key, deviceIDPtr(f, "switch"), st, nil
}

func decodeCoverState(payload []byte) (uint32, *uint32, *CoverState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &CoverState{
		Position:         f.GetFloat32(3),
		Tilt:             f.GetFloat32(4),
		CurrentOperation: CoverOperation(f.GetUint32(5)),
	}
	return key, deviceIDPtr(f, "cover"), st, nil
}

func decodeClimateState(payload []byte) (uint32, *uint32, *ClimateState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &ClimateState{
		Mode:               f.GetInt32(2),
		CurrentTemperature: f.GetFloat32(3),
		TargetTemperature:  f.GetFloat32(4),
		TargetLow:          f.GetFloat32(5),
		TargetHigh:         f.GetFloat32(6),
		Away:               f.GetBool(7),
		Action:             f.GetInt32(8),
		FanMode:            f.GetInt32(9),
		SwingMode:          f.GetInt32(10),
		CustomFanMode:      f.GetString(11),
		Preset:             f.GetInt32(12),
		CustomPreset:       f.GetString(13),
		CurrentHumidity:    f.GetFloat32(14),
		TargetHumidity:     f.GetFloat32(15),
	}
	return key, deviceIDPtr(f, "climate"), st, nil
}

func decodeLightState(payload []byte) (uint32, *uint32, *LightState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &LightState{
		State:            f.GetBool(2),
		Brightness:       f.GetFloat32(3),
		Red:              f.GetFloat32(4),
		Green:            f.GetFloat32(5),
		Blue:             f.GetFloat32(6),
		White:            f.GetFloat32(7),
		ColorTemperature: f.GetFloat32(8),
		Effect:           f.GetString(9),
		ColorBrightness:  f.GetFloat32(10),
		ColorMode:        f.GetInt32(11),
		ColdWhite:        f.GetFloat32(12),
		WarmWhite:        f.GetFloat32(13),
	}
	return key, deviceIDPtr(f, "light"), st, nil
}

func decodeFanState(payload []byte) (uint32, *uint32, *FanState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &FanState{
		State:       f.GetBool(2),
		Oscillating: f.GetBool(3),
		Direction:   f.GetInt32(5),
		SpeedLevel:  f.GetInt32(6),
		PresetMode:  f.GetString(7),
	}
	return key, deviceIDPtr(f, "fan"), st, nil
}

func decodeLockState(payload []byte) (uint32, *uint32, *LockState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	return key, deviceIDPtr(f, "lock"), &LockState{State: f.GetInt32(2)}, nil
}

func decodeSirenState(payload []byte) (uint32, *uint32, *SirenState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	return key, deviceIDPtr(f, "siren"), &SirenState{State: f.GetBool(2)}, nil
}

func decodeMediaPlayerState(payload []byte) (uint32, *uint32, *MediaPlayerState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &MediaPlayerState{State: f.GetInt32(2), Volume: f.GetFloat32(3), Muted: f.GetBool(4)}
	return key, deviceIDPtr(f, "media_player"), st, nil
}

func decodeNumberState(payload []byte) (uint32, *uint32, *NumberState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	return key, deviceIDPtr(f, "number"), &NumberState{State: f.GetFloat32(2), Missing: f.GetBool(3)}, nil
}

func decodeSelectState(payload []byte) (uint32, *uint32, *SelectState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	return key, deviceIDPtr(f, "select"), &SelectState{State: f.GetString(2), Missing: f.GetBool(3)}, nil
}

func decodeTextState(payload []byte) (uint32, *uint32, *TextState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	return key, deviceIDPtr(f, "text"), &TextState{State: f.GetString(2), Missing: f.GetBool(3)}, nil
}

func decodeDateState(payload []byte) (uint32, *uint32, *DateState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &DateState{Missing: f.GetBool(2), Year: f.GetUint32(3), Month: f.GetUint32(4), Day: f.GetUint32(5)}
	return key, deviceIDPtr(f, "date"), st, nil
}

func decodeTimeState(payload []byte) (uint32, *uint32, *TimeState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &TimeState{Missing: f.GetBool(2), Hour: f.GetUint32(3), Minute: f.GetUint32(4), Second: f.GetUint32(5)}
	return key, deviceIDPtr(f, "time"), st, nil
}

func decodeDateTimeState(payload []byte) (uint32, *uint32, *DateTimeState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &DateTimeState{Missing: f.GetBool(2), EpochSeconds: f.GetUint32(3)}
	return key, deviceIDPtr(f, "datetime"), st, nil
}

func decodeValveState(payload []byte) (uint32, *uint32, *ValveState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &ValveState{Position: f.GetFloat32(2), CurrentOperation: f.GetInt32(3)}
	return key, deviceIDPtr(f, "valve"), st, nil
}

func decodeAlarmControlPanelState(payload []byte) (uint32, *uint32, *AlarmControlPanelState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	return key, deviceIDPtr(f, "alarm_control_panel"), &AlarmControlPanelState{State: f.GetInt32(2)}, nil
}

func decodeEventState(payload []byte) (uint32, *uint32, *EventState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	return key, deviceIDPtr(f, "event"), &EventState{EventType: f.GetString(2)}, nil
}

func decodeUpdateState(payload []byte) (uint32, *uint32, *UpdateState, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	key := f.GetUint32(stateKeyField)
	st := &UpdateState{
		MissingState:   f.GetBool(2),
		InProgress:     f.GetBool(3),
		HasProgress:    f.GetBool(4),
		Progress:       f.GetFloat32(5),
		CurrentVersion: f.GetString(6),
		LatestVersion:  f.GetString(7),
		Title:          f.GetString(8),
		ReleaseSummary: f.GetString(9),
		ReleaseURL:     f.GetString(10),
	}
	return key, deviceIDPtr(f, "update"), st, nil
}
