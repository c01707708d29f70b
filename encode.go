package haclient

import "github.com/gosuda/haclient/internal/wire"

// encodeKeyHeader appends the field-1 fixed32 entity key every command
// message leads with, per spec §4.8.
func encodeKeyHeader(key uint32) []byte {
	return wire.AppendFixed32(nil, 1, key)
}

// appendDeviceID appends device_id at its family-specific field number, if
// the entity carries one.
func appendDeviceID(dst []byte, entityType string, deviceID *uint32) []byte {
	if deviceID == nil {
		return dst
	}
	n := deviceIDFor(entityType, false)
	if n == 0 {
		return dst
	}
	return wire.AppendUint32(dst, n, *deviceID)
}

// --- switch ---

func encodeSwitchCommand(key uint32, deviceID *uint32, state bool) []byte {
	dst := encodeKeyHeader(key)
	dst = wire.AppendBool(dst, 2, state)
	return appendDeviceID(dst, "switch", deviceID)
}

// --- light ---

// LightCommandOptions carries the optional fields of LIGHT_COMMAND; only
// fields with their Has flag set are encoded.
type LightCommandOptions struct {
	HasState      bool
	State         bool
	HasBrightness bool
	Brightness    float32
	HasRGB        bool
	Red, Green, Blue float32
	HasWhite      bool
	White         float32
	HasColorTemperature bool
	ColorTemperature    float32
	HasEffect     bool
	Effect        string
	HasTransitionLength bool
	TransitionLength    uint32
	HasFlash      bool
	FlashLength   uint32
}

func encodeLightCommand(key uint32, deviceID *uint32, o LightCommandOptions) ([]byte, error) {
	if !(o.HasState || o.HasBrightness || o.HasRGB || o.HasWhite || o.HasColorTemperature || o.HasEffect || o.HasTransitionLength || o.HasFlash) {
		return nil, ErrNoCommandOptionSet
	}
	dst := encodeKeyHeader(key)
	if o.HasState {
		dst = wire.AppendBool(dst, 2, true)
		dst = wire.AppendBool(dst, 3, o.State)
	}
	if o.HasBrightness {
		dst = wire.AppendBool(dst, 4, true)
		dst = wire.AppendFloat32(dst, 5, o.Brightness)
	}
	if o.HasRGB {
		dst = wire.AppendBool(dst, 6, true)
		dst = wire.AppendFloat32(dst, 7, o.Red)
		dst = wire.AppendFloat32(dst, 8, o.Green)
		dst = wire.AppendFloat32(dst, 9, o.Blue)
	}
	if o.HasWhite {
		dst = wire.AppendBool(dst, 10, true)
		dst = wire.AppendFloat32(dst, 11, o.White)
	}
	if o.HasColorTemperature {
		dst = wire.AppendBool(dst, 12, true)
		dst = wire.AppendFloat32(dst, 13, o.ColorTemperature)
	}
	if o.HasTransitionLength {
		dst = wire.AppendBool(dst, 14, true)
		dst = wire.AppendUint32(dst, 15, o.TransitionLength)
	}
	if o.HasFlash {
		dst = wire.AppendBool(dst, 16, true)
		dst = wire.AppendUint32(dst, 17, o.FlashLength)
	}
	if o.HasEffect {
		dst = wire.AppendBool(dst, 18, true)
		dst = wire.AppendString(dst, 19, o.Effect)
	}
	return appendDeviceID(dst, "light", deviceID), nil
}

// --- cover ---

type CoverCommandOptions struct {
	HasPosition bool
	Position    float32
	HasTilt     bool
	Tilt        float32
	Stop        bool
}

func encodeCoverCommand(key uint32, deviceID *uint32, o CoverCommandOptions) ([]byte, error) {
	if !(o.HasPosition || o.HasTilt || o.Stop) {
		return nil, ErrNoCommandOptionSet
	}
	dst := encodeKeyHeader(key)
	if o.HasPosition {
		dst = wire.AppendBool(dst, 2, true)
		dst = wire.AppendFloat32(dst, 3, o.Position)
	}
	if o.HasTilt {
		dst = wire.AppendBool(dst, 4, true)
		dst = wire.AppendFloat32(dst, 5, o.Tilt)
	}
	if o.Stop {
		dst = wire.AppendBool(dst, 6, true)
	}
	return appendDeviceID(dst, "cover", deviceID), nil
}

// --- fan ---

type FanCommandOptions struct {
	HasState      bool
	State         bool
	HasOscillating bool
	Oscillating    bool
	HasDirection  bool
	Direction     int32
	HasSpeedLevel bool
	SpeedLevel    int32
	HasPresetMode bool
	PresetMode    string
}

func encodeFanCommand(key uint32, deviceID *uint32, o FanCommandOptions) ([]byte, error) {
	if !(o.HasState || o.HasOscillating || o.HasDirection || o.HasSpeedLevel || o.HasPresetMode) {
		return nil, ErrNoCommandOptionSet
	}
	dst := encodeKeyHeader(key)
	if o.HasState {
		dst = wire.AppendBool(dst, 2, true)
		dst = wire.AppendBool(dst, 3, o.State)
	}
	if o.HasOscillating {
		dst = wire.AppendBool(dst, 4, true)
		dst = wire.AppendBool(dst, 5, o.Oscillating)
	}
	if o.HasDirection {
		dst = wire.AppendBool(dst, 6, true)
		dst = wire.AppendZigZag32(dst, 7, o.Direction)
	}
	if o.HasSpeedLevel {
		dst = wire.AppendBool(dst, 10, true)
		dst = wire.AppendZigZag32(dst, 11, o.SpeedLevel)
	}
	if o.HasPresetMode {
		dst = wire.AppendBool(dst, 12, true)
		dst = wire.AppendString(dst, 13, o.PresetMode)
	}
	return appendDeviceID(dst, "fan", deviceID), nil
}

// --- climate ---

type ClimateCommandOptions struct {
	HasMode              bool
	Mode                 int32
	HasTargetTemperature bool
	TargetTemperature    float32
	HasTargetLow         bool
	TargetLow            float32
	HasTargetHigh        bool
	TargetHigh           float32
	HasAway              bool
	Away                 bool
	HasFanMode           bool
	FanMode              int32
	HasSwingMode         bool
	SwingMode            int32
	HasCustomFanMode     bool
	CustomFanMode        string
	HasPreset            bool
	Preset               int32
	HasCustomPreset      bool
	CustomPreset         string
	HasTargetHumidity    bool
	TargetHumidity       float32
}

func encodeClimateCommand(key uint32, deviceID *uint32, o ClimateCommandOptions) ([]byte, error) {
	anySet := o.HasMode || o.HasTargetTemperature || o.HasTargetLow || o.HasTargetHigh ||
		o.HasAway || o.HasFanMode || o.HasSwingMode || o.HasCustomFanMode ||
		o.HasPreset || o.HasCustomPreset || o.HasTargetHumidity
	if !anySet {
		return nil, ErrNoCommandOptionSet
	}
	dst := encodeKeyHeader(key)
	if o.HasMode {
		dst = wire.AppendBool(dst, 2, true)
		dst = wire.AppendZigZag32(dst, 3, o.Mode)
	}
	if o.HasTargetTemperature {
		dst = wire.AppendBool(dst, 4, true)
		dst = wire.AppendFloat32(dst, 5, o.TargetTemperature)
	}
	if o.HasTargetLow {
		dst = wire.AppendBool(dst, 6, true)
		dst = wire.AppendFloat32(dst, 7, o.TargetLow)
	}
	if o.HasTargetHigh {
		dst = wire.AppendBool(dst, 8, true)
		dst = wire.AppendFloat32(dst, 9, o.TargetHigh)
	}
	if o.HasAway {
		dst = wire.AppendBool(dst, 10, true)
		dst = wire.AppendBool(dst, 11, o.Away)
	}
	if o.HasFanMode {
		dst = wire.AppendBool(dst, 12, true)
		dst = wire.AppendZigZag32(dst, 13, o.FanMode)
	}
	if o.HasSwingMode {
		dst = wire.AppendBool(dst, 14, true)
		dst = wire.AppendZigZag32(dst, 15, o.SwingMode)
	}
	if o.HasCustomFanMode {
		dst = wire.AppendBool(dst, 16, true)
		dst = wire.AppendString(dst, 17, o.CustomFanMode)
	}
	if o.HasPreset {
		dst = wire.AppendBool(dst, 18, true)
		dst = wire.AppendZigZag32(dst, 19, o.Preset)
	}
	if o.HasCustomPreset {
		dst = wire.AppendBool(dst, 20, true)
		dst = wire.AppendString(dst, 21, o.CustomPreset)
	}
	if o.HasTargetHumidity {
		dst = wire.AppendBool(dst, 22, true)
		dst = wire.AppendFloat32(dst, 23, o.TargetHumidity)
	}
	return appendDeviceID(dst, "climate", deviceID), nil
}

// --- siren ---

type SirenCommandOptions struct {
	HasState    bool
	State       bool
	HasTone     bool
	Tone        string
	HasDuration bool
	Duration    uint32
	HasVolume   bool
	Volume      float32
}

func encodeSirenCommand(key uint32, deviceID *uint32, o SirenCommandOptions) ([]byte, error) {
	if !(o.HasState || o.HasTone || o.HasDuration || o.HasVolume) {
		return nil, ErrNoCommandOptionSet
	}
	dst := encodeKeyHeader(key)
	if o.HasState {
		dst = wire.AppendBool(dst, 2, true)
		dst = wire.AppendBool(dst, 3, o.State)
	}
	if o.HasTone {
		dst = wire.AppendBool(dst, 4, true)
		dst = wire.AppendString(dst, 5, o.Tone)
	}
	if o.HasDuration {
		dst = wire.AppendBool(dst, 6, true)
		dst = wire.AppendUint32(dst, 7, o.Duration)
	}
	if o.HasVolume {
		dst = wire.AppendBool(dst, 8, true)
		dst = wire.AppendFloat32(dst, 9, o.Volume)
	}
	return appendDeviceID(dst, "siren", deviceID), nil
}

// --- media player ---

type MediaPlayerCommandOptions struct {
	HasCommand      bool
	Command         int32
	HasVolume       bool
	Volume          float32
	HasMediaURL     bool
	MediaURL        string
	HasAnnouncement bool
	Announcement    bool
}

func encodeMediaPlayerCommand(key uint32, deviceID *uint32, o MediaPlayerCommandOptions) ([]byte, error) {
	if !(o.HasCommand || o.HasVolume || o.HasMediaURL) {
		return nil, ErrNoCommandOptionSet
	}
	dst := encodeKeyHeader(key)
	if o.HasCommand {
		dst = wire.AppendBool(dst, 2, true)
		dst = wire.AppendZigZag32(dst, 3, o.Command)
	}
	if o.HasVolume {
		dst = wire.AppendBool(dst, 4, true)
		dst = wire.AppendFloat32(dst, 5, o.Volume)
	}
	if o.HasMediaURL {
		dst = wire.AppendBool(dst, 6, true)
		dst = wire.AppendString(dst, 7, o.MediaURL)
	}
	if o.HasAnnouncement {
		dst = wire.AppendBool(dst, 8, true)
		dst = wire.AppendBool(dst, 9, o.Announcement)
	}
	return appendDeviceID(dst, "media_player", deviceID), nil
}

// --- valve ---

type ValveCommandOptions struct {
	HasPosition bool
	Position    float32
	Stop        bool
}

func encodeValveCommand(key uint32, deviceID *uint32, o ValveCommandOptions) ([]byte, error) {
	if !(o.HasPosition || o.Stop) {
		return nil, ErrNoCommandOptionSet
	}
	dst := encodeKeyHeader(key)
	if o.HasPosition {
		dst = wire.AppendBool(dst, 2, true)
		dst = wire.AppendFloat32(dst, 3, o.Position)
	}
	if o.Stop {
		dst = wire.AppendBool(dst, 4, true)
	}
	return appendDeviceID(dst, "valve", deviceID), nil
}

// --- unconditional single-value commands (always at least one field) ---

func encodeNumberCommand(key uint32, deviceID *uint32, state float32) []byte {
	dst := encodeKeyHeader(key)
	dst = wire.AppendFloat32(dst, 2, state)
	return appendDeviceID(dst, "number", deviceID)
}

func encodeSelectCommand(key uint32, deviceID *uint32, state string) []byte {
	dst := encodeKeyHeader(key)
	dst = wire.AppendString(dst, 2, state)
	return appendDeviceID(dst, "select", deviceID)
}

func encodeTextCommand(key uint32, deviceID *uint32, state string) []byte {
	dst := encodeKeyHeader(key)
	dst = wire.AppendString(dst, 2, state)
	return appendDeviceID(dst, "text", deviceID)
}

func encodeDateCommand(key uint32, deviceID *uint32, year, month, day uint32) []byte {
	dst := encodeKeyHeader(key)
	dst = wire.AppendUint32(dst, 2, year)
	dst = wire.AppendUint32(dst, 3, month)
	dst = wire.AppendUint32(dst, 4, day)
	return appendDeviceID(dst, "date", deviceID)
}

func encodeTimeCommand(key uint32, deviceID *uint32, hour, minute, second uint32) []byte {
	dst := encodeKeyHeader(key)
	dst = wire.AppendUint32(dst, 2, hour)
	dst = wire.AppendUint32(dst, 3, minute)
	dst = wire.AppendUint32(dst, 4, second)
	return appendDeviceID(dst, "time", deviceID)
}

func encodeDateTimeCommand(key uint32, deviceID *uint32, epochSeconds uint32) []byte {
	dst := encodeKeyHeader(key)
	dst = wire.AppendUint32(dst, 2, epochSeconds)
	return appendDeviceID(dst, "datetime", deviceID)
}

func encodeButtonCommand(key uint32) []byte {
	return encodeKeyHeader(key)
}

func encodeLockCommand(key uint32, deviceID *uint32, command int32, hasCode bool, code string) []byte {
	dst := encodeKeyHeader(key)
	dst = wire.AppendZigZag32(dst, 2, command)
	if hasCode {
		dst = wire.AppendBool(dst, 3, true)
		dst = wire.AppendString(dst, 4, code)
	}
	return appendDeviceID(dst, "lock", deviceID)
}

func encodeAlarmControlPanelCommand(key uint32, deviceID *uint32, command int32, code string) []byte {
	dst := encodeKeyHeader(key)
	dst = wire.AppendZigZag32(dst, 2, command)
	if code != "" {
		dst = wire.AppendString(dst, 3, code)
	}
	return appendDeviceID(dst, "alarm_control_panel", deviceID)
}

// --- service execution ---

type ExecuteServiceArg struct {
	BoolValue    bool
	IntValue     int32
	FloatValue   float32
	StringValue  string
	BoolArray    []bool
	IntArray     []int32
	FloatArray   []float32
	StringArray  []string
	Type         ServiceArgType
}

func encodeExecuteService(key uint32, args []ExecuteServiceArg) []byte {
	dst := encodeKeyHeader(key)
	for _, a := range args {
		var argBuf []byte
		switch a.Type {
		case ServiceArgBool:
			argBuf = wire.AppendBool(argBuf, 1, a.BoolValue)
		case ServiceArgInt:
			argBuf = wire.AppendZigZag32(argBuf, 2, a.IntValue)
		case ServiceArgFloat:
			argBuf = wire.AppendFloat32(argBuf, 3, a.FloatValue)
		case ServiceArgString:
			argBuf = wire.AppendString(argBuf, 4, a.StringValue)
		case ServiceArgBoolArray:
			for _, v := range a.BoolArray {
				argBuf = wire.AppendBool(argBuf, 5, v)
			}
		case ServiceArgIntArray:
			for _, v := range a.IntArray {
				argBuf = wire.AppendZigZag32(argBuf, 6, v)
			}
		case ServiceArgFloatArray:
			for _, v := range a.FloatArray {
				argBuf = wire.AppendFloat32(argBuf, 7, v)
			}
		case ServiceArgStringArray:
			for _, v := range a.StringArray {
				argBuf = wire.AppendString(argBuf, 8, v)
			}
		}
		dst = wire.AppendBytes(dst, 2, argBuf)
	}
	return dst
}

// --- camera ---

func encodeCameraImageRequest(key uint32, single, stream bool) []byte {
	dst := wire.AppendBool(nil, 1, single)
	dst = wire.AppendBool(dst, 2, stream)
	return dst
}

// --- noise rekey ---

func encodeNoiseEncryptionSetKeyRequest(newKey []byte) []byte {
	return wire.AppendBytes(nil, 1, newKey)
}
