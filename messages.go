package haclient

// Message type identifiers. These numbers are part of the wire contract
// with the device family this client targets and must not be renumbered.
const (
	msgHelloRequest  = 1
	msgHelloResponse = 2

	msgConnectRequest  = 3
	msgConnectResponse = 4

	msgDisconnectRequest  = 5
	msgDisconnectResponse = 6

	msgPingRequest  = 7
	msgPingResponse = 8

	msgDeviceInfoRequest  = 9
	msgDeviceInfoResponse = 10

	msgListEntitiesRequest            = 11
	msgListEntitiesBinarySensor       = 12
	msgListEntitiesCover              = 13
	msgListEntitiesFan                = 14
	msgListEntitiesLight              = 15
	msgListEntitiesSensor             = 16
	msgListEntitiesSwitch             = 17
	msgListEntitiesTextSensor         = 18
	msgListEntitiesDone               = 19

	msgSubscribeStatesRequest = 20

	msgBinarySensorState = 21
	msgCoverState        = 22
	msgFanState          = 23
	msgLightState        = 24
	msgSensorState       = 25
	msgSwitchState       = 26
	msgTextSensorState   = 27

	msgSubscribeLogsRequest  = 28
	msgSubscribeLogsResponse = 29

	msgCoverCommand  = 30
	msgFanCommand    = 31
	msgLightCommand  = 32
	msgSwitchCommand = 33

	msgGetTimeRequest  = 36
	msgGetTimeResponse = 37

	msgListEntitiesServices = 41
	msgExecuteService       = 42

	msgListEntitiesCamera  = 43
	msgCameraImageResponse = 44
	msgCameraImageRequest  = 45

	msgListEntitiesClimate = 46
	msgClimateState        = 47
	msgClimateCommand      = 48

	msgListEntitiesNumber = 49
	msgNumberState        = 50
	msgNumberCommand      = 51

	msgListEntitiesSelect = 52
	msgSelectState        = 53
	msgSelectCommand      = 54

	msgListEntitiesSiren = 55
	msgSirenState        = 56
	msgSirenCommand      = 57

	msgListEntitiesLock = 58
	msgLockState        = 59
	msgLockCommand      = 60

	msgListEntitiesButton = 61
	msgButtonCommand      = 62

	msgListEntitiesMediaPlayer = 63
	msgMediaPlayerState        = 64
	msgMediaPlayerCommand      = 65

	msgSubscribeVoiceAssistant = 89
	msgVoiceAssistantRequest   = 90
	msgVoiceAssistantResponse  = 91
	msgVoiceAssistantEvent     = 92

	msgListEntitiesAlarmControlPanel = 94
	msgAlarmControlPanelState        = 95
	msgAlarmControlPanelCommand      = 96

	msgListEntitiesText = 97
	msgTextState        = 98
	msgTextCommand      = 99

	msgListEntitiesDate = 100
	msgDateState        = 101
	msgDateCommand      = 102

	msgListEntitiesTime = 103
	msgTimeState        = 104
	msgTimeCommand      = 105

	msgVoiceAssistantAudio = 106

	msgListEntitiesEvent = 107
	msgEventResponse     = 108

	msgListEntitiesValve = 109
	msgValveState        = 110
	msgValveCommand      = 111

	msgListEntitiesDatetime = 112
	msgDatetimeState        = 113
	msgDatetimeCommand      = 114

	msgVoiceAssistantTimerEvent = 115

	msgListEntitiesUpdate = 116
	msgUpdateState        = 117
	msgUpdateCommand      = 118

	msgVoiceAssistantAnnounceRequest        = 119
	msgVoiceAssistantAnnounceFinished       = 120
	msgVoiceAssistantConfigurationRequest   = 121
	msgVoiceAssistantConfigurationResponse  = 122
	msgVoiceAssistantSetConfiguration       = 123

	msgNoiseEncryptionSetKeyRequest  = 124
	msgNoiseEncryptionSetKeyResponse = 125
)

// ProtocolVersionMajor and ProtocolVersionMinor are advertised in
// HELLO_REQUEST fields 2 and 3.
const (
	ProtocolVersionMajor = 1
	ProtocolVersionMinor = 12
)

// DefaultPort is the device family's default TCP control port.
const DefaultPort = 6053
