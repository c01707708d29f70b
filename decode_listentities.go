package haclient

import "github.com/gosuda/haclient/internal/wire"

// Common field numbers shared by every ListEntities*Response message.
const (
	listEntitiesFieldObjectID = 1
	listEntitiesFieldKey      = 2
	listEntitiesFieldName     = 3
)

// decodeListEntitiesCommon extracts the (object_id, key, name, device_id?)
// quadruple every entity-list response carries, per spec §4.5 bullet 2.
func decodeListEntitiesCommon(entityType string, payload []byte) (Entity, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return Entity{}, err
	}
	e := Entity{
		ObjectID: f.GetString(listEntitiesFieldObjectID),
		Key:      f.GetUint32(listEntitiesFieldKey),
		Name:     f.GetString(listEntitiesFieldName),
		Type:     entityType,
	}
	if didField := deviceIDFor(entityType, true); didField != 0 && f.Has(didField) {
		id := f.GetUint32(didField)
		e.DeviceID = &id
	}
	return e, nil
}

// listEntitiesMessageTypes maps each ListEntities*Response message type to
// the entity family string it enumerates.
var listEntitiesMessageTypes = map[uint32]string{
	msgListEntitiesBinarySensor:      "binary_sensor",
	msgListEntitiesCover:             "cover",
	msgListEntitiesFan:               "fan",
	msgListEntitiesLight:             "light",
	msgListEntitiesSensor:            "sensor",
	msgListEntitiesSwitch:            "switch",
	msgListEntitiesTextSensor:        "text_sensor",
	msgListEntitiesCamera:            "camera",
	msgListEntitiesClimate:           "climate",
	msgListEntitiesNumber:            "number",
	msgListEntitiesSelect:            "select",
	msgListEntitiesSiren:             "siren",
	msgListEntitiesLock:              "lock",
	msgListEntitiesButton:            "button",
	msgListEntitiesMediaPlayer:       "media_player",
	msgListEntitiesAlarmControlPanel: "alarm_control_panel",
	msgListEntitiesText:              "text",
	msgListEntitiesDate:              "date",
	msgListEntitiesTime:              "time",
	msgListEntitiesEvent:             "event",
	msgListEntitiesValve:             "valve",
	msgListEntitiesDatetime:          "datetime",
	msgListEntitiesUpdate:            "update",
}

// servicesFieldKey/Name/Args numbers for LIST_ENTITIES_SERVICES.
const (
	serviceFieldKey  = 1
	serviceFieldName = 2
	serviceFieldArgs = 3

	serviceArgFieldName = 1
	serviceArgFieldType = 2
)

func decodeService(payload []byte) (Service, error) {
	f, err := wire.Decode(payload)
	if err != nil {
		return Service{}, err
	}
	s := Service{
		Key:  f.GetUint32(serviceFieldKey),
		Name: f.GetString(serviceFieldName),
	}
	for _, raw := range f[serviceFieldArgs] {
		if raw.Kind != wire.WireBytes {
			continue
		}
		af, err := wire.Decode(raw.Bytes)
		if err != nil {
			continue
		}
		s.Args = append(s.Args, ServiceArg{
			Name: af.GetString(serviceArgFieldName),
			Type: ServiceArgType(af.GetUint32(serviceArgFieldType)),
		})
	}
	return s, nil
}
