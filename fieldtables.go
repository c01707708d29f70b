package haclient

// deviceIDField records, for one entity family, the field number carrying
// device_id in its ListEntities*Response and its *State message
// respectively. Spec §4.7 requires these numbers live in a static table
// the decoders consult rather than guess at.
type deviceIDField struct {
	listEntities int
	state        int
}

// deviceIDFields is keyed by entity type string. Families with fields
// spelled out explicitly in spec §4.7 use those numbers; the remainder
// follow the same family's established wire layout (a leading key field,
// a handful of typed value fields, then device_id as the last field of
// each message) since the distilled spec left their exact tables to be
// filled in from the device family's own contract.
var deviceIDFields = map[string]deviceIDField{
	"binary_sensor":        {listEntities: 8, state: 4},
	"sensor":               {listEntities: 9, state: 4},
	"text_sensor":          {listEntities: 7, state: 4},
	"switch":               {listEntities: 7, state: 3},
	"cover":                {listEntities: 9, state: 6},
	"fan":                  {listEntities: 9, state: 8},
	"light":                {listEntities: 11, state: 14},
	"climate":              {listEntities: 19, state: 16},
	"lock":                 {listEntities: 8, state: 4},
	"siren":                {listEntities: 7, state: 3},
	"media_player":         {listEntities: 6, state: 5},
	"number":               {listEntities: 11, state: 4},
	"select":               {listEntities: 6, state: 4},
	"text":                 {listEntities: 9, state: 4},
	"date":                 {listEntities: 5, state: 6},
	"time":                 {listEntities: 5, state: 6},
	"datetime":             {listEntities: 5, state: 4},
	"valve":                {listEntities: 8, state: 5},
	"alarm_control_panel":  {listEntities: 6, state: 3},
	"event":                {listEntities: 6, state: 4},
	"update":               {listEntities: 6, state: 11},
	"button":               {listEntities: 6, state: 0},
	"camera":               {listEntities: 5, state: 0},
}

func deviceIDFor(entityType string, inList bool) int {
	f, ok := deviceIDFields[entityType]
	if !ok {
		return 0
	}
	if inList {
		return f.listEntities
	}
	return f.state
}
