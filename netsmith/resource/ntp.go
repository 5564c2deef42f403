package resource

// NTP options bounds.
const (
	MinStratum = 1
	MaxStratum = 15
)

// NTP options attribute names.
const (
	NTPMaster  = "master"
	NTPStratum = "stratum"
	NTPLogging = "logging"
)

// NTPOptionsID is the identifier of the single NTP options instance a
// device carries.
const NTPOptionsID ID = 0

var ntpOptionsSchema = Schema{
	Fields: []Field{
		{Name: NTPMaster, Type: BoolField},
		{Name: NTPStratum, Type: IntField, Min: MinStratum, Max: MaxStratum, DependsOn: NTPMaster},
		{Name: NTPLogging, Type: BoolField},
	},
}

// NTPOptionsDefinition describes the device-global NTP options. The
// resource is a singleton; there is exactly one instance per device and
// identifier expressions do not apply.
type NTPOptionsDefinition struct{}

func (NTPOptionsDefinition) Kind() string { return "ntp_options" }

func (NTPOptionsDefinition) Schema() Schema { return ntpOptionsSchema }

// Targets returns the singleton instance. A non-empty expression is
// rejected because NTP options are not addressable by identifier.
func (NTPOptionsDefinition) Targets(expr string) ([]ID, error) {
	if expr != "" {
		return nil, &ValidationError{Field: "ids", Value: expr, Reason: "ntp_options is a singleton resource"}
	}
	return []ID{NTPOptionsID}, nil
}
