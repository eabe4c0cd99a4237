package entities

const (
	MaxCustomUnitLength = 10
)

// Channel is one named measurement reported by a sensor run. The name must be
// unique within a Message; that is left to the caller.
//
// Every optional field is absent until set, in which case the platform
// applies its own default.
type Channel struct {
	Name  string
	Value float64

	Unit       Optional[Unit]
	customUnit Optional[string]
	SpeedSize  Optional[SpeedSize]
	SpeedTime  Optional[SpeedTime]
	Mode       Optional[Mode]

	// Warning forces the whole sensor into warning status.
	Warning Optional[bool]
	// ShowChart and ShowTable only apply on the first scan of a new channel.
	ShowChart Optional[bool]
	ShowTable Optional[bool]

	// Limits are transmitted as predefined values and only enforced while
	// LimitMode is true.
	LimitMaxError   Optional[int]
	LimitMaxWarning Optional[int]
	LimitMinWarning Optional[int]
	LimitMinError   Optional[int]
	LimitErrorMsg   Optional[string]
	LimitWarningMsg Optional[string]
	LimitMode       Optional[bool]

	ValueLookup   Optional[string]
	NotifyChanged Optional[bool]
}

// NewChannel returns a channel with every optional field unset.
func NewChannel(name string, value float64) Channel {
	return Channel{Name: name, Value: value}
}

// CustomUnit is the label shown behind the value when Unit is UnitCustom.
func (c *Channel) CustomUnit() Optional[string] {
	return c.customUnit
}

// SetCustomUnit assigns the custom unit label. Labels longer than
// MaxCustomUnitLength characters are rejected and leave the channel unchanged.
func (c *Channel) SetCustomUnit(label string) error {
	if err := validateLength(label, MaxCustomUnitLength, "value exceeds 10 characters"); err != nil {
		return err
	}
	c.customUnit = Some(label)
	return nil
}

// WithCustomUnit is the fallible builder form of SetCustomUnit.
func (c Channel) WithCustomUnit(label string) (Channel, error) {
	err := c.SetCustomUnit(label)
	return c, err
}
