package entities

import (
	"github.com/pkg/errors"
)

// SensorDefinitions is the root of a sensor definition file. Each entry
// produces one document.
type SensorDefinitions struct {
	Sensors []SensorDefinition `yaml:"sensors"`
}

type SensorDefinition struct {
	Text     *string             `yaml:"text"`
	Error    *bool               `yaml:"error"`
	Channels []ChannelDefinition `yaml:"channels"`
}

type ChannelDefinition struct {
	Name            string  `yaml:"channel"`
	Value           float64 `yaml:"value"`
	Unit            *string `yaml:"unit"`
	CustomUnit      *string `yaml:"customUnit"`
	SpeedSize       *string `yaml:"speedSize"`
	SpeedTime       *string `yaml:"speedTime"`
	Mode            *string `yaml:"mode"`
	Warning         *bool   `yaml:"warning"`
	ShowChart       *bool   `yaml:"showChart"`
	ShowTable       *bool   `yaml:"showTable"`
	LimitMaxError   *int    `yaml:"limitMaxError"`
	LimitMaxWarning *int    `yaml:"limitMaxWarning"`
	LimitMinWarning *int    `yaml:"limitMinWarning"`
	LimitMinError   *int    `yaml:"limitMinError"`
	LimitErrorMsg   *string `yaml:"limitErrorMsg"`
	LimitWarningMsg *string `yaml:"limitWarningMsg"`
	LimitMode       *bool   `yaml:"limitMode"`
	ValueLookup     *string `yaml:"valueLookup"`
	NotifyChanged   *bool   `yaml:"notifyChanged"`
}

// ToMessages converts every definition, stopping at the first invalid one.
func (d SensorDefinitions) ToMessages() ([]*Message, error) {
	messages := make([]*Message, 0, len(d.Sensors))
	for i, sensor := range d.Sensors {
		message, err := sensor.ToMessage()
		if err != nil {
			return nil, errors.Wrapf(err, "sensor %d", i)
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (d SensorDefinition) ToMessage() (*Message, error) {
	channels := make([]Channel, 0, len(d.Channels))
	for _, definition := range d.Channels {
		channel, err := definition.ToChannel()
		if err != nil {
			return nil, errors.Wrapf(err, "channel %q", definition.Name)
		}
		channels = append(channels, channel)
	}

	var options []MessageOption
	if d.Text != nil {
		options = append(options, WithText(*d.Text))
	}
	if d.Error != nil {
		options = append(options, WithError(*d.Error))
	}
	return NewMessage(channels, options...)
}

func (d ChannelDefinition) ToChannel() (Channel, error) {
	var err error
	channel := NewChannel(d.Name, d.Value)

	if channel.Unit, err = parseOptional(d.Unit, ParseUnit); err != nil {
		return channel, err
	}
	if channel.SpeedSize, err = parseOptional(d.SpeedSize, ParseSpeedSize); err != nil {
		return channel, err
	}
	if channel.SpeedTime, err = parseOptional(d.SpeedTime, ParseSpeedTime); err != nil {
		return channel, err
	}
	if channel.Mode, err = parseOptional(d.Mode, ParseMode); err != nil {
		return channel, err
	}
	if d.CustomUnit != nil {
		if err = channel.SetCustomUnit(*d.CustomUnit); err != nil {
			return channel, err
		}
	}

	channel.Warning = optionalFromPointer(d.Warning)
	channel.ShowChart = optionalFromPointer(d.ShowChart)
	channel.ShowTable = optionalFromPointer(d.ShowTable)
	channel.LimitMaxError = optionalFromPointer(d.LimitMaxError)
	channel.LimitMaxWarning = optionalFromPointer(d.LimitMaxWarning)
	channel.LimitMinWarning = optionalFromPointer(d.LimitMinWarning)
	channel.LimitMinError = optionalFromPointer(d.LimitMinError)
	channel.LimitErrorMsg = optionalFromPointer(d.LimitErrorMsg)
	channel.LimitWarningMsg = optionalFromPointer(d.LimitWarningMsg)
	channel.LimitMode = optionalFromPointer(d.LimitMode)
	channel.ValueLookup = optionalFromPointer(d.ValueLookup)
	channel.NotifyChanged = optionalFromPointer(d.NotifyChanged)

	return channel, nil
}

func parseOptional[T any](name *string, parse func(string) (T, error)) (Optional[T], error) {
	if name == nil {
		return None[T](), nil
	}
	value, err := parse(*name)
	if err != nil {
		return None[T](), err
	}
	return Some(value), nil
}
