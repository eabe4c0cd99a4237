package entities

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointerTo[T any](value T) *T {
	return &value
}

func TestChannelDefinitionToChannel(t *testing.T) {
	definition := ChannelDefinition{
		Name:          "disk",
		Value:         81.5,
		Unit:          pointerTo("Custom"),
		CustomUnit:    pointerTo("GiB"),
		Mode:          pointerTo("difference"),
		ShowChart:     pointerTo(false),
		LimitMaxError: pointerTo(95),
		LimitMode:     pointerTo(true),
		ValueLookup:   pointerTo("prtg.standardlookups.yesno.stateyesok"),
	}

	channel, err := definition.ToChannel()

	require.NoError(t, err)
	unit, _ := channel.Unit.Get()
	assert.Equal(t, UnitCustom, unit)
	label, _ := channel.CustomUnit().Get()
	assert.Equal(t, "GiB", label)
	mode, _ := channel.Mode.Get()
	assert.Equal(t, ModeDifference, mode)
	showChart, ok := channel.ShowChart.Get()
	assert.True(t, ok)
	assert.False(t, showChart)
	assert.False(t, channel.ShowTable.IsSet())
	limit, _ := channel.LimitMaxError.Get()
	assert.Equal(t, 95, limit)
	assert.False(t, channel.LimitMinError.IsSet())
}

func TestGivenUnknownUnitInDefinitionThenError(t *testing.T) {
	definition := SensorDefinition{
		Channels: []ChannelDefinition{{Name: "disk", Unit: pointerTo("Furlongs")}},
	}

	message, err := definition.ToMessage()

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), `channel "disk"`)
}

func TestGivenLongCustomUnitInDefinitionThenError(t *testing.T) {
	definition := ChannelDefinition{Name: "disk", CustomUnit: pointerTo("gigabytes free")}

	_, err := definition.ToChannel()

	assert.True(t, errors.Is(err, ErrValidation))
}

func TestSensorDefinitionDefaults(t *testing.T) {
	definition := SensorDefinition{
		Channels: []ChannelDefinition{{Name: "eggs"}, {Name: "bacon", Value: 3}},
	}

	message, err := definition.ToMessage()

	require.NoError(t, err)
	assert.Equal(t, DefaultText, message.Text())
	assert.False(t, message.Error.IsSet())
	assert.Equal(t, "bacon", message.Channels[1].Name)
}

func TestSensorDefinitionsToMessages(t *testing.T) {
	definitions := SensorDefinitions{
		Sensors: []SensorDefinition{
			{Text: pointerTo("Breakfast Order"), Channels: []ChannelDefinition{{Name: "eggs"}}},
			{Error: pointerTo(true), Text: pointerTo("kitchen closed")},
		},
	}

	messages, err := definitions.ToMessages()

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Breakfast Order", messages[0].Text())
	isError, _ := messages[1].Error.Get()
	assert.True(t, isError)
}

func TestGivenInvalidSensorThenToMessagesFails(t *testing.T) {
	definitions := SensorDefinitions{
		Sensors: []SensorDefinition{
			{Text: pointerTo("fine")},
			{Text: pointerTo(strings.Repeat("a", MaxTextLength))},
		},
	}

	messages, err := definitions.ToMessages()

	assert.Nil(t, messages)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "sensor 1")
}
