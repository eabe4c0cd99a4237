package entities

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBreakfastChannels() []Channel {
	return []Channel{
		NewChannel("eggs", 0),
		NewChannel("bacon", 3),
		NewChannel("waffle", 1),
		NewChannel("toast", 2),
	}
}

func TestNewMessageDefaults(t *testing.T) {
	message, err := NewMessage(createBreakfastChannels())

	require.NoError(t, err)
	assert.Equal(t, DefaultText, message.Text())
	assert.False(t, message.Error.IsSet())
	assert.Len(t, message.Channels, 4)
}

func TestNewMessagePreservesChannelOrder(t *testing.T) {
	message, err := NewMessage(createBreakfastChannels(), WithText("Breakfast Order"))

	require.NoError(t, err)
	names := make([]string, 0, len(message.Channels))
	for _, channel := range message.Channels {
		names = append(names, channel.Name)
	}
	assert.Equal(t, []string{"eggs", "bacon", "waffle", "toast"}, names)
	assert.Equal(t, "Breakfast Order", message.Text())
}

func TestNewMessageCopiesChannels(t *testing.T) {
	channels := createBreakfastChannels()
	message, err := NewMessage(channels)
	require.NoError(t, err)

	channels[0].Name = "pancakes"

	assert.Equal(t, "eggs", message.Channels[0].Name)
}

func TestGivenErrorOptionThenErrorIsSet(t *testing.T) {
	message, err := NewMessage(nil, WithError(true))

	require.NoError(t, err)
	isError, ok := message.Error.Get()
	assert.True(t, ok)
	assert.True(t, isError)
	assert.Empty(t, message.Channels)
}

func TestGivenTextBelowLimitThenSuccess(t *testing.T) {
	message, err := NewMessage(nil)
	require.NoError(t, err)

	err = message.SetText(strings.Repeat("a", MaxTextLength-1))

	assert.NoError(t, err)
	assert.Len(t, message.Text(), MaxTextLength-1)
}

func TestGivenTextAtLimitThenValidationError(t *testing.T) {
	message, err := NewMessage(nil)
	require.NoError(t, err)

	err = message.SetText(strings.Repeat("a", MaxTextLength))

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "value exceeds 2000 characters")
	assert.Equal(t, DefaultText, message.Text())
}

func TestGivenInvalidTextOptionThenNoMessage(t *testing.T) {
	message, err := NewMessage(createBreakfastChannels(), WithText(strings.Repeat("a", MaxTextLength)))

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, ErrValidation))
}
