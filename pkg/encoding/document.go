package encoding

import (
	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/entities"
	"github.com/pkg/errors"
)

// document mirrors the custom sensor JSON result. Field order here is the
// order keys are written in.
type document struct {
	Result []channelDocument `json:"result"`
	Text   *string           `json:"text,omitempty"`
	Error  *string           `json:"error,omitempty"`
}

type channelDocument struct {
	Channel         string  `json:"channel"`
	Value           string  `json:"value"`
	Unit            *string `json:"Unit,omitempty"`
	CustomUnit      *string `json:"customunit,omitempty"`
	SpeedSize       *string `json:"speedsize,omitempty"`
	SpeedTime       *string `json:"speedtime,omitempty"`
	Mode            *string `json:"mode,omitempty"`
	Warning         *string `json:"warning,omitempty"`
	ShowChart       *string `json:"showchart,omitempty"`
	ShowTable       *string `json:"showtable,omitempty"`
	LimitMaxError   *int    `json:"limitmaxerror,omitempty"`
	LimitMaxWarning *int    `json:"limitmaxwarnings,omitempty"`
	LimitMinWarning *int    `json:"limitminwarning,omitempty"`
	LimitMinError   *int    `json:"limitminerror,omitempty"`
	LimitErrorMsg   *string `json:"limiterrormsg,omitempty"`
	LimitWarningMsg *string `json:"limitwarningmsg,omitempty"`
	LimitMode       *string `json:"limitmode,omitempty"`
	ValueLookup     *string `json:"valuelookup,omitempty"`
	NotifyChanged   *string `json:"notifychanged,omitempty"`
}

// The document is write-only. Unmarshalling into it fails instead of
// producing a partial message.
func (d *document) UnmarshalJSON([]byte) error {
	return errors.Wrap(entities.ErrNotSupported, "decoding a sensor document")
}

func (c *channelDocument) UnmarshalJSON([]byte) error {
	return errors.Wrap(entities.ErrNotSupported, "decoding a channel result")
}

func newDocument(message *entities.Message) document {
	result := make([]channelDocument, 0, len(message.Channels))
	for i := range message.Channels {
		result = append(result, newChannelDocument(&message.Channels[i]))
	}

	text := message.Text()
	return document{
		Result: result,
		Text:   &text,
		Error:  field(message.Error, yesNoText),
	}
}

func newChannelDocument(channel *entities.Channel) channelDocument {
	return channelDocument{
		Channel:         freeText(channel.Name),
		Value:           numberText(channel.Value),
		Unit:            field(channel.Unit, enumText[entities.Unit]),
		CustomUnit:      field(channel.CustomUnit(), freeText),
		SpeedSize:       field(channel.SpeedSize, enumText[entities.SpeedSize]),
		SpeedTime:       field(channel.SpeedTime, enumText[entities.SpeedTime]),
		Mode:            field(channel.Mode, enumText[entities.Mode]),
		Warning:         field(channel.Warning, yesNoText),
		ShowChart:       field(channel.ShowChart, yesNoText),
		ShowTable:       field(channel.ShowTable, yesNoText),
		LimitMaxError:   field(channel.LimitMaxError, integer),
		LimitMaxWarning: field(channel.LimitMaxWarning, integer),
		LimitMinWarning: field(channel.LimitMinWarning, integer),
		LimitMinError:   field(channel.LimitMinError, integer),
		LimitErrorMsg:   field(channel.LimitErrorMsg, freeText),
		LimitWarningMsg: field(channel.LimitWarningMsg, freeText),
		LimitMode:       field(channel.LimitMode, yesNoText),
		ValueLookup:     field(channel.ValueLookup, freeText),
		NotifyChanged:   field(channel.NotifyChanged, yesNoText),
	}
}
