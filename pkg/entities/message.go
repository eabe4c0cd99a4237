package entities

const (
	DefaultText = "OK"
	// MaxTextLength is the exclusive upper bound on the sensor message length.
	MaxTextLength = 2000
)

// Message is the single report emitted per sensor run. When Error is true the
// platform ignores the channel values, so an errored run usually carries none.
type Message struct {
	Channels []Channel
	text     string
	Error    Optional[bool]
}

type MessageOption func(*Message) error

// WithText sets the sensor message text.
func WithText(text string) MessageOption {
	return func(m *Message) error {
		return m.SetText(text)
	}
}

// WithError marks the run as failed (or explicitly not failed).
func WithError(isError bool) MessageOption {
	return func(m *Message) error {
		m.Error = Some(isError)
		return nil
	}
}

// NewMessage builds a message from channels, which are copied in order.
// Text defaults to DefaultText and Error is left unset.
func NewMessage(channels []Channel, options ...MessageOption) (*Message, error) {
	message := &Message{
		Channels: append(make([]Channel, 0, len(channels)), channels...),
		text:     DefaultText,
	}
	for _, option := range options {
		if err := option(message); err != nil {
			return nil, err
		}
	}
	return message, nil
}

func (m *Message) Text() string {
	return m.text
}

// SetText replaces the sensor message text. The text must be shorter than
// MaxTextLength characters.
func (m *Message) SetText(text string) error {
	if err := validateLength(text, MaxTextLength-1, "value exceeds 2000 characters"); err != nil {
		return err
	}
	m.text = text
	return nil
}
