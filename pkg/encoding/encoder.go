package encoding

import (
	"bytes"
	"encoding/json"

	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/entities"
	"github.com/pkg/errors"
)

// Encoder turns messages into custom sensor documents.
type Encoder interface {
	Encode(message *entities.Message) ([]byte, error)
	EncodeAll(messages []*entities.Message) ([][]byte, error)
	Decode(data []byte) (*entities.Message, error)
}

type jsonEncoder struct{}

func NewJSONEncoder() Encoder {
	return &jsonEncoder{}
}

// Encode returns the compact JSON document for message, without a trailing
// newline. Identical messages always produce identical bytes.
func (e *jsonEncoder) Encode(message *entities.Message) ([]byte, error) {
	if message == nil {
		return nil, errors.New("nil message")
	}

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(newDocument(message)); err != nil {
		return nil, errors.Wrap(err, "encode sensor document")
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// EncodeAll encodes each message independently, in input order.
func (e *jsonEncoder) EncodeAll(messages []*entities.Message) ([][]byte, error) {
	documents := make([][]byte, 0, len(messages))
	for i, message := range messages {
		data, err := e.Encode(message)
		if err != nil {
			return nil, errors.Wrapf(err, "message %d", i)
		}
		documents = append(documents, data)
	}
	return documents, nil
}

// Decode always fails: documents cannot be turned back into messages.
func (e *jsonEncoder) Decode([]byte) (*entities.Message, error) {
	return nil, errors.Wrap(entities.ErrNotSupported, "decoding a sensor document")
}

// Encode encodes message with the JSON encoder.
func Encode(message *entities.Message) ([]byte, error) {
	return NewJSONEncoder().Encode(message)
}

func EncodeAll(messages []*entities.Message) ([][]byte, error) {
	return NewJSONEncoder().EncodeAll(messages)
}

func Decode(data []byte) (*entities.Message, error) {
	return NewJSONEncoder().Decode(data)
}
