package prtg

import (
	"io"
	"os"
	"strconv"

	bloomFilter "github.com/bits-and-blooms/bloom/v3"
	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/encoding"
	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/entities"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DUPLICATION_FILTER      = "0"
	FILTER_CAPACITY         = "1000"
	DUPLICATION_PROBABILITY = "0.01"
)

// Sender writes sensor documents to the output the monitoring platform reads,
// one document per line.
type Sender interface {
	SendMessage(message *entities.Message) error
	SendMessages(messages []*entities.Message) error
	CreateAndSendMessage(channels []entities.Channel, options ...entities.MessageOption) error
}

type msgSender struct {
	output                 io.Writer
	encoder                encoding.Encoder
	log                    *logrus.Entry
	filterCapacity         uint
	duplicationProbability float64
	checkDuplicatedNames   bool
}

// NewSender returns a Sender writing to output. Duplicate channel name
// detection is configured from DUPLICATION_FILTER, FILTER_CAPACITY and
// DUPLICATION_PROBABILITY.
func NewSender(output io.Writer, encoder encoding.Encoder, log *logrus.Entry) (Sender, error) {
	filterCapacity, err := strconv.ParseUint(getValueFromEnvironmentVariable("FILTER_CAPACITY", FILTER_CAPACITY), 10, 0)
	if err != nil {
		return nil, errors.Wrap(err, "FILTER_CAPACITY")
	}
	duplicationProbability, err := strconv.ParseFloat(getValueFromEnvironmentVariable("DUPLICATION_PROBABILITY", DUPLICATION_PROBABILITY), 64)
	if err != nil {
		return nil, errors.Wrap(err, "DUPLICATION_PROBABILITY")
	}
	if duplicationProbability <= 0 || duplicationProbability >= 1 {
		return nil, errors.Errorf("DUPLICATION_PROBABILITY must be between 0 and 1, got %v", duplicationProbability)
	}

	return &msgSender{
		output:                 output,
		encoder:                encoder,
		log:                    log,
		filterCapacity:         uint(filterCapacity),
		duplicationProbability: duplicationProbability,
		checkDuplicatedNames:   getValueFromEnvironmentVariable("DUPLICATION_FILTER", DUPLICATION_FILTER) == "1",
	}, nil
}

// NewStdoutSender is the usual sender for a custom sensor executable.
func NewStdoutSender(log *logrus.Entry) (Sender, error) {
	return NewSender(os.Stdout, encoding.NewJSONEncoder(), log)
}

func (s *msgSender) SendMessage(message *entities.Message) error {
	s.inspect(message)
	document, err := s.encoder.Encode(message)
	if err != nil {
		return errors.Wrap(err, "send message")
	}
	return s.write(document)
}

// SendMessages encodes every message before writing any, so a failing message
// leaves the output untouched.
func (s *msgSender) SendMessages(messages []*entities.Message) error {
	for _, message := range messages {
		s.inspect(message)
	}
	documents, err := s.encoder.EncodeAll(messages)
	if err != nil {
		return errors.Wrap(err, "send messages")
	}
	for _, document := range documents {
		if err := s.write(document); err != nil {
			return err
		}
	}
	return nil
}

func (s *msgSender) CreateAndSendMessage(channels []entities.Channel, options ...entities.MessageOption) error {
	message, err := entities.NewMessage(channels, options...)
	if err != nil {
		return errors.Wrap(err, "create message")
	}
	return s.SendMessage(message)
}

func (s *msgSender) write(document []byte) error {
	line := make([]byte, 0, len(document)+1)
	line = append(append(line, document...), '\n')
	if _, err := s.output.Write(line); err != nil {
		return errors.Wrap(err, "write sensor document")
	}
	s.log.WithField("bytes", len(line)).Debug("sensor document written")
	return nil
}

// inspect logs conditions the platform will not display correctly. It never
// changes the message.
func (s *msgSender) inspect(message *entities.Message) {
	if message == nil {
		return
	}
	isError, _ := message.Error.Get()
	if len(message.Channels) == 0 && !isError {
		s.log.Warn("message has no channels and is not marked as error")
	}
	if !s.checkDuplicatedNames {
		return
	}
	filter := bloomFilter.NewWithEstimates(s.filterCapacity, s.duplicationProbability)
	for _, channel := range message.Channels {
		if filter.TestOrAddString(channel.Name) {
			s.log.WithField("channel", channel.Name).Warn("channel name is probably repeated in message")
		}
	}
}

func getValueFromEnvironmentVariable(variableName, defaultValue string) string {
	value := os.Getenv(variableName)
	if value != "" {
		return value
	}
	return defaultValue
}
