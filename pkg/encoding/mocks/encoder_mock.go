package mocks

import (
	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/entities"
	"github.com/stretchr/testify/mock"
)

type EncoderMock struct {
	mock.Mock
}

func (e *EncoderMock) Encode(message *entities.Message) ([]byte, error) {
	args := e.Called(message)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (e *EncoderMock) EncodeAll(messages []*entities.Message) ([][]byte, error) {
	args := e.Called(messages)
	documents, _ := args.Get(0).([][]byte)
	return documents, args.Error(1)
}

func (e *EncoderMock) Decode(data []byte) (*entities.Message, error) {
	args := e.Called(data)
	message, _ := args.Get(0).(*entities.Message)
	return message, args.Error(1)
}
