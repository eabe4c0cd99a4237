package encoding

import (
	"strconv"

	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/entities"
)

// Each converter renders one kind of field:
//   - enumerated and boolean-like fields become the text of their ordinal,
//   - the channel value becomes the text of the number,
//   - limits stay native integers,
//   - free text passes through untouched.
// field applies a converter to an optional value, returning nil when absent
// so that omitempty drops the key.

func field[T, R any](value entities.Optional[T], convert func(T) R) *R {
	v, ok := value.Get()
	if !ok {
		return nil
	}
	converted := convert(v)
	return &converted
}

func enumText[E entities.Coded](value E) string {
	return strconv.Itoa(value.Code())
}

func yesNoText(value bool) string {
	return enumText(entities.YesNoOf(value))
}

func numberText(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func integer(value int) int {
	return value
}

func freeText(value string) string {
	return value
}
