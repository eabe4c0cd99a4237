package entities

// Optional holds a value that may be absent. The zero value is absent, which
// keeps "never set" distinct from an explicit false, zero or empty string.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

func optionalFromPointer[T any](value *T) Optional[T] {
	if value == nil {
		return None[T]()
	}
	return Some(*value)
}
