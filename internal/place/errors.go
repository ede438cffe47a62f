package place

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index falls outside the store.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnsupportedPayloadKind is returned when an inbound item has no plain-text representation.
	ErrUnsupportedPayloadKind = errors.New("unsupported payload kind")
	// ErrEmptyPayload is returned when a plain-text item carries no title.
	ErrEmptyPayload = errors.New("empty payload")
)

// IndexError reports which operation rejected which index. Len is the
// exclusive upper bound that applied.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// KindError lists the kinds an inbound item offered.
type KindError struct {
	Offered []Kind
}

func (e *KindError) Error() string {
	if len(e.Offered) == 0 {
		return "unsupported payload kind: item has no representations"
	}
	return fmt.Sprintf("unsupported payload kind: offered %v", e.Offered)
}

func (e *KindError) Unwrap() error { return ErrUnsupportedPayloadKind }
