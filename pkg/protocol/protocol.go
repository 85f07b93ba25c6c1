package protocol

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
)

const MessageName = "HYPRTINT_LAYOUT_CHANGED"

// LayoutChanged is the message code carried by every layout change event.
var LayoutChanged = RegisterMessage(MessageName)

const (
	messageRangeStart = 0xC000
	messageRangeSize  = 0x4000

	wordSize  = 8
	eventSize = 4 + wordSize
)

var (
	ErrUnpackable = errors.New("layout id cannot be packed into a word")
	ErrMalformed  = errors.New("malformed event")
)

type Event struct {
	Message uint32
	Payload uint64
}

// RegisterMessage maps a message name to a stable code in the application
// message range.
func RegisterMessage(name string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return messageRangeStart + h.Sum32()%messageRangeSize
}

func NewLayoutEvent(layout hyprtint.LayoutID) (Event, error) {
	word, err := PackLayout(layout)
	if err != nil {
		return Event{}, err
	}
	return Event{Message: LayoutChanged, Payload: word}, nil
}

func (e Event) Layout() hyprtint.LayoutID {
	return UnpackLayout(e.Payload)
}

// PackLayout stores the identifier bytes in a word, first byte lowest.
func PackLayout(layout hyprtint.LayoutID) (uint64, error) {
	if len(layout) == 0 || len(layout) > wordSize {
		return 0, fmt.Errorf("%w: %q has %d bytes", ErrUnpackable, layout, len(layout))
	}

	var buf [wordSize]byte
	for i := 0; i < len(layout); i++ {
		b := layout[i]
		if b < 0x21 || b > 0x7e {
			return 0, fmt.Errorf("%w: %q has byte 0x%02x", ErrUnpackable, layout, b)
		}
		buf[i] = b
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}

func UnpackLayout(word uint64) hyprtint.LayoutID {
	var buf [wordSize]byte
	binary.LittleEndian.PutUint64(buf[:], word)

	n := 0
	for n < wordSize && buf[n] != 0 {
		n++
	}
	return hyprtint.LayoutID(buf[:n])
}

func (e Event) MarshalBinary() ([]byte, error) {
	buf := make([]byte, eventSize)
	binary.LittleEndian.PutUint32(buf[0:4], e.Message)
	binary.LittleEndian.PutUint64(buf[4:], e.Payload)
	return buf, nil
}

func (e *Event) UnmarshalBinary(data []byte) error {
	if len(data) != eventSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrMalformed, len(data), eventSize)
	}
	e.Message = binary.LittleEndian.Uint32(data[0:4])
	e.Payload = binary.LittleEndian.Uint64(data[4:])
	return nil
}
