package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload to decode
var ErrNilPayload = errors.New("event payload is nil")

// DecodePayload converts an event payload into T.
// Payloads published in-process are already a T or *T. Payloads replayed from
// the dead-letter file or the event log arrive as raw JSON or generic maps and
// take the JSON path.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T

	switch v := input.(type) {
	case nil:
		return result, ErrNilPayload
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, ErrNilPayload
		}
		return *v, nil
	case json.RawMessage:
		return result, unmarshalPayload(v, &result)
	case []byte:
		return result, unmarshalPayload(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("marshal payload %T: %w", input, err)
	}
	return result, unmarshalPayload(data, &result)
}

func unmarshalPayload[T any](data []byte, out *T) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode payload into %T: %w", *out, err)
	}
	return nil
}
