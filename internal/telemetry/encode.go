// internal/telemetry/encode.go
package telemetry

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Encode serializes one emission into the messages to deliver, in order.
// Status-only yields one message per motor; Absent yields none.
// Output is compact JSON with no embedded whitespace.
// No IO. No side effects.
func Encode(e Emission) ([][]byte, error) {
	switch e.Kind {
	case KindAbsent:
		return nil, nil

	case KindFull:
		b, err := json.Marshal(e.Full)
		if err != nil {
			return nil, fmt.Errorf("telemetry: encode full: %w", err)
		}
		return [][]byte{b}, nil

	case KindStatusOnly:
		msgs := make([][]byte, 0, len(e.Statuses))
		for i, s := range e.Statuses {
			b, err := json.Marshal(motorStatus{
				Motor:  strconv.Itoa(i + 1),
				Status: s.String(),
			})
			if err != nil {
				return nil, fmt.Errorf("telemetry: encode status: %w", err)
			}
			msgs = append(msgs, b)
		}
		return msgs, nil

	case KindLinkError:
		b, err := json.Marshal(linkError{Status: "error", Message: e.Message})
		if err != nil {
			return nil, fmt.Errorf("telemetry: encode link error: %w", err)
		}
		return [][]byte{b}, nil

	default:
		return nil, fmt.Errorf("telemetry: unknown emission kind %d", e.Kind)
	}
}
