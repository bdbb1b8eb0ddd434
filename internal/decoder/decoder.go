// internal/decoder/decoder.go
package decoder

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldsPerFrame is the exact field count of a telemetry line:
// motor index + updated flag + timestamp + 8 metrics.
// The controller also prints vendor status lines of a different shape on the
// same wire; field count is the only way to tell them apart.
const FieldsPerFrame = 11

// ErrMalformedFrame marks a line that is not a telemetry frame.
var ErrMalformedFrame = errors.New("decoder: malformed frame")

// Frame is one validated telemetry record for one motor.
type Frame struct {
	Motor   int
	Updated bool

	TimestampMs   float64
	ThrottleIn    float64
	ThrottleOut   float64
	RPM           float64
	Voltage       float64
	TotalCurrent  float64
	PhaseCurrent  float64
	MosfetTemp    float64
	CapacitorTemp float64
}

// Parse turns one newline-stripped line into a Frame. Pure: no side effects.
// Every field must parse as a float; the motor index must additionally be
// integral, and the updated flag is truncated to int (nonzero = true).
func Parse(line []byte) (Frame, error) {
	fields := strings.Split(string(bytes.TrimSpace(line)), ",")
	if len(fields) != FieldsPerFrame {
		return Frame{}, fmt.Errorf("%w: got %d fields, want %d (line %q)",
			ErrMalformedFrame, len(fields), FieldsPerFrame, line)
	}

	var vals [FieldsPerFrame]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Frame{}, fmt.Errorf("%w: field %d %q is not numeric",
				ErrMalformedFrame, i, f)
		}
		vals[i] = v
	}

	if vals[0] != math.Trunc(vals[0]) {
		return Frame{}, fmt.Errorf("%w: motor index %v is not an integer",
			ErrMalformedFrame, vals[0])
	}

	return Frame{
		Motor:         int(vals[0]),
		Updated:       int(vals[1]) != 0,
		TimestampMs:   vals[2],
		ThrottleIn:    vals[3],
		ThrottleOut:   vals[4],
		RPM:           vals[5],
		Voltage:       vals[6],
		TotalCurrent:  vals[7],
		PhaseCurrent:  vals[8],
		MosfetTemp:    vals[9],
		CapacitorTemp: vals[10],
	}, nil
}
