package musicutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var byteUnits = [...]string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

const byteBase = 1024.0

// Add returns left + right.
func Add(left, right uint) uint {
	return left + right
}

// ErrNotUint is returned by UintFromNumber for values outside the unsigned range.
var ErrNotUint = errors.New("not a non-negative integer")

// UintFromNumber converts a host number to an Add operand. Negative, NaN and
// infinite values are rejected; fractions are truncated toward zero.
func UintFromNumber(v float64) (uint, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= math.MaxUint64 {
		return 0, fmt.Errorf("%w: %v", ErrNotUint, v)
	}
	return uint(v), nil
}

// FormatBytes renders a byte count with a binary unit suffix, e.g. "1.5 KB".
// The value is rounded half away from zero to decimals places and printed
// without trailing zeros. Inputs past the last unit stay in YB.
func FormatBytes(bytes float64, decimals int) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if decimals < 1 {
		decimals = 0
	}

	i := magnitudeIndex(bytes)
	value := roundToDecimals(bytes/math.Pow(byteBase, float64(i)), decimals)

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + byteUnits[i]
}

// magnitudeIndex picks the power-of-1024 bucket for bytes, clamped to the unit table.
// Sub-byte, negative and NaN inputs land in bucket 0.
func magnitudeIndex(bytes float64) int {
	idx := math.Floor(math.Log(bytes) / math.Log(byteBase))
	switch {
	case math.IsNaN(idx) || idx < 0:
		return 0
	case idx > float64(len(byteUnits)-1):
		return len(byteUnits) - 1
	}
	return int(idx)
}

func roundToDecimals(v float64, decimals int) float64 {
	multiplier := math.Pow(10, float64(decimals))
	return math.Round(v*multiplier) / multiplier
}

// FormatTime renders a duration in seconds as "m:ss". Minutes are not wrapped
// into hours, so 3600 renders as "60:00".
func FormatTime(seconds float64) string {
	minutes := saturateInt32(math.Floor(seconds / 60))
	secs := saturateInt32(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// FormatClock renders a duration in seconds as "h:mm:ss".
func FormatClock(seconds float64) string {
	hours := saturateInt32(math.Floor(seconds / 3600))
	minutes := saturateInt32(math.Floor(math.Mod(seconds, 3600) / 60))
	secs := saturateInt32(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
}

// saturateInt32 converts v to int32, clamping out-of-range values and mapping NaN to 0.
func saturateInt32(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}
