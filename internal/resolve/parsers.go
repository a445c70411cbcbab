package resolve

import "strconv"

// Uint8 parses a base-10 unsigned 8-bit integer.
func Uint8(value string) (uint8, bool) {
	n, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// Uint32 parses a base-10 unsigned 32-bit integer.
func Uint32(value string) (uint32, bool) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// Int32 parses a base-10 signed 32-bit integer.
func Int32(value string) (int32, bool) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// Float32 parses a 32-bit float.
func Float32(value string) (float32, bool) {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// Flag reads a boolean written as an integer: 0 is false, any other unsigned
// integer is true. The words "true" and "false" are not flags and fail.
func Flag(value string) (bool, bool) {
	n, ok := Uint32(value)
	if !ok {
		return false, false
	}
	return n != 0, true
}

// Text accepts any value verbatim.
func Text(value string) (string, bool) {
	return value, true
}
