package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/ardnew/streambuf/pkg"
)

// IsNumber reports whether s is [+|-]?digits[.digits]? with at least
// one digit.
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	digit, dot := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digit = true
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digit
}

// IsInteger reports whether s is [+|-]?digits+.
func IsInteger(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsUInteger reports whether s is [+]?digits+ with no minus sign.
func IsUInteger(s string) bool {
	if s == "" || s[0] == '-' {
		return false
	}
	if s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsBool reports whether s is "0", "1", or a case-insensitive
// "true"/"false".
func IsBool(s string) bool {
	if s == "0" || s == "1" {
		return true
	}
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

// Valid reports whether s is a well-formed, in-range token for the given
// type. Char and String accept any token; TypeNone accepts none.
func Valid(s string, t Type) bool {
	switch t {
	case TypeUint8:
		_, ok := parseUint(s, 8)
		return ok
	case TypeUint16:
		_, ok := parseUint(s, 16)
		return ok
	case TypeUint32:
		_, ok := parseUint(s, 32)
		return ok
	case TypeUint64:
		_, ok := parseUint(s, 64)
		return ok
	case TypeInt8:
		_, ok := parseInt(s, 8)
		return ok
	case TypeInt16:
		_, ok := parseInt(s, 16)
		return ok
	case TypeInt32:
		_, ok := parseInt(s, 32)
		return ok
	case TypeInt64:
		_, ok := parseInt(s, 64)
		return ok
	case TypeFloat32:
		_, ok := parseFloat(s, 32)
		return ok
	case TypeFloat64:
		_, ok := parseFloat(s, 64)
		return ok
	case TypeChar, TypeString:
		return true
	case TypeBool:
		return IsBool(s)
	default:
		return false
	}
}

// Parse converts a text token to a tagged value of the given type.
// It reports false on a syntax or range error, in which case the contents
// of out are unspecified.
//
// Bool is lenient, matching the original Arduino-side contract: any token
// other than "1" or a case-insensitive "true" parses as false. Char takes
// the first byte of the token, or NUL when the token is empty. String is
// truncated to StringCap-1 bytes.
func Parse(s string, t Type, out *Value) bool {
	if out == nil {
		return false
	}

	switch t {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		v, ok := parseUint(s, uintBits(t))
		if !ok {
			return reject(s, t)
		}
		out.typ, out.bits = t, v

	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		v, ok := parseInt(s, intBits(t))
		if !ok {
			return reject(s, t)
		}
		out.typ, out.bits = t, uint64(v)

	case TypeFloat32:
		f, ok := parseFloat(s, 32)
		if !ok {
			return reject(s, t)
		}
		out.typ, out.bits = t, uint64(math.Float32bits(float32(f)))

	case TypeFloat64:
		f, ok := parseFloat(s, 64)
		if !ok {
			return reject(s, t)
		}
		out.typ, out.bits = t, math.Float64bits(f)

	case TypeBool:
		out.SetBool(s == "1" || strings.EqualFold(s, "true"))

	case TypeString:
		out.SetString(s)

	case TypeChar:
		if s == "" {
			out.SetChar(0)
		} else {
			out.SetChar(s[0])
		}

	default:
		return reject(s, t)
	}
	return true
}

// reject logs a failed conversion and reports false.
func reject(s string, t Type) bool {
	pkg.LogDebug(pkg.ComponentValue, "token rejected",
		"type", t.String(),
		"token", s)
	return false
}

// Trim removes ASCII whitespace from both ends of buf in place, compacting
// the remaining bytes to offset 0, and returns the trimmed subslice. A NUL
// terminator is written past the trimmed content when room remains.
func Trim(buf []byte) []byte {
	if buf == nil {
		return nil
	}

	start, end := 0, len(buf)
	for start < end && isSpace(buf[start]) {
		start++
	}
	for end > start && isSpace(buf[end-1]) {
		end--
	}

	n := end - start
	copy(buf, buf[start:end])
	if n < len(buf) {
		buf[n] = 0
	}
	return buf[:n]
}

// isSpace reports whether c is an ASCII whitespace byte.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// parseUint validates and converts an unsigned decimal token of the given
// bit width. A leading '+' is accepted.
func parseUint(s string, bits int) (uint64, bool) {
	if !IsUInteger(s) {
		return 0, false
	}
	if s[0] == '+' {
		s = s[1:]
	}
	v, err := strconv.ParseUint(s, 10, bits)
	return v, err == nil
}

// parseInt validates and converts a signed decimal token of the given
// bit width.
func parseInt(s string, bits int) (int64, bool) {
	if !IsInteger(s) {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, bits)
	return v, err == nil
}

// parseFloat validates and converts a plain decimal float token of the
// given bit width. Exponent, hex, and inf/NaN forms are rejected by the
// IsNumber gate.
func parseFloat(s string, bits int) (float64, bool) {
	if !IsNumber(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, bits)
	return f, err == nil
}

// uintBits returns the bit width for an unsigned integer type.
func uintBits(t Type) int {
	switch t {
	case TypeUint8:
		return 8
	case TypeUint16:
		return 16
	case TypeUint32:
		return 32
	default:
		return 64
	}
}

// intBits returns the bit width for a signed integer type.
func intBits(t Type) int {
	switch t {
	case TypeInt8:
		return 8
	case TypeInt16:
		return 16
	case TypeInt32:
		return 32
	default:
		return 64
	}
}
