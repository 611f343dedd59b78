package value

import "math"

// StringCap is the capacity of the inline string storage in [Value],
// including room for a terminating NUL when handed to terminated-sequence
// consumers. Longer inputs are truncated on parse.
const StringCap = 32

// Type identifies the scalar kind carried by a [Value].
type Type int

// Value types.
const (
	TypeNone    Type = iota // No type; never valid
	TypeUint8               // 8-bit unsigned integer
	TypeUint16              // 16-bit unsigned integer
	TypeUint32              // 32-bit unsigned integer
	TypeUint64              // 64-bit unsigned integer
	TypeInt8                // 8-bit signed integer
	TypeInt16               // 16-bit signed integer
	TypeInt32               // 32-bit signed integer
	TypeInt64               // 64-bit signed integer
	TypeFloat32             // 32-bit float
	TypeFloat64             // 64-bit float
	TypeChar                // Single byte
	TypeString              // Short inline string
	TypeBool                // Boolean
)

// String returns a string representation of the type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeUint64:
		return "uint64"
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeChar:
		return "char"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a fixed-size tagged scalar. Numeric kinds share a single
// 64-bit bit pattern and strings live in an inline array, so a Value
// never allocates and is freely copyable.
type Value struct {
	typ    Type
	bits   uint64
	str    [StringCap]byte
	strLen int
}

// Type returns the scalar kind currently held.
func (v *Value) Type() Type {
	return v.typ
}

// Uint8 returns the value as an 8-bit unsigned integer.
func (v *Value) Uint8() uint8 { return uint8(v.bits) }

// Uint16 returns the value as a 16-bit unsigned integer.
func (v *Value) Uint16() uint16 { return uint16(v.bits) }

// Uint32 returns the value as a 32-bit unsigned integer.
func (v *Value) Uint32() uint32 { return uint32(v.bits) }

// Uint64 returns the value as a 64-bit unsigned integer.
func (v *Value) Uint64() uint64 { return v.bits }

// Int8 returns the value as an 8-bit signed integer.
func (v *Value) Int8() int8 { return int8(v.bits) }

// Int16 returns the value as a 16-bit signed integer.
func (v *Value) Int16() int16 { return int16(v.bits) }

// Int32 returns the value as a 32-bit signed integer.
func (v *Value) Int32() int32 { return int32(v.bits) }

// Int64 returns the value as a 64-bit signed integer.
func (v *Value) Int64() int64 { return int64(v.bits) }

// Float32 returns the value as a 32-bit float.
func (v *Value) Float32() float32 { return math.Float32frombits(uint32(v.bits)) }

// Float64 returns the value as a 64-bit float.
func (v *Value) Float64() float64 { return math.Float64frombits(v.bits) }

// Bool returns the value as a boolean.
func (v *Value) Bool() bool { return v.bits != 0 }

// Char returns the value as a single byte.
func (v *Value) Char() byte { return byte(v.bits) }

// Str returns the inline string storage. The slice aliases the Value and
// is valid until the Value is next modified.
func (v *Value) Str() []byte { return v.str[:v.strLen] }

// SetUint8 stores an 8-bit unsigned integer.
func (v *Value) SetUint8(x uint8) { v.typ, v.bits = TypeUint8, uint64(x) }

// SetUint16 stores a 16-bit unsigned integer.
func (v *Value) SetUint16(x uint16) { v.typ, v.bits = TypeUint16, uint64(x) }

// SetUint32 stores a 32-bit unsigned integer.
func (v *Value) SetUint32(x uint32) { v.typ, v.bits = TypeUint32, uint64(x) }

// SetUint64 stores a 64-bit unsigned integer.
func (v *Value) SetUint64(x uint64) { v.typ, v.bits = TypeUint64, x }

// SetInt8 stores an 8-bit signed integer.
func (v *Value) SetInt8(x int8) { v.typ, v.bits = TypeInt8, uint64(x) }

// SetInt16 stores a 16-bit signed integer.
func (v *Value) SetInt16(x int16) { v.typ, v.bits = TypeInt16, uint64(x) }

// SetInt32 stores a 32-bit signed integer.
func (v *Value) SetInt32(x int32) { v.typ, v.bits = TypeInt32, uint64(x) }

// SetInt64 stores a 64-bit signed integer.
func (v *Value) SetInt64(x int64) { v.typ, v.bits = TypeInt64, uint64(x) }

// SetFloat32 stores a 32-bit float.
func (v *Value) SetFloat32(x float32) {
	v.typ, v.bits = TypeFloat32, uint64(math.Float32bits(x))
}

// SetFloat64 stores a 64-bit float.
func (v *Value) SetFloat64(x float64) {
	v.typ, v.bits = TypeFloat64, math.Float64bits(x)
}

// SetBool stores a boolean.
func (v *Value) SetBool(x bool) {
	v.typ = TypeBool
	if x {
		v.bits = 1
	} else {
		v.bits = 0
	}
}

// SetChar stores a single byte.
func (v *Value) SetChar(c byte) { v.typ, v.bits = TypeChar, uint64(c) }

// SetString stores a string in the inline array, truncating to
// StringCap-1 bytes.
func (v *Value) SetString(s string) {
	v.typ = TypeString
	n := len(s)
	if n > StringCap-1 {
		n = StringCap - 1
	}
	copy(v.str[:], s[:n])
	v.str[n] = 0
	v.strLen = n
}
