package value

import "strconv"

// AppendTo appends the text form of the value to dst and returns the
// extended slice. No allocation occurs when dst has sufficient spare
// capacity, so a fixed scratch array makes a natural destination:
//
//	var scratch [32]byte
//	text := v.AppendTo(scratch[:0])
//
// Floats use the shortest representation that round-trips. An unknown
// type appends "Unsupported Type".
func (v *Value) AppendTo(dst []byte) []byte {
	switch v.typ {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		return strconv.AppendUint(dst, v.uintValue(), 10)
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		return strconv.AppendInt(dst, v.intValue(), 10)
	case TypeFloat32:
		return strconv.AppendFloat(dst, float64(v.Float32()), 'g', -1, 32)
	case TypeFloat64:
		return strconv.AppendFloat(dst, v.Float64(), 'g', -1, 64)
	case TypeBool:
		if v.Bool() {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case TypeString:
		return append(dst, v.Str()...)
	case TypeChar:
		return append(dst, v.Char())
	default:
		return append(dst, "Unsupported Type"...)
	}
}

// String returns the text form of the value. Unlike [Value.AppendTo] it
// allocates; prefer AppendTo in allocation-sensitive paths.
func (v *Value) String() string {
	return string(v.AppendTo(nil))
}

// uintValue returns the held bits truncated to the tagged unsigned width.
func (v *Value) uintValue() uint64 {
	switch v.typ {
	case TypeUint8:
		return uint64(v.Uint8())
	case TypeUint16:
		return uint64(v.Uint16())
	case TypeUint32:
		return uint64(v.Uint32())
	default:
		return v.bits
	}
}

// intValue returns the held bits sign-extended from the tagged width.
func (v *Value) intValue() int64 {
	switch v.typ {
	case TypeInt8:
		return int64(v.Int8())
	case TypeInt16:
		return int64(v.Int16())
	case TypeInt32:
		return int64(v.Int32())
	default:
		return v.Int64()
	}
}
