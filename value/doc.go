// Package value converts between text tokens and a closed set of tagged
// scalar types.
//
// It is the interpretation layer paired with the buffer engine in
// [github.com/ardnew/streambuf/buffer]: applications drain terminated
// tokens from a buffer and use this package to validate and type them.
// The two packages are independent; neither imports the other.
//
// All functions are stateless and allocate nothing on the success path.
// [Value] stores every
// scalar kind in a fixed 64-bit pattern plus an inline [StringCap]-byte
// array, so values can live on the stack or in statically-sized tables.
//
//	var v value.Value
//	if value.Parse(token, value.TypeUint16, &v) {
//	    apply(v.Uint16())
//	}
//
// Formatting follows the same caller-provided-storage pattern via
// [Value.AppendTo].
package value
