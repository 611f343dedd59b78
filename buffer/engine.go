package buffer

import (
	"io"

	"github.com/ardnew/streambuf/pkg"
)

// Direction selects one of the engine's two buffers.
type Direction int

// Buffer directions.
const (
	Outbound Direction = iota // Data staged for delivery elsewhere
	Inbound                   // Data received from elsewhere
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Outbound:
		return "outbound"
	case Inbound:
		return "inbound"
	default:
		return "unknown"
	}
}

// Engine owns one outbound and one inbound [Buffer] and forwards each
// operation to the selected instance, recording the outcome of every
// fallible call in a single shared status field (last-write-wins across
// both directions). Callers needing per-direction diagnosis must read
// [Engine.LastStatus] immediately after each call, before issuing another
// fallible call on the other direction.
//
// The engine performs no I/O and no allocation; transport of drained or
// appended bytes is entirely the caller's responsibility. Like [Buffer],
// an Engine assumes a single logical owner.
type Engine struct {
	out    Buffer
	in     Buffer
	status pkg.Status
}

// New creates an engine with the given backing storage per direction.
// Either storage may be nil, leaving that direction permanently
// non-functional: every fallible write on it reports overflow.
func New(outbound, inbound []byte) *Engine {
	e := &Engine{}
	e.out.Bind(outbound)
	e.in.Bind(inbound)
	return e
}

// Bind replaces the backing storage for the given direction, zero-filling
// the new region and resetting its length. Slices previously returned by
// [Engine.Bytes] for that direction are invalidated.
func (e *Engine) Bind(d Direction, storage []byte) {
	e.buffer(d).Bind(storage)
	pkg.LogDebug(pkg.ComponentEngine, "buffer bound",
		"direction", d.String(),
		"cap", len(storage))
}

// Append adds bytes after existing content in the given direction using
// sliding-window semantics. It reports false when the shared status was
// set, including the partial-success overflow case where the oldest bytes
// were evicted but the newest were retained.
func (e *Engine) Append(d Direction, p []byte) bool {
	return e.record(e.buffer(d).Append(p))
}

// Set replaces the entire contents of the given direction.
func (e *Engine) Set(d Direction, p []byte) bool {
	return e.record(e.buffer(d).Set(p))
}

// Drop removes exactly n bytes from the front of the given direction.
func (e *Engine) Drop(d Direction, n int) bool {
	return e.record(e.buffer(d).Drop(n))
}

// Pop copies up to len(dst) bytes out of the given direction and removes
// them. A short copy still removes what was copied; it reports false with
// status [pkg.StatusNotEnoughData].
func (e *Engine) Pop(d Direction, dst []byte) (int, bool) {
	n, err := e.buffer(d).Pop(dst)
	return n, e.record(err)
}

// Drain copies min(Len(d), len(dst)) bytes out of the given direction and
// removes them. A short copy that empties the buffer is a success.
func (e *Engine) Drain(d Direction, dst []byte) (int, bool) {
	n, err := e.buffer(d).Drain(dst)
	return n, e.record(err)
}

// Len returns the number of valid bytes held in the given direction.
func (e *Engine) Len(d Direction) int {
	return e.buffer(d).Len()
}

// Cap returns the storage capacity of the given direction.
func (e *Engine) Cap(d Direction) int {
	return e.buffer(d).Cap()
}

// Bytes returns the live valid region of the given direction, valid only
// until the next mutating call or rebind. Callers must not modify it.
func (e *Engine) Bytes(d Direction) []byte {
	return e.buffer(d).Bytes()
}

// Clear empties the given direction. Clearing twice is a no-op the
// second time.
func (e *Engine) Clear(d Direction) {
	e.buffer(d).Clear()
}

// Stats returns overflow accounting for the given direction. Counters
// are collected only in builds with the "profile" tag and reset on
// rebind; default builds always read zero.
func (e *Engine) Stats(d Direction) Stats {
	return e.buffer(d).Stats()
}

// Flush clears the outbound buffer, modeling delivery of the staged
// payload. The inbound buffer is untouched.
func (e *Engine) Flush() {
	e.out.Clear()
}

// Available returns the number of bytes waiting in the inbound buffer.
func (e *Engine) Available() int {
	return e.in.Len()
}

// ReadByte removes and returns the next inbound byte.
// It returns false if the inbound buffer is empty.
func (e *Engine) ReadByte() (byte, bool) {
	return e.in.TakeByte()
}

// PeekByte returns the next inbound byte without removing it.
// It returns false if the inbound buffer is empty.
func (e *Engine) PeekByte() (byte, bool) {
	return e.in.PeekByte()
}

// Write appends bytes to the outbound buffer with sliding-window
// semantics, implementing [io.Writer].
//
// It returns the count of bytes from p durably present after the call:
// the full length on total success, or the portion that fit when p alone
// exceeds usable capacity. Whenever eviction occurred, of old content or
// of p's own head, the error is [pkg.ErrOverflow] and the shared status
// is set, even if all of p was retained.
func (e *Engine) Write(p []byte) (int, error) {
	err := e.out.Append(p)
	e.record(err)
	if err != nil {
		if err != pkg.ErrOverflow {
			return 0, err
		}
		n := len(p)
		if u := e.out.usable(); n > u {
			n = u
		}
		return n, err
	}
	return len(p), nil
}

// WriteByte appends a single byte to the outbound buffer, implementing
// [io.ByteWriter]. Eviction of an older byte reports [pkg.ErrOverflow]
// even though the byte itself was accepted.
func (e *Engine) WriteByte(c byte) error {
	one := [1]byte{c}
	err := e.out.Append(one[:])
	e.record(err)
	return err
}

// LastStatus returns the status recorded by the most recent fallible call
// on either direction.
func (e *Engine) LastStatus() pkg.Status {
	return e.status
}

// Err returns the sentinel error corresponding to [Engine.LastStatus],
// or nil when no condition is pending.
func (e *Engine) Err() error {
	return e.status.Error()
}

// ClearStatus resets the shared status to [pkg.StatusNone].
func (e *Engine) ClearStatus() {
	e.status = pkg.StatusNone
}

// buffer returns the instance for the given direction.
// Unknown directions map to outbound.
func (e *Engine) buffer(d Direction) *Buffer {
	if d == Inbound {
		return &e.in
	}
	return &e.out
}

// record stores the outcome of a fallible call into the shared status and
// reports success.
func (e *Engine) record(err error) bool {
	e.status = pkg.StatusOf(err)
	if err != nil {
		pkg.LogDebug(pkg.ComponentEngine, "buffer condition reported",
			"status", e.status.String())
	}
	return err == nil
}

// Compile-time interface checks
var (
	_ io.Writer     = (*Engine)(nil)
	_ io.ByteWriter = (*Engine)(nil)
)
