package buffer

import (
	"github.com/ardnew/streambuf/pkg"
)

// Buffer is a fixed-capacity byte buffer over caller-supplied storage.
//
// The buffer never allocates: all storage is injected via [NewBuffer] or
// [Buffer.Bind] and borrowed for the lifetime of the binding. Capacity is
// the length of the bound storage. One byte past the valid region is kept
// as a NUL terminator whenever capacity allows, so drained content can be
// handed to consumers expecting a terminated byte sequence; the terminator
// is never counted in [Buffer.Len].
//
// Writes that exceed free space evict the oldest bytes from the front
// (sliding window): the newest data is always the data worth keeping.
// Removal compacts the remaining bytes to offset 0.
//
// A Buffer is not safe for concurrent use; it assumes a single logical
// owner, matching its intended bare-metal / cooperative-loop environments.
type Buffer struct {
	data   []byte // Caller-supplied backing storage
	length int    // Valid bytes held, 0 <= length <= len(data)
	stats  bufferStats
}

// NewBuffer creates a buffer bound to the given storage.
// A nil or empty storage yields a zero-capacity buffer on which every
// fallible write reports overflow.
func NewBuffer(storage []byte) *Buffer {
	b := &Buffer{}
	b.Bind(storage)
	return b
}

// Bind replaces the backing storage, zero-filling the new region and
// resetting the length to 0. Any slice previously returned by
// [Buffer.Bytes] is invalidated.
func (b *Buffer) Bind(storage []byte) {
	b.data = storage
	b.length = 0
	b.stats.reset()
	for i := range b.data {
		b.data[i] = 0
	}
}

// Len returns the number of valid bytes currently held.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the capacity of the bound storage.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Free returns the number of bytes [Buffer.Append] can accept without
// evicting, accounting for the reserved terminator byte.
func (b *Buffer) Free() int {
	return b.usable() - b.length
}

// Bytes returns the valid region of the backing storage. The slice is a
// live view: it is valid only until the next mutating call or rebind, and
// callers must not modify it.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.length]
}

// Clear empties the buffer, zero-filling the backing storage.
// Clearing an empty buffer is a no-op.
func (b *Buffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
	b.length = 0
}

// Append adds the given bytes after existing content.
//
// When the bytes do not fit in free space, exactly enough of the oldest
// bytes are evicted from the front to admit the new data, and
// [pkg.ErrOverflow] is returned. The retained content is then the last
// Cap()-1 bytes of the logical sequence (old content followed by p), in
// order. A non-nil error therefore does NOT mean nothing happened.
//
// A nil source returns [pkg.ErrNullData] and a zero-capacity buffer
// returns [pkg.ErrOverflow]; the buffer is unchanged in both cases.
func (b *Buffer) Append(p []byte) error {
	if p == nil {
		return pkg.ErrNullData
	}
	if len(b.data) == 0 {
		return pkg.ErrOverflow
	}

	n := len(p)
	free := b.usable() - b.length
	if n <= free {
		copy(b.data[b.length:], p)
		b.length += n
		b.terminate()
		return nil
	}

	evict := n - free
	var lost int
	if evict >= b.length {
		// All prior content goes, and p itself may not fit: keep its tail.
		lost = b.length
		keep := b.usable()
		copy(b.data, p[n-keep:])
		b.length = keep
	} else {
		lost = evict
		copy(b.data, b.data[evict:b.length])
		b.length -= evict
		copy(b.data[b.length:], p)
		b.length += n
	}
	b.terminate()
	b.stats.noteOverflow(lost)
	pkg.LogDebug(pkg.ComponentBuffer, "append overflow",
		"evicted", lost,
		"len", b.length)
	return pkg.ErrOverflow
}

// Set replaces the entire contents with the given bytes.
// Unlike [Buffer.Append], no terminator byte is reserved: the bytes may
// fill the full capacity, in which case no terminator is written.
// If the bytes exceed capacity, [pkg.ErrOverflow] is returned and the
// prior contents are untouched.
func (b *Buffer) Set(p []byte) error {
	if p == nil {
		return pkg.ErrNullData
	}
	if len(p) > len(b.data) {
		return pkg.ErrOverflow
	}
	copy(b.data, p)
	b.length = len(p)
	for i := b.length; i < len(b.data); i++ {
		b.data[i] = 0
	}
	return nil
}

// Drop removes exactly n bytes from the front, compacting the remaining
// bytes to offset 0. If n exceeds the current length,
// [pkg.ErrNotEnoughData] is returned and the buffer is unchanged.
func (b *Buffer) Drop(n int) error {
	if n <= 0 {
		if n < 0 {
			return pkg.ErrSizeZero
		}
		return nil
	}
	if n > b.length {
		return pkg.ErrNotEnoughData
	}
	copy(b.data, b.data[n:b.length])
	b.length -= n
	b.terminate()
	return nil
}

// Pop copies up to len(dst) bytes out of the front of the buffer and
// removes them, returning the number of bytes copied.
//
// A request beyond the current length is clamped: the available bytes are
// still copied and removed, and [pkg.ErrNotEnoughData] reports the
// shortfall. A nil dst returns [pkg.ErrNullData] and an empty dst returns
// [pkg.ErrSizeZero]; the buffer is unchanged in both cases.
func (b *Buffer) Pop(dst []byte) (int, error) {
	if dst == nil {
		return 0, pkg.ErrNullData
	}
	if len(dst) == 0 {
		return 0, pkg.ErrSizeZero
	}

	n := len(dst)
	var err error
	if n > b.length {
		n = b.length
		err = pkg.ErrNotEnoughData
	}
	copy(dst, b.data[:n])
	copy(b.data, b.data[n:b.length])
	b.length -= n
	b.terminate()
	return n, err
}

// Drain copies min(Len(), len(dst)) bytes out of the front of the buffer
// and removes them. It succeeds whenever dst was filled or the buffer is
// now empty, so unlike [Buffer.Pop] a short copy is not an error.
func (b *Buffer) Drain(dst []byte) (int, error) {
	if dst == nil {
		return 0, pkg.ErrNullData
	}
	if len(dst) == 0 {
		return 0, pkg.ErrSizeZero
	}

	n := len(dst)
	if n > b.length {
		n = b.length
	}
	copy(dst, b.data[:n])
	copy(b.data, b.data[n:b.length])
	b.length -= n
	b.terminate()
	return n, nil
}

// TakeByte removes and returns the first byte.
// It returns false if the buffer is empty.
func (b *Buffer) TakeByte() (byte, bool) {
	if b.length == 0 {
		return 0, false
	}
	c := b.data[0]
	copy(b.data, b.data[1:b.length])
	b.length--
	b.terminate()
	return c, true
}

// PeekByte returns the first byte without removing it.
// It returns false if the buffer is empty.
func (b *Buffer) PeekByte() (byte, bool) {
	if b.length == 0 {
		return 0, false
	}
	return b.data[0], true
}

// usable returns the capacity available to Append: one byte is reserved
// for the terminator whenever the buffer has any capacity at all.
func (b *Buffer) usable() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data) - 1
}

// terminate writes the NUL terminator past the valid region if room remains.
func (b *Buffer) terminate() {
	if b.length < len(b.data) {
		b.data[b.length] = 0
	}
}
