// Package buffer implements a deterministic, non-allocating bounded
// byte-buffer engine for resource-constrained environments.
//
// The core abstraction is [Buffer]: a fixed-capacity byte container over
// caller-supplied storage with append-to-back ordering, front removal,
// bulk drain, byte-at-a-time consumption, and a sliding-window overflow policy
// that evicts the oldest bytes to admit the newest. [Engine] composes two
// Buffer instances, one outbound and one inbound, behind a shared
// last-status field.
//
// # Zero-Allocation Design
//
// Neither type ever allocates or frees storage internally:
//
//   - Backing storage is injected via [NewBuffer], [New], or Bind
//   - Drain and Pop copy into caller-provided destination slices
//   - Fixed-size arrays make natural backing storage on bare metal
//
// # Sliding Window
//
// When an append exceeds free space, exactly enough of the oldest bytes
// are evicted from the front to make room. The buffer models a transient
// transport window where the newest data is of the highest value: capacity
// exhaustion degrades by losing history, never by rejecting the newest
// write outright. Eviction is reported via [pkg.ErrOverflow] so callers
// can distinguish total from partial acceptance.
//
// # Termination
//
// Whenever capacity allows, a NUL byte is kept one position past the valid
// region, so content handed out of the buffer can feed consumers expecting
// a terminated byte sequence. The terminator is never counted in Len.
//
// # Concurrency
//
// All operations are synchronous, non-blocking, and O(Len) at worst.
// Instances assume a single logical owner; concurrent use requires
// external mutual exclusion.
//
// # Example
//
//	var tx, rx [64]byte
//	eng := buffer.New(tx[:], rx[:])
//	eng.Append(buffer.Inbound, frame)
//	for eng.Available() > 0 {
//	    c, _ := eng.ReadByte()
//	    // process c
//	}
package buffer
