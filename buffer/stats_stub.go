//go:build !profile

package buffer

// Stats reports overflow accounting for a single buffer. Without the
// "profile" build tag no counters are collected and every field reads
// zero, so the default build pays nothing for the bookkeeping.
type Stats struct {
	Overflows uint64 // Appends that reported overflow
	Evicted   uint64 // Previously-held bytes discarded to admit new data
}

// bufferStats is an empty placeholder in builds without the "profile" tag.
type bufferStats struct{}

func (bufferStats) noteOverflow(int) {}

func (bufferStats) reset() {}

// Stats returns zero counters; build with -tags profile to collect them.
func (b *Buffer) Stats() Stats {
	return Stats{}
}
