//go:build profile

package buffer

// Stats reports overflow accounting for a single buffer. Counters are
// collected only when built with the "profile" tag; see stats_stub.go
// for the default build.
type Stats struct {
	Overflows uint64 // Appends that reported overflow
	Evicted   uint64 // Previously-held bytes discarded to admit new data
}

// bufferStats accumulates counters inside a Buffer. A rebind starts a
// fresh accounting period.
type bufferStats struct {
	overflows uint64
	evicted   uint64
}

func (s *bufferStats) noteOverflow(evicted int) {
	s.overflows++
	s.evicted += uint64(evicted)
}

func (s *bufferStats) reset() {
	*s = bufferStats{}
}

// Stats returns the counters accumulated since the last bind.
func (b *Buffer) Stats() Stats {
	return Stats{
		Overflows: b.stats.overflows,
		Evicted:   b.stats.evicted,
	}
}
