package buffer

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ardnew/streambuf/pkg"
)

// checkInvariant verifies 0 <= Len <= Cap and the terminator convention.
func checkInvariant(t *testing.T, b *Buffer) {
	t.Helper()
	if b.Len() < 0 || b.Len() > b.Cap() {
		t.Fatalf("invariant violated: len = %d, cap = %d", b.Len(), b.Cap())
	}
	if b.Len() < b.Cap() && b.data[b.Len()] != 0 {
		t.Errorf("terminator missing: data[%d] = %#x, want 0", b.Len(), b.data[b.Len()])
	}
}

func TestNewBuffer(t *testing.T) {
	storage := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	b := NewBuffer(storage)

	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4", b.Cap())
	}
	for i, c := range storage {
		if c != 0 {
			t.Errorf("storage[%d] = %#x, want 0 after bind", i, c)
		}
	}
}

func TestBuffer_BindResets(t *testing.T) {
	b := NewBuffer(make([]byte, 8))
	if err := b.Append([]byte("abc")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	fresh := []byte{1, 2, 3, 4}
	b.Bind(fresh)

	if b.Len() != 0 {
		t.Errorf("Len() = %d after rebind, want 0", b.Len())
	}
	if b.Cap() != 4 {
		t.Errorf("Cap() = %d after rebind, want 4", b.Cap())
	}
	for i, c := range fresh {
		if c != 0 {
			t.Errorf("storage[%d] = %#x, want 0 after rebind", i, c)
		}
	}
}

func TestBuffer_ZeroCapacity(t *testing.T) {
	tests := []struct {
		name    string
		storage []byte
	}{
		{"nil storage", nil},
		{"empty storage", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.storage)
			if err := b.Append([]byte("x")); !errors.Is(err, pkg.ErrOverflow) {
				t.Errorf("Append() error = %v, want ErrOverflow", err)
			}
			if b.Len() != 0 {
				t.Errorf("Len() = %d, want 0", b.Len())
			}
		})
	}
}

func TestBuffer_AppendNil(t *testing.T) {
	b := NewBuffer(make([]byte, 8))
	b.Append([]byte("ab"))

	if err := b.Append(nil); !errors.Is(err, pkg.ErrNullData) {
		t.Errorf("Append(nil) error = %v, want ErrNullData", err)
	}
	if got := string(b.Bytes()); got != "ab" {
		t.Errorf("Bytes() = %q after failed append, want %q", got, "ab")
	}
	checkInvariant(t, b)
}

func TestBuffer_AppendThenDrainIdentity(t *testing.T) {
	b := NewBuffer(make([]byte, 16))
	payload := []byte("identity")

	if err := b.Append(payload); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	checkInvariant(t, b)

	dst := make([]byte, 16)
	n, err := b.Drain(dst)
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if n != len(payload) {
		t.Errorf("Drain() = %d, want %d", n, len(payload))
	}
	if !bytes.Equal(dst[:n], payload) {
		t.Errorf("drained %q, want %q", dst[:n], payload)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after drain, want 0", b.Len())
	}
	checkInvariant(t, b)
}

func TestBuffer_AppendReservesTerminator(t *testing.T) {
	b := NewBuffer(make([]byte, 4))

	// 3 usable bytes: a 3-byte append fits exactly.
	if err := b.Append([]byte("abc")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if b.Free() != 0 {
		t.Errorf("Free() = %d, want 0", b.Free())
	}

	// The 4th byte would displace the terminator: oldest byte is evicted.
	if err := b.Append([]byte("d")); !errors.Is(err, pkg.ErrOverflow) {
		t.Errorf("Append() error = %v, want ErrOverflow", err)
	}
	if got := string(b.Bytes()); got != "bcd" {
		t.Errorf("Bytes() = %q, want %q", got, "bcd")
	}
	checkInvariant(t, b)
}

func TestBuffer_EvictionCorrectness(t *testing.T) {
	// Given capacity C already holding m bytes, appending
	// n > C-1-m bytes yields length C-1 and the last C-1 bytes of the
	// logical sequence (old content ++ new data), in order.
	tests := []struct {
		name string
		cap  int
		pre  string
		add  string
		want string
	}{
		{"empty oversized", 8, "", "HelloWorld", "loWorld"},
		{"partial eviction", 8, "abc", "defgh", "bcdefgh"},
		{"total eviction", 4, "XY", "ZAB", "ZAB"},
		{"evict all and truncate", 5, "abcd", "123456789", "6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(make([]byte, tt.cap))
			if tt.pre != "" {
				if err := b.Append([]byte(tt.pre)); err != nil {
					t.Fatalf("priming Append() error = %v", err)
				}
			}

			err := b.Append([]byte(tt.add))
			if !errors.Is(err, pkg.ErrOverflow) {
				t.Errorf("Append() error = %v, want ErrOverflow", err)
			}
			if b.Len() != tt.cap-1 {
				t.Errorf("Len() = %d, want %d", b.Len(), tt.cap-1)
			}

			logical := tt.pre + tt.add
			want := logical[len(logical)-(tt.cap-1):]
			if got := string(b.Bytes()); got != want {
				t.Errorf("Bytes() = %q, want %q", got, want)
			}
			if tt.want != want {
				t.Fatalf("test vector inconsistent: %q vs %q", tt.want, want)
			}
			checkInvariant(t, b)
		})
	}
}

func TestBuffer_Set(t *testing.T) {
	b := NewBuffer(make([]byte, 4))
	b.Append([]byte("ab"))

	if err := b.Set([]byte("wxyz")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := string(b.Bytes()); got != "wxyz" {
		t.Errorf("Bytes() = %q, want %q", got, "wxyz")
	}
	if b.Len() != 4 {
		t.Errorf("Len() = %d, want 4", b.Len())
	}
	checkInvariant(t, b)
}

func TestBuffer_SetOverflowUntouched(t *testing.T) {
	b := NewBuffer(make([]byte, 4))
	b.Append([]byte("ab"))

	if err := b.Set([]byte("toolong")); !errors.Is(err, pkg.ErrOverflow) {
		t.Errorf("Set() error = %v, want ErrOverflow", err)
	}
	if got := string(b.Bytes()); got != "ab" {
		t.Errorf("Bytes() = %q after failed set, want %q", got, "ab")
	}
	checkInvariant(t, b)
}

func TestBuffer_SetNil(t *testing.T) {
	b := NewBuffer(make([]byte, 4))
	if err := b.Set(nil); !errors.Is(err, pkg.ErrNullData) {
		t.Errorf("Set(nil) error = %v, want ErrNullData", err)
	}
}

func TestBuffer_Drop(t *testing.T) {
	b := NewBuffer(make([]byte, 8))
	b.Append([]byte("abcdef"))

	if err := b.Drop(2); err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	if got := string(b.Bytes()); got != "cdef" {
		t.Errorf("Bytes() = %q, want %q", got, "cdef")
	}
	checkInvariant(t, b)

	if err := b.Drop(0); err != nil {
		t.Errorf("Drop(0) error = %v, want nil", err)
	}
	if err := b.Drop(-1); !errors.Is(err, pkg.ErrSizeZero) {
		t.Errorf("Drop(-1) error = %v, want ErrSizeZero", err)
	}
}

func TestBuffer_DropTooMany(t *testing.T) {
	b := NewBuffer(make([]byte, 8))
	b.Append([]byte("abc"))

	if err := b.Drop(4); !errors.Is(err, pkg.ErrNotEnoughData) {
		t.Errorf("Drop() error = %v, want ErrNotEnoughData", err)
	}
	if got := string(b.Bytes()); got != "abc" {
		t.Errorf("Bytes() = %q after failed drop, want %q", got, "abc")
	}
	checkInvariant(t, b)
}

func TestBuffer_Pop(t *testing.T) {
	b := NewBuffer(make([]byte, 8))
	b.Append([]byte("abcdef"))

	dst := make([]byte, 4)
	n, err := b.Pop(dst)
	if err != nil {
		t.Fatalf("Pop() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Pop() = %d, want 4", n)
	}
	if got := string(dst); got != "abcd" {
		t.Errorf("popped %q, want %q", got, "abcd")
	}
	if got := string(b.Bytes()); got != "ef" {
		t.Errorf("Bytes() = %q, want %q", got, "ef")
	}
	checkInvariant(t, b)
}

func TestBuffer_PopClamped(t *testing.T) {
	b := NewBuffer(make([]byte, 8))
	b.Append([]byte("abc"))

	dst := make([]byte, 5)
	n, err := b.Pop(dst)
	if !errors.Is(err, pkg.ErrNotEnoughData) {
		t.Errorf("Pop() error = %v, want ErrNotEnoughData", err)
	}
	if n != 3 {
		t.Errorf("Pop() = %d, want 3 (clamped)", n)
	}
	if got := string(dst[:n]); got != "abc" {
		t.Errorf("popped %q, want %q", got, "abc")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after clamped pop, want 0", b.Len())
	}
	checkInvariant(t, b)
}

func TestBuffer_PopGuards(t *testing.T) {
	b := NewBuffer(make([]byte, 8))
	b.Append([]byte("abc"))

	if _, err := b.Pop(nil); !errors.Is(err, pkg.ErrNullData) {
		t.Errorf("Pop(nil) error = %v, want ErrNullData", err)
	}
	if _, err := b.Pop([]byte{}); !errors.Is(err, pkg.ErrSizeZero) {
		t.Errorf("Pop(empty) error = %v, want ErrSizeZero", err)
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d after guarded pops, want 3", b.Len())
	}
}

func TestBuffer_DrainPartial(t *testing.T) {
	b := NewBuffer(make([]byte, 16))
	b.Append([]byte("abcdefgh"))

	// Smaller destination: filled, remainder retained.
	dst := make([]byte, 3)
	n, err := b.Drain(dst)
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if n != 3 || string(dst) != "abc" {
		t.Errorf("Drain() = %d %q, want 3 %q", n, dst, "abc")
	}
	if got := string(b.Bytes()); got != "defgh" {
		t.Errorf("Bytes() = %q, want %q", got, "defgh")
	}

	// Larger destination: emptied without error, unlike Pop.
	big := make([]byte, 16)
	n, err = b.Drain(big)
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if n != 5 || string(big[:n]) != "defgh" {
		t.Errorf("Drain() = %d %q, want 5 %q", n, big[:n], "defgh")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after drain, want 0", b.Len())
	}
	checkInvariant(t, b)
}

func TestBuffer_ClearIdempotent(t *testing.T) {
	b := NewBuffer(make([]byte, 8))
	b.Append([]byte("abc"))

	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len() = %d after clear, want 0", b.Len())
	}
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len() = %d after second clear, want 0", b.Len())
	}
	for i, c := range b.data {
		if c != 0 {
			t.Errorf("data[%d] = %#x after clear, want 0", i, c)
		}
	}
	checkInvariant(t, b)
}

func TestBuffer_TakeByte(t *testing.T) {
	b := NewBuffer(make([]byte, 8))
	b.Append([]byte("ab"))

	c, ok := b.TakeByte()
	if !ok || c != 'a' {
		t.Errorf("TakeByte() = %q %v, want 'a' true", c, ok)
	}
	c, ok = b.TakeByte()
	if !ok || c != 'b' {
		t.Errorf("TakeByte() = %q %v, want 'b' true", c, ok)
	}
	if _, ok = b.TakeByte(); ok {
		t.Error("TakeByte() on empty buffer returned true")
	}
	checkInvariant(t, b)
}

func TestBuffer_PeekByte(t *testing.T) {
	b := NewBuffer(make([]byte, 8))

	if _, ok := b.PeekByte(); ok {
		t.Error("PeekByte() on empty buffer returned true")
	}

	b.Append([]byte("xy"))
	c, ok := b.PeekByte()
	if !ok || c != 'x' {
		t.Errorf("PeekByte() = %q %v, want 'x' true", c, ok)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d after peek, want 2", b.Len())
	}
}

func TestBuffer_Free(t *testing.T) {
	tests := []struct {
		name string
		cap  int
		fill int
		want int
	}{
		{"empty", 8, 0, 7},
		{"partial", 8, 3, 4},
		{"full", 8, 7, 0},
		{"zero capacity", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(make([]byte, tt.cap))
			if tt.fill > 0 {
				if err := b.Append(bytes.Repeat([]byte{'z'}, tt.fill)); err != nil {
					t.Fatalf("Append() error = %v", err)
				}
			}
			if got := b.Free(); got != tt.want {
				t.Errorf("Free() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuffer_BytesIsLiveView(t *testing.T) {
	storage := make([]byte, 8)
	b := NewBuffer(storage)
	b.Append([]byte("abc"))

	view := b.Bytes()
	if &view[0] != &storage[0] {
		t.Error("Bytes() does not alias backing storage")
	}

	b.Drop(1)
	// The previously returned view is stale by contract; a fresh view
	// reflects the compacted content.
	if got := string(b.Bytes()); got != "bc" {
		t.Errorf("Bytes() = %q, want %q", got, "bc")
	}
}

func TestBuffer_AppendOverflowLogs(t *testing.T) {
	var out bytes.Buffer
	original := pkg.DefaultLogger
	defer pkg.SetLogger(original)
	pkg.SetLogger(pkg.NewLogger(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := NewBuffer(make([]byte, 4))
	b.Append([]byte("abc"))
	if err := b.Append([]byte("d")); !errors.Is(err, pkg.ErrOverflow) {
		t.Fatalf("Append() error = %v, want %v", err, pkg.ErrOverflow)
	}

	got := out.String()
	if !strings.Contains(got, "component=buffer") {
		t.Errorf("overflow log missing component=buffer: %q", got)
	}
	if !strings.Contains(got, "evicted=1") {
		t.Errorf("overflow log missing evicted=1: %q", got)
	}
}
