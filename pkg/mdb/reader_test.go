package mdb

import "testing"

func TestByteReaderToleratesOutOfBounds(t *testing.T) {
	t.Parallel()

	r := newByteReader([]byte{0x01, 0x02, 0x03})

	if got := r.u8(10); got != 0 {
		t.Errorf("u8 out of bounds = %d, want 0", got)
	}

	if got := r.u16(2); got != 0 {
		t.Errorf("u16 straddling end = %d, want 0", got)
	}

	if got := r.u32(0); got != 0 {
		t.Errorf("u32 beyond buffer = %d, want 0", got)
	}

	if got := r.u64(0); got != 0 {
		t.Errorf("u64 beyond buffer = %d, want 0", got)
	}

	if got := r.bytes(5, 4); got != nil {
		t.Errorf("bytes past end = %v, want nil", got)
	}

	if got := r.fixed(1, 4); len(got) != 4 {
		t.Errorf("fixed length = %d, want 4", len(got))
	}
}

func TestByteReaderLittleEndian(t *testing.T) {
	t.Parallel()

	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	r := newByteReader(buf)

	if got, want := r.u16(0), uint16(0x0201); got != want {
		t.Errorf("u16 = %#x, want %#x", got, want)
	}

	if got, want := r.u32(0), uint32(0x04030201); got != want {
		t.Errorf("u32 = %#x, want %#x", got, want)
	}

	if got, want := r.u64(0), uint64(0x0807060504030201); got != want {
		t.Errorf("u64 = %#x, want %#x", got, want)
	}
}

func TestByteReaderFuzzedLengthsNeverPanic(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 8192; n += 37 {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(i)
		}

		r := newByteReader(buf)
		for off := -4; off < n+16; off += 5 {
			_ = r.u8(off)
			_ = r.u16(off)
			_ = r.u32(off)
			_ = r.u64(off)
			_ = r.f32(off)
			_ = r.bytes(off, 16)
			_ = r.fixed(off, 16)
		}
	}
}
