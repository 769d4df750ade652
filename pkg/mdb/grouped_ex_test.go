package mdb

import "testing"

func TestDecodeGroupedExBaseFields(t *testing.T) {
	t.Parallel()

	body := make([]byte, 96)
	putU64(body, 0, (uint64(100)<<32)|7)
	putU32Slot(body, 16, 3)
	putU16(body, 30, 1920)
	putU16(body, 32, 1080)

	rec := decodeGroupedEx(body)

	if rec.FileHandle != (uint64(100)<<32)|7 {
		t.Errorf("FileHandle = %#x", rec.FileHandle)
	}

	if rec.NElems != 3 {
		t.Errorf("NElems = %d, want 3", rec.NElems)
	}

	if rec.Width != 1920 || rec.Height != 1080 {
		t.Errorf("Width/Height = %d/%d, want 1920/1080", rec.Width, rec.Height)
	}
}

func TestDecodeGroupedExFrameRateAbsentWithoutIndicator(t *testing.T) {
	t.Parallel()

	body := make([]byte, 96)
	putU32Slot(body, 8, 30000)
	putU32Slot(body, 12, 1001)
	// indicator bytes at 34/35 left zero

	rec := decodeGroupedEx(body)

	if rec.FrameRateTimescale.Present || rec.FrameRateDuration.Present {
		t.Error("frame-rate fields must stay absent when the indicator byte is zero")
	}
}

func TestDecodeGroupedExFrameRatePresentWithIndicator(t *testing.T) {
	t.Parallel()

	body := make([]byte, 96)
	putU32Slot(body, 8, 30000)
	putU32Slot(body, 12, 1001)
	body[34] = 1
	body[35] = 1

	rec := decodeGroupedEx(body)

	if !rec.FrameRateTimescale.Present || !rec.FrameRateDuration.Present {
		t.Fatal("expected both frame-rate fields present")
	}

	if rec.FrameRateTimescale.Value != 30000 || rec.FrameRateDuration.Value != 1001 {
		t.Errorf("timescale/duration = %d/%d, want 30000/1001",
			rec.FrameRateTimescale.Value, rec.FrameRateDuration.Value)
	}
}

func TestDecodeGroupedExFlagsGatedByIndicator(t *testing.T) {
	t.Parallel()

	body := make([]byte, 96)
	body[52] = 1 // is_subsample raw value
	body[53] = 1 // is_progressive raw value

	rec := decodeGroupedEx(body)

	if rec.IsSubsample.Present || rec.IsProgressive.Present {
		t.Error("flags must stay absent until their indicator bytes are set")
	}

	body[54] = 1 // is_progressive indicator
	body[56] = 1 // is_subsample indicator

	rec = decodeGroupedEx(body)

	if !rec.IsSubsample.Present || !rec.IsSubsample.Value {
		t.Error("expected IsSubsample present and true")
	}

	if !rec.IsProgressive.Present || !rec.IsProgressive.Value {
		t.Error("expected IsProgressive present and true")
	}
}
