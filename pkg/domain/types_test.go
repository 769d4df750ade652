package domain_test

import (
	"testing"

	"github.com/mdbview/mdbview/pkg/domain"
	"github.com/mdbview/mdbview/pkg/mdb"
	"github.com/stretchr/testify/assert"
)

func TestDecodeFileHandle(t *testing.T) {
	t.Parallel()

	fh := (uint64(100) << 32) | 1

	got := domain.DecodeFileHandle(fh)

	assert.Equal(t, uint8(100), got.DirectoryNum)
	assert.Equal(t, uint16(1), got.FileNumber)
	assert.Equal(t, "100GOPRO", got.Directory)
	assert.Equal(t, "100GOPRO/GX00001.MP4", got.EstimatedPath)
}

// TestDecodeFileHandleLiteralScenarioValue decodes the exact file_handle
// literal from the "valid G_NEW file, single video" scenario
// (0x0100_0000_6400_0001). The scenario's prose claims this yields
// dir=100, but under the documented (fh>>32)&0xFF / "byte 4" formula (used
// twice in the spec, independently of the worked example) that literal's
// byte 4 is 0x00, not 0x64 — 0x64 sits at byte 3. See DESIGN.md's Open
// Question entry: the twice-stated formula is treated as authoritative
// over this single worked example, which appears to have picked an
// inconsistent hex literal.
func TestDecodeFileHandleLiteralScenarioValue(t *testing.T) {
	t.Parallel()

	const scenarioFileHandle = 0x0100_0000_6400_0001

	got := domain.DecodeFileHandle(scenarioFileHandle)

	assert.Equal(t, uint8(0), got.DirectoryNum, "byte 4 of the literal is 0x00, not the scenario's claimed 100")
	assert.Equal(t, uint16(1), got.FileNumber)
	assert.Equal(t, uint8(1), got.TypeFlag)
}

func TestDecodeFileHandleRoundTrip(t *testing.T) {
	t.Parallel()

	for dir := 0; dir <= 255; dir += 17 {
		for fileNo := 0; fileNo <= 9999; fileNo += 733 {
			fh := (uint64(dir) << 32) | uint64(fileNo)

			got := domain.DecodeFileHandle(fh)

			assert.Equal(t, uint8(dir), got.DirectoryNum)
			assert.Equal(t, uint16(fileNo), got.FileNumber)
		}
	}
}

func TestFileTypeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   uint32
		want string
	}{
		{0, "Unknown"},
		{1, "Video"},
		{2, "Photo"},
		{3, "Timelapse"},
		{4, "Burst"},
		{5, "Audio"},
		{0x1000, "Video"},
		{0x1100, "Timelapse"},
		{0x1200, "Photo"},
		{0x9999, "Type 39321"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, domain.FileTypeName(tc.in))
	}
}

func TestResolution(t *testing.T) {
	t.Parallel()

	res, ok := domain.Resolution(1920, 1080)
	assert.True(t, ok)
	assert.Equal(t, "1920x1080", res)

	_, ok = domain.Resolution(0, 1080)
	assert.False(t, ok)

	_, ok = domain.Resolution(1920, 0)
	assert.False(t, ok)
}

func TestDurationSeconds(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 123.456, domain.DurationSeconds(123456), 1e-9)
}

func TestSizeMB(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 40960.0, domain.SizeMB(42949672960), 1e-6)
}

func TestFrameRateAbsentWhenDurationZero(t *testing.T) {
	t.Parallel()

	_, ok := domain.FrameRate(mdb.Some(uint32(30000)), mdb.Some(uint32(0)))
	assert.False(t, ok)

	_, ok = domain.FrameRate(mdb.None[uint32](), mdb.Some(uint32(1001)))
	assert.False(t, ok)
}

func TestFrameRateLaw(t *testing.T) {
	t.Parallel()

	fps, ok := domain.FrameRate(mdb.Some(uint32(30000)), mdb.Some(uint32(1001)))
	assert.True(t, ok)
	assert.InDelta(t, fps*1001, 30000, 1e-6)
}

func TestActualYear(t *testing.T) {
	t.Parallel()

	_, ok := domain.ActualYear(mdb.DateTime{Present: false})
	assert.False(t, ok)

	year, ok := domain.ActualYear(mdb.DateTime{YearOffset: 45, Present: true})
	assert.True(t, ok)
	assert.Equal(t, 2025, year)
}
