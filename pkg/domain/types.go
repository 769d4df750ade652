package domain

import (
	"fmt"

	"github.com/mdbview/mdbview/pkg/mdb"
)

// FileHandle is the decomposed form of a single_ex/grouped_ex record's raw
// file_handle. The GoPro filename prefix (GX vs GH vs GP, ...) cannot be
// inferred from the handle; EstimatedPath defaults to "GX" and is a
// documented approximation, not a guarantee.
type FileHandle struct {
	Raw           uint64
	TypeFlag      uint8  // byte 7; undocumented, surfaced verbatim
	DirectoryNum  uint8  // byte 4
	FileNumber    uint16 // bytes 0-1
	Directory     string
	EstimatedPath string
}

// DecodeFileHandle decomposes a raw file_handle into its directory/
// file-number parts and an estimated on-card path.
func DecodeFileHandle(fh uint64) FileHandle {
	typeFlag := uint8(fh >> 56)
	dirNum := uint8(fh >> 32)
	fileNum := uint16(fh & 0xFFFF)

	directory := fmt.Sprintf("%03dGOPRO", dirNum)

	return FileHandle{
		Raw:           fh,
		TypeFlag:      typeFlag,
		DirectoryNum:  dirNum,
		FileNumber:    fileNum,
		Directory:     directory,
		EstimatedPath: fmt.Sprintf("%s/GX0%04d.MP4", directory, fileNum),
	}
}

var fileTypeNames = map[uint32]string{
	0x0000: "Unknown",
	0x0001: "Video",
	0x0002: "Photo",
	0x0003: "Timelapse",
	0x0004: "Burst",
	0x0005: "Audio",
	0x1000: "Video",
	0x1100: "Timelapse",
	0x1200: "Photo",
}

// FileTypeName renders the closed file_type_ex mapping, falling back to
// "Type <n>" for anything outside it.
func FileTypeName(fileTypeEx uint32) string {
	if name, ok := fileTypeNames[fileTypeEx]; ok {
		return name
	}

	return fmt.Sprintf("Type %d", fileTypeEx)
}

// Resolution renders a "<W>x<H>" string when both dimensions are non-zero.
func Resolution(width, height uint16) (string, bool) {
	if width == 0 || height == 0 {
		return "", false
	}

	return fmt.Sprintf("%dx%d", width, height), true
}

// DurationSeconds converts an on-disk millisecond duration to seconds.
func DurationSeconds(durationMs uint64) float64 {
	const msPerSecond = 1000.0

	return float64(durationMs) / msPerSecond
}

// SizeMB converts an on-disk byte size to mebibytes.
func SizeMB(sizeBytes uint64) float64 {
	const bytesPerMB = 1024.0 * 1024.0

	return float64(sizeBytes) / bytesPerMB
}

// FrameRate computes fps = timescale/duration when both are present and
// duration is positive; otherwise it is absent. This never produces +Inf
// or NaN: a zero or absent duration always yields an absent result.
func FrameRate(timescale, duration mdb.Optional[uint32]) (float64, bool) {
	if !timescale.Present || !duration.Present || duration.Value == 0 {
		return 0, false
	}

	return float64(timescale.Value) / float64(duration.Value), true
}

// ActualYear applies the FAT-style +1980 offset to a decoded datetime. It
// returns false when the datetime is absent (on-disk year == 0).
func ActualYear(dt mdb.DateTime) (int, bool) {
	if !dt.Present {
		return 0, false
	}

	return int(dt.YearOffset) + 1980, true
}
