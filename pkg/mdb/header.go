package mdb

import "bytes"

// magic is the 12-byte header that opens a valid mdb file: 0x00, ten
// 0xFF bytes, then the load-bearing 0x07 version marker.
var magic = []byte{
	0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x07,
}

// validateMagic reports whether buf opens with the exact 12-byte magic.
// A false result does not abort decoding; it is recorded as HeaderValid.
func validateMagic(buf []byte) bool {
	if len(buf) < len(magic) {
		return false
	}

	return bytes.Equal(buf[:len(magic)], magic)
}

var candidatePageSizes = []int{256, 512, 1024, 2048}

var validKindBytesLow = map[Kind]struct{}{
	KindData: {}, KindExtension: {}, KindBTreeLeaf: {}, KindBTreeNode: {},
	KindAutoIDHash: {}, KindAutoIDOvf: {}, KindBlobHead: {}, KindBlobCont: {},
	KindIndexDir: {}, KindTrans: {}, KindFreelist: {}, KindFixrec: {}, KindTemp: {},
}

var validFlagBytes = map[uint8]struct{}{0x00: {}, 0x10: {}, 0x20: {}, 0x30: {}}

// detectPageSize scores each candidate page size by probing kind_byte/user
// plausibility at every strided offset, choosing the candidate with the
// highest (valid - invalid) score. Ties favor the earlier candidate in
// candidatePageSizes. Defaults to 1024 when nothing scores positively.
func detectPageSize(buf []byte) int {
	fileSize := len(buf)
	best := 1024
	bestScore := 0
	first := true

	for _, ps := range candidatePageSizes {
		score := scorePageSize(buf, ps, fileSize)
		if first || score > bestScore {
			best = ps
			bestScore = score
			first = false
		}
	}

	if bestScore <= 0 {
		return 1024
	}

	return best
}

func scorePageSize(buf []byte, ps, fileSize int) int {
	limit := ps * 20
	if limit > fileSize {
		limit = fileSize
	}

	valid, invalid := 0, 0

	for off := ps; off+8 <= limit; off += ps {
		kindByte := buf[off]
		flagByte := kindByte & 0xF0
		kind := Kind(kindByte & 0x0F)
		user := uint16(buf[off+2]) | uint16(buf[off+3])<<8

		okKind := false
		if _, ok := validKindBytesLow[kind]; ok {
			if _, ok := validFlagBytes[flagByte]; ok {
				okKind = true
			}
		}

		if kindByte == 0x00 || kindByte == 0xFF {
			okKind = true
		}

		okUser := user < 0x100 || user == 0xFFFF

		if okKind && okUser {
			valid++
		} else {
			invalid++
		}
	}

	return valid - invalid
}

const (
	primaryVersionOffset = 0x0C10
	versionScanStart     = 0x0C00
	versionScanEnd       = 0x1000
)

// detectVersion tries the documented dictionary offset first, then falls
// back to a 2-byte-strided scan of the dictionary region for a plausible
// triple. It records where the triple was found as DictionaryOffset.
func detectVersion(buf []byte) (Version, int) {
	r := newByteReader(buf)

	if off := primaryVersionOffset; off+6 <= len(buf) {
		v := Version{Major: r.u16(off), Minor: r.u16(off + 2), Build: r.u16(off + 4)}
		if v.Valid() {
			v.Known = true

			return v, off
		}
	}

	end := versionScanEnd
	if end > len(buf)-6 {
		end = len(buf) - 6
	}

	const (
		minMajor, maxMajor = 5, 10
		maxMinor           = 10
		minBuild, maxBuild = 1000, 3000
	)

	for off := versionScanStart; off <= end; off += 2 {
		major, minor, build := r.u16(off), r.u16(off+2), r.u16(off+4)
		if major >= minMajor && major <= maxMajor && minor <= maxMinor &&
			build >= minBuild && build < maxBuild {
			return Version{Major: major, Minor: minor, Build: build, Known: true}, off
		}
	}

	return Version{Known: false}, primaryVersionOffset
}

var (
	probeCameraModel = []byte("camera_model\x00")
	probeVTag        = []byte("vtag\x00")
)

// detectGeneration probes the whole buffer for the schema's string-table
// markers. Presence of camera_model plus vmoment selects G_NEW; just
// camera_model is still decoded as G_NEW (intermediate, forward-compatible
// layout); just vtag selects G_OLD; otherwise LEGACY.
func detectGeneration(buf []byte) Generation {
	hasCameraModel := bytes.Contains(buf, probeCameraModel)
	hasVTag := bytes.Contains(buf, probeVTag)

	switch {
	case hasCameraModel:
		return GNew
	case hasVTag:
		return GOld
	default:
		return GLegacy
	}
}
