package mdb

const (
	dataRegionOrigin = 0x2C00
	slotSize         = 128
	// Slot bodies are handed to decoders with 64 bytes of tail beyond the
	// slot itself, so fixed offset tables that read past the nominal
	// 128-byte slot (camera_model/sub_model in the G_NEW single_ex layout)
	// still land on real bytes.
	slotTail = 64

	// slotHeaderSize is the 8-byte (kind, extraflags, user, align_data)
	// header at the start of every slot.
	slotHeaderSize = 8
	// objectIDPrefixSize is the 8-byte object-identifier prefix following
	// the slot header, before the record body proper begins.
	objectIDPrefixSize = 8
	// bodyOffset is where the unpacked record body starts relative to the
	// slot start, after both the slot header and the object-id prefix.
	bodyOffset = slotHeaderSize + objectIDPrefixSize
)

type expectedSize struct {
	singleEx, groupedEx int
}

var expectedSizes = map[Generation]expectedSize{
	GNew: {singleEx: 134, groupedEx: 73},
	GOld: {singleEx: 78, groupedEx: 57},
}

const sizeTolerance = 20

// recordSlot is an accepted record slot: its table id and the unpacked
// record body (buf[slot+16 : slot+192]), already positioned past the slot
// header and the object-identifier prefix so decoders read it with the
// offset tables in §3/§4.5 directly.
type recordSlot struct {
	offset int
	table  TableID
	size   uint32
	body   []byte
}

// scanSlots walks the data region in 128-byte strides starting at
// dataRegionOrigin, accepting slots whose (kind, table-id, size) are
// plausible for the given generation.
func scanSlots(buf []byte, gen Generation) []recordSlot {
	r := newByteReader(buf)

	sizes, ok := expectedSizes[gen]
	if !ok {
		sizes = expectedSizes[GNew]
	}

	out := make([]recordSlot, 0)

	for off := dataRegionOrigin; off+slotSize <= len(buf); off += slotSize {
		kindLo := r.u8(off) & 0x0F
		tableID := TableID(r.u16(off + 2))
		recSize := r.u32(off + 4)

		if kindLo != uint8(KindData) {
			continue
		}

		if tableID != TableSingleEx && tableID != TableGroupedEx {
			continue
		}

		const minSize, maxSize = 40, 200
		if recSize <= minSize || recSize >= maxSize {
			continue
		}

		expected := sizes.singleEx
		if tableID == TableGroupedEx {
			expected = sizes.groupedEx
		}

		if absDiff(int(recSize), expected) > sizeTolerance {
			continue
		}

		body := r.bytes(off+bodyOffset, slotSize-bodyOffset+slotTail)

		out = append(out, recordSlot{
			offset: off,
			table:  tableID,
			size:   recSize,
			body:   body,
		})
	}

	return out
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
