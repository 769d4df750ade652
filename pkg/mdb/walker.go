package mdb

// walkPages iterates buf in page-sized strides from offset 0, parsing each
// page's 8-byte header. The walk is pure: it allocates the result slice and
// nothing else, and never mutates buf.
func walkPages(buf []byte, pageSize int) []Page {
	if pageSize <= 0 {
		return nil
	}

	r := newByteReader(buf)

	pages := make([]Page, 0, len(buf)/pageSize)

	for off := 0; off+8 <= len(buf); off += pageSize {
		kindByte := r.u8(off)
		header := PageHeader{
			Kind:       Kind(kindByte & 0x0F),
			Flags:      Flags(kindByte & 0xF0),
			ExtraFlags: r.u8(off + 1),
			User:       r.u16(off + 2),
			AlignData:  r.u32(off + 4),
		}

		bodyEnd := off + pageSize
		if bodyEnd > len(buf) {
			bodyEnd = len(buf)
		}

		pages = append(pages, Page{
			Offset: off,
			Header: header,
			Body:   buf[off+8 : bodyEnd],
		})
	}

	return pages
}

// PagesByKind filters pages down to those matching kind.
func PagesByKind(pages []Page, kind Kind) []Page {
	out := make([]Page, 0)

	for _, p := range pages {
		if p.Header.Kind == kind {
			out = append(out, p)
		}
	}

	return out
}

// ExtensionInfo is the interpretive view of an EXTENSION page: its user
// field as a table-id and align_data as a continuation size.
type ExtensionInfo struct {
	TableID          TableID
	ContinuationSize uint32
}

// Extension interprets an EXTENSION page's fields. Callers should check
// Header.Kind == KindExtension first.
func Extension(p Page) ExtensionInfo {
	return ExtensionInfo{
		TableID:          TableID(p.Header.User),
		ContinuationSize: p.Header.AlignData,
	}
}

// IndexDirInfo is the shallow interpretive view of an INDEX_DIR page.
type IndexDirInfo struct {
	User      uint16
	AlignData uint32
	Preview   []byte // first 40 bytes of the body, no deeper parse
}

// IndexDir interprets an INDEX_DIR page's fields.
func IndexDir(p Page) IndexDirInfo {
	const previewLen = 40

	end := previewLen
	if end > len(p.Body) {
		end = len(p.Body)
	}

	return IndexDirInfo{
		User:      p.Header.User,
		AlignData: p.Header.AlignData,
		Preview:   p.Body[:end],
	}
}

// AutoIDOvfPointers extracts 8-byte values at 8-byte strides through an
// AUTOID_OVF page's body that fall within [0x100, fileSize), treating them
// as candidate pointers.
func AutoIDOvfPointers(p Page, fileSize int) []uint64 {
	r := newByteReader(p.Body)

	out := make([]uint64, 0)

	for off := 0; off+8 <= len(p.Body); off += 8 {
		v := r.u64(off)
		if v >= 0x100 && v < uint64(fileSize) {
			out = append(out, v)
		}
	}

	return out
}

// StringExtStrings extracts null-terminated printable-ASCII runs of length
// >= 2 from a STRING_EXT page's body.
func StringExtStrings(p Page) []string {
	return extractStrings(p.Body, 2, len(p.Body))
}

func extractStrings(buf []byte, minLen, maxLen int) []string {
	out := make([]string, 0)

	start := -1
	for i := 0; i <= len(buf); i++ {
		printable := i < len(buf) && buf[i] >= 0x20 && buf[i] <= 0x7E
		if printable {
			if start == -1 {
				start = i
			}

			continue
		}

		if start != -1 {
			run := buf[start:i]
			if len(run) >= minLen && len(run) <= maxLen {
				out = append(out, string(run))
			}

			start = -1
		}
	}

	return out
}
