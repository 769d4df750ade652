package mdb

import "fmt"

// readGUSIBlob captures the raw 16-byte GUSI blob and extracts its two
// identifier fields: session_id at offset 0, recording_id at offset 8.
func readGUSIBlob(r *byteReader, off int) GUSIBlob {
	raw := r.fixed(off, 16)
	blobReader := newByteReader(raw)

	return GUSIBlob{
		Raw:         [16]byte(raw),
		SessionID:   blobReader.u32(0),
		RecordingID: blobReader.u32(8),
	}
}

// readContentBlob captures the raw 16-byte content-id blob and interprets
// it as two u64 halves, plus a 32-hex-digit concatenated form.
func readContentBlob(r *byteReader, off int) ContentBlob {
	raw := r.fixed(off, 16)
	blobReader := newByteReader(raw)

	high := blobReader.u64(0)
	low := blobReader.u64(8)

	return ContentBlob{
		Raw:  [16]byte(raw),
		High: high,
		Low:  low,
		Hex:  fmt.Sprintf("%016x%016x", high, low),
	}
}
