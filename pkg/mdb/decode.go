package mdb

// Decode parses an in-memory mdb file and returns its structured contents.
// It never mutates buf and performs a single forward pass: header/version
// detection, page walking, record-slot scanning, then record decoding.
//
// Decode only returns an error for the one hard precondition it checks
// itself (file too small); every other failure mode — magic mismatch,
// unknown version, an absent field — is recorded as a value on Root
// instead of aborting.
func Decode(buf []byte) (Root, error) {
	if len(buf) < minFileSize {
		return Root{}, ErrFileTooSmall
	}

	headerValid := validateMagic(buf)
	pageSize := detectPageSize(buf)
	generation := detectGeneration(buf)

	version, dictOffset := detectVersion(buf)
	if !version.Known {
		// VersionUnknown: proceed with G_NEW defaults, per the decoder's
		// soft-failure policy.
		if generation == GLegacy {
			generation = GNew
		}
	}

	root := Root{
		HeaderValid:      headerValid,
		PageSize:         pageSize,
		PageSizeDetected: true,
		Version:          version,
		DictionaryOffset: dictOffset,
		Generation:       generation,
		Pages:            walkPages(buf, pageSize),
	}

	if generation == GLegacy {
		// LEGACY: header info only, no records.
		return root, nil
	}

	for _, slot := range scanSlots(buf, generation) {
		switch slot.table {
		case TableSingleEx:
			root.SingleExes = append(root.SingleExes, decodeSingleEx(slot.body, generation))
		case TableGroupedEx:
			root.GroupedExs = append(root.GroupedExs, decodeGroupedEx(slot.body))
		case TableGlobal, TableSingle:
			// recognized but their decoders are optional; not decoded.
		}
	}

	return root, nil
}
