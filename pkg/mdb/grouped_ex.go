package mdb

// decodeGroupedEx decodes a grouped_ex record body. body is the unpacked
// record body produced by scanSlots.
func decodeGroupedEx(body []byte) GroupedEx {
	const (
		fileHandleOff  = 0
		timescaleOff   = 8
		durationOff    = 12
		nElemsOff      = 16
		grpCtmOff      = 20
		grpNoOff       = 28
		widthOff       = 30
		heightOff      = 32
		durationIndOff = 34
		timescaleIndOff = 35
		gusiBlobOff    = 36
		isSubsampleOff = 52
		isProgressiveOff = 53
		isProgressiveIndOff = 54
		grpNoIndOff    = 55
		isSubsampleIndOff = 56
		contentBlobOff = 57
	)

	r := newByteReader(body)

	rec := GroupedEx{
		FileHandle: r.u64(fileHandleOff),
		NElems:     r.u32(nElemsOff),
		Width:      r.u16(widthOff),
		Height:     r.u16(heightOff),
		GUSI:       readGUSIBlob(r, gusiBlobOff),
		Content:    readContentBlob(r, contentBlobOff),
	}

	if r.u8(timescaleIndOff) != 0 {
		rec.FrameRateTimescale = Some(r.u32(timescaleOff))
	}

	if r.u8(durationIndOff) != 0 {
		rec.FrameRateDuration = Some(r.u32(durationOff))
	}

	rec.CreationTime = optionalDateTime(r, grpCtmOff)

	if r.u8(grpNoIndOff) != 0 {
		rec.GroupNumber = Some(r.u16(grpNoOff))
	}

	if r.u8(isSubsampleIndOff) != 0 {
		rec.IsSubsample = Some(r.u8(isSubsampleOff) != 0)
	}

	if r.u8(isProgressiveIndOff) != 0 {
		rec.IsProgressive = Some(r.u8(isProgressiveOff) != 0)
	}

	return rec
}
