package mdb

// decodeSingleEx decodes a single_ex record body using the offset table for
// gen. body is the unpacked record body produced by scanSlots (already past
// the slot header and the object-id prefix).
func decodeSingleEx(body []byte, gen Generation) SingleEx {
	r := newByteReader(body)

	rec := SingleEx{
		Generation:  gen,
		Duration:    r.u64(0),
		Size:        r.u64(8),
		FileHandle:  r.u64(16),
		MediaStatus: r.u32(24),
		FileTypeEx:  r.u32(36),
		AVCLevel:    r.u8(88),
		AVCProfile:  r.u8(89),
	}

	if gen == GOld {
		decodeSingleExOld(r, &rec)

		return rec
	}

	decodeSingleExNew(r, &rec)

	return rec
}

// decodeSingleExOld fills the G_OLD fields not already read by
// decodeSingleEx (timestamps, counts, flags, protune_option through
// lens_config), each at the offset G_NEW uses. G_OLD has no camera_model, sub_model, dir_no, grp_no,
// moment_cnt, total_tag_cnt, max_moment_score, or GPS fields; those stay
// absent. tag_cnt/chp_cnt are not on that exclusion list, so they're read
// at the same offsets G_NEW uses.
func decodeSingleExOld(r *byteReader, rec *SingleEx) {
	rec.CreationTime = optionalDateTime(r, 52)
	rec.TagCount = Some(r.u16(60))
	rec.ChapterCount = Some(r.u16(62))
	rec.AccessTime = optionalDateTime(r, 66)
	rec.LastScanTime = optionalDateTime(r, 78)
	rec.HasHDR = r.u8(85) != 0
	rec.IsClip = r.u8(86) != 0
	rec.FileScanned = r.u8(87) != 0
	rec.ProtuneOption = r.u8(90)
	rec.AudioOption = r.u8(91)
	rec.HasEIS = r.u8(92) != 0
	rec.MetaPresent = r.u8(93) != 0
	rec.Projection = r.u8(94)
	rec.LensConfig = r.u8(96)
}

func decodeSingleExNew(r *byteReader, rec *SingleEx) {
	const (
		maxMomentScoreOff = 40
		momentCntOff      = 50
		ctmOff            = 52
		tagCntOff         = 60
		chpCntOff         = 62
		grpNoOff          = 64
		latmOff           = 66
		totalTagCntOff    = 74
		dirNoOff          = 76
		lastScanOff       = 78
		hasHDROff         = 85
		isClipOff         = 86
		fileScannedOff    = 87
		protuneOff        = 90
		audOptOff         = 91
		hasEISOff         = 92
		fMetaOff          = 93
		projectionOff     = 94
		lensConfigOff     = 96
		cameraModelOff    = 97
		cameraModelLen    = 30
		subModelOff       = 128
		subModelLen       = 16
	)

	rec.MaxMomentScore = Some(r.f32(maxMomentScoreOff))
	rec.MomentCount = Some(r.u16(momentCntOff))
	rec.CreationTime = optionalDateTime(r, ctmOff)
	rec.TagCount = Some(r.u16(tagCntOff))
	rec.ChapterCount = Some(r.u16(chpCntOff))
	rec.GroupNumber = Some(r.u16(grpNoOff))
	rec.AccessTime = optionalDateTime(r, latmOff)
	rec.TotalTagCount = Some(r.u16(totalTagCntOff))
	rec.DirNumber = Some(r.u16(dirNoOff))
	rec.LastScanTime = optionalDateTime(r, lastScanOff)
	rec.HasHDR = r.u8(hasHDROff) != 0
	rec.IsClip = r.u8(isClipOff) != 0
	rec.FileScanned = r.u8(fileScannedOff) != 0
	rec.ProtuneOption = r.u8(protuneOff)
	rec.AudioOption = r.u8(audOptOff)
	rec.HasEIS = r.u8(hasEISOff) != 0
	rec.MetaPresent = r.u8(fMetaOff) != 0
	rec.Projection = r.u8(projectionOff)
	rec.LensConfig = r.u8(lensConfigOff)

	if model, ok := cleanString(r.buf, cameraModelOff, cameraModelLen, 2); ok {
		rec.CameraModel = Some(model)
	}

	// sub_model uses min_segment=2 to reject single-character hardware
	// revision noise; it may overlap indicator bytes in some schema
	// variants, so a short result is flagged rather than discarded.
	if sub, ok := cleanString(r.buf, subModelOff, subModelLen, 2); ok {
		rec.SubModel = Some(sub)
		rec.SubModelShort = len(sub) <= 2
	}
}
