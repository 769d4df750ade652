package mdb

import "testing"

func TestDecodeSingleExNewSharedFields(t *testing.T) {
	t.Parallel()

	body := make([]byte, 192)
	putU64(body, 0, 123456)
	putU64(body, 8, 42949672960)
	putU64(body, 16, (uint64(100)<<32)|1)
	putU32Slot(body, 24, 7)
	putU32Slot(body, 36, 0x1000)
	body[88] = 5
	body[89] = 2

	rec := decodeSingleEx(body, GNew)

	if rec.Duration != 123456 {
		t.Errorf("Duration = %d, want 123456", rec.Duration)
	}

	if rec.Size != 42949672960 {
		t.Errorf("Size = %d, want 42949672960", rec.Size)
	}

	if rec.FileHandle != (uint64(100)<<32)|1 {
		t.Errorf("FileHandle = %#x", rec.FileHandle)
	}

	if rec.AVCLevel != 5 || rec.AVCProfile != 2 {
		t.Errorf("AVCLevel/AVCProfile = %d/%d, want 5/2", rec.AVCLevel, rec.AVCProfile)
	}

	if rec.Generation != GNew {
		t.Errorf("Generation = %v, want GNew", rec.Generation)
	}
}

func TestDecodeSingleExNewCameraModel(t *testing.T) {
	t.Parallel()

	body := make([]byte, 192)
	copy(body[97:], []byte("HERO11"))
	body[103] = 0x00
	copy(body[104:], []byte("Black"))

	rec := decodeSingleEx(body, GNew)

	if !rec.CameraModel.Present {
		t.Fatal("expected a present camera model")
	}

	if rec.CameraModel.Value != "HERO11 Black" {
		t.Errorf("CameraModel = %q, want %q", rec.CameraModel.Value, "HERO11 Black")
	}
}

func TestDecodeSingleExOldHasNoCameraFields(t *testing.T) {
	t.Parallel()

	body := make([]byte, 192)

	rec := decodeSingleEx(body, GOld)

	if rec.CameraModel.Present {
		t.Error("G_OLD should never populate CameraModel")
	}

	if rec.SubModel.Present {
		t.Error("G_OLD should never populate SubModel")
	}

	if rec.MomentCount.Present || rec.TotalTagCount.Present || rec.DirNumber.Present {
		t.Error("G_OLD should leave G_NEW-only optional fields absent")
	}
}

func TestDecodeSingleExOldSharesTimestampOffsets(t *testing.T) {
	t.Parallel()

	body := make([]byte, 192)
	putU16(body, 52, 45) // ctm year offset

	rec := decodeSingleEx(body, GOld)

	if !rec.CreationTime.Present {
		t.Fatal("expected G_OLD creation time at the shared ctm offset to be present")
	}

	if rec.CreationTime.Value.YearOffset != 45 {
		t.Errorf("YearOffset = %d, want 45", rec.CreationTime.Value.YearOffset)
	}
}

func TestDecodeSingleExOldSharesTagAndChapterCountOffsets(t *testing.T) {
	t.Parallel()

	body := make([]byte, 192)
	putU16(body, 60, 3) // tag_cnt
	putU16(body, 62, 7) // chp_cnt

	rec := decodeSingleEx(body, GOld)

	if !rec.TagCount.Present || rec.TagCount.Value != 3 {
		t.Errorf("TagCount = %+v, want present with value 3", rec.TagCount)
	}

	if !rec.ChapterCount.Present || rec.ChapterCount.Value != 7 {
		t.Errorf("ChapterCount = %+v, want present with value 7", rec.ChapterCount)
	}
}

func putU64(buf []byte, off int, v uint64) {
	for i := 0; i < 8; i++ {
		buf[off+i] = byte(v >> (8 * i))
	}
}
