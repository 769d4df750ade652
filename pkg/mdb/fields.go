package mdb

// FieldOffset names one decoded field and the byte offset it starts at
// within its record's unpacked body (the slice handed to the table
// decoders), for the G_NEW schema generation. Used by the CLI's --fields
// and --dict modes, which print these without decoding any particular
// file.
type FieldOffset struct {
	Struct string
	Field  string
	Offset int
}

// KnownFields is the fixed, documented offset table for every field this
// decoder understands, G_NEW generation.
var KnownFields = []FieldOffset{
	{Struct: "single_ex", Field: "duration", Offset: 0},
	{Struct: "single_ex", Field: "size", Offset: 8},
	{Struct: "single_ex", Field: "file_handle", Offset: 16},
	{Struct: "single_ex", Field: "media_status", Offset: 24},
	{Struct: "single_ex", Field: "file_type_ex", Offset: 36},
	{Struct: "single_ex", Field: "max_moment_score", Offset: 40},
	{Struct: "single_ex", Field: "moment_cnt", Offset: 50},
	{Struct: "single_ex", Field: "ctm", Offset: 52},
	{Struct: "single_ex", Field: "tag_cnt", Offset: 60},
	{Struct: "single_ex", Field: "chp_cnt", Offset: 62},
	{Struct: "single_ex", Field: "grp_no", Offset: 64},
	{Struct: "single_ex", Field: "latm", Offset: 66},
	{Struct: "single_ex", Field: "total_tag_cnt", Offset: 74},
	{Struct: "single_ex", Field: "dir_no", Offset: 76},
	{Struct: "single_ex", Field: "last_scan_time", Offset: 78},
	{Struct: "single_ex", Field: "has_hdr", Offset: 85},
	{Struct: "single_ex", Field: "is_clip", Offset: 86},
	{Struct: "single_ex", Field: "file_scanned", Offset: 87},
	{Struct: "single_ex", Field: "avc_level", Offset: 88},
	{Struct: "single_ex", Field: "avc_profile", Offset: 89},
	{Struct: "single_ex", Field: "protune_option", Offset: 90},
	{Struct: "single_ex", Field: "audio_option", Offset: 91},
	{Struct: "single_ex", Field: "has_eis", Offset: 92},
	{Struct: "single_ex", Field: "meta_present", Offset: 93},
	{Struct: "single_ex", Field: "projection", Offset: 94},
	{Struct: "single_ex", Field: "lens_config", Offset: 96},
	{Struct: "single_ex", Field: "camera_model", Offset: 97},
	{Struct: "single_ex", Field: "sub_model", Offset: 128},

	{Struct: "grouped_ex", Field: "file_handle", Offset: 0},
	{Struct: "grouped_ex", Field: "frame_rate_timescale", Offset: 8},
	{Struct: "grouped_ex", Field: "frame_rate_duration", Offset: 12},
	{Struct: "grouped_ex", Field: "n_elems", Offset: 16},
	{Struct: "grouped_ex", Field: "creation_time", Offset: 20},
	{Struct: "grouped_ex", Field: "grp_no", Offset: 28},
	{Struct: "grouped_ex", Field: "width", Offset: 30},
	{Struct: "grouped_ex", Field: "height", Offset: 32},
	{Struct: "grouped_ex", Field: "gusi_blob", Offset: 36},
	{Struct: "grouped_ex", Field: "is_subsample", Offset: 52},
	{Struct: "grouped_ex", Field: "is_progressive", Offset: 53},
	{Struct: "grouped_ex", Field: "content_blob", Offset: 57},
}
