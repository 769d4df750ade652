package mdb

import "errors"

// Hard errors abort decoding outright; every other condition (magic
// mismatch, unknown version, an absent field) is carried as a value in the
// decoded Root instead of returned as an error.
var (
	// ErrFileTooSmall is returned when the input is shorter than the
	// minimum viable mdb file (0x400 + 0x100 bytes).
	ErrFileTooSmall = errors.New("mdb: file too small")
)

const minFileSize = 0x400 + 0x100
