package mdb

// readDateTime reads the 7-byte on-disk datetime at off: year:u16, month:u8,
// day:u8, min:u8, hour:u8, second:u8 in that order (minute precedes hour on
// disk). A year of 0 means "unset"; Present is false in that case.
func readDateTime(r *byteReader, off int) DateTime {
	year := r.u16(off)

	return DateTime{
		YearOffset: year,
		Month:      r.u8(off + 2),
		Day:        r.u8(off + 3),
		Minute:     r.u8(off + 4),
		Hour:       r.u8(off + 5),
		Second:     r.u8(off + 6),
		Present:    year != 0,
	}
}

// optionalDateTime wraps readDateTime's result as an Optional, consistent
// with how every other soft-absent field is surfaced.
func optionalDateTime(r *byteReader, off int) Optional[DateTime] {
	dt := readDateTime(r, off)
	if !dt.Present {
		return None[DateTime]()
	}

	return Some(dt)
}
