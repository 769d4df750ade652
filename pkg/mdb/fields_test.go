package mdb

import "testing"

func TestFindStringsRespectsLengthBounds(t *testing.T) {
	t.Parallel()

	longRun := make([]byte, 80)
	for i := range longRun {
		longRun[i] = 'x'
	}

	buf := append([]byte("ab\x00abcd\x00"), longRun...)

	matches := FindStrings(buf, 4, 64)

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1 (short run and over-long run filtered out)", len(matches))
	}

	if matches[0].Value != "abcd" {
		t.Errorf("Value = %q, want %q", matches[0].Value, "abcd")
	}

	if matches[0].Offset != 3 {
		t.Errorf("Offset = %d, want 3", matches[0].Offset)
	}
}

func TestKnownFieldsNonEmpty(t *testing.T) {
	t.Parallel()

	if len(KnownFields) == 0 {
		t.Fatal("expected a non-empty known-fields table")
	}

	for _, f := range KnownFields {
		if f.Struct == "" || f.Field == "" {
			t.Errorf("incomplete field entry: %+v", f)
		}
	}
}
