package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kyoto", "kyoto"},
		{"Beaches of Bali", "beaches-of-bali"},
		{"  Hiking & Trekking!  ", "hiking-trekking"},
		{"Café de Flore", "café-de-flore"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUint64SetEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []uint64
		want bool
	}{
		{"both empty", nil, []uint64{}, true},
		{"same order", []uint64{1, 2}, []uint64{1, 2}, true},
		{"different order", []uint64{1, 2}, []uint64{2, 1}, true},
		{"duplicates ignored", []uint64{1, 1, 2}, []uint64{2, 1}, true},
		{"different members", []uint64{1, 2}, []uint64{1, 3}, false},
		{"subset", []uint64{1}, []uint64{1, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Uint64SetEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("Uint64SetEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStrSliceToUInt64Slice(t *testing.T) {
	got, err := StrSliceToUInt64Slice([]string{"1", "42", "1000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint64{1, 42, 1000}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}

	if _, err = StrSliceToUInt64Slice([]string{"1", "abc"}); err == nil {
		t.Error("expected error for non-numeric input")
	}
}
