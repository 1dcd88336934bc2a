package catalog

import "testing"

func TestSizeOf(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want Size
		ok   bool
	}{
		{name: "plate 1x1", ref: "3024.dat", want: Size{1, 1}, ok: true},
		{name: "plate 1x12", ref: "60479.dat", want: Size{1, 12}, ok: true},
		{name: "plate 2x8", ref: "3034.dat", want: Size{2, 8}, ok: true},
		{name: "brick 2x4", ref: "3001.dat", want: Size{2, 4}, ok: true},
		{name: "tile 1x4", ref: "2431b.dat", want: Size{1, 4}, ok: true},
		{name: "without suffix", ref: "3024", want: Size{1, 1}, ok: true},
		{name: "minifig head is not sized", ref: "3626.dat", ok: false},
		{name: "unknown part", ref: "9999.dat", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SizeOf(tt.ref)
			if ok != tt.ok {
				t.Fatalf("SizeOf(%q) ok = %v, want %v", tt.ref, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("SizeOf(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestPlateRef(t *testing.T) {
	tests := []struct {
		name          string
		width, length int
		want          string
		ok            bool
	}{
		{name: "1x4", width: 1, length: 4, want: "3710.dat", ok: true},
		{name: "1x12", width: 1, length: 12, want: "60479.dat", ok: true},
		{name: "2x6", width: 2, length: 6, want: "3795.dat", ok: true},
		{name: "no 1x5 plate", width: 1, length: 5, ok: false},
		{name: "no 3-wide family", width: 3, length: 4, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PlateRef(tt.width, tt.length)
			if ok != tt.ok {
				t.Fatalf("PlateRef(%d, %d) ok = %v, want %v", tt.width, tt.length, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("PlateRef(%d, %d) = %q, want %q", tt.width, tt.length, got, tt.want)
			}
		})
	}
}

func TestFamilyPredicates(t *testing.T) {
	if !IsPlate("3024.dat") || IsBrick("3024.dat") || IsTile("3024.dat") {
		t.Error("3024.dat should classify as a plate only")
	}
	if !IsBrick("3005.dat") {
		t.Error("3005.dat should classify as a brick")
	}
	if !IsTile("3070b.dat") {
		t.Error("3070b.dat should classify as a tile")
	}
}

// Round-trip between the size tables and SizeOf: every plate reference
// reachable through PlateRef reports the footprint it was registered under.
func TestPlateTableConsistency(t *testing.T) {
	for width := 1; width <= 2; width++ {
		for length := 1; length <= 12; length++ {
			ref, ok := PlateRef(width, length)
			if !ok {
				continue
			}
			size, ok := PlateSize(ref)
			if !ok {
				t.Errorf("PlateSize(%q) not found", ref)
				continue
			}
			if size.Width != width || size.Length != length {
				t.Errorf("PlateSize(%q) = %v, want {%d %d}", ref, size, width, length)
			}
		}
	}
}
