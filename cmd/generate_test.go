package cmd

import "testing"

func TestParseSize(t *testing.T) {
	cases := []struct {
		in      string
		w, h    float64
		wantErr bool
	}{
		{"297x210", 297, 210, false},
		{"800X600", 800, 600, false},
		{"29.7x21.0", 29.7, 21, false},
		{" 100 x 200 ", 100, 200, false},
		{"297", 0, 0, true},
		{"0x210", 0, 0, true},
		{"297x-210", 0, 0, true},
		{"axb", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tc := range cases {
		w, h, err := parseSize(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseSize(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSize(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if w != tc.w || h != tc.h {
			t.Errorf("parseSize(%q): expected %fx%f, got %fx%f", tc.in, tc.w, tc.h, w, h)
		}
	}
}

func TestParseDims(t *testing.T) {
	photos, err := parseDims([]string{"800x600", "600x800"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(photos))
	}
	if photos[0].Width != 800 || photos[0].Height != 600 {
		t.Errorf("unexpected first photo: %+v", photos[0])
	}
	if photos[0].ID == photos[1].ID {
		t.Error("expected distinct synthetic IDs")
	}

	if _, err := parseDims([]string{"800x600", "broken"}); err == nil {
		t.Error("expected error for invalid dims entry")
	}
}
