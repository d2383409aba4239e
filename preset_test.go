package caption

import "testing"

func TestPresets(t *testing.T) {
	want := []Preset{
		{1200, 630, "Facebook/LinkedIn Post"},
		{1080, 1080, "Instagram Square"},
		{1080, 1350, "Instagram Portrait"},
		{1200, 675, "Twitter Post"},
		{1280, 720, "YouTube Thumbnail"},
		{1200, 628, "Open Graph"},
	}
	if len(Presets) != len(want) {
		t.Fatalf("len(Presets) = %d, want %d", len(Presets), len(want))
	}
	for i, p := range want {
		if Presets[i] != p {
			t.Errorf("Presets[%d] = %+v, want %+v", i, Presets[i], p)
		}
	}
}

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		label  string
		want   Preset
		wantOK bool
	}{
		{"Twitter Post", Preset{1200, 675, "Twitter Post"}, true},
		{"Open Graph", Preset{1200, 628, "Open Graph"}, true},
		{"twitter post", Preset{}, false},
		{"", Preset{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := LookupPreset(tt.label)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LookupPreset(%q) = %+v, %v, want %+v, %v", tt.label, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPresetString(t *testing.T) {
	if got := Presets[0].String(); got != "Facebook/LinkedIn Post (1200x630)" {
		t.Errorf("String() = %q", got)
	}
}
