package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                           "",
		"item/jewel_1.wav":           "item/jewel_1.wav",
		"assets/item/jewel_1.wav":    "item/jewel_1.wav",
		"/home/x/assets/item/a.wav":  "item/a.wav",
		"/tmp/elsewhere/jewel_2.wav": "jewel_2.wav",
	}
	for in, want := range cases {
		if got := cleanAssetPath(in); got != want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJewelSoundsEmbedded(t *testing.T) {
	for _, name := range []string{"item/jewel_1.wav", "assets/item/jewel_2.wav"} {
		b, err := LoadAudio(name)
		if err != nil {
			t.Fatalf("LoadAudio(%q): %v", name, err)
		}
		if len(b) < 44 || string(b[:4]) != "RIFF" {
			t.Fatalf("%s is not a wav file", name)
		}
	}
	if _, err := LoadFile("missing.wav"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
}
