package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":  zerolog.DebugLevel,
		" WARN ": zerolog.WarnLevel,
		"Error":  zerolog.ErrorLevel,
		"trace":  zerolog.TraceLevel,
		"":       zerolog.InfoLevel,
		"loud":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestSetupWritesComponentField(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		Logger = zerolog.Nop()
		Sampled = zerolog.Nop()
	})

	var console, file bytes.Buffer
	Setup("debug", &console, &file)
	For("goldpiece").Debug().Int("points", 5).Msg("collected")

	for name, buf := range map[string]*bytes.Buffer{"console": &console, "file": &file} {
		out := buf.String()
		if !strings.Contains(out, "collected") || !strings.Contains(out, "component=") || !strings.Contains(out, "goldpiece") {
			t.Fatalf("%s output missing fields: %q", name, out)
		}
	}
	if strings.Contains(file.String(), "\x1b[") {
		t.Fatalf("file output should not contain colors")
	}
}

func TestSetupRespectsLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		Logger = zerolog.Nop()
		Sampled = zerolog.Nop()
	})

	var buf bytes.Buffer
	Setup("warn", &buf)
	buf.Reset()
	For("x").Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info line written at warn level: %q", buf.String())
	}
}

func TestSampledForTagsLines(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		Logger = zerolog.Nop()
		Sampled = zerolog.Nop()
	})

	var buf bytes.Buffer
	Setup("info", &buf)
	buf.Reset()
	log := SampledFor("goldpiece")
	for range 30 {
		log.Warn().Msg("no audio entity for sound")
	}

	out := buf.String()
	if !strings.Contains(out, "sampled=") || !strings.Contains(out, "goldpiece") {
		t.Fatalf("sampled output missing fields: %q", out)
	}
	if n := strings.Count(out, "no audio entity"); n >= 30 || n < 20 {
		t.Fatalf("wrote %d of 30 lines, want the burst of 20 plus a sample", n)
	}
}
