package sim

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

func TestApplySeedTextDeterministic(t *testing.T) {
	a := DefaultSettings()
	b := DefaultSettings()
	a.ApplySeed("amber_reef_zephyr")
	b.ApplySeed("amber_reef_zephyr")
	if a != b {
		t.Fatal("same seed text must yield identical settings")
	}

	c := DefaultSettings()
	c.ApplySeed("amber_reef_zephyrr")
	if c == a {
		t.Fatal("different seed texts should not yield identical settings")
	}
}

func TestApplySeedRandomRanges(t *testing.T) {
	s := DefaultSettings()
	s.ApplySeed("range_check")
	for i := 0; i < s.ClassCount; i++ {
		n := s.ParticleCounts[i]
		if n < RandomMinParticleCount || n > RandomMaxParticleCount {
			t.Fatalf("class %d count %d outside random range", i, n)
		}
		for j := 0; j < s.ClassCount; j++ {
			p := s.Params[i][j]
			if f := float32(math.Abs(float64(p.Force))); f > MaxForce {
				t.Fatalf("force %v outside signed range", p.Force)
			}
			if p.Radius < 0 || p.Radius > MaxRadius {
				t.Fatalf("radius %v outside range", p.Radius)
			}
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.WorldRadius = 321
	s.ClassCount = 5
	for i := range s.ParticleCounts {
		s.ParticleCounts[i] = 37 * (i + 1)
	}
	for i := 0; i < MaxClasses; i++ {
		for j := 0; j < MaxClasses; j++ {
			s.Params[i][j] = Param{
				Force:  -39.7 + float32(i*7+j)*1.3,
				Radius: 12.9 + float32(i+j)*5.1,
			}
		}
	}

	got := DefaultSettings()
	got.ApplySeed(s.Export())

	if got.WorldRadius != s.WorldRadius {
		t.Fatalf("world radius %v, want %v", got.WorldRadius, s.WorldRadius)
	}
	if got.ClassCount != s.ClassCount {
		t.Fatalf("class count %d, want %d", got.ClassCount, s.ClassCount)
	}
	if got.ParticleCounts != s.ParticleCounts {
		t.Fatalf("particle counts %v, want %v", got.ParticleCounts, s.ParticleCounts)
	}
	for i := 0; i < MaxClasses; i++ {
		for j := 0; j < MaxClasses; j++ {
			want, have := s.Params[i][j], got.Params[i][j]
			if math.Abs(float64(want.Force-have.Force)) > 1 {
				t.Fatalf("force[%d][%d] = %v, want %v within byte truncation", i, j, have.Force, want.Force)
			}
			if math.Abs(float64(want.Radius-have.Radius)) > 1 {
				t.Fatalf("radius[%d][%d] = %v, want %v within byte truncation", i, j, have.Radius, want.Radius)
			}
		}
	}
}

// extremeSettings pins every field to a range boundary.
func extremeSettings() Settings {
	s := DefaultSettings()
	s.WorldRadius = MaxWorldRadius
	s.ClassCount = MaxClasses
	for i := range s.ParticleCounts {
		s.ParticleCounts[i] = MaxParticleCount
	}
	for i := 0; i < MaxClasses; i++ {
		for j := 0; j < MaxClasses; j++ {
			f, r := MinForce, MinRadius
			if (i+j)%2 == 0 {
				f, r = MaxForce, MaxRadius
			}
			s.Params[i][j] = Param{Force: f, Radius: r}
		}
	}
	return s
}

func TestExportImportRoundTripAtExtremes(t *testing.T) {
	want := extremeSettings()
	got := DefaultSettings()
	// Export on an rvalue: the codec must not require an addressable
	// receiver.
	got.ApplySeed(extremeSettings().Export())

	if got.WorldRadius != want.WorldRadius {
		t.Fatalf("world radius %v, want %v", got.WorldRadius, want.WorldRadius)
	}
	if got.ClassCount != want.ClassCount {
		t.Fatalf("class count %d, want %d", got.ClassCount, want.ClassCount)
	}
	if got.ParticleCounts != want.ParticleCounts {
		t.Fatalf("particle counts %v, want %v", got.ParticleCounts, want.ParticleCounts)
	}
	if got.Params != want.Params {
		t.Fatal("range-boundary forces and radii must survive export exactly")
	}
}

func TestResetThenExportIsStable(t *testing.T) {
	e := NewEngine()
	s := e.Settings()
	s.ApplySeed("scramble_me")
	s.WorldRadius = 777
	e.SetSettings(s)

	e.Reset()
	got := e.Settings().Export()
	want := DefaultSettings().Export()
	if got != want {
		t.Fatalf("reset export = %q, want default export %q", got, want)
	}
	if again := e.Settings().Export(); again != got {
		t.Fatal("export must be byte-for-byte stable across calls")
	}
}

func TestApplySeedMalformedBase64FallsBackToText(t *testing.T) {
	const seed = "@not-valid-base64!!!"
	a := DefaultSettings()
	b := DefaultSettings()
	a.ApplySeed(seed)
	b.ApplySeed(seed)
	if a != b {
		t.Fatal("malformed @-seed must fall back to the deterministic text path")
	}
	if a == DefaultSettings() {
		t.Fatal("fallback path should still randomize the settings")
	}
}

func TestApplySeedTruncatedBlob(t *testing.T) {
	// Only the world radius survives; everything else runs off the end of
	// the blob and falls back to defaults.
	blob := binary.LittleEndian.AppendUint16(nil, 200)
	s := DefaultSettings()
	s.ClassCount = 3
	s.ApplySeed("@" + base64.StdEncoding.EncodeToString(blob))

	if s.WorldRadius != 200 {
		t.Fatalf("world radius %v, want 200", s.WorldRadius)
	}
	if s.ClassCount != MaxClasses {
		t.Fatalf("class count %d, want default %d", s.ClassCount, MaxClasses)
	}
	for i, n := range s.ParticleCounts {
		if n != MinParticleCount {
			t.Fatalf("count[%d] = %d, want default %d", i, n, MinParticleCount)
		}
	}
	for i := 0; i < MaxClasses; i++ {
		for j := 0; j < MaxClasses; j++ {
			p := s.Params[i][j]
			if p.Force != DefaultForce || p.Radius != DefaultRadius {
				t.Fatalf("param[%d][%d] = %+v, want defaults", i, j, p)
			}
		}
	}
}

func TestExportShape(t *testing.T) {
	out := DefaultSettings().Export()
	if !strings.HasPrefix(out, "@") {
		t.Fatalf("export %q must start with '@'", out)
	}
	blob, err := base64.StdEncoding.DecodeString(out[1:])
	if err != nil {
		t.Fatalf("export payload is not valid base64: %v", err)
	}
	if len(blob) != exportedLen {
		t.Fatalf("blob length %d, want %d", len(blob), exportedLen)
	}
}

func TestRandomSeedPhraseShape(t *testing.T) {
	phrase := RandomSeedPhrase()
	parts := strings.Split(phrase, "_")
	if len(parts) != 3 {
		t.Fatalf("phrase %q should have three words", phrase)
	}
	for _, p := range parts {
		if p == "" {
			t.Fatalf("phrase %q has an empty word", phrase)
		}
	}
}
