package sim

import (
	"encoding/base64"
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"
)

// Reshaping exponents for randomized parameters. Pushing values toward the
// extremes makes near-zero forces rarer, which tends to produce richer
// emergent patterns than a flat draw.
const (
	forceReshape  = 1.25
	radiusReshape = 1.1
)

// exportedLen is the size of the binary save blob: world radius (u16), class
// count (u8), per-class particle counts (u16 each) and one (force, radius)
// byte pair per matrix cell.
const exportedLen = 2 + 1 + 2*MaxClasses + 2*MaxClasses*MaxClasses

// ApplySeed reconfigures the settings from a seed string.
//
// An empty seed randomizes from entropy. A seed starting with '@' is decoded
// as a base64 save blob and restored exactly; if the base64 is malformed the
// seed degrades to the plain-text path instead of failing. Any other text is
// hashed to a 64-bit value that seeds a deterministic generator, so the same
// text always reproduces the same counts and matrix.
//
// Randomization only touches the particle counts and the parameter matrix of
// the active class window; world radius and class count are left alone.
func (s *Settings) ApplySeed(seed string) {
	var r *rand.Rand
	switch {
	case seed == "":
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	default:
		if rest, ok := strings.CutPrefix(seed, "@"); ok {
			if blob, err := base64.StdEncoding.DecodeString(rest); err == nil {
				s.importBytes(blob)
				return
			}
		}
		r = rand.New(rand.NewPCG(hashSeed(seed), 0))
	}
	s.randomize(r)
}

// Export serializes the settings into the '@' + base64 save-string form. The
// force and radius of each matrix cell are truncated to a signed byte, which
// is lossy but covers the tunable ranges.
func (s Settings) Export() string {
	buf := make([]byte, 0, exportedLen)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(s.WorldRadius))
	buf = append(buf, uint8(s.ClassCount))
	for _, n := range s.ParticleCounts {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(n))
	}
	for i := 0; i < MaxClasses; i++ {
		for j := 0; j < MaxClasses; j++ {
			p := s.Params[i][j]
			buf = append(buf, byte(truncI8(p.Force)), byte(truncI8(p.Radius)))
		}
	}
	return "@" + base64.StdEncoding.EncodeToString(buf)
}

// importBytes restores settings from a save blob. Each field that cannot be
// read falls back to its default; a short blob never aborts the import.
func (s *Settings) importBytes(b []byte) {
	r := byteReader{data: b}
	s.WorldRadius = float32(r.u16(uint16(DefaultWorldRadius)))
	s.ClassCount = clampClassCount(int(r.u8(MaxClasses)))
	for i := range s.ParticleCounts {
		s.ParticleCounts[i] = clampParticleCount(int(r.u16(MinParticleCount)))
	}
	for i := 0; i < MaxClasses; i++ {
		for j := 0; j < MaxClasses; j++ {
			s.Params[i][j].Force = float32(r.i8(int8(DefaultForce)))
			s.Params[i][j].Radius = float32(r.i8(int8(DefaultRadius)))
		}
	}
}

// randomize draws counts and matrix entries for the active class window.
func (s *Settings) randomize(r *rand.Rand) {
	classCount := clampClassCount(s.ClassCount)
	for i := 0; i < classCount; i++ {
		s.ParticleCounts[i] = int(uniform(r, RandomMinParticleCount, RandomMaxParticleCount))
		for j := 0; j < classCount; j++ {
			force := uniform(r, MinForce, MaxForce)
			sign := float32(1)
			if force < 0 {
				sign = -1
			}
			mag := math.Abs(float64(force))
			s.Params[i][j].Force = sign * float32(math.Pow(mag, 1/forceReshape))
			s.Params[i][j].Radius = float32(math.Pow(float64(uniform(r, MinRadius, MaxRadius)), 1/radiusReshape))
		}
	}
}

// hashSeed maps seed text to a stable 64-bit PRNG seed.
func hashSeed(seed string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return h.Sum64()
}

// uniform draws from [min, max).
func uniform(r *rand.Rand, min, max float32) float32 {
	return min + (max-min)*r.Float32()
}

// truncI8 truncates toward zero into the signed byte range.
func truncI8(v float32) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}

// byteReader walks a save blob, handing out defaults once the data runs out.
type byteReader struct {
	data []byte
	off  int
}

func (r *byteReader) u8(def uint8) uint8 {
	if r.off+1 > len(r.data) {
		return def
	}
	v := r.data[r.off]
	r.off++
	return v
}

func (r *byteReader) i8(def int8) int8 {
	return int8(r.u8(uint8(def)))
}

func (r *byteReader) u16(def uint16) uint16 {
	if r.off+2 > len(r.data) {
		return def
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v
}
