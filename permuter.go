package dscc

// Permuter is a reproducible, bijective, format-preserving permutation
// over the closed interval [MinID, MaxID] of 32-bit vertex ids: spec.md
// §4.1. It is a pure value, safe to construct identically and
// independently on every process -- no coordination is required to
// agree on a pivot assignment for an iteration.
//
// Algorithm and constants are ported bit-for-bit from
// original_source/include/fpp_vertex_permuter.hpp (FppPermuter): the
// same SplitMix64 finalizer, the same m/2 and (m+1)/3 shift amounts,
// and the same odd round-constant derivation, so permutations computed
// by this type agree with the reference implementation for identical
// (min, max, seed) inputs.
type Permuter struct {
	minID, maxID VertexID

	full bool   // R covers the full 2^32 domain; no cycle walking needed
	r    uint32 // range size, meaningless when full is true
	m    uint   // bits of the pow2 domain
	mask uint32

	key    uint32
	k1, k2 uint32
}

// maxCycleWalkIterations bounds the cycle-walk loop defensively. §9's
// analysis guarantees an expected bound of 2^m/R <= 2 iterations; a
// walk that exceeds this by 32x indicates a broken permutation, not a
// legitimate input, and is a programming error rather than a degraded
// path.
const maxCycleWalkIterations = 64

// NewPermuter constructs a Permuter over [minID, maxID] using seed.
// minID must be <= maxID; degenerate and full-range inputs are handled
// per spec.md §4.1 steps 1-2.
func NewPermuter(minID, maxID VertexID, seed uint64) *Permuter {
	p := &Permuter{minID: minID, maxID: maxID}

	if maxID <= minID {
		// Degenerate range: identity on the single value min maps to
		// itself (spec.md §4.1 step 1). Collapse to a trivial pow2
		// domain of size 1 so Permute below is still well-defined.
		p.minID, p.maxID = minID, minID
	}

	r64 := uint64(p.maxID) - uint64(p.minID) + 1

	if r64 >= (1 << 32) {
		p.full = true
		p.m = 32
		p.mask = 0xFFFFFFFF
	} else {
		p.r = uint32(r64)
		if p.r <= 1 {
			p.m = 1
		} else {
			p.m = ceilLog2(uint64(p.r))
		}
		if p.m >= 32 {
			p.mask = 0xFFFFFFFF
		} else {
			p.mask = (1 << p.m) - 1
		}
	}

	p.key = mixKey64To32(seed)
	p.k1 = p.key*0x9E3779B1 + 0x85EBCA77
	p.k1 |= 1
	p.k2 = p.key*0xC2B2AE3D + 0x27D4EB2F
	p.k2 |= 1

	return p
}

// Permute returns π(id): spec.md §4.1. Ids outside [MinID, MaxID] are
// returned unchanged.
func (p *Permuter) Permute(id VertexID) VertexID {
	if id < p.minID || id > p.maxID {
		return id
	}

	x := uint32(id - p.minID)

	if p.full {
		return VertexID(p.permutePow2(x)) + p.minID
	}

	y := x
	for i := 0; ; i++ {
		y = p.permutePow2(y)
		if y < p.r {
			break
		}
		if i >= maxCycleWalkIterations {
			panic("dscc: permuter cycle walk exceeded defensive iteration cap")
		}
	}
	return VertexID(y) + p.minID
}

// permutePow2 is the bijection P on {0,...,2^m-1}: spec.md §4.1 step 5.
func (p *Permuter) permutePow2(x uint32) uint32 {
	shift1 := p.m / 2
	if shift1 == 0 {
		shift1 = 1
	}
	shift2 := (p.m + 1) / 3
	if shift2 == 0 {
		shift2 = 1
	}

	v := x & p.mask
	v ^= p.key
	v &= p.mask
	v ^= v >> shift1
	v &= p.mask
	v = (v * p.k1) & p.mask
	v ^= v >> shift2
	v &= p.mask
	v = (v * p.k2) & p.mask
	v ^= v >> shift1
	v &= p.mask
	v += p.key
	v &= p.mask
	return v
}

// mixKey64To32 applies the SplitMix64 finalizer to seed +
// golden-ratio-64, then folds the 64-bit result to 32 bits.
func mixKey64To32(seed uint64) uint32 {
	const goldenRatio64 = 0x9E3779B97F4A7C15
	z := seed + goldenRatio64
	z ^= z >> 30
	z *= 0xBF58476D1CE4E5B9
	z ^= z >> 27
	z *= 0x94D049BB133111EB
	z ^= z >> 31
	return uint32(z ^ (z >> 32))
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n uint64) uint {
	var l uint
	v := n - 1
	for v > 0 {
		v >>= 1
		l++
	}
	return l
}
