package rng

// jumpPoly is the documented 256-bit polynomial that advances the generator
// by 2^128 steps — equivalent to 2^128 calls to NextU64. It is fixed forever:
// changing it would break reproducibility of every seed/thread-count
// combination ever priced with this engine.
var jumpPoly = [4]uint64{
	0x180ec6d33cfd0aba,
	0xd5a61266f0c9392c,
	0xa9582618e03fc9aa,
	0x39abdc4529b1661c,
}

// Jump returns a new state obtained by advancing base by 2^128 steps. The
// result is deterministic and its first 2^128 outputs are disjoint from
// base's — the contract used to carve per-thread substreams out of one
// master state (thread i uses Jump applied i times to the master).
func Jump(base State) State {
	s := base
	var next State

	for _, word := range jumpPoly {
		for b := uint(0); b < 64; b++ {
			if word&(uint64(1)<<b) != 0 {
				next.s0 ^= s.s0
				next.s1 ^= s.s1
				next.s2 ^= s.s2
				next.s3 ^= s.s3
			}
			s.NextU64()
		}
	}

	return next
}

// JumpN applies Jump n times, producing the state for the n-th disjoint
// substream after base.
func JumpN(base State, n int) State {
	s := base
	for i := 0; i < n; i++ {
		s = Jump(s)
	}
	return s
}
