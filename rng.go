package morfessor

import "math/rand"

// rng wraps math/rand.Rand so Optimizer can be given a fixed seed for
// reproducible tests while defaulting to a time-seeded source for real
// training runs — the reference implementation reseeds a fresh
// std::mt19937 from std::random_device every call to Optimize(); the
// spec's Non-goals exclude reproducing that exact entropy source, so a
// caller-supplied seed is the idiomatic Go equivalent of
// "the caller can make this deterministic if they want to."
type rng struct {
	r *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{r: rand.New(rand.NewSource(seed))}
}

// permute returns a freshly shuffled copy of keys, leaving keys itself
// untouched. Optimizer.Epoch calls this once per epoch, matching
// segmentation.cc's Optimize, which reshuffles its key list before every
// pass over the forest's top-level morphs.
func (g *rng) permute(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	g.r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
