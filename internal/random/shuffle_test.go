package random

import (
	"math/rand/v2"
	"testing"
)

// seededSource wraps math/rand/v2 with a fixed seed for reproducible tests.
type seededSource struct {
	r *rand.Rand
}

func newSeededSource(seed uint64) *seededSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seededSource) IntN(n int) int { return s.r.IntN(n) }

func TestShuffleDoesNotMutateInput(t *testing.T) {
	src := newSeededSource(1)
	in := []int{1, 2, 3, 4, 5}
	want := []int{1, 2, 3, 4, 5}

	Shuffle(src, in)

	for i := range in {
		if in[i] != want[i] {
			t.Fatalf("input mutated at %d: got %v", i, in)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	src := newSeededSource(2)
	in := []int{3, 1, 4, 1, 5, 9, 2, 6, 5}

	out := Shuffle(src, in)

	if len(out) != len(in) {
		t.Fatalf("length changed: %d != %d", len(out), len(in))
	}
	counts := make(map[int]int)
	for _, v := range in {
		counts[v]++
	}
	for _, v := range out {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			t.Errorf("element %d count off by %d", v, c)
		}
	}
}

func TestShuffleEdgeSizes(t *testing.T) {
	src := newSeededSource(3)

	if out := Shuffle(src, []int{}); len(out) != 0 {
		t.Errorf("empty shuffle = %v", out)
	}
	if out := Shuffle(src, []int{7}); len(out) != 1 || out[0] != 7 {
		t.Errorf("single shuffle = %v", out)
	}
}

// TestShuffleVariesOrdering is the statistical check that repeated shuffles
// of 5+ elements do not keep producing a single fixed permutation.
func TestShuffleVariesOrdering(t *testing.T) {
	src := newSeededSource(4)
	in := []int{1, 2, 3, 4, 5, 6}

	identical := 0
	for range 1000 {
		out := Shuffle(src, in)
		same := true
		for i := range in {
			if out[i] != in[i] {
				same = false
				break
			}
		}
		if same {
			identical++
		}
	}

	// 6! = 720 permutations; expect roughly 1-2 identity hits in 1000 trials.
	if identical > 20 {
		t.Errorf("identity permutation recurred %d times in 1000 trials", identical)
	}
}

func TestSample(t *testing.T) {
	src := newSeededSource(5)
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	out := Sample(src, in, 3)
	if len(out) != 3 {
		t.Fatalf("sample size = %d, want 3", len(out))
	}
	seen := make(map[int]bool)
	for _, v := range out {
		if seen[v] {
			t.Errorf("duplicate element %d in sample", v)
		}
		seen[v] = true
	}

	// Oversized n returns a full shuffle.
	out = Sample(src, in, 100)
	if len(out) != len(in) {
		t.Errorf("oversized sample = %d elements, want %d", len(out), len(in))
	}
}
