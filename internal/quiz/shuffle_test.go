package quiz

import (
	"math/rand"
	"sort"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	in := []string{"a", "b", "c", "d"}

	out := shuffle(r, in)
	if in[0] != "a" || in[3] != "d" {
		t.Fatalf("input mutated: %v", in)
	}
	sorted := append([]string(nil), out...)
	sort.Strings(sorted)
	for i, want := range []string{"a", "b", "c", "d"} {
		if sorted[i] != want {
			t.Fatalf("expected permutation of %v, got %v", in, out)
		}
	}
}

func TestShuffleDistributionIsUniform(t *testing.T) {
	const trials = 40000
	r := rand.New(rand.NewSource(42))
	answers := []string{"a", "b", "c", "d"}
	counts := map[string][]int{}
	for _, a := range answers {
		counts[a] = make([]int, len(answers))
	}

	for i := 0; i < trials; i++ {
		for pos, a := range shuffle(r, answers) {
			counts[a][pos]++
		}
	}

	expected := trials / len(answers)
	for a, byPos := range counts {
		for pos, n := range byPos {
			if n < expected*9/10 || n > expected*11/10 {
				t.Fatalf("answer %q at position %d seen %d times, expected about %d", a, pos, n, expected)
			}
		}
	}
}
