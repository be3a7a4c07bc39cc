package refresh

import (
	"reflect"
	"sort"
	"testing"
)

func TestShuffleDeterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	for _, seed := range []int{0, 1, 7, 42, 1699999999} {
		first := Shuffle(items, seed)
		second := Shuffle(items, seed)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("seed %d: two calls diverged: %v vs %v", seed, first, second)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{5, 3, 9, 1, 7, 7, 2}

	for seed := 0; seed < 50; seed++ {
		got := Shuffle(items, seed)
		if len(got) != len(items) {
			t.Fatalf("seed %d: length changed: %d", seed, len(got))
		}

		a := append([]int(nil), items...)
		b := append([]int(nil), got...)
		sort.Ints(a)
		sort.Ints(b)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("seed %d: not a permutation: %v", seed, got)
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	original := append([]string(nil), items...)

	Shuffle(items, 13)

	if !reflect.DeepEqual(items, original) {
		t.Errorf("input mutated: %v", items)
	}
}

func TestShuffleTrivialInputs(t *testing.T) {
	if got := Shuffle([]string{}, 99); len(got) != 0 {
		t.Errorf("empty input: got %v", got)
	}
	if got := Shuffle([]string{"only"}, 99); len(got) != 1 || got[0] != "only" {
		t.Errorf("single input: got %v", got)
	}
}

func TestShuffleSeedZeroMovesElements(t *testing.T) {
	for n := 2; n <= 6; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}

		got := Shuffle(items, 0)
		if reflect.DeepEqual(got, items) {
			t.Errorf("n=%d: seed 0 produced the identity permutation", n)
		}
	}
}

func TestShuffleDifferentSeedsDiffer(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	distinct := map[string]bool{}
	for seed := 0; seed < 20; seed++ {
		got := Shuffle(items, seed)
		key := ""
		for _, v := range got {
			key += string(rune('0' + v))
		}
		distinct[key] = true
	}

	// 20 seeds over 10! orderings should hit far more than a couple of
	// distinct permutations.
	if len(distinct) < 10 {
		t.Errorf("expected varied permutations across seeds, got %d distinct", len(distinct))
	}
}
