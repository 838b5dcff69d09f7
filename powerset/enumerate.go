package powerset

import "iter"

type state int

const (
	stateInitial state = iota
	stateGenerating
	statePhaseDone
	stateDone
)

// Enumerator walks every combination of [0, n) ordered by size and then
// lexicographically within a size. The combination is advanced in place; no
// combinations are retained.
//
//	e := NewEnumerator(3)
//	for e.Next() {
//		use(e.Combination())
//	}
type Enumerator struct {
	n           int
	k           int
	state       state
	combination []int
}

func NewEnumerator(n int) *Enumerator {
	return &Enumerator{
		n:           n,
		combination: make([]int, 0, n),
	}
}

// Next advances to the next combination, returning false once every
// combination of every size has been produced.
func (t *Enumerator) Next() bool {
	for {
		switch t.state {
		case stateInitial:
			t.reset(0)
			return true
		case stateGenerating:
			if t.successor() {
				return true
			}
			t.state = statePhaseDone
		case statePhaseDone:
			if t.k == t.n {
				t.state = stateDone
				continue
			}
			t.reset(t.k + 1)
			return true
		default:
			return false
		}
	}
}

// Combination returns the current combination. The slice is reused by Next
// and must not be retained or modified by the caller.
func (t *Enumerator) Combination() []int {
	return t.combination
}

// K returns the size of the current combination.
func (t *Enumerator) K() int {
	return t.k
}

// reset begins the phase for size k with the combination [0, 1, ..., k-1].
func (t *Enumerator) reset(k int) {
	t.k = k
	t.combination = t.combination[:k]
	for i := range t.combination {
		t.combination[i] = i
	}
	t.state = stateGenerating
}

// successor advances the combination to its lexicographic successor of the
// same size. returns false when the phase is exhausted.
func (t *Enumerator) successor() bool {
	c := t.combination
	k := len(c)

	i := k - 1
	for i >= 0 && c[i] >= t.n-k+i {
		i--
	}

	if i < 0 {
		return false
	}

	c[i]++
	for j := i + 1; j < k; j++ {
		c[j] = c[i] + (j - i)
	}

	return true
}

// All yields every combination of [0, n) in emission order. the yielded slice
// is reused between iterations.
func All(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		e := NewEnumerator(n)
		for e.Next() {
			if !yield(e.Combination()) {
				return
			}
		}
	}
}
