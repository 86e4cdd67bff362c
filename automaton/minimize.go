package automaton

import "github.com/corvid/ductus/util"

// Minimize implements table-filling DFA minimization, the "quadratic
// sibling" of Hopcroft's algorithm: mark pairs of states distinguishable,
// propagate to a fixed point, then union-find the remaining
// indistinguishable pairs into one merged state apiece.
//
// E must be comparable so that two final states carrying different
// annotations (distinct token types, for instance) are never merged.
func Minimize[E comparable](dfa DFA[E]) DFA[E] {
	states := util.OrderedKeys(dfa.states)
	n := len(states)
	idx := make(map[string]int, n)
	for i, s := range states {
		idx[s] = i
	}

	alphabet := dfa.Alphabet().Elements()

	// dist[i][j] for i < j: true if states[i] and states[j] are known
	// distinguishable.
	dist := make([][]bool, n)
	for i := range dist {
		dist[i] = make([]bool, n)
	}

	pairIdx := func(i, j int) (int, int) {
		if i < j {
			return i, j
		}
		return j, i
	}

	// Step 2: initial marking by finality / annotation.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			si, sj := dfa.states[states[i]], dfa.states[states[j]]
			if si.accepting != sj.accepting {
				dist[i][j] = true
			} else if si.accepting && sj.accepting && si.value != sj.value {
				dist[i][j] = true
			}
		}
	}

	// Step 3: fixed point over transitions.
	changed := true
	for changed {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if dist[i][j] {
					continue
				}
				for _, a := range alphabet {
					ti, tj := dfa.states[states[i]].transitions[a], dfa.states[states[j]].transitions[a]
					hasI, hasJ := ti != "", tj != ""

					if hasI != hasJ {
						dist[i][j] = true
						changed = true
						break
					}
					if hasI && hasJ {
						a, b := pairIdx(idx[ti], idx[tj])
						if a != b && dist[a][b] {
							dist[i][j] = true
							changed = true
							break
						}
					}
				}
			}
		}
	}

	// Step 4: union-find partitioning of indistinguishable pairs.
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !dist[i][j] {
				union(i, j)
			}
		}
	}

	// Step 5/6: emit one merged state per partition, naming it after its
	// lowest-index representative, and reconstruct transitions.
	repName := func(i int) string { return states[find(i)] }

	merged := DFA[E]{states: map[string]DFAState[E]{}}
	for i := 0; i < n; i++ {
		name := repName(i)
		if _, ok := merged.states[name]; ok {
			continue
		}
		rep := dfa.states[states[find(i)]]
		merged.AddState(name, rep.accepting)
		merged.SetValue(name, rep.value)
	}
	merged.Start = repName(idx[dfa.Start])

	for i := 0; i < n; i++ {
		from := repName(i)
		for _, a := range alphabet {
			to := dfa.states[states[i]].transitions[a]
			if to == "" {
				continue
			}
			merged.AddTransition(from, a, repName(idx[to]))
		}
	}

	return merged
}
